package felt

// Pile is a squared-up group of cards where only the top card shows. Index 0
// is the topmost, visible card. Hit testing covers only the top card's
// footprint; the small visual stagger of the cards underneath is rendering
// only.
//
// Like Stack, a pile never legitimately holds fewer than 2 cards.
type Pile struct {
	X, Y     float64
	Dir      Direction
	FaceDown bool

	// Stagger is the visual offset of the underlying cards at scale 1.
	Stagger float64

	cards []*Card
}

// NewPile creates a pile at (x, y) owning the given cards, topmost first.
// Panics when fewer than 2 cards are supplied.
func NewPile(x, y float64, cards ...*Card) *Pile {
	if len(cards) < 2 {
		panic("felt: pile requires at least 2 cards")
	}
	p := &Pile{X: x, Y: y, Stagger: defaultPileStagger, cards: cards}
	p.cards[0].SetPos(x, y)
	return p
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.cards)
}

// CardAt returns the card at index i (0 = topmost).
func (p *Pile) CardAt(i int) *Card {
	return p.cards[i]
}

// Cards returns the card list. The returned slice MUST NOT be mutated by the
// caller.
func (p *Pile) Cards() []*Card {
	return p.cards
}

// Scale returns the pile's render scale, taken from its top card.
func (p *Pile) Scale() float64 {
	return p.cards[0].Scale
}

// Width returns the top card's rendered width.
func (p *Pile) Width() float64 {
	return p.cards[0].Width()
}

// Height returns the top card's rendered height.
func (p *Pile) Height() float64 {
	return p.cards[0].Height()
}

// Contains reports whether (x, y) falls on the pile's top card.
func (p *Pile) Contains(x, y float64) bool {
	return p.Dir.Contains(p.X, p.Y, p.Width(), p.Height(), x, y)
}

// Push places c on top of the pile (index 0).
func (p *Pile) Push(c *Card) {
	p.cards = append(p.cards, nil)
	copy(p.cards[1:], p.cards)
	p.cards[0] = c
	c.SetPos(p.X, p.Y)
}

// PopTop removes and returns the topmost card.
func (p *Pile) PopTop() *Card {
	if len(p.cards) == 0 {
		panic("felt: pop from empty pile")
	}
	c := p.cards[0]
	copy(p.cards, p.cards[1:])
	p.cards[len(p.cards)-1] = nil
	p.cards = p.cards[:len(p.cards)-1]
	return c
}

// Pos returns the pile's anchor position.
func (p *Pile) Pos() (float64, float64) {
	return p.X, p.Y
}

// SetPos moves the anchor; the top card follows it.
func (p *Pile) SetPos(x, y float64) {
	p.X = x
	p.Y = y
	if len(p.cards) > 0 {
		p.cards[0].SetPos(x, y)
	}
}

// MoveBy applies a movement delta to the anchor.
func (p *Pile) MoveBy(dx, dy float64) {
	p.SetPos(p.X+dx, p.Y+dy)
}

// SetDirection sets the pile's orientation. Panics on an invalid direction.
func (p *Pile) SetDirection(d Direction) {
	checkDirection(d)
	p.Dir = d
}

// Direction returns the pile's orientation.
func (p *Pile) Direction() Direction {
	return p.Dir
}

// IsFaceDown reports whether the pile shows card backs.
func (p *Pile) IsFaceDown() bool {
	return p.FaceDown
}

// SetFaceDown flips the whole pile, reversing member order so the viewing
// order stays consistent (same rule as Stack).
func (p *Pile) SetFaceDown(down bool) {
	if down == p.FaceDown {
		return
	}
	reverseCards(p.cards)
	p.FaceDown = down
	p.cards[0].SetPos(p.X, p.Y)
}

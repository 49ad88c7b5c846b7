package felt

import "fmt"

// Rank is a playing card rank.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the short rank label.
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}[r]
}

// Suit is a playing card suit.
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// String returns the single-letter suit label.
func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return [...]string{"", "H", "D", "C", "S"}[s]
}

// Card is the atomic table entity: a single playing card. The anchor (X, Y)
// is the top-left corner before rotation. W and H are the natural image
// dimensions at scale 1; the card never touches raw image data itself.
type Card struct {
	Rank Rank
	Suit Suit

	X, Y     float64
	Scale    float64
	Dir      Direction
	FaceDown bool

	W, H float64
}

// NewCard creates a face-up card at the origin with default dimensions.
func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		Rank:  rank,
		Suit:  suit,
		Scale: 1,
		W:     defaultCardWidth,
		H:     defaultCardHeight,
	}
}

// NewDeck returns the full 52-card set, ordered by suit then rank.
func NewDeck() []*Card {
	deck := make([]*Card, 0, 52)
	for s := Hearts; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, NewCard(r, s))
		}
	}
	return deck
}

// String returns a short label like "QS" or "10H".
func (c *Card) String() string {
	return fmt.Sprintf("%v%v", c.Rank, c.Suit)
}

// Width returns the card's rendered width (natural width × scale).
func (c *Card) Width() float64 {
	return c.W * c.Scale
}

// Height returns the card's rendered height (natural height × scale).
func (c *Card) Height() float64 {
	return c.H * c.Scale
}

// Contains reports whether the point (x, y) falls on the card, honoring its
// quarter-turn orientation.
func (c *Card) Contains(x, y float64) bool {
	return c.Dir.Contains(c.X, c.Y, c.Width(), c.Height(), x, y)
}

// Pos returns the card's anchor position.
func (c *Card) Pos() (float64, float64) {
	return c.X, c.Y
}

// SetPos moves the card's anchor to (x, y).
func (c *Card) SetPos(x, y float64) {
	c.X = x
	c.Y = y
}

// MoveBy applies a movement delta to the anchor. Deltas are applied in world
// space regardless of orientation.
func (c *Card) MoveBy(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// SetDirection sets the card's orientation. Panics on an invalid direction.
func (c *Card) SetDirection(d Direction) {
	checkDirection(d)
	c.Dir = d
}

// Direction returns the card's orientation.
func (c *Card) Direction() Direction {
	return c.Dir
}

// IsFaceDown reports whether the card shows its back.
func (c *Card) IsFaceDown() bool {
	return c.FaceDown
}

// SetFaceDown turns the card face-down (true) or face-up (false).
func (c *Card) SetFaceDown(down bool) {
	c.FaceDown = down
}

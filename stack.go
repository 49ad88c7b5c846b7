package felt

import "math"

// Stack is an ordered fan of cards. Index 0 is the card nearest the anchor
// ("leftmost" in fan direction); later indexes fan out along the direction's
// fan axis and draw on top of earlier ones.
//
// A stack never legitimately holds fewer than 2 cards. When extraction
// reduces it to one member the drag controller degenerates it into a lone
// Card in place.
type Stack struct {
	X, Y     float64
	Dir      Direction
	FaceDown bool

	// Spacing is the fan distance between adjacent cards at scale 1.
	Spacing float64

	cards []*Card
}

// NewStack creates a stack at (x, y) owning the given cards.
// Panics when fewer than 2 cards are supplied.
func NewStack(x, y float64, cards ...*Card) *Stack {
	if len(cards) < 2 {
		panic("felt: stack requires at least 2 cards")
	}
	s := &Stack{X: x, Y: y, Spacing: defaultFanSpacing, cards: cards}
	s.cards[0].SetPos(x, y)
	return s
}

// Len returns the number of cards in the stack.
func (s *Stack) Len() int {
	return len(s.cards)
}

// CardAt returns the card at index i.
func (s *Stack) CardAt(i int) *Card {
	return s.cards[i]
}

// Cards returns the card list. The returned slice MUST NOT be mutated by the
// caller.
func (s *Stack) Cards() []*Card {
	return s.cards
}

// Scale returns the stack's render scale, taken from its first card.
func (s *Stack) Scale() float64 {
	return s.cards[0].Scale
}

// Width returns the fan-axis extent of the whole stack. Undefined (panics)
// for an empty stack, which is structurally impossible in a live table.
func (s *Stack) Width() float64 {
	return float64(len(s.cards)-1)*s.Spacing*s.Scale() + s.cards[0].Width()
}

// Height returns the stack's extent across the fan axis.
func (s *Stack) Height() float64 {
	return s.cards[0].Height()
}

// Contains reports whether (x, y) falls inside the stack's bounding
// rectangle, treated as one region spanning the full fan.
func (s *Stack) Contains(x, y float64) bool {
	return s.Dir.Contains(s.X, s.Y, s.Width(), s.Height(), x, y)
}

// SpecCardAt resolves the point (x, y) to a card index by projecting it onto
// the fan axis and dividing by the fan spacing. When clamp is true, indexes
// past the last card are clamped to Len()-1; otherwise the raw index is
// returned so callers can distinguish "beyond the last card" from "onto an
// existing card".
//
// The point is not validated against Contains: a caller that skips that
// check may receive an out-of-range index and must clamp it itself.
func (s *Stack) SpecCardAt(x, y float64, clamp bool) int {
	dist := s.Dir.AxisDistance(s.X, s.Y, x, y)
	idx := int(math.Floor(dist / (s.Spacing * s.Scale())))
	if clamp && idx >= len(s.cards) {
		idx = len(s.cards) - 1
	}
	return idx
}

// RemoveAt removes and returns the card at index i.
func (s *Stack) RemoveAt(i int) *Card {
	if i < 0 || i >= len(s.cards) {
		panic("felt: stack index out of range")
	}
	c := s.cards[i]
	copy(s.cards[i:], s.cards[i+1:])
	s.cards[len(s.cards)-1] = nil
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// InsertAt inserts c at index i, shifting later cards down the fan.
func (s *Stack) InsertAt(i int, c *Card) {
	if i < 0 || i > len(s.cards) {
		panic("felt: stack index out of range")
	}
	s.cards = append(s.cards, nil)
	copy(s.cards[i+1:], s.cards[i:])
	s.cards[i] = c
	if i == 0 {
		c.SetPos(s.X, s.Y)
	}
}

// Pos returns the stack's anchor position.
func (s *Stack) Pos() (float64, float64) {
	return s.X, s.Y
}

// SetPos moves the anchor. Position is delegated: card 0 follows the anchor.
func (s *Stack) SetPos(x, y float64) {
	s.X = x
	s.Y = y
	if len(s.cards) > 0 {
		s.cards[0].SetPos(x, y)
	}
}

// MoveBy applies a movement delta to the anchor.
func (s *Stack) MoveBy(dx, dy float64) {
	s.SetPos(s.X+dx, s.Y+dy)
}

// SetDirection sets the stack's orientation. Panics on an invalid direction.
func (s *Stack) SetDirection(d Direction) {
	checkDirection(d)
	s.Dir = d
}

// Direction returns the stack's orientation.
func (s *Stack) Direction() Direction {
	return s.Dir
}

// IsFaceDown reports whether the stack shows card backs.
func (s *Stack) IsFaceDown() bool {
	return s.FaceDown
}

// SetFaceDown flips the whole stack. The member order encodes viewing
// order, so turning the stack over also reverses it: the card that was on
// top face-down stays on top face-up.
func (s *Stack) SetFaceDown(down bool) {
	if down == s.FaceDown {
		return
	}
	reverseCards(s.cards)
	s.FaceDown = down
	s.cards[0].SetPos(s.X, s.Y)
}

func reverseCards(cards []*Card) {
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
}

package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned by Draw once the cursor reaches the end of
// the shoe. Reshuffle checks at round boundaries should make this
// unreachable in normal play; seeing it indicates an engine defect.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe is a multi-deck card source. Cards are dealt from a fixed sequence
// behind an advancing cursor; once the cursor passes the penetration mark
// the shoe reports that it needs a reshuffle before the next round.
type Shoe struct {
	cards       []Card
	cursor      int
	deckCount   int
	penetration float64
	rng         *rand.Rand
	stack       []Card // fixed sequence replayed on every reshuffle, nil for random play
}

// ShoeOption configures a Shoe during creation.
type ShoeOption func(*Shoe)

// WithStack supplies a fixed card sequence that replaces random shuffling.
// Reshuffles replay the same sequence verbatim, so scripted scenarios stay
// reproducible across multiple rounds.
func WithStack(cards []Card) ShoeOption {
	return func(s *Shoe) {
		s.stack = make([]Card, len(cards))
		copy(s.stack, cards)
	}
}

// NewShoe creates a shuffled shoe of deckCount standard 52-card decks.
// Penetration is the fraction of the shoe dealt before a reshuffle is
// required and must be in (0, 1]. The RNG is required so that randomness
// stays explicit and tests deterministic.
func NewShoe(deckCount int, penetration float64, rng *rand.Rand, opts ...ShoeOption) (*Shoe, error) {
	if deckCount <= 0 {
		return nil, fmt.Errorf("deck count must be positive, got %d", deckCount)
	}
	if penetration <= 0 || penetration > 1 {
		return nil, fmt.Errorf("penetration must be in (0,1], got %v", penetration)
	}
	s := &Shoe{
		deckCount:   deckCount,
		penetration: penetration,
		rng:         rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stack == nil && rng == nil {
		return nil, errors.New("rng is required unless a fixed stack is supplied")
	}
	s.Reshuffle()
	return s, nil
}

// Draw returns the next card and advances the cursor.
func (s *Shoe) Draw() (Card, error) {
	if s.cursor >= len(s.cards) {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// NeedsReshuffle reports whether the cursor has passed the penetration
// mark. Checked once per round start, never mid-round.
func (s *Shoe) NeedsReshuffle() bool {
	return float64(s.cursor) >= s.penetration*float64(len(s.cards))
}

// Reshuffle rebuilds the full multi-deck sequence and resets the cursor.
// A fixed stack, when present, is replayed verbatim instead of shuffling.
func (s *Shoe) Reshuffle() {
	if s.stack != nil {
		s.cards = make([]Card, len(s.stack))
		copy(s.cards, s.stack)
		s.cursor = 0
		return
	}
	s.cards = s.cards[:0]
	for range s.deckCount {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	// Fisher-Yates
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.cursor = 0
}

// Remaining returns the number of cards left to deal.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.cursor
}

// Dealt returns the number of cards dealt since the last reshuffle.
func (s *Shoe) Dealt() int {
	return s.cursor
}

// TotalCards returns the size of the full shoe sequence.
func (s *Shoe) TotalCards() int {
	return len(s.cards)
}

// DeckCount returns the number of decks the shoe was built from.
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// Penetration returns the configured penetration fraction.
func (s *Shoe) Penetration() float64 {
	return s.penetration
}

package trainer

import (
	"github.com/lox/twentyone/internal/deck"
)

// defaultMinDivisor floors the decks-remaining estimate so true count
// computation cannot blow up near shoe exhaustion.
const defaultMinDivisor = 0.25

// HiLo maintains a Hi-Lo running count over cards as they are revealed
// to the player. 2-6 count +1, 7-9 count 0, tens and aces count -1. The
// dealer's hole card is not counted until it is revealed.
type HiLo struct {
	running    int
	minDivisor float64
}

// HiLoOption configures a counter.
type HiLoOption func(*HiLo)

// WithMinDivisor overrides the minimum decks-remaining divisor used for
// true count computation.
func WithMinDivisor(d float64) HiLoOption {
	return func(h *HiLo) {
		h.minDivisor = d
	}
}

// NewHiLo creates a counter with a zero running count.
func NewHiLo(opts ...HiLoOption) *HiLo {
	h := &HiLo{minDivisor: defaultMinDivisor}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TagFor returns the Hi-Lo tag of a single card.
func TagFor(c deck.Card) int {
	switch {
	case c.Rank >= deck.Two && c.Rank <= deck.Six:
		return 1
	case c.Rank >= deck.Seven && c.Rank <= deck.Nine:
		return 0
	default:
		return -1
	}
}

// Observe updates the running count for one revealed card.
func (h *HiLo) Observe(c deck.Card) {
	h.running += TagFor(c)
}

// Running returns the current running count.
func (h *HiLo) Running() int {
	return h.running
}

// True returns the true count: running count divided by the estimated
// decks remaining (cards remaining / 52, floored at the minimum divisor).
func (h *HiLo) True(cardsRemaining int) float64 {
	decks := float64(cardsRemaining) / 52
	if decks < h.minDivisor {
		decks = h.minDivisor
	}
	return float64(h.running) / decks
}

// Reset zeroes the running count, called when the shoe is reshuffled.
func (h *HiLo) Reset() {
	h.running = 0
}

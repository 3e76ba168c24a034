package game

import (
	"github.com/lox/twentyone/internal/deck"
)

// HandStatus is the lifecycle status of a player hand.
type HandStatus int

const (
	HandActive HandStatus = iota
	HandStood
	HandBusted
	HandBlackjack
	HandSurrendered
	HandDoubled
	HandSplitOrigin // replaced by two child hands when a pair was split
)

func (s HandStatus) String() string {
	return [...]string{"active", "stood", "busted", "blackjack", "surrendered", "doubled", "split-origin"}[s]
}

// Terminal reports whether the hand can take no further action.
// A split-origin hand is out of play entirely; its children act instead.
func (s HandStatus) Terminal() bool {
	return s != HandActive
}

// Value is a blackjack hand total. Soft means at least one ace is still
// counted as 11.
type Value struct {
	Total int
	Soft  bool
}

// HandValue computes the best total for a set of cards, demoting aces
// from 11 to 1 as needed to avoid busting. This is the single total
// routine shared by the state machine, the dealer and settlement.
func HandValue(cards []deck.Card) Value {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return Value{Total: total, Soft: aces > 0}
}

// Hand is one player hand in a round: its cards, bet, lifecycle status
// and split lineage. Insurance flags live here because insurance is
// offered and resolved per hand.
type Hand struct {
	PlayerID string
	Cards    []deck.Card
	Bet      int
	Status   HandStatus

	// Split lineage. FromSplit hands were created by splitting a pair and
	// can never be blackjack; FromSplitAces hands are further restricted
	// by the resplit_aces/hit_split_aces rules.
	FromSplit     bool
	FromSplitAces bool

	// Insurance, meaningful only when the dealer shows an ace.
	InsuranceOffered bool
	InsuranceDecided bool
	InsuranceTaken   bool
	InsuranceBet     int
}

// Value returns the hand's best total.
func (h *Hand) Value() Value {
	return HandValue(h.Cards)
}

// IsPair reports whether the hand is exactly two cards of equal rank
// value (T/J/Q/K all count as ten and pair with each other).
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value() == h.Cards[1].Value()
}

// IsAcePair reports whether the hand is a pair of aces.
func (h *Hand) IsAcePair() bool {
	return h.IsPair() && h.Cards[0].IsAce()
}

// DealerHand is the dealer's hand. The first card is the up card, always
// visible; the second stays concealed until revealed.
type DealerHand struct {
	Cards        []deck.Card
	HoleRevealed bool
}

// UpCard returns the dealer's face-up card.
func (d *DealerHand) UpCard() deck.Card {
	return d.Cards[0]
}

// HoleCard returns the dealer's concealed second card.
func (d *DealerHand) HoleCard() deck.Card {
	return d.Cards[1]
}

// Value returns the dealer's best total over all cards, revealed or not.
func (d *DealerHand) Value() Value {
	return HandValue(d.Cards)
}

// IsBlackjack reports whether the dealer holds a two-card 21.
func (d *DealerHand) IsBlackjack() bool {
	return len(d.Cards) == 2 && d.Value().Total == 21
}

package trainer

import (
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/rules"
)

// Move is a recommended player decision.
type Move int

const (
	MoveHit Move = iota
	MoveStand
	MoveDouble
	MoveSplit
	MoveSurrender
)

func (m Move) String() string {
	return [...]string{"hit", "stand", "double", "split", "surrender"}[m]
}

// Availability describes which actions are currently legal for the hand
// being advised, so recommendations never point at an illegal move.
type Availability struct {
	Double    bool
	Split     bool
	Surrender bool
}

// Strategy is a basic-strategy decision table parametrized by the rule
// set: dealer soft-17 policy and double-after-split shift a handful of
// cells, and double/surrender recommendations degrade to their fallback
// when the action is unavailable.
type Strategy struct {
	rules rules.Rules
}

// NewStrategy creates a strategy table for a rule set.
func NewStrategy(rs rules.Rules) *Strategy {
	return &Strategy{rules: rs}
}

// handTotal computes the best blackjack total; soft means an ace is
// still counted as 11.
func handTotal(cards []deck.Card) (total int, soft bool) {
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
	return total, aces > 0
}

// Recommend returns the basic-strategy move for a hand against a dealer
// up card, honoring the availability flags.
func (s *Strategy) Recommend(cards []deck.Card, up deck.Card, avail Availability) Move {
	upv := up.Value()

	if avail.Surrender {
		if m, ok := s.surrenderMove(cards, upv); ok {
			return m
		}
	}

	if avail.Split && len(cards) == 2 && cards[0].Value() == cards[1].Value() {
		if s.pairSplits(cards[0].Value(), upv) {
			return MoveSplit
		}
	}

	total, soft := handTotal(cards)
	if soft {
		return s.softMove(total, upv, avail.Double)
	}
	return s.hardMove(total, upv, avail.Double)
}

// surrenderMove covers the late-surrender chart: hard 16 (not a pair of
// eights) against 9, ten or ace, hard 15 against ten, and under a
// hit-soft-17 dealer also 15 and 17 against ace.
func (s *Strategy) surrenderMove(cards []deck.Card, upv int) (Move, bool) {
	total, soft := handTotal(cards)
	if soft {
		return 0, false
	}
	pairOfEights := len(cards) == 2 && cards[0].Rank == deck.Eight && cards[1].Rank == deck.Eight
	h17 := s.rules.DealerStand() == rules.HitOnSoft17

	switch total {
	case 16:
		if !pairOfEights && (upv == 9 || upv == 10 || upv == 11) {
			return MoveSurrender, true
		}
	case 15:
		if upv == 10 || (h17 && upv == 11) {
			return MoveSurrender, true
		}
	case 17:
		if h17 && upv == 11 {
			return MoveSurrender, true
		}
	}
	return 0, false
}

// pairSplits is the pair-splitting chart keyed by the paired card value
// and the dealer up value. Double-after-split loosens 2s, 3s, 4s and 6s.
func (s *Strategy) pairSplits(pairValue, upv int) bool {
	das := s.rules.DoubleAfterSplit()
	switch pairValue {
	case 11: // aces
		return true
	case 10:
		return false
	case 9:
		return upv >= 2 && upv <= 9 && upv != 7
	case 8:
		return true
	case 7:
		return upv >= 2 && upv <= 7
	case 6:
		if das {
			return upv >= 2 && upv <= 6
		}
		return upv >= 3 && upv <= 6
	case 5:
		return false // play as hard ten
	case 4:
		return das && (upv == 5 || upv == 6)
	case 3, 2:
		if das {
			return upv >= 2 && upv <= 7
		}
		return upv >= 4 && upv <= 7
	default:
		return false
	}
}

// softMove is the soft-total chart. Double recommendations fall back to
// hit below 18 and stand at 18 and above.
func (s *Strategy) softMove(total, upv int, canDouble bool) Move {
	h17 := s.rules.DealerStand() == rules.HitOnSoft17

	doubleOr := func(fallback Move) Move {
		if canDouble {
			return MoveDouble
		}
		return fallback
	}

	switch {
	case total >= 20:
		return MoveStand
	case total == 19:
		if h17 && upv == 6 {
			return doubleOr(MoveStand)
		}
		return MoveStand
	case total == 18:
		switch {
		case upv >= 2 && upv <= 6:
			return doubleOr(MoveStand)
		case upv == 7 || upv == 8:
			return MoveStand
		default:
			return MoveHit
		}
	case total == 17:
		if upv >= 3 && upv <= 6 {
			return doubleOr(MoveHit)
		}
		return MoveHit
	case total >= 15: // A,4 and A,5
		if upv >= 4 && upv <= 6 {
			return doubleOr(MoveHit)
		}
		return MoveHit
	default: // A,2 and A,3
		if upv == 5 || upv == 6 {
			return doubleOr(MoveHit)
		}
		return MoveHit
	}
}

// hardMove is the hard-total chart.
func (s *Strategy) hardMove(total, upv int, canDouble bool) Move {
	h17 := s.rules.DealerStand() == rules.HitOnSoft17

	doubleOr := func(fallback Move) Move {
		if canDouble {
			return MoveDouble
		}
		return fallback
	}

	switch {
	case total >= 17:
		return MoveStand
	case total >= 13:
		if upv >= 2 && upv <= 6 {
			return MoveStand
		}
		return MoveHit
	case total == 12:
		if upv >= 4 && upv <= 6 {
			return MoveStand
		}
		return MoveHit
	case total == 11:
		if upv == 11 && !h17 {
			return MoveHit
		}
		return doubleOr(MoveHit)
	case total == 10:
		if upv >= 2 && upv <= 9 {
			return doubleOr(MoveHit)
		}
		return MoveHit
	case total == 9:
		if upv >= 3 && upv <= 6 {
			return doubleOr(MoveHit)
		}
		return MoveHit
	default:
		return MoveHit
	}
}

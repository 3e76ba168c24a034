package game

import (
	"github.com/lox/twentyone/internal/rules"
)

// Action is a player decision on a hand.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

func (a Action) String() string {
	return [...]string{"hit", "stand", "double", "split", "surrender"}[a]
}

// availableActions computes the legal action set for the round's active
// hand as a pure function of hand state, round state and rule set. The
// bank balance gates double and split, which both require a second bet.
func availableActions(r *Round, rs rules.Rules, bank int) []Action {
	if r == nil || r.State != StatePlayerTurn {
		return nil
	}
	h := r.ActiveHand()
	if h == nil || h.Status.Terminal() {
		return nil
	}

	actions := []Action{Hit, Stand}
	if h.FromSplitAces && !rs.HitSplitAces() {
		// Split aces take a single card. The hand is only still open
		// because the dealt card made a resplittable ace pair.
		actions = []Action{Stand}
	}

	if canDouble(r, h, rs, bank) {
		actions = append(actions, Double)
	}
	if canSplit(r, h, rs, bank) {
		actions = append(actions, Split)
	}
	if canSurrender(r, h, rs) {
		actions = append(actions, Surrender)
	}
	return actions
}

// canDouble: first decision point only (two cards), split hands need
// double-after-split, and the total must satisfy the double restriction.
func canDouble(r *Round, h *Hand, rs rules.Rules, bank int) bool {
	if len(h.Cards) != 2 {
		return false
	}
	if h.FromSplit && !rs.DoubleAfterSplit() {
		return false
	}
	if h.FromSplitAces && !rs.HitSplitAces() {
		return false
	}
	if !rs.DoubleRestriction().Permits(h.Value().Total) {
		return false
	}
	return bank >= h.Bet
}

// canSplit: exactly two cards of equal rank value, lineage split count
// below the limit, and ace pairs gated by resplit_aces when the pair
// itself came from split aces.
func canSplit(r *Round, h *Hand, rs rules.Rules, bank int) bool {
	if !h.IsPair() {
		return false
	}
	if r.splitsUsed[h.PlayerID] >= rs.MaxSplits() {
		return false
	}
	if h.IsAcePair() && h.FromSplitAces && !rs.ResplitAces() {
		return false
	}
	return bank >= h.Bet
}

// canSurrender: the very first decision of the very first hand, before
// any split, under a late or early policy. The engine offers both
// policies at the same point because the dealer peek already happened:
// a peeked blackjack ends the round before any player turn, so an early
// surrender against a dealer blackjack can never arise here. The
// early/late distinction survives in the house edge estimate.
func canSurrender(r *Round, h *Hand, rs rules.Rules) bool {
	if rs.Surrender() == rules.SurrenderNone {
		return false
	}
	return r.actionsTaken == 0 && !r.anySplit && r.active == 0 && len(h.Cards) == 2
}

package game

import (
	"github.com/lox/twentyone/internal/rules"
)

// Outcome is the terminal result of one player hand.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomePush
	OutcomeBlackjack
	OutcomeSurrender
	OutcomeBust
)

func (o Outcome) String() string {
	return [...]string{"win", "loss", "push", "blackjack", "surrender", "bust"}[o]
}

// Settlement records one hand's payout. Payout is the total credited
// back to the player's bank, including any returned bet; a losing hand
// settles for zero.
type Settlement struct {
	HandIndex int
	PlayerID  string
	Outcome   Outcome
	Bet       int
	Payout    int
}

// settleHand computes the settlement for a single terminal hand against
// the dealer, in isolation from the other hands at the table. Doubled
// hands carry the doubled bet, so the same arithmetic covers them.
// Totals come from the shared HandValue routine; settlement never
// re-derives them differently from the state machine.
func settleHand(index int, h *Hand, dealer *DealerHand, rs rules.Rules) Settlement {
	s := Settlement{
		HandIndex: index,
		PlayerID:  h.PlayerID,
		Bet:       h.Bet,
	}

	switch {
	case h.Status == HandSurrendered:
		s.Outcome = OutcomeSurrender
		s.Payout = h.Bet / 2
		return s
	case h.Status == HandBusted:
		s.Outcome = OutcomeBust
		return s
	case h.Status == HandBlackjack:
		if dealer.IsBlackjack() {
			s.Outcome = OutcomePush
			s.Payout = h.Bet
			return s
		}
		s.Outcome = OutcomeBlackjack
		s.Payout = h.Bet + rs.BlackjackWinnings(h.Bet)
		return s
	}

	if dealer.IsBlackjack() {
		s.Outcome = OutcomeLoss
		return s
	}

	hv := h.Value().Total
	dv := dealer.Value().Total

	switch {
	case dv > 21:
		s.Outcome = OutcomeWin
		s.Payout = h.Bet * 2
	case hv > dv:
		s.Outcome = OutcomeWin
		s.Payout = h.Bet * 2
	case hv == dv:
		s.Outcome = OutcomePush
		s.Payout = h.Bet
	default:
		s.Outcome = OutcomeLoss
	}
	return s
}

// settleRound settles every player hand. Split-origin hands were
// replaced by their children and carry no bet, so they are skipped.
func settleRound(r *Round, rs rules.Rules) []Settlement {
	var settlements []Settlement
	for i, h := range r.Hands {
		if h.Status == HandSplitOrigin {
			continue
		}
		settlements = append(settlements, settleHand(i, h, r.Dealer, rs))
	}
	return settlements
}

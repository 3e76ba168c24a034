package rules

import (
	"fmt"
	"strings"
)

// Description returns a human-readable listing of every active rule.
// Display only; nothing in the engine keys off this text.
func (r Rules) Description() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d-deck shoe\n", r.deckCount)

	switch r.dealerStand {
	case HitOnSoft17:
		b.WriteString("Dealer hits soft 17\n")
	default:
		b.WriteString("Dealer stands on all 17s\n")
	}

	fmt.Fprintf(&b, "Blackjack pays %d:%d\n", r.payoutNum, r.payoutDen)

	switch r.doubleRestriction {
	case DoubleAny:
		b.WriteString("Double on any two cards\n")
	default:
		fmt.Fprintf(&b, "Double on %s only\n", r.doubleRestriction)
	}

	if r.doubleAfterSplit {
		b.WriteString("Double after split allowed\n")
	} else {
		b.WriteString("No double after split\n")
	}

	switch {
	case r.maxSplits == 0:
		b.WriteString("No splitting\n")
	default:
		fmt.Fprintf(&b, "Split up to %d times\n", r.maxSplits)
		if r.resplitAces {
			b.WriteString("Resplit aces allowed\n")
		} else {
			b.WriteString("No resplitting aces\n")
		}
		if r.hitSplitAces {
			b.WriteString("Hit split aces allowed\n")
		} else {
			b.WriteString("Split aces receive one card each\n")
		}
	}

	switch r.surrender {
	case SurrenderLate:
		b.WriteString("Late surrender\n")
	case SurrenderEarly:
		b.WriteString("Early surrender\n")
	default:
		b.WriteString("No surrender\n")
	}

	return b.String()
}

package rules

// HouseEdge returns a theoretical house edge estimate (as a percentage)
// for flat-bet basic strategy under this rule set. The figure is an
// additive approximation: a multi-deck S17/DAS/3:2 baseline adjusted with
// standard per-rule effects. Good to a few hundredths of a percent, which
// is enough for trainer display and for sanity-checking simulator output.
func (r Rules) HouseEdge() float64 {
	edge := 0.43

	switch r.deckCount {
	case 1:
		edge -= 0.48
	case 2:
		edge -= 0.19
	case 3:
		edge -= 0.10
	case 4:
		edge -= 0.06
	case 5:
		edge -= 0.03
	case 6:
		edge -= 0.02
	}

	if r.dealerStand == HitOnSoft17 {
		edge += 0.22
	}

	// Payout below 3:2 is the single biggest rule hit: 6:5 costs 1.39%,
	// and the cost scales linearly with the shortfall from 3:2.
	ratio := float64(r.payoutNum) / float64(r.payoutDen)
	edge += (1.5 - ratio) / (1.5 - 1.2) * 1.39

	if !r.doubleAfterSplit {
		edge += 0.14
	}

	switch r.doubleRestriction {
	case DoubleNineToEleven:
		edge += 0.09
	case DoubleTenToEleven:
		edge += 0.18
	case DoubleElevenOnly:
		edge += 0.69
	}

	switch r.surrender {
	case SurrenderLate:
		edge -= 0.08
	case SurrenderEarly:
		edge -= 0.63
	}

	if r.resplitAces {
		edge -= 0.08
	}
	if r.hitSplitAces {
		edge -= 0.19
	}
	if r.maxSplits == 0 {
		edge += 0.45
	}

	return edge
}

package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidRule is returned when a rule set is configured with an
// out-of-range value.
var ErrInvalidRule = errors.New("invalid rule")

// DealerStand is the dealer's standing policy on soft 17.
type DealerStand int

const (
	StandOnSoft17 DealerStand = iota
	HitOnSoft17
)

func (d DealerStand) String() string {
	return [...]string{"stand-on-soft-17", "hit-on-soft-17"}[d]
}

// SurrenderPolicy controls when (if ever) surrender is permitted.
type SurrenderPolicy int

const (
	SurrenderNone SurrenderPolicy = iota
	SurrenderLate
	SurrenderEarly
)

func (s SurrenderPolicy) String() string {
	return [...]string{"none", "late", "early"}[s]
}

// DoubleRestriction limits which two-card totals may be doubled.
type DoubleRestriction int

const (
	DoubleAny DoubleRestriction = iota
	DoubleNineToEleven
	DoubleTenToEleven
	DoubleElevenOnly
)

func (d DoubleRestriction) String() string {
	return [...]string{"any", "9-11", "10-11", "11"}[d]
}

// Permits reports whether a hand with the given hard total may double
// under this restriction.
func (d DoubleRestriction) Permits(total int) bool {
	switch d {
	case DoubleAny:
		return true
	case DoubleNineToEleven:
		return total >= 9 && total <= 11
	case DoubleTenToEleven:
		return total >= 10 && total <= 11
	case DoubleElevenOnly:
		return total == 11
	default:
		return false
	}
}

// Rules is an immutable casino rule configuration. Build one with a
// Builder; every field is read-only thereafter.
type Rules struct {
	deckCount         int
	dealerStand       DealerStand
	payoutNum         int
	payoutDen         int
	doubleAfterSplit  bool
	surrender         SurrenderPolicy
	doubleRestriction DoubleRestriction
	resplitAces       bool
	hitSplitAces      bool
	maxSplits         int
}

// DeckCount returns the number of decks in the shoe.
func (r Rules) DeckCount() int { return r.deckCount }

// DealerStand returns the dealer's soft-17 policy.
func (r Rules) DealerStand() DealerStand { return r.dealerStand }

// BlackjackPayout returns the payout ratio as a reduced numerator and
// denominator pair (e.g. 3, 2).
func (r Rules) BlackjackPayout() (num, den int) { return r.payoutNum, r.payoutDen }

// DoubleAfterSplit reports whether doubling is allowed on split hands.
func (r Rules) DoubleAfterSplit() bool { return r.doubleAfterSplit }

// Surrender returns the surrender policy.
func (r Rules) Surrender() SurrenderPolicy { return r.surrender }

// DoubleRestriction returns the permitted doubling totals.
func (r Rules) DoubleRestriction() DoubleRestriction { return r.doubleRestriction }

// ResplitAces reports whether split aces may be split again.
func (r Rules) ResplitAces() bool { return r.resplitAces }

// HitSplitAces reports whether split aces may be hit beyond their single
// dealt card.
func (r Rules) HitSplitAces() bool { return r.hitSplitAces }

// MaxSplits returns the maximum number of splits per original hand.
func (r Rules) MaxSplits() int { return r.maxSplits }

// BlackjackWinnings returns the winnings (excluding the returned bet) for
// a blackjack at the configured ratio, floored to the smallest unit. The
// house keeps any fractional remainder.
func (r Rules) BlackjackWinnings(bet int) int {
	return bet * r.payoutNum / r.payoutDen
}

// Builder accumulates rule settings and validates them at Build. Setters
// return the builder so configuration chains fluently; invalid values are
// collected and surfaced as a single ErrInvalidRule from Build.
type Builder struct {
	rules Rules
	errs  []error
}

// NewBuilder returns a builder primed with conservative defaults:
// six decks, dealer stands on soft 17, 3:2 blackjack, double any two,
// double after split, late surrender, no resplit or hit of split aces,
// three splits.
func NewBuilder() *Builder {
	return &Builder{rules: Rules{
		deckCount:         6,
		dealerStand:       StandOnSoft17,
		payoutNum:         3,
		payoutDen:         2,
		doubleAfterSplit:  true,
		surrender:         SurrenderLate,
		doubleRestriction: DoubleAny,
		maxSplits:         3,
	}}
}

// DeckCount sets the number of decks in the shoe.
func (b *Builder) DeckCount(n int) *Builder {
	if n <= 0 {
		b.errs = append(b.errs, fmt.Errorf("deck count must be positive, got %d", n))
		return b
	}
	b.rules.deckCount = n
	return b
}

// DealerStand sets the dealer's soft-17 policy.
func (b *Builder) DealerStand(d DealerStand) *Builder {
	if d != StandOnSoft17 && d != HitOnSoft17 {
		b.errs = append(b.errs, fmt.Errorf("unknown dealer stand policy %d", d))
		return b
	}
	b.rules.dealerStand = d
	return b
}

// BlackjackPayout sets the blackjack payout ratio. The pair is reduced to
// lowest terms so 6/4 and 3/2 build identical rule sets.
func (b *Builder) BlackjackPayout(num, den int) *Builder {
	if num <= 0 || den <= 0 {
		b.errs = append(b.errs, fmt.Errorf("payout ratio terms must be positive, got %d/%d", num, den))
		return b
	}
	g := gcd(num, den)
	b.rules.payoutNum = num / g
	b.rules.payoutDen = den / g
	return b
}

// DoubleAfterSplit sets whether split hands may double.
func (b *Builder) DoubleAfterSplit(allowed bool) *Builder {
	b.rules.doubleAfterSplit = allowed
	return b
}

// Surrender sets the surrender policy.
func (b *Builder) Surrender(p SurrenderPolicy) *Builder {
	if p < SurrenderNone || p > SurrenderEarly {
		b.errs = append(b.errs, fmt.Errorf("unknown surrender policy %d", p))
		return b
	}
	b.rules.surrender = p
	return b
}

// DoubleRestriction sets which totals may be doubled.
func (b *Builder) DoubleRestriction(d DoubleRestriction) *Builder {
	if d < DoubleAny || d > DoubleElevenOnly {
		b.errs = append(b.errs, fmt.Errorf("unknown double restriction %d", d))
		return b
	}
	b.rules.doubleRestriction = d
	return b
}

// ResplitAces sets whether split aces may be split again.
func (b *Builder) ResplitAces(allowed bool) *Builder {
	b.rules.resplitAces = allowed
	return b
}

// HitSplitAces sets whether split aces may be hit.
func (b *Builder) HitSplitAces(allowed bool) *Builder {
	b.rules.hitSplitAces = allowed
	return b
}

// MaxSplits sets the maximum number of splits per original hand.
func (b *Builder) MaxSplits(n int) *Builder {
	if n < 0 {
		b.errs = append(b.errs, fmt.Errorf("max splits must be >= 0, got %d", n))
		return b
	}
	b.rules.maxSplits = n
	return b
}

// Build validates the accumulated configuration and returns the immutable
// rule set.
func (b *Builder) Build() (Rules, error) {
	if len(b.errs) > 0 {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRule, errors.Join(b.errs...))
	}
	return b.rules, nil
}

// MustBuild is Build for known-good configurations; it panics on error.
func (b *Builder) MustBuild() Rules {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

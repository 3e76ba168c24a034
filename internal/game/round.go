package game

import (
	"github.com/lox/twentyone/internal/deck"
)

// State is the discriminated round state. Transitions are monotonic
// along the declared order, except that insurance is skipped when the
// dealer's up card is not an ace.
type State int

const (
	StateBetting State = iota
	StateDealing
	StateInsurance
	StatePlayerTurn
	StateDealerTurn
	StateSettling
	StateComplete
)

func (s State) String() string {
	return [...]string{"betting", "dealing", "insurance", "player_turn", "dealer_turn", "settling", "complete"}[s]
}

// Round is one unit of play: player hands (one or more per player once
// split), exactly one dealer hand, and the round state. Owned by Game;
// exactly one round is open at a time.
type Round struct {
	Number  int
	State   State
	Hands   []*Hand
	Dealer  *DealerHand
	Results []Settlement

	active       int
	actionsTaken int
	anySplit     bool
	splitsUsed   map[string]int
}

// ActiveHand returns the hand currently awaiting a decision, or nil.
func (r *Round) ActiveHand() *Hand {
	if r.State != StatePlayerTurn || r.active < 0 || r.active >= len(r.Hands) {
		return nil
	}
	return r.Hands[r.active]
}

// ActiveHandIndex returns the index of the hand awaiting a decision, or -1.
func (r *Round) ActiveHandIndex() int {
	if r.ActiveHand() == nil {
		return -1
	}
	return r.active
}

// advanceActive moves the cursor to the next non-terminal hand and
// reports whether one was found.
func (r *Round) advanceActive() bool {
	for i := r.active; i < len(r.Hands); i++ {
		if !r.Hands[i].Status.Terminal() {
			r.active = i
			return true
		}
	}
	r.active = len(r.Hands)
	return false
}

// liveContenders reports whether any player hand stood or doubled without
// busting. When none did, the dealer has nobody left to beat and only
// reveals the hole card for the record.
func (r *Round) liveContenders() bool {
	for _, h := range r.Hands {
		switch h.Status {
		case HandStood:
			return true
		case HandDoubled:
			if h.Value().Total <= 21 {
				return true
			}
		}
	}
	return false
}

// insuranceSettled reports whether every hand offered insurance has made
// a decision.
func (r *Round) insuranceSettled() bool {
	for _, h := range r.Hands {
		if h.InsuranceOffered && !h.InsuranceDecided {
			return false
		}
	}
	return true
}

// HandSnapshot is a copy of one hand for external consumers.
type HandSnapshot struct {
	PlayerID      string
	Cards         []deck.Card
	Bet           int
	Status        HandStatus
	Value         Value
	FromSplit     bool
	Insurance     bool
	InsuranceBet  int
	InsuranceOpen bool // offered but undecided
}

// DealerSnapshot is a copy of the dealer hand. While the hole card is
// concealed only the up card is included.
type DealerSnapshot struct {
	Cards        []deck.Card
	HoleRevealed bool
	Value        Value // zero Value until the hole card is revealed
}

// RoundSnapshot is a deep copy of the observable round state. Callers
// can never mutate engine-owned structures through it.
type RoundSnapshot struct {
	Number     int
	State      State
	Hands      []HandSnapshot
	Dealer     DealerSnapshot
	ActiveHand int // -1 outside player_turn
	Results    []Settlement
}

// Snapshot builds a deep copy of the round for the query surface.
func (r *Round) Snapshot() RoundSnapshot {
	snap := RoundSnapshot{
		Number:     r.Number,
		State:      r.State,
		ActiveHand: r.ActiveHandIndex(),
	}

	for _, h := range r.Hands {
		cards := make([]deck.Card, len(h.Cards))
		copy(cards, h.Cards)
		snap.Hands = append(snap.Hands, HandSnapshot{
			PlayerID:      h.PlayerID,
			Cards:         cards,
			Bet:           h.Bet,
			Status:        h.Status,
			Value:         h.Value(),
			FromSplit:     h.FromSplit,
			Insurance:     h.InsuranceTaken,
			InsuranceBet:  h.InsuranceBet,
			InsuranceOpen: h.InsuranceOffered && !h.InsuranceDecided,
		})
	}

	if r.Dealer != nil {
		if r.Dealer.HoleRevealed {
			cards := make([]deck.Card, len(r.Dealer.Cards))
			copy(cards, r.Dealer.Cards)
			snap.Dealer = DealerSnapshot{Cards: cards, HoleRevealed: true, Value: r.Dealer.Value()}
		} else {
			snap.Dealer = DealerSnapshot{Cards: []deck.Card{r.Dealer.UpCard()}}
		}
	}

	snap.Results = append(snap.Results, r.Results...)
	return snap
}

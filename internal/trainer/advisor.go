package trainer

import (
	"math"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/rules"
)

// trueCountTolerance is how far a true count guess may drift from the
// actual value and still be graded correct. Running count guesses must
// be exact.
const trueCountTolerance = 0.5

// Feedback grades one player decision against basic strategy.
type Feedback struct {
	Taken   Move
	Optimal Move
	Correct bool
}

// CountFeedback grades a counting-practice guess.
type CountFeedback struct {
	GuessedRunning int
	ActualRunning  int
	GuessedTrue    float64
	ActualTrue     float64
	RunningCorrect bool
	TrueCorrect    bool
}

// Advisor compares player actions to the rule-set-correct basic strategy
// and tracks running accuracy, including counting-practice guesses.
type Advisor struct {
	strategy *Strategy

	decisions int
	correct   int

	countGuesses int
	countCorrect int
}

// NewAdvisor creates an advisor for a rule set.
func NewAdvisor(rs rules.Rules) *Advisor {
	return &Advisor{strategy: NewStrategy(rs)}
}

// Grade compares a taken move to the strategy recommendation for the
// same situation and records the result.
func (a *Advisor) Grade(cards []deck.Card, up deck.Card, avail Availability, taken Move) Feedback {
	optimal := a.strategy.Recommend(cards, up, avail)
	fb := Feedback{
		Taken:   taken,
		Optimal: optimal,
		Correct: taken == optimal,
	}
	a.decisions++
	if fb.Correct {
		a.correct++
	}
	return fb
}

// GradeCount compares a player's running/true count guesses against the
// counter's actual values and records the result. A guess is correct
// when the running count matches exactly and the true count is within
// tolerance.
func (a *Advisor) GradeCount(guessedRunning int, guessedTrue float64, actualRunning int, actualTrue float64) CountFeedback {
	fb := CountFeedback{
		GuessedRunning: guessedRunning,
		ActualRunning:  actualRunning,
		GuessedTrue:    guessedTrue,
		ActualTrue:     actualTrue,
		RunningCorrect: guessedRunning == actualRunning,
		TrueCorrect:    math.Abs(guessedTrue-actualTrue) <= trueCountTolerance,
	}
	a.countGuesses++
	if fb.RunningCorrect && fb.TrueCorrect {
		a.countCorrect++
	}
	return fb
}

// Decisions returns how many actions have been graded.
func (a *Advisor) Decisions() int {
	return a.decisions
}

// Accuracy returns the fraction of graded actions that matched basic
// strategy, or zero before any decision.
func (a *Advisor) Accuracy() float64 {
	if a.decisions == 0 {
		return 0
	}
	return float64(a.correct) / float64(a.decisions)
}

// CountGuesses returns how many count guesses have been graded.
func (a *Advisor) CountGuesses() int {
	return a.countGuesses
}

// CountAccuracy returns the fraction of fully-correct count guesses, or
// zero before any guess.
func (a *Advisor) CountAccuracy() float64 {
	if a.countGuesses == 0 {
		return 0
	}
	return float64(a.countCorrect) / float64(a.countGuesses)
}

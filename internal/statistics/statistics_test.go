package statistics

import (
	"math"
	"testing"
)

func TestAddHandTallies(t *testing.T) {
	s := &Session{}
	s.AddHand("win", 10, 20)
	s.AddHand("loss", 10, 0)
	s.AddHand("push", 10, 10)
	s.AddHand("blackjack", 10, 25)
	s.AddHand("surrender", 10, 5)
	s.AddHand("bust", 10, 0)

	if s.HandsPlayed != 6 {
		t.Errorf("hands = %d, want 6", s.HandsPlayed)
	}
	if s.Wins != 2 {
		t.Errorf("wins = %d, want 2 (blackjack counts as a win)", s.Wins)
	}
	if s.Losses != 2 {
		t.Errorf("losses = %d, want 2 (bust counts as a loss)", s.Losses)
	}
	if s.TotalWagered != 60 {
		t.Errorf("wagered = %d, want 60", s.TotalWagered)
	}
	if s.Net != 0 {
		t.Errorf("net = %d, want 0", s.Net)
	}
}

func TestMeanAndVariance(t *testing.T) {
	s := &Session{}
	for _, net := range []int{10, -10, 10, -10} {
		s.AddRound(net)
	}

	if s.Mean() != 0 {
		t.Errorf("mean = %v, want 0", s.Mean())
	}
	// Sample variance of {10,-10,10,-10} is 400/3.
	want := 400.0 / 3
	if math.Abs(s.Variance()-want) > 1e-9 {
		t.Errorf("variance = %v, want %v", s.Variance(), want)
	}
	if s.StdDev() <= 0 {
		t.Errorf("stddev = %v, want positive", s.StdDev())
	}

	low, high := s.ConfidenceInterval95()
	if low >= high {
		t.Errorf("interval [%v, %v] is empty", low, high)
	}
	if low > 0 || high < 0 {
		t.Errorf("interval [%v, %v] should contain the mean", low, high)
	}
}

func TestZeroValueSessionIsSafe(t *testing.T) {
	s := &Session{}
	if s.Mean() != 0 || s.Variance() != 0 || s.StdError() != 0 || s.Accuracy() != 0 {
		t.Error("zero-value session should report zeros, not NaN")
	}
}

func TestMergeCombinesShards(t *testing.T) {
	a := &Session{}
	a.AddRound(10)
	a.AddHand("win", 10, 20)
	a.AddDecision(true)

	b := &Session{}
	b.AddRound(-10)
	b.AddHand("loss", 10, 0)
	b.AddDecision(false)
	b.AddCountGuess(true)

	a.Merge(b)

	if a.RoundsPlayed != 2 || a.HandsPlayed != 2 {
		t.Errorf("merged counts wrong: %+v", a.Snapshot())
	}
	if a.Mean() != 0 {
		t.Errorf("merged mean = %v, want 0", a.Mean())
	}
	if a.DecisionsTotal != 2 || a.DecisionsCorrect != 1 {
		t.Errorf("merged decisions wrong: %d/%d", a.DecisionsCorrect, a.DecisionsTotal)
	}
	if a.CountGuesses != 1 || a.CountCorrect != 1 {
		t.Errorf("merged count guesses wrong")
	}

	// Variance over the merged rounds matches computing it directly.
	direct := &Session{}
	direct.AddRound(10)
	direct.AddRound(-10)
	if math.Abs(a.Variance()-direct.Variance()) > 1e-9 {
		t.Errorf("merged variance = %v, direct = %v", a.Variance(), direct.Variance())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := &Session{}
	s.AddHand("win", 10, 20)
	snap := s.Snapshot()
	snap.Wins = 99
	if s.Wins != 1 {
		t.Errorf("snapshot mutation leaked into session")
	}
}

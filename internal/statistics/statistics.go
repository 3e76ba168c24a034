package statistics

import "math"

// Session tracks the outcomes of one trainer session: hand results,
// money flow and decision accuracy. The per-round net sums feed the
// standard-error math used by the simulator to put confidence intervals
// on observed edges.
type Session struct {
	RoundsPlayed int
	HandsPlayed  int

	Wins         int
	Losses       int
	Pushes       int
	Blackjacks   int
	Surrenders   int
	Busts        int
	TotalWagered int
	Net          int

	sum  float64 // per-round net
	sum2 float64

	DecisionsTotal   int
	DecisionsCorrect int
	CountGuesses     int
	CountCorrect     int
}

// AddHand records one settled hand by outcome name and its wagered and
// returned amounts.
func (s *Session) AddHand(outcome string, wagered, returned int) {
	s.HandsPlayed++
	s.TotalWagered += wagered
	s.Net += returned - wagered
	switch outcome {
	case "win":
		s.Wins++
	case "loss":
		s.Losses++
	case "push":
		s.Pushes++
	case "blackjack":
		s.Blackjacks++
		s.Wins++
	case "surrender":
		s.Surrenders++
	case "bust":
		s.Busts++
		s.Losses++
	}
}

// AddRound records the net result of one completed round.
func (s *Session) AddRound(net int) {
	s.RoundsPlayed++
	n := float64(net)
	s.sum += n
	s.sum2 += n * n
}

// AddDecision records one graded strategy decision.
func (s *Session) AddDecision(correct bool) {
	s.DecisionsTotal++
	if correct {
		s.DecisionsCorrect++
	}
}

// AddCountGuess records one graded counting-practice guess.
func (s *Session) AddCountGuess(correct bool) {
	s.CountGuesses++
	if correct {
		s.CountCorrect++
	}
}

// Accuracy returns the fraction of decisions matching basic strategy.
func (s *Session) Accuracy() float64 {
	if s.DecisionsTotal == 0 {
		return 0
	}
	return float64(s.DecisionsCorrect) / float64(s.DecisionsTotal)
}

// Mean returns the mean net result per round.
func (s *Session) Mean() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return s.sum / float64(s.RoundsPlayed)
}

// Variance returns the sample variance of per-round net results.
func (s *Session) Variance() float64 {
	if s.RoundsPlayed < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(s.RoundsPlayed)*mean*mean) / float64(s.RoundsPlayed-1)
}

// StdDev returns the sample standard deviation of per-round net results.
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Session) StdError() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.RoundsPlayed))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// net result per round.
func (s *Session) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Merge folds another session's tallies into this one, used by the
// simulator to combine shard results.
func (s *Session) Merge(other *Session) {
	s.RoundsPlayed += other.RoundsPlayed
	s.HandsPlayed += other.HandsPlayed
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Surrenders += other.Surrenders
	s.Busts += other.Busts
	s.TotalWagered += other.TotalWagered
	s.Net += other.Net
	s.sum += other.sum
	s.sum2 += other.sum2
	s.DecisionsTotal += other.DecisionsTotal
	s.DecisionsCorrect += other.DecisionsCorrect
	s.CountGuesses += other.CountGuesses
	s.CountCorrect += other.CountCorrect
}

// Snapshot is a copy of the session tallies for the query surface.
type Snapshot struct {
	RoundsPlayed     int
	HandsPlayed      int
	Wins             int
	Losses           int
	Pushes           int
	Blackjacks       int
	Surrenders       int
	Busts            int
	TotalWagered     int
	Net              int
	DecisionsTotal   int
	DecisionsCorrect int
	Accuracy         float64
	CountGuesses     int
	CountCorrect     int
}

// Snapshot returns a copy of the current tallies.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		RoundsPlayed:     s.RoundsPlayed,
		HandsPlayed:      s.HandsPlayed,
		Wins:             s.Wins,
		Losses:           s.Losses,
		Pushes:           s.Pushes,
		Blackjacks:       s.Blackjacks,
		Surrenders:       s.Surrenders,
		Busts:            s.Busts,
		TotalWagered:     s.TotalWagered,
		Net:              s.Net,
		DecisionsTotal:   s.DecisionsTotal,
		DecisionsCorrect: s.DecisionsCorrect,
		Accuracy:         s.Accuracy(),
		CountGuesses:     s.CountGuesses,
		CountCorrect:     s.CountCorrect,
	}
}

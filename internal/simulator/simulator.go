package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/rules"
	"github.com/lox/twentyone/internal/statistics"
	"github.com/lox/twentyone/internal/trainer"
)

// Config holds configuration for a Monte Carlo run.
type Config struct {
	Rules   rules.Rules
	Rounds  int
	Bet     int
	Seed    int64
	Workers int // defaults to GOMAXPROCS
	Logger  *log.Logger
}

// Simulator plays flat-bet basic strategy against a rule set to measure
// its house edge empirically. Work is sharded across workers, each with
// an independent deterministic seed, so runs reproduce exactly for a
// given seed and worker count.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Bet <= 0 {
		config.Bet = 10
	}
	return &Simulator{config: config}
}

// Report summarizes a simulation run.
type Report struct {
	Stats statistics.Snapshot

	// EdgePercent is the observed house edge as a percentage of the
	// initial bet per round; positive favors the house.
	EdgePercent float64

	// EdgeLow and EdgeHigh bound the observed edge at 95% confidence.
	EdgeLow  float64
	EdgeHigh float64

	// AnalyticPercent is the closed-form estimate for the same rules.
	AnalyticPercent float64
}

// String renders the report for terminal display.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds played:    %d\n", r.Stats.RoundsPlayed)
	fmt.Fprintf(&b, "Hands played:     %d\n", r.Stats.HandsPlayed)
	fmt.Fprintf(&b, "Win/Loss/Push:    %d/%d/%d\n", r.Stats.Wins, r.Stats.Losses, r.Stats.Pushes)
	fmt.Fprintf(&b, "Blackjacks:       %d\n", r.Stats.Blackjacks)
	fmt.Fprintf(&b, "Total wagered:    %d\n", r.Stats.TotalWagered)
	fmt.Fprintf(&b, "Net result:       %d\n", r.Stats.Net)
	fmt.Fprintf(&b, "Observed edge:    %.3f%% (95%% CI %.3f%% to %.3f%%)\n", r.EdgePercent, r.EdgeLow, r.EdgeHigh)
	fmt.Fprintf(&b, "Analytic edge:    %.3f%%\n", r.AnalyticPercent)
	return b.String()
}

// Run executes the simulation. The context cancels in-flight shards.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	cfg := s.config
	perWorker := cfg.Rounds / cfg.Workers
	remainder := cfg.Rounds % cfg.Workers

	var mu sync.Mutex
	combined := &statistics.Session{}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		if rounds == 0 {
			continue
		}
		seed := cfg.Seed + int64(w)
		g.Go(func() error {
			shard, err := s.playShard(ctx, seed, rounds)
			if err != nil {
				return err
			}
			mu.Lock()
			combined.Merge(shard)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	bet := float64(cfg.Bet)
	low, high := combined.ConfidenceInterval95()
	report := Report{
		Stats:           combined.Snapshot(),
		EdgePercent:     -combined.Mean() / bet * 100,
		EdgeLow:         -high / bet * 100,
		EdgeHigh:        -low / bet * 100,
		AnalyticPercent: cfg.Rules.HouseEdge(),
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("simulation complete",
			"rounds", report.Stats.RoundsPlayed,
			"edge", fmt.Sprintf("%.3f%%", report.EdgePercent))
	}
	return report, nil
}

// playShard runs one worker's share of rounds on its own engine and
// tallies results into a session the caller can merge.
func (s *Simulator) playShard(ctx context.Context, seed int64, rounds int) (*statistics.Session, error) {
	cfg := s.config
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Bank sized so double and split can never be blocked by funds.
	bank := cfg.Bet * rounds * 8
	eng, err := game.New(cfg.Rules, logger, game.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("shard engine: %w", err)
	}
	if err := eng.AddPlayer("sim", "Simulator", bank); err != nil {
		return nil, err
	}

	strategy := trainer.NewStrategy(cfg.Rules)
	session := &statistics.Session{}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before, _ := eng.PlayerBank("sim")
		settlements, err := s.playRound(eng, strategy)
		if err != nil {
			return nil, fmt.Errorf("round %d (seed %d): %w", i+1, seed, err)
		}
		after, _ := eng.PlayerBank("sim")

		for _, st := range settlements {
			session.AddHand(st.Outcome.String(), st.Bet, st.Payout)
		}
		session.AddRound(after - before)
	}
	return session, nil
}

// playRound drives one flat-bet round to completion with basic strategy.
// Insurance is always declined; it is a losing side bet off the top.
func (s *Simulator) playRound(eng *game.Game, strategy *trainer.Strategy) ([]game.Settlement, error) {
	if err := eng.StartRound([]game.Bet{{PlayerID: "sim", Amount: s.config.Bet}}); err != nil {
		return nil, err
	}

	if eng.State() == game.StateInsurance {
		snap, _ := eng.CurrentRound()
		for i := range snap.Hands {
			if snap.Hands[i].InsuranceOpen {
				if err := eng.DeclineInsurance(i); err != nil {
					return nil, err
				}
			}
		}
		if err := eng.ResolveInsurance(); err != nil {
			return nil, err
		}
	}

	for eng.State() == game.StatePlayerTurn {
		legal := eng.AvailableActions()
		snap, ok := eng.CurrentRound()
		if !ok || snap.ActiveHand < 0 {
			return nil, fmt.Errorf("player turn without an active hand")
		}
		hand := snap.Hands[snap.ActiveHand]

		avail := trainer.Availability{
			Double:    containsAction(legal, game.Double),
			Split:     containsAction(legal, game.Split),
			Surrender: containsAction(legal, game.Surrender),
		}
		move := strategy.Recommend(hand.Cards, snap.Dealer.Cards[0], avail)
		if _, err := eng.PlayAction(actionFor(move)); err != nil {
			return nil, err
		}
	}

	if eng.State() != game.StateSettling {
		return nil, fmt.Errorf("expected settling, got %s", eng.State())
	}
	return eng.CompleteRound()
}

func containsAction(actions []game.Action, a game.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func actionFor(m trainer.Move) game.Action {
	switch m {
	case trainer.MoveHit:
		return game.Hit
	case trainer.MoveStand:
		return game.Stand
	case trainer.MoveDouble:
		return game.Double
	case trainer.MoveSplit:
		return game.Split
	default:
		return game.Surrender
	}
}

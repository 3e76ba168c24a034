package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/simulator"
)

type SimulateCmd struct {
	Preset    string `default:"vegas-strip" help:"Rule preset to simulate"`
	RulesFile string `help:"HCL file with additional rule presets" type:"path"`
	Rounds    int    `default:"100000" help:"Number of rounds to play"`
	Bet       int    `default:"10" help:"Flat bet per round"`
	Seed      int64  `default:"1" help:"Base RNG seed, one derived seed per worker"`
	Workers   int    `help:"Worker goroutines (default: number of CPUs)"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	rs, err := resolveRules(c.Preset, c.RulesFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rules:   rs,
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Seed:    c.Seed,
		Workers: c.Workers,
		Logger:  logger,
	})

	logger.Info("simulating", "preset", c.Preset, "rounds", c.Rounds)
	start := time.Now()
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Printf("\nPreset: %s\n\n%s", c.Preset, report)
	return nil
}

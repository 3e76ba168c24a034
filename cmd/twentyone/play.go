package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/tui"
)

type PlayCmd struct {
	Preset    string `default:"vegas-strip" help:"Rule preset to play under"`
	RulesFile string `help:"HCL file with additional rule presets" type:"path"`
	Bank      int    `default:"1000" help:"Starting bank in chips"`
	Name      string `default:"Player" help:"Player display name"`
	Seed      int64  `help:"RNG seed for a reproducible shoe (0 for random)"`
	AuditJSON string `help:"Write the session audit trail to a JSON file on exit" type:"path"`
	AuditCSV  string `help:"Write the session audit trail to a CSV file on exit" type:"path"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	rs, err := resolveRules(c.Preset, c.RulesFile)
	if err != nil {
		return err
	}

	var opts []game.GameOption
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	eng, err := game.New(rs, logger, opts...)
	if err != nil {
		return err
	}
	if err := eng.AddPlayer("player", c.Name, c.Bank); err != nil {
		return err
	}

	model := tui.New(eng, "player", logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}

	if c.AuditJSON != "" {
		data, err := eng.AuditJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.AuditJSON, data, 0o644); err != nil {
			return err
		}
		logger.Info("audit written", "file", c.AuditJSON)
	}
	if c.AuditCSV != "" {
		data, err := eng.AuditCSV()
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.AuditCSV, data, 0o644); err != nil {
			return err
		}
		logger.Info("audit written", "file", c.AuditCSV)
	}

	summary := eng.AuditSummary()
	fmt.Printf("Session %s: %d rounds, net %+d\n", eng.SessionID(), summary.Rounds, summary.Net)
	return nil
}

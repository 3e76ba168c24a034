package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/rules"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Verbose  bool             `help:"Enable debug logging"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive training session"`
	Simulate SimulateCmd      `cmd:"" help:"Measure a rule set's house edge by simulation"`
	Rules    RulesCmd         `cmd:"" help:"Show a rule preset and its house edge"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("twentyone"),
		kong.Description("Blackjack trainer with card counting and basic strategy coaching"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// resolveRules loads the named preset, merging a preset file over the
// builtins when one is given.
func resolveRules(preset, rulesFile string) (rules.Rules, error) {
	presets := rules.BuiltinPresets()
	if rulesFile != "" {
		var err error
		presets, err = rules.LoadPresets(rulesFile)
		if err != nil {
			return rules.Rules{}, err
		}
	}
	rs, ok := presets[preset]
	if !ok {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		return rules.Rules{}, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(names, ", "))
	}
	return rs, nil
}

package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/rules"
)

type RulesCmd struct {
	Preset    string `arg:"" optional:"" help:"Preset to describe (omit to list all)"`
	RulesFile string `help:"HCL file with additional rule presets" type:"path"`
}

func (c *RulesCmd) Run(logger *log.Logger) error {
	if c.Preset == "" {
		return c.listAll()
	}

	rs, err := resolveRules(c.Preset, c.RulesFile)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n%s\nEstimated house edge: %.2f%%\n", c.Preset, rs.Description(), rs.HouseEdge())
	return nil
}

func (c *RulesCmd) listAll() error {
	presets := rules.BuiltinPresets()
	if c.RulesFile != "" {
		var err error
		presets, err = rules.LoadPresets(c.RulesFile)
		if err != nil {
			return err
		}
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-18s house edge %.2f%%\n", name, presets[name].HouseEdge())
	}
	return nil
}

package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// PresetFile is the on-disk HCL schema for named rule presets:
//
//	rules "vegas-strip" {
//	  deck_count       = 6
//	  hit_soft_17      = false
//	  blackjack_payout = "3:2"
//	  ...
//	}
type PresetFile struct {
	Presets []Preset `hcl:"rules,block"`
}

// Preset is one named rule configuration in a preset file. Zero values
// mean "builder default", so a preset only needs to name the rules it
// changes.
type Preset struct {
	Name             string `hcl:"name,label"`
	DeckCount        int    `hcl:"deck_count,optional"`
	HitSoft17        bool   `hcl:"hit_soft_17,optional"`
	BlackjackPayout  string `hcl:"blackjack_payout,optional"`
	DoubleAfterSplit *bool  `hcl:"double_after_split,optional"`
	Surrender        string `hcl:"surrender,optional"`
	DoubleOn         string `hcl:"double_on,optional"`
	ResplitAces      bool   `hcl:"resplit_aces,optional"`
	HitSplitAces     bool   `hcl:"hit_split_aces,optional"`
	MaxSplits        *int   `hcl:"max_splits,optional"`
}

// BuiltinPresets returns the presets shipped with the trainer.
func BuiltinPresets() map[string]Rules {
	return map[string]Rules{
		"vegas-strip": NewBuilder().MustBuild(),
		"downtown-single": NewBuilder().
			DeckCount(1).
			DealerStand(HitOnSoft17).
			DoubleAfterSplit(false).
			Surrender(SurrenderNone).
			MustBuild(),
		"six-five": NewBuilder().
			BlackjackPayout(6, 5).
			DealerStand(HitOnSoft17).
			Surrender(SurrenderNone).
			MustBuild(),
	}
}

// LoadPresets reads named rule presets from an HCL file and merges them
// over the builtins. A missing file returns just the builtins.
func LoadPresets(filename string) (map[string]Rules, error) {
	presets := BuiltinPresets()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return presets, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config PresetFile
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for _, p := range config.Presets {
		built, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		presets[p.Name] = built
	}

	return presets, nil
}

// Build converts a decoded preset into a validated rule set.
func (p Preset) Build() (Rules, error) {
	b := NewBuilder()

	if p.DeckCount != 0 {
		b.DeckCount(p.DeckCount)
	}
	if p.HitSoft17 {
		b.DealerStand(HitOnSoft17)
	}
	if p.BlackjackPayout != "" {
		var num, den int
		if _, err := fmt.Sscanf(p.BlackjackPayout, "%d:%d", &num, &den); err != nil {
			return Rules{}, fmt.Errorf("%w: blackjack_payout %q is not of the form N:M", ErrInvalidRule, p.BlackjackPayout)
		}
		b.BlackjackPayout(num, den)
	}
	if p.DoubleAfterSplit != nil {
		b.DoubleAfterSplit(*p.DoubleAfterSplit)
	}
	switch p.Surrender {
	case "":
	case "none":
		b.Surrender(SurrenderNone)
	case "late":
		b.Surrender(SurrenderLate)
	case "early":
		b.Surrender(SurrenderEarly)
	default:
		return Rules{}, fmt.Errorf("%w: unknown surrender policy %q", ErrInvalidRule, p.Surrender)
	}
	switch p.DoubleOn {
	case "":
	case "any":
		b.DoubleRestriction(DoubleAny)
	case "9-11":
		b.DoubleRestriction(DoubleNineToEleven)
	case "10-11":
		b.DoubleRestriction(DoubleTenToEleven)
	case "11":
		b.DoubleRestriction(DoubleElevenOnly)
	default:
		return Rules{}, fmt.Errorf("%w: unknown double_on value %q", ErrInvalidRule, p.DoubleOn)
	}
	if p.ResplitAces {
		b.ResplitAces(true)
	}
	if p.HitSplitAces {
		b.HitSplitAces(true)
	}
	if p.MaxSplits != nil {
		b.MaxSplits(*p.MaxSplits)
	}

	return b.Build()
}

package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinPresets(t *testing.T) {
	t.Parallel()
	presets := BuiltinPresets()
	require.Contains(t, presets, "vegas-strip")
	require.Contains(t, presets, "downtown-single")
	require.Contains(t, presets, "six-five")

	single := presets["downtown-single"]
	require.Equal(t, 1, single.DeckCount())
	require.Equal(t, HitOnSoft17, single.DealerStand())

	num, den := presets["six-five"].BlackjackPayout()
	require.Equal(t, 6, num)
	require.Equal(t, 5, den)
}

func TestLoadPresetsMissingFile(t *testing.T) {
	t.Parallel()
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.Contains(t, presets, "vegas-strip")
}

func TestLoadPresetsFromFile(t *testing.T) {
	t.Parallel()
	content := `
rules "pitch-game" {
  deck_count       = 2
  hit_soft_17      = true
  blackjack_payout = "3:2"
  surrender        = "none"
  double_on        = "10-11"
  max_splits       = 1
}
`
	path := filepath.Join(t.TempDir(), "rules.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Contains(t, presets, "pitch-game")

	r := presets["pitch-game"]
	require.Equal(t, 2, r.DeckCount())
	require.Equal(t, HitOnSoft17, r.DealerStand())
	require.Equal(t, DoubleTenToEleven, r.DoubleRestriction())
	require.Equal(t, 1, r.MaxSplits())
}

func TestLoadPresetsRejectsBadValues(t *testing.T) {
	t.Parallel()
	content := `
rules "broken" {
  blackjack_payout = "three to two"
}
`
	path := filepath.Join(t.TempDir(), "rules.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadPresets(path)
	require.ErrorIs(t, err, ErrInvalidRule)
}

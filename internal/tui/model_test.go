package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/rules"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, stack []deck.Card) *Model {
	t.Helper()
	logger := log.New(io.Discard)
	eng, err := game.New(rules.NewBuilder().MustBuild(), logger, game.WithShoeStack(stack))
	require.NoError(t, err)
	require.NoError(t, eng.AddPlayer("p1", "Player", 100))
	return New(eng, "p1", logger)
}

func TestBetSubmissionStartsRound(t *testing.T) {
	m := newTestModel(t, []deck.Card{
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Diamonds, deck.Nine),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Five),
	})

	m.betInput.SetValue("10")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.StatePlayerTurn, m.engine.State())
	view := m.View()
	assert.Contains(t, view, "Dealer:")
	assert.Contains(t, view, "[h]hit")
	assert.Contains(t, view, "[s]stand")
}

func TestInvalidBetShowsError(t *testing.T) {
	m := newTestModel(t, nil)

	m.betInput.SetValue("not a number")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "enter a whole number")

	m.betInput.SetValue("500")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "insufficient funds")
}

func TestActionKeyShowsFeedback(t *testing.T) {
	m := newTestModel(t, []deck.Card{
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Diamonds, deck.Six),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Ten),
	})

	m.betInput.SetValue("10")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Standing 19 against a 6 is correct basic strategy.
	_, _ = m.Update(key("s"))
	assert.Contains(t, m.View(), "stand is correct")
	assert.Equal(t, game.StateSettling, m.engine.State())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.StateComplete, m.engine.State())
}

func TestCountToggle(t *testing.T) {
	m := newTestModel(t, []deck.Card{
		deck.NewCard(deck.Spades, deck.Five),
		deck.NewCard(deck.Diamonds, deck.Nine),
		deck.NewCard(deck.Hearts, deck.Six),
		deck.NewCard(deck.Clubs, deck.King),
	})

	m.betInput.SetValue("10")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotContains(t, m.View(), "count +")
	_, _ = m.Update(key("c"))
	assert.Contains(t, m.View(), "count +2")
}

func TestQuitRendersSummary(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "session summary")
}

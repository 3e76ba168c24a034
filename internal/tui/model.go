package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

// inputMode tracks what the text input is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputBet
	inputCountGuess
)

// Model is the Bubble Tea model for an interactive training session.
// It drives the engine directly: every key maps to one engine command
// and the view re-renders from engine queries, so the model itself
// holds no game state beyond transient display strings.
type Model struct {
	engine   *game.Game
	playerID string
	logger   *log.Logger

	betInput textinput.Model
	mode     inputMode

	lastBet   int
	showCount bool
	feedback  string
	errLine   string
	quitting  bool

	width  int
	height int
}

// New creates a TUI model for a session with a single registered player.
func New(engine *game.Game, playerID string, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.CharLimit = 10
	ti.Width = 20
	ti.Prompt = "> "
	ti.Focus()

	return &Model{
		engine:   engine,
		playerID: playerID,
		logger:   logger.WithPrefix("tui"),
		betInput: ti,
		mode:     inputBet,
		lastBet:  10,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode != inputNone {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.mode != inputNone {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitInput()
		case tea.KeyEsc:
			if m.mode == inputCountGuess {
				m.mode = inputNone
				m.betInput.Blur()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.betInput, cmd = m.betInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "c":
		m.showCount = !m.showCount
		return m, nil
	case "g":
		m.openCountGuess()
		return m, nil
	}

	switch m.engine.State() {
	case game.StateInsurance:
		return m.handleInsuranceKey(msg.String())
	case game.StatePlayerTurn:
		return m.handleActionKey(msg.String())
	case game.StateSettling:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			m.settle()
		}
		return m, nil
	case game.StateComplete, game.StateBetting:
		if msg.Type == tea.KeyEnter {
			m.openBetInput()
			return m, textinput.Blink
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.engine.State() == game.StateBetting || m.engine.State() == game.StateComplete {
		if err := m.engine.EndSession(); err != nil {
			m.logger.Debug("end session", "err", err)
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) openBetInput() {
	m.mode = inputBet
	m.betInput.Placeholder = "bet amount"
	m.betInput.SetValue(strconv.Itoa(m.lastBet))
	m.betInput.Focus()
	m.errLine = ""
	m.feedback = ""
}

func (m *Model) openCountGuess() {
	m.mode = inputCountGuess
	m.betInput.Placeholder = "running,true (e.g. 3,1.5)"
	m.betInput.SetValue("")
	m.betInput.Focus()
}

func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.betInput.Value())
	switch m.mode {
	case inputBet:
		bet, err := strconv.Atoi(value)
		if err != nil {
			m.errLine = "enter a whole number"
			return m, nil
		}
		if err := m.engine.StartRound([]game.Bet{{PlayerID: m.playerID, Amount: bet}}); err != nil {
			m.errLine = err.Error()
			return m, nil
		}
		m.lastBet = bet
		m.mode = inputNone
		m.betInput.Blur()
		m.errLine = ""
		return m, nil

	case inputCountGuess:
		parts := strings.SplitN(value, ",", 2)
		if len(parts) != 2 {
			m.errLine = "format: running,true"
			return m, nil
		}
		running, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		trueCount, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err1 != nil || err2 != nil {
			m.errLine = "format: running,true"
			return m, nil
		}
		fb := m.engine.GradeCountGuess(running, trueCount)
		if fb.RunningCorrect && fb.TrueCorrect {
			m.feedback = successStyle.Render("count correct")
		} else {
			m.feedback = errorStyle.Render(fmt.Sprintf(
				"count was %d running, %.1f true", fb.ActualRunning, fb.ActualTrue))
		}
		m.mode = inputNone
		m.betInput.Blur()
		m.errLine = ""
		return m, nil
	}
	return m, nil
}

func (m *Model) handleInsuranceKey(key string) (tea.Model, tea.Cmd) {
	snap, ok := m.engine.CurrentRound()
	if !ok {
		return m, nil
	}
	target := -1
	for i, h := range snap.Hands {
		if h.InsuranceOpen {
			target = i
			break
		}
	}
	if target < 0 {
		return m, nil
	}

	var err error
	switch key {
	case "y":
		err = m.engine.TakeInsurance(target)
	case "n":
		err = m.engine.DeclineInsurance(target)
	default:
		return m, nil
	}
	if err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	m.errLine = ""

	// Resolve once the last offer is decided.
	snap, _ = m.engine.CurrentRound()
	for _, h := range snap.Hands {
		if h.InsuranceOpen {
			return m, nil
		}
	}
	if err := m.engine.ResolveInsurance(); err != nil {
		m.errLine = err.Error()
	}
	return m, nil
}

var actionKeys = map[string]game.Action{
	"h": game.Hit,
	"s": game.Stand,
	"d": game.Double,
	"p": game.Split,
	"r": game.Surrender,
}

func (m *Model) handleActionKey(key string) (tea.Model, tea.Cmd) {
	action, ok := actionKeys[key]
	if !ok {
		return m, nil
	}
	fb, err := m.engine.PlayAction(action)
	if err != nil {
		m.errLine = err.Error()
		return m, nil
	}
	m.errLine = ""
	if fb.Correct {
		m.feedback = successStyle.Render(fmt.Sprintf("%s is correct", fb.Taken))
	} else {
		m.feedback = errorStyle.Render(fmt.Sprintf("%s taken, basic strategy says %s", fb.Taken, fb.Optimal))
	}
	return m, nil
}

func (m *Model) settle() {
	if _, err := m.engine.CompleteRound(); err != nil {
		m.errLine = err.Error()
		return
	}
	m.errLine = ""
	m.openBetInput()
}

// View renders the table.
func (m *Model) View() string {
	if m.quitting {
		return m.summaryView()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("twentyone") + "  " + infoStyle.Render("session "+m.engine.SessionID()))
	b.WriteString("\n\n")

	bank, err := m.engine.PlayerBank(m.playerID)
	if err == nil {
		b.WriteString(labelStyle.Render("Bank: ") + strconv.Itoa(bank))
	}
	shoe := m.engine.ShoeDetails()
	b.WriteString(infoStyle.Render(fmt.Sprintf("   shoe %d/%d", shoe.Remaining, shoe.TotalCards)))
	if m.showCount {
		count := m.engine.CountSnapshot()
		b.WriteString(warningStyle.Render(fmt.Sprintf("   count %+d (%.1f true)", count.Running, count.True)))
	}
	b.WriteString("\n\n")

	if snap, ok := m.engine.CurrentRound(); ok && snap.State != game.StateComplete {
		b.WriteString(m.roundView(snap))
	}

	if m.feedback != "" {
		b.WriteString(m.feedback + "\n")
	}
	if m.errLine != "" {
		b.WriteString(errorStyle.Render(m.errLine) + "\n")
	}
	b.WriteString("\n" + m.promptView())
	return b.String()
}

func (m *Model) roundView(snap game.RoundSnapshot) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Dealer: ") + renderCards(snap.Dealer.Cards))
	if !snap.Dealer.HoleRevealed {
		b.WriteString(" " + infoStyle.Render("[?]"))
	} else {
		b.WriteString(fmt.Sprintf("  (%d)", snap.Dealer.Value.Total))
	}
	b.WriteString("\n\n")

	for i, h := range snap.Hands {
		if h.Status == game.HandSplitOrigin {
			continue
		}
		marker := "  "
		if i == snap.ActiveHand {
			marker = actionsStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  (%s)  bet %d", marker, renderCards(h.Cards), describeValue(h.Value), h.Bet)
		if h.Status != game.HandActive {
			line += "  " + infoStyle.Render(h.Status.String())
		}
		if h.Insurance {
			line += "  " + infoStyle.Render(fmt.Sprintf("insured %d", h.InsuranceBet))
		}
		b.WriteString(line + "\n")
	}

	if len(snap.Results) > 0 {
		b.WriteString("\n")
		for _, r := range snap.Results {
			style := successStyle
			if r.Outcome == game.OutcomeLoss || r.Outcome == game.OutcomeBust {
				style = errorStyle
			}
			b.WriteString(style.Render(fmt.Sprintf("%s: %d", r.Outcome, r.Payout)) + "\n")
		}
	}
	return b.String()
}

func (m *Model) promptView() string {
	if m.mode == inputBet {
		return labelStyle.Render("Place your bet") + "\n" + m.betInput.View()
	}
	if m.mode == inputCountGuess {
		return labelStyle.Render("Guess the count") + "\n" + m.betInput.View()
	}

	switch m.engine.State() {
	case game.StateInsurance:
		return actionsStyle.Render("Insurance? (y/n)")
	case game.StatePlayerTurn:
		var keys []string
		for _, a := range m.engine.AvailableActions() {
			keys = append(keys, fmt.Sprintf("[%s]%s", keyFor(a), a))
		}
		return actionsStyle.Render(strings.Join(keys, " "))
	case game.StateSettling:
		return actionsStyle.Render("Press enter to settle")
	default:
		return infoStyle.Render("Press enter to bet, c for count, g to guess, q to quit")
	}
}

func (m *Model) summaryView() string {
	stats := m.engine.Stats()
	var b strings.Builder
	b.WriteString(headerStyle.Render("session summary") + "\n\n")
	fmt.Fprintf(&b, "Rounds:           %d\n", stats.RoundsPlayed)
	fmt.Fprintf(&b, "Hands:            %d (W%d L%d P%d)\n", stats.HandsPlayed, stats.Wins, stats.Losses, stats.Pushes)
	fmt.Fprintf(&b, "Net:              %+d\n", stats.Net)
	if stats.DecisionsTotal > 0 {
		fmt.Fprintf(&b, "Strategy:         %.0f%% of %d decisions\n", stats.Accuracy*100, stats.DecisionsTotal)
	}
	if stats.CountGuesses > 0 {
		fmt.Fprintf(&b, "Count guesses:    %d/%d correct\n", stats.CountCorrect, stats.CountGuesses)
	}
	return b.String()
}

func keyFor(a game.Action) string {
	switch a {
	case game.Hit:
		return "h"
	case game.Stand:
		return "s"
	case game.Double:
		return "d"
	case game.Split:
		return "p"
	default:
		return "r"
	}
}

func describeValue(v game.Value) string {
	if v.Soft {
		return fmt.Sprintf("soft %d", v.Total)
	}
	return strconv.Itoa(v.Total)
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		style := blackCardStyle
		if c.IsRed() {
			style = redCardStyle
		}
		parts = append(parts, style.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/rules"
	"github.com/lox/twentyone/internal/sessionid"
	"github.com/lox/twentyone/internal/statistics"
	"github.com/lox/twentyone/internal/trainer"
)

// defaultPenetration is the fraction of the shoe dealt before a
// reshuffle, matching a typical six-deck pitch.
const defaultPenetration = 0.75

// dealerID labels dealer cards in the audit trail.
const dealerID = "dealer"

// Game is the session orchestrator. It owns the shoe, the players and
// their banks, the open round, the audit trail and the training
// instrumentation, and it is the only writer of all of them. Commands
// validate fully before mutating, so a failed command leaves every
// structure untouched.
type Game struct {
	logger *log.Logger
	clock  quartz.Clock
	rules  rules.Rules

	shoe     *deck.Shoe
	players  []*Player
	round    *Round
	roundNum int

	audit   *AuditTrail
	counter *trainer.HiLo
	advisor *trainer.Advisor
	stats   *statistics.Session

	sessionID string
	ended     bool
}

type gameConfig struct {
	clock       quartz.Clock
	seed        *int64
	stack       []deck.Card
	penetration float64
}

// GameOption configures a Game during creation.
type GameOption func(*gameConfig)

// WithClock overrides the clock used to stamp audit entries.
func WithClock(c quartz.Clock) GameOption {
	return func(cfg *gameConfig) {
		cfg.clock = c
	}
}

// WithSeed fixes the shoe RNG seed for reproducible sessions.
func WithSeed(seed int64) GameOption {
	return func(cfg *gameConfig) {
		cfg.seed = &seed
	}
}

// WithShoeStack deals from a fixed card sequence instead of shuffling,
// for scripted scenarios.
func WithShoeStack(cards []deck.Card) GameOption {
	return func(cfg *gameConfig) {
		cfg.stack = make([]deck.Card, len(cards))
		copy(cfg.stack, cards)
	}
}

// WithPenetration overrides the reshuffle penetration mark.
func WithPenetration(p float64) GameOption {
	return func(cfg *gameConfig) {
		cfg.penetration = p
	}
}

// New creates a session with a freshly shuffled shoe for the given rule
// set. The logger is required; pass a discard logger to silence it.
func New(rs rules.Rules, logger *log.Logger, opts ...GameOption) (*Game, error) {
	cfg := gameConfig{
		clock:       quartz.NewReal(),
		penetration: defaultPenetration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var rng *rand.Rand
	if cfg.stack == nil {
		if cfg.seed != nil {
			rng = randutil.New(*cfg.seed)
		} else {
			rng = randutil.NewFromTime()
		}
	}

	var shoeOpts []deck.ShoeOption
	if cfg.stack != nil {
		shoeOpts = append(shoeOpts, deck.WithStack(cfg.stack))
	}
	shoe, err := deck.NewShoe(rs.DeckCount(), cfg.penetration, rng, shoeOpts...)
	if err != nil {
		return nil, fmt.Errorf("building shoe: %w", err)
	}

	g := &Game{
		logger:    logger,
		clock:     cfg.clock,
		rules:     rs,
		shoe:      shoe,
		audit:     NewAuditTrail(cfg.clock),
		counter:   trainer.NewHiLo(),
		advisor:   trainer.NewAdvisor(rs),
		stats:     &statistics.Session{},
		sessionID: sessionid.New(),
	}
	g.audit.Append(AuditEntry{Kind: EntryShoeShuffled, Detail: fmt.Sprintf("%d decks", rs.DeckCount())})
	g.logger.Debug("session started", "session", g.sessionID, "decks", rs.DeckCount())
	return g, nil
}

// SessionID returns the unique session identifier.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Rules returns the immutable rule set the session plays under.
func (g *Game) Rules() rules.Rules {
	return g.rules
}

// HouseEdge returns the analytic house edge estimate for the rule set.
func (g *Game) HouseEdge() float64 {
	return g.rules.HouseEdge()
}

// RulesDescription returns the human-readable rule listing.
func (g *Game) RulesDescription() string {
	return g.rules.Description()
}

// betweenRounds reports whether a new round may start or the roster may
// change.
func (g *Game) betweenRounds() bool {
	return g.round == nil || g.round.State == StateComplete
}

// State returns the current round state, or betting when no round is
// open.
func (g *Game) State() State {
	if g.round == nil {
		return StateBetting
	}
	return g.round.State
}

func (g *Game) playerByID(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddPlayer registers a player with a starting bank. Players join only
// between rounds.
func (g *Game) AddPlayer(id, name string, bank int) error {
	if g.ended || !g.betweenRounds() {
		return fmt.Errorf("%w: cannot add player mid-round", ErrIllegalStateTransition)
	}
	if bank < 0 {
		return fmt.Errorf("starting bank must be >= 0, got %d", bank)
	}
	if g.playerByID(id) != nil {
		return fmt.Errorf("player %q already registered", id)
	}
	g.players = append(g.players, &Player{ID: id, Name: name, bank: bank})
	g.audit.Append(AuditEntry{Kind: EntryPlayerAdded, PlayerID: id, Amount: bank, Detail: name})
	g.logger.Info("player added", "player", id, "bank", bank)
	return nil
}

// RemovePlayer removes a player between rounds. The remaining bank
// simply leaves the table with them.
func (g *Game) RemovePlayer(id string) error {
	if g.ended || !g.betweenRounds() {
		return fmt.Errorf("%w: cannot remove player mid-round", ErrIllegalStateTransition)
	}
	for i, p := range g.players {
		if p.ID == id {
			g.players = append(g.players[:i], g.players[i+1:]...)
			g.audit.Append(AuditEntry{Kind: EntryPlayerRemoved, PlayerID: id, Amount: p.bank})
			g.logger.Info("player removed", "player", id, "bank", p.bank)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
}

// reshuffle rebuilds the shoe and zeroes the running count, since the
// count only has meaning within one shoe.
func (g *Game) reshuffle() {
	g.shoe.Reshuffle()
	g.counter.Reset()
	g.audit.Append(AuditEntry{Kind: EntryShoeShuffled, Round: g.roundNum, Detail: "penetration reached"})
	g.logger.Debug("shoe reshuffled", "round", g.roundNum)
}

// draw deals the next card. Exhaustion mid-round forces an immediate
// reshuffle so a round in flight can always finish.
func (g *Game) draw() (deck.Card, error) {
	c, err := g.shoe.Draw()
	if errors.Is(err, deck.ErrShoeExhausted) {
		g.reshuffle()
		c, err = g.shoe.Draw()
	}
	return c, err
}

// StartRound opens a new round for the given bets. Validation is
// all-or-nothing: if any bet is invalid no bank is touched. The shoe is
// reshuffled first if the penetration mark was passed last round.
func (g *Game) StartRound(bets []Bet) error {
	if g.ended || !g.betweenRounds() {
		return fmt.Errorf("%w: round already in progress", ErrIllegalStateTransition)
	}
	if len(bets) == 0 {
		return errors.New("at least one bet is required")
	}
	seen := make(map[string]bool, len(bets))
	for _, b := range bets {
		p := g.playerByID(b.PlayerID)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, b.PlayerID)
		}
		if seen[b.PlayerID] {
			return fmt.Errorf("player %s bet more than once", b.PlayerID)
		}
		seen[b.PlayerID] = true
		if b.Amount <= 0 {
			return fmt.Errorf("bet amount must be positive, got %d", b.Amount)
		}
		if b.Amount > p.bank {
			return fmt.Errorf("%w: player %s has %d, bet %d", ErrInsufficientFunds, b.PlayerID, p.bank, b.Amount)
		}
	}

	// A scripted stack replays itself on exhaustion, so dealing can only
	// fail outright when the shoe holds no cards at all. Catch that here,
	// before any bank is touched.
	if g.shoe.TotalCards() == 0 {
		return errors.New("shoe has no cards")
	}

	if g.shoe.NeedsReshuffle() {
		g.reshuffle()
	}

	g.roundNum++
	r := &Round{
		Number:     g.roundNum,
		State:      StateDealing,
		Dealer:     &DealerHand{},
		splitsUsed: make(map[string]int),
	}
	for _, b := range bets {
		p := g.playerByID(b.PlayerID)
		p.debit(b.Amount)
		r.Hands = append(r.Hands, &Hand{PlayerID: b.PlayerID, Bet: b.Amount})
		g.audit.Append(AuditEntry{Kind: EntryBetPlaced, Round: r.Number, PlayerID: b.PlayerID, HandIndex: len(r.Hands) - 1, Amount: b.Amount})
	}
	g.round = r

	if err := g.deal(); err != nil {
		return err
	}

	g.logger.Debug("round started", "round", r.Number, "hands", len(r.Hands), "state", r.State.String())
	return nil
}

// deal runs the initial two-pass deal, marks player blackjacks and
// routes the round into insurance, an immediate ten-up peek, or the
// player turn.
func (g *Game) deal() error {
	r := g.round

	// First pass face up to each hand, then the dealer's up card, then a
	// second pass and the concealed hole card. The counter sees every
	// card except the hole.
	for pass := 0; pass < 2; pass++ {
		for i, h := range r.Hands {
			c, err := g.draw()
			if err != nil {
				return err
			}
			h.Cards = append(h.Cards, c)
			g.counter.Observe(c)
			g.audit.Append(AuditEntry{Kind: EntryCardDealt, Round: r.Number, PlayerID: h.PlayerID, HandIndex: i, Card: c.String()})
		}
		c, err := g.draw()
		if err != nil {
			return err
		}
		r.Dealer.Cards = append(r.Dealer.Cards, c)
		if pass == 0 {
			g.counter.Observe(c)
			g.audit.Append(AuditEntry{Kind: EntryCardDealt, Round: r.Number, PlayerID: dealerID, Card: c.String()})
		}
	}

	for _, h := range r.Hands {
		if h.Value().Total == 21 {
			h.Status = HandBlackjack
		}
	}

	up := r.Dealer.UpCard()
	switch {
	case up.IsAce():
		r.State = StateInsurance
		for _, h := range r.Hands {
			h.InsuranceOffered = true
		}
	case up.IsTenValued() && r.Dealer.IsBlackjack():
		// Peek found a blackjack; the round is over before anyone acts.
		g.revealHole()
		r.State = StateSettling
	default:
		g.toPlayerTurn()
	}
	return nil
}

// revealHole turns over the dealer's hole card, counting and auditing
// it.
func (g *Game) revealHole() {
	r := g.round
	if r.Dealer.HoleRevealed {
		return
	}
	r.Dealer.HoleRevealed = true
	hole := r.Dealer.HoleCard()
	g.counter.Observe(hole)
	g.audit.Append(AuditEntry{Kind: EntryHoleRevealed, Round: r.Number, PlayerID: dealerID, Card: hole.String()})
}

// toPlayerTurn hands control to the first undecided hand, or straight
// to the dealer when every hand is already terminal.
func (g *Game) toPlayerTurn() {
	r := g.round
	r.active = 0
	if r.advanceActive() {
		r.State = StatePlayerTurn
		return
	}
	g.dealerTurn()
}

// dealerTurn reveals the hole card and, when any live contender
// remains, draws to the rule set's standing policy. It always ends in
// settling.
func (g *Game) dealerTurn() {
	r := g.round
	r.State = StateDealerTurn
	g.revealHole()

	if r.liveContenders() {
		for {
			v := r.Dealer.Value()
			if v.Total > 17 {
				break
			}
			if v.Total == 17 && !(v.Soft && g.rules.DealerStand() == rules.HitOnSoft17) {
				break
			}
			c, err := g.draw()
			if err != nil {
				// Exhaustion is already handled inside draw; anything else
				// is unrecoverable.
				panic(fmt.Sprintf("dealer draw failed: %v", err))
			}
			r.Dealer.Cards = append(r.Dealer.Cards, c)
			g.counter.Observe(c)
			g.audit.Append(AuditEntry{Kind: EntryCardDealt, Round: r.Number, PlayerID: dealerID, Card: c.String()})
		}
	}

	r.State = StateSettling
}

// TakeInsurance places an insurance side bet of half the hand's bet on
// the given hand. Only hands that were offered insurance and have not
// yet decided may take it.
func (g *Game) TakeInsurance(handIndex int) error {
	r := g.round
	if r == nil || r.State != StateInsurance {
		return fmt.Errorf("%w: insurance is not open", ErrIllegalStateTransition)
	}
	if handIndex < 0 || handIndex >= len(r.Hands) {
		return fmt.Errorf("%w: hand %d", ErrInvalidInsuranceTarget, handIndex)
	}
	h := r.Hands[handIndex]
	if !h.InsuranceOffered || h.InsuranceDecided {
		return fmt.Errorf("%w: hand %d", ErrInvalidInsuranceTarget, handIndex)
	}
	stake := h.Bet / 2
	p := g.playerByID(h.PlayerID)
	if stake > p.bank {
		return fmt.Errorf("%w: player %s has %d, insurance stake %d", ErrInsufficientFunds, h.PlayerID, p.bank, stake)
	}
	p.debit(stake)
	h.InsuranceDecided = true
	h.InsuranceTaken = true
	h.InsuranceBet = stake
	g.audit.Append(AuditEntry{Kind: EntryInsuranceDecision, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Amount: stake, Detail: "take"})
	return nil
}

// DeclineInsurance records a hand declining the insurance offer.
func (g *Game) DeclineInsurance(handIndex int) error {
	r := g.round
	if r == nil || r.State != StateInsurance {
		return fmt.Errorf("%w: insurance is not open", ErrIllegalStateTransition)
	}
	if handIndex < 0 || handIndex >= len(r.Hands) {
		return fmt.Errorf("%w: hand %d", ErrInvalidInsuranceTarget, handIndex)
	}
	h := r.Hands[handIndex]
	if !h.InsuranceOffered || h.InsuranceDecided {
		return fmt.Errorf("%w: hand %d", ErrInvalidInsuranceTarget, handIndex)
	}
	h.InsuranceDecided = true
	g.audit.Append(AuditEntry{Kind: EntryInsuranceDecision, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Detail: "decline"})
	return nil
}

// ResolveInsurance checks the dealer's hole card once every offered
// hand has decided. A dealer blackjack pays insurance 2:1 and ends the
// round; otherwise stakes are forfeited and play continues with the
// hole card still concealed.
func (g *Game) ResolveInsurance() error {
	r := g.round
	if r == nil || r.State != StateInsurance {
		return fmt.Errorf("%w: insurance is not open", ErrIllegalStateTransition)
	}
	if !r.insuranceSettled() {
		return fmt.Errorf("%w: undecided insurance offers remain", ErrIllegalStateTransition)
	}

	if r.Dealer.IsBlackjack() {
		g.revealHole()
		g.audit.Append(AuditEntry{Kind: EntryInsuranceResolved, Round: r.Number, Detail: "dealer blackjack"})
		for i, h := range r.Hands {
			if h.InsuranceTaken {
				payout := h.InsuranceBet * 3
				g.playerByID(h.PlayerID).credit(payout)
				g.audit.Append(AuditEntry{Kind: EntryInsurancePaid, Round: r.Number, PlayerID: h.PlayerID, HandIndex: i, Amount: payout})
			}
		}
		r.State = StateSettling
		return nil
	}

	g.audit.Append(AuditEntry{Kind: EntryInsuranceResolved, Round: r.Number, Detail: "no blackjack"})
	g.toPlayerTurn()
	return nil
}

// AvailableActions returns the legal action set for the active hand, or
// nil outside the player turn.
func (g *Game) AvailableActions() []Action {
	if g.round == nil {
		return nil
	}
	h := g.round.ActiveHand()
	if h == nil {
		return nil
	}
	return availableActions(g.round, g.rules, g.playerByID(h.PlayerID).bank)
}

func containsAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func moveFor(a Action) trainer.Move {
	switch a {
	case Hit:
		return trainer.MoveHit
	case Stand:
		return trainer.MoveStand
	case Double:
		return trainer.MoveDouble
	case Split:
		return trainer.MoveSplit
	default:
		return trainer.MoveSurrender
	}
}

// PlayAction applies a player decision to the active hand and returns
// the basic-strategy grade for it. Illegal actions leave the round
// untouched. When the last hand goes terminal the dealer plays out and
// the round moves to settling.
func (g *Game) PlayAction(action Action) (trainer.Feedback, error) {
	r := g.round
	if r == nil || r.State != StatePlayerTurn {
		return trainer.Feedback{}, fmt.Errorf("%w: no hand is awaiting a decision", ErrIllegalStateTransition)
	}
	h := r.ActiveHand()
	p := g.playerByID(h.PlayerID)
	legal := availableActions(r, g.rules, p.bank)
	if !containsAction(legal, action) {
		return trainer.Feedback{}, fmt.Errorf("%w: %s", ErrIllegalAction, action)
	}

	// Grade against the pre-action situation.
	avail := trainer.Availability{
		Double:    containsAction(legal, Double),
		Split:     containsAction(legal, Split),
		Surrender: containsAction(legal, Surrender),
	}
	fb := g.advisor.Grade(h.Cards, r.Dealer.UpCard(), avail, moveFor(action))
	g.stats.AddDecision(fb.Correct)

	handIndex := r.ActiveHandIndex()
	var err error
	switch action {
	case Hit:
		err = g.execHit(handIndex, h)
	case Stand:
		h.Status = HandStood
		g.audit.Append(AuditEntry{Kind: EntryActionTaken, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Detail: "stand"})
	case Double:
		err = g.execDouble(handIndex, h, p)
	case Split:
		err = g.execSplit(handIndex, h, p)
	case Surrender:
		h.Status = HandSurrendered
		g.audit.Append(AuditEntry{Kind: EntryActionTaken, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Detail: "surrender"})
	}
	if err != nil {
		return fb, err
	}
	r.actionsTaken++

	if r.ActiveHand() == nil || r.ActiveHand().Status.Terminal() {
		if !r.advanceActive() {
			g.dealerTurn()
		}
	}
	return fb, nil
}

func (g *Game) execHit(handIndex int, h *Hand) error {
	r := g.round
	c, err := g.draw()
	if err != nil {
		return err
	}
	h.Cards = append(h.Cards, c)
	g.counter.Observe(c)
	g.audit.Append(AuditEntry{Kind: EntryActionTaken, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Card: c.String(), Detail: "hit"})
	if h.Value().Total > 21 {
		h.Status = HandBusted
	}
	return nil
}

func (g *Game) execDouble(handIndex int, h *Hand, p *Player) error {
	r := g.round
	p.debit(h.Bet)
	g.audit.Append(AuditEntry{Kind: EntryActionTaken, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Amount: h.Bet, Detail: "double"})
	h.Bet *= 2

	c, err := g.draw()
	if err != nil {
		return err
	}
	h.Cards = append(h.Cards, c)
	g.counter.Observe(c)
	g.audit.Append(AuditEntry{Kind: EntryCardDealt, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Card: c.String()})

	if h.Value().Total > 21 {
		h.Status = HandBusted
	} else {
		h.Status = HandDoubled
	}
	return nil
}

// execSplit retires the pair hand and inserts two child hands in its
// place, each dealt one card. Split aces receive a single card and
// stand automatically unless the rules allow hitting them.
func (g *Game) execSplit(handIndex int, h *Hand, p *Player) error {
	r := g.round
	wasAces := h.IsAcePair()
	fromSplitAces := wasAces || h.FromSplitAces

	p.debit(h.Bet)
	g.audit.Append(AuditEntry{Kind: EntryActionTaken, Round: r.Number, PlayerID: h.PlayerID, HandIndex: handIndex, Amount: h.Bet, Detail: "split"})

	children := []*Hand{
		{PlayerID: h.PlayerID, Cards: []deck.Card{h.Cards[0]}, Bet: h.Bet, FromSplit: true, FromSplitAces: fromSplitAces},
		{PlayerID: h.PlayerID, Cards: []deck.Card{h.Cards[1]}, Bet: h.Bet, FromSplit: true, FromSplitAces: fromSplitAces},
	}
	h.Status = HandSplitOrigin
	h.Bet = 0
	r.anySplit = true
	r.splitsUsed[children[0].PlayerID]++

	// Splice the children in directly after the origin so play order
	// stays left to right.
	rest := make([]*Hand, len(r.Hands[handIndex+1:]))
	copy(rest, r.Hands[handIndex+1:])
	r.Hands = append(r.Hands[:handIndex+1], children...)
	r.Hands = append(r.Hands, rest...)

	for i, child := range children {
		c, err := g.draw()
		if err != nil {
			return err
		}
		child.Cards = append(child.Cards, c)
		g.counter.Observe(c)
		g.audit.Append(AuditEntry{Kind: EntryCardDealt, Round: r.Number, PlayerID: child.PlayerID, HandIndex: handIndex + 1 + i, Card: c.String()})

		// A split hand reaching 21 is a plain 21, never blackjack.
		if wasAces && !g.rules.HitSplitAces() {
			// A child that pairs a new ace stays open when the rules allow
			// a resplit; hitting it remains barred.
			resplittable := g.rules.ResplitAces() &&
				child.IsAcePair() &&
				r.splitsUsed[child.PlayerID] < g.rules.MaxSplits()
			if !resplittable {
				child.Status = HandStood
			}
		}
	}
	return nil
}

// CompleteRound settles every hand, credits payouts and closes the
// round. It returns the per-hand settlements.
func (g *Game) CompleteRound() ([]Settlement, error) {
	r := g.round
	if r == nil || r.State != StateSettling {
		return nil, fmt.Errorf("%w: round is not ready to settle", ErrIllegalStateTransition)
	}

	settlements := settleRound(r, g.rules)
	r.Results = settlements

	net := 0
	for _, s := range settlements {
		if s.Payout > 0 {
			g.playerByID(s.PlayerID).credit(s.Payout)
		}
		g.audit.Append(AuditEntry{Kind: EntrySettlement, Round: r.Number, PlayerID: s.PlayerID, HandIndex: s.HandIndex, Amount: s.Payout, Detail: s.Outcome.String()})
		g.stats.AddHand(s.Outcome.String(), s.Bet, s.Payout)
		net += s.Payout - s.Bet
	}
	for _, h := range r.Hands {
		if h.InsuranceTaken {
			if r.Dealer.IsBlackjack() {
				net += 2 * h.InsuranceBet
			} else {
				net -= h.InsuranceBet
			}
		}
	}
	g.stats.AddRound(net)

	r.State = StateComplete
	g.audit.Append(AuditEntry{Kind: EntryRoundComplete, Round: r.Number, Amount: net})
	g.logger.Debug("round complete", "round", r.Number, "net", net, "hands", len(settlements))
	return settlements, nil
}

// EndSession closes the session. No further commands are accepted.
func (g *Game) EndSession() error {
	if g.ended {
		return fmt.Errorf("%w: session already ended", ErrIllegalStateTransition)
	}
	if !g.betweenRounds() {
		return fmt.Errorf("%w: round in progress", ErrIllegalStateTransition)
	}
	g.ended = true
	g.audit.Append(AuditEntry{Kind: EntrySessionEnded, Round: g.roundNum})
	g.logger.Info("session ended", "session", g.sessionID, "rounds", g.roundNum)
	return nil
}

// GradeCountGuess grades a counting-practice guess against the actual
// Hi-Lo running and true counts.
func (g *Game) GradeCountGuess(running int, trueCount float64) trainer.CountFeedback {
	fb := g.advisor.GradeCount(running, trueCount, g.counter.Running(), g.counter.True(g.shoe.Remaining()))
	g.stats.AddCountGuess(fb.RunningCorrect && fb.TrueCorrect)
	return fb
}

// CurrentRound returns a deep snapshot of the open round.
func (g *Game) CurrentRound() (RoundSnapshot, bool) {
	if g.round == nil {
		return RoundSnapshot{}, false
	}
	return g.round.Snapshot(), true
}

// PlayerSnapshot is a copy of one player's identity and bank.
type PlayerSnapshot struct {
	ID   string
	Name string
	Bank int
}

// Players returns a snapshot of the roster in join order.
func (g *Game) Players() []PlayerSnapshot {
	out := make([]PlayerSnapshot, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, PlayerSnapshot{ID: p.ID, Name: p.Name, Bank: p.bank})
	}
	return out
}

// PlayerBank returns a player's bank balance.
func (g *Game) PlayerBank(id string) (int, error) {
	p := g.playerByID(id)
	if p == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	return p.bank, nil
}

// ShoeDetails describes the shoe for the query surface.
type ShoeDetails struct {
	Remaining      int
	Dealt          int
	TotalCards     int
	DeckCount      int
	Penetration    float64
	NeedsReshuffle bool
}

// ShoeDetails returns the shoe's current position.
func (g *Game) ShoeDetails() ShoeDetails {
	return ShoeDetails{
		Remaining:      g.shoe.Remaining(),
		Dealt:          g.shoe.Dealt(),
		TotalCards:     g.shoe.TotalCards(),
		DeckCount:      g.shoe.DeckCount(),
		Penetration:    g.shoe.Penetration(),
		NeedsReshuffle: g.shoe.NeedsReshuffle(),
	}
}

// CountSnapshot is the trainer's view of the Hi-Lo count.
type CountSnapshot struct {
	Running        int
	True           float64
	CardsRemaining int
}

// CountSnapshot returns the current Hi-Lo running and true counts.
func (g *Game) CountSnapshot() CountSnapshot {
	remaining := g.shoe.Remaining()
	return CountSnapshot{
		Running:        g.counter.Running(),
		True:           g.counter.True(remaining),
		CardsRemaining: remaining,
	}
}

// Stats returns the session statistics so far.
func (g *Game) Stats() statistics.Snapshot {
	return g.stats.Snapshot()
}

// AuditJSON exports the audit trail as JSON.
func (g *Game) AuditJSON() ([]byte, error) {
	return g.audit.JSON()
}

// AuditCSV exports the audit trail as CSV.
func (g *Game) AuditCSV() ([]byte, error) {
	return g.audit.CSV()
}

// AuditSummary aggregates the audit trail.
func (g *Game) AuditSummary() AuditSummary {
	return g.audit.Summary()
}

// AuditEntries returns a copy of the audit log.
func (g *Game) AuditEntries() []AuditEntry {
	return g.audit.Entries()
}

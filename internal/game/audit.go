package game

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"github.com/coder/quartz"
)

// EntryKind classifies audit entries.
type EntryKind string

const (
	EntryPlayerAdded       EntryKind = "player_added"
	EntryPlayerRemoved     EntryKind = "player_removed"
	EntryShoeShuffled      EntryKind = "shoe_shuffled"
	EntryBetPlaced         EntryKind = "bet_placed"
	EntryCardDealt         EntryKind = "card_dealt"
	EntryHoleRevealed      EntryKind = "hole_revealed"
	EntryActionTaken       EntryKind = "action_taken"
	EntryInsuranceDecision EntryKind = "insurance_decision"
	EntryInsuranceResolved EntryKind = "insurance_resolved"
	EntryInsurancePaid     EntryKind = "insurance_paid"
	EntrySettlement        EntryKind = "settlement"
	EntryRoundComplete     EntryKind = "round_complete"
	EntrySessionEnded      EntryKind = "session_ended"
)

// AuditEntry is an immutable record of one state-changing event. Entries
// carry enough detail to reconstruct the round: who, which hand, what
// happened and with which card or amount.
type AuditEntry struct {
	Seq       int       `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Kind      EntryKind `json:"kind"`
	Round     int       `json:"round,omitempty"`
	PlayerID  string    `json:"player_id,omitempty"`
	HandIndex int       `json:"hand_index"`
	Amount    int       `json:"amount,omitempty"`
	Card      string    `json:"card,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// AuditTrail is the session-scoped append-only log. Entries are never
// mutated or removed; exports preserve insertion order so external
// persistence can key off seq and timestamp.
type AuditTrail struct {
	clock   quartz.Clock
	entries []AuditEntry
}

// NewAuditTrail creates an audit trail that stamps entries from the
// given clock.
func NewAuditTrail(clock quartz.Clock) *AuditTrail {
	return &AuditTrail{clock: clock}
}

// Append records a new entry, assigning the next sequence number and the
// current timestamp.
func (a *AuditTrail) Append(e AuditEntry) {
	e.Seq = len(a.entries)
	e.Timestamp = a.clock.Now()
	a.entries = append(a.entries, e)
}

// Len returns the number of entries recorded.
func (a *AuditTrail) Len() int {
	return len(a.entries)
}

// Entries returns a copy of the log.
func (a *AuditTrail) Entries() []AuditEntry {
	out := make([]AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// JSON serializes the log as an indented JSON array.
func (a *AuditTrail) JSON() ([]byte, error) {
	return json.MarshalIndent(a.entries, "", "  ")
}

// csvHeader is the fixed CSV column set. Order is part of the export
// contract.
var csvHeader = []string{"seq", "timestamp", "kind", "round", "player_id", "hand_index", "amount", "card", "detail"}

// CSV serializes the log with a fixed header row and RFC3339Nano
// timestamps.
func (a *AuditTrail) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range a.entries {
		record := []string{
			strconv.Itoa(e.Seq),
			e.Timestamp.Format(time.RFC3339Nano),
			string(e.Kind),
			strconv.Itoa(e.Round),
			e.PlayerID,
			strconv.Itoa(e.HandIndex),
			strconv.Itoa(e.Amount),
			e.Card,
			e.Detail,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AuditSummary aggregates the log for display.
type AuditSummary struct {
	Entries       int               `json:"entries"`
	Rounds        int               `json:"rounds"`
	ByKind        map[EntryKind]int `json:"by_kind"`
	TotalWagered  int               `json:"total_wagered"`
	TotalReturned int               `json:"total_returned"`
	Net           int               `json:"net"` // player perspective: returned minus wagered
}

// Summary walks the log and aggregates totals. Wagers cover bets,
// double/split bets and insurance stakes; returns cover settlements and
// insurance payouts.
func (a *AuditTrail) Summary() AuditSummary {
	s := AuditSummary{ByKind: make(map[EntryKind]int)}
	s.Entries = len(a.entries)
	for _, e := range a.entries {
		s.ByKind[e.Kind]++
		switch e.Kind {
		case EntryBetPlaced, EntryInsuranceDecision:
			s.TotalWagered += e.Amount
		case EntryActionTaken:
			// double and split record the additional bet they debit
			s.TotalWagered += e.Amount
		case EntrySettlement, EntryInsurancePaid:
			s.TotalReturned += e.Amount
		case EntryRoundComplete:
			s.Rounds++
		}
	}
	s.Net = s.TotalReturned - s.TotalWagered
	return s
}

package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrailStampsFromClock(t *testing.T) {
	mock := quartz.NewMock(t)
	start := mock.Now()
	trail := NewAuditTrail(mock)

	trail.Append(AuditEntry{Kind: EntryBetPlaced, PlayerID: "p1", Amount: 10})
	mock.Advance(3 * time.Second)
	trail.Append(AuditEntry{Kind: EntrySettlement, PlayerID: "p1", Amount: 20})

	entries := trail.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Seq)
	assert.Equal(t, 1, entries[1].Seq)
	assert.Equal(t, start, entries[0].Timestamp)
	assert.Equal(t, start.Add(3*time.Second), entries[1].Timestamp)
}

func TestAuditTrailEntriesAreCopies(t *testing.T) {
	mock := quartz.NewMock(t)
	trail := NewAuditTrail(mock)
	trail.Append(AuditEntry{Kind: EntryBetPlaced, Amount: 10})

	entries := trail.Entries()
	entries[0].Amount = 999
	assert.Equal(t, 10, trail.Entries()[0].Amount)
}

func TestAuditJSONRoundTrips(t *testing.T) {
	mock := quartz.NewMock(t)
	trail := NewAuditTrail(mock)
	trail.Append(AuditEntry{Kind: EntryCardDealt, Round: 1, PlayerID: "p1", Card: "A♠"})

	out, err := trail.JSON()
	require.NoError(t, err)

	var decoded []AuditEntry
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, EntryCardDealt, decoded[0].Kind)
	assert.Equal(t, "A♠", decoded[0].Card)
}

func TestAuditSummaryAggregates(t *testing.T) {
	mock := quartz.NewMock(t)
	trail := NewAuditTrail(mock)

	trail.Append(AuditEntry{Kind: EntryBetPlaced, Round: 1, Amount: 10})
	trail.Append(AuditEntry{Kind: EntryActionTaken, Round: 1, Amount: 10, Detail: "double"})
	trail.Append(AuditEntry{Kind: EntryInsuranceDecision, Round: 1, Amount: 5, Detail: "take"})
	trail.Append(AuditEntry{Kind: EntryInsurancePaid, Round: 1, Amount: 15})
	trail.Append(AuditEntry{Kind: EntrySettlement, Round: 1, Amount: 40})
	trail.Append(AuditEntry{Kind: EntryRoundComplete, Round: 1})

	s := trail.Summary()
	assert.Equal(t, 6, s.Entries)
	assert.Equal(t, 1, s.Rounds)
	assert.Equal(t, 25, s.TotalWagered)
	assert.Equal(t, 55, s.TotalReturned)
	assert.Equal(t, 30, s.Net)
	assert.Equal(t, 1, s.ByKind[EntryBetPlaced])
}

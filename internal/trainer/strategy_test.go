package trainer

import (
	"testing"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/rules"
)

func c(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

func c2(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Hearts, rank)
}

func TestHardTotals(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild())
	all := Availability{Double: true}

	tests := []struct {
		name  string
		cards []deck.Card
		up    deck.Rank
		want  Move
	}{
		{"hard 17 stands", []deck.Card{c(deck.Ten), c(deck.Seven)}, deck.Ace, MoveStand},
		{"16 vs 6 stands", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Six, MoveStand},
		{"16 vs 7 hits", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Seven, MoveHit},
		{"12 vs 2 hits", []deck.Card{c(deck.Ten), c(deck.Two)}, deck.Two, MoveHit},
		{"12 vs 4 stands", []deck.Card{c(deck.Ten), c(deck.Two)}, deck.Four, MoveStand},
		{"11 vs 6 doubles", []deck.Card{c(deck.Six), c(deck.Five)}, deck.Six, MoveDouble},
		{"11 vs ace hits under s17", []deck.Card{c(deck.Six), c(deck.Five)}, deck.Ace, MoveHit},
		{"10 vs 9 doubles", []deck.Card{c(deck.Six), c(deck.Four)}, deck.Nine, MoveDouble},
		{"10 vs ten hits", []deck.Card{c(deck.Six), c(deck.Four)}, deck.Ten, MoveHit},
		{"9 vs 3 doubles", []deck.Card{c(deck.Five), c(deck.Four)}, deck.Three, MoveDouble},
		{"9 vs 2 hits", []deck.Card{c(deck.Five), c(deck.Four)}, deck.Two, MoveHit},
		{"8 hits", []deck.Card{c(deck.Five), c(deck.Three)}, deck.Six, MoveHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Recommend(tt.cards, c2(tt.up), all); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHardElevenDoublesAgainstAceUnderH17(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().DealerStand(rules.HitOnSoft17).MustBuild())
	got := s.Recommend([]deck.Card{c(deck.Six), c(deck.Five)}, c2(deck.Ace), Availability{Double: true})
	if got != MoveDouble {
		t.Errorf("11 vs ace under h17 = %s, want double", got)
	}
}

func TestSoftTotals(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild())
	all := Availability{Double: true}

	tests := []struct {
		name  string
		cards []deck.Card
		up    deck.Rank
		want  Move
	}{
		{"soft 20 stands", []deck.Card{c(deck.Ace), c(deck.Nine)}, deck.Six, MoveStand},
		{"soft 19 stands", []deck.Card{c(deck.Ace), c(deck.Eight)}, deck.Six, MoveStand},
		{"soft 18 vs 3 doubles", []deck.Card{c(deck.Ace), c(deck.Seven)}, deck.Three, MoveDouble},
		{"soft 18 vs 8 stands", []deck.Card{c(deck.Ace), c(deck.Seven)}, deck.Eight, MoveStand},
		{"soft 18 vs 9 hits", []deck.Card{c(deck.Ace), c(deck.Seven)}, deck.Nine, MoveHit},
		{"soft 17 vs 4 doubles", []deck.Card{c(deck.Ace), c(deck.Six)}, deck.Four, MoveDouble},
		{"soft 17 vs 2 hits", []deck.Card{c(deck.Ace), c(deck.Six)}, deck.Two, MoveHit},
		{"soft 15 vs 5 doubles", []deck.Card{c(deck.Ace), c(deck.Four)}, deck.Five, MoveDouble},
		{"soft 13 vs 5 doubles", []deck.Card{c(deck.Ace), c(deck.Two)}, deck.Five, MoveDouble},
		{"soft 13 vs 4 hits", []deck.Card{c(deck.Ace), c(deck.Two)}, deck.Four, MoveHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Recommend(tt.cards, c2(tt.up), all); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSoft19DoublesAgainstSixUnderH17(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().DealerStand(rules.HitOnSoft17).MustBuild())
	got := s.Recommend([]deck.Card{c(deck.Ace), c(deck.Eight)}, c2(deck.Six), Availability{Double: true})
	if got != MoveDouble {
		t.Errorf("soft 19 vs 6 under h17 = %s, want double", got)
	}
}

func TestDoubleFallsBackWhenUnavailable(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild())
	none := Availability{}

	// Hard 11 falls back to hit.
	if got := s.Recommend([]deck.Card{c(deck.Six), c(deck.Five)}, c2(deck.Six), none); got != MoveHit {
		t.Errorf("11 without double = %s, want hit", got)
	}
	// Soft 18 vs 6 falls back to stand.
	if got := s.Recommend([]deck.Card{c(deck.Ace), c(deck.Seven)}, c2(deck.Six), none); got != MoveStand {
		t.Errorf("soft 18 without double = %s, want stand", got)
	}
}

func TestPairs(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild()) // das on
	avail := Availability{Double: true, Split: true}

	tests := []struct {
		name  string
		rank  deck.Rank
		up    deck.Rank
		want  Move
	}{
		{"aces always split", deck.Ace, deck.Ace, MoveSplit},
		{"eights always split", deck.Eight, deck.Ten, MoveSplit},
		{"nines vs 7 stand", deck.Nine, deck.Seven, MoveStand},
		{"nines vs 9 split", deck.Nine, deck.Nine, MoveSplit},
		{"tens never split", deck.Ten, deck.Six, MoveStand},
		{"fives play as ten", deck.Five, deck.Nine, MoveDouble},
		{"sevens vs 7 split", deck.Seven, deck.Seven, MoveSplit},
		{"sixes vs 2 split with das", deck.Six, deck.Two, MoveSplit},
		{"fours vs 5 split with das", deck.Four, deck.Five, MoveSplit},
		{"twos vs 2 split with das", deck.Two, deck.Two, MoveSplit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := []deck.Card{c(tt.rank), c2(tt.rank)}
			if got := s.Recommend(cards, c2(tt.up), avail); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPairsWithoutDoubleAfterSplit(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().DoubleAfterSplit(false).MustBuild())
	avail := Availability{Double: true, Split: true}

	// Without das, 6s vs 2 and 4s vs 5 no longer split.
	if got := s.Recommend([]deck.Card{c(deck.Six), c2(deck.Six)}, c2(deck.Two), avail); got == MoveSplit {
		t.Error("6,6 vs 2 should not split without das")
	}
	if got := s.Recommend([]deck.Card{c(deck.Four), c2(deck.Four)}, c2(deck.Five), avail); got == MoveSplit {
		t.Error("4,4 vs 5 should not split without das")
	}
}

func TestSurrenderChart(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild())
	avail := Availability{Surrender: true}

	tests := []struct {
		name  string
		cards []deck.Card
		up    deck.Rank
		want  Move
	}{
		{"16 vs 9 surrenders", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Nine, MoveSurrender},
		{"16 vs ten surrenders", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Ten, MoveSurrender},
		{"16 vs ace surrenders", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Ace, MoveSurrender},
		{"15 vs ten surrenders", []deck.Card{c(deck.Ten), c(deck.Five)}, deck.Ten, MoveSurrender},
		{"15 vs 9 plays on", []deck.Card{c(deck.Ten), c(deck.Five)}, deck.Nine, MoveHit},
		{"16 vs 8 plays on", []deck.Card{c(deck.Ten), c(deck.Six)}, deck.Eight, MoveHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Recommend(tt.cards, c2(tt.up), avail); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEightsSplitBeforeSurrender(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().MustBuild())
	avail := Availability{Split: true, Surrender: true}
	got := s.Recommend([]deck.Card{c(deck.Eight), c2(deck.Eight)}, c2(deck.Ten), avail)
	if got != MoveSplit {
		t.Errorf("8,8 vs ten = %s, want split", got)
	}
}

func TestSurrenderChartUnderH17(t *testing.T) {
	s := NewStrategy(rules.NewBuilder().DealerStand(rules.HitOnSoft17).MustBuild())
	avail := Availability{Surrender: true}

	if got := s.Recommend([]deck.Card{c(deck.Ten), c(deck.Five)}, c2(deck.Ace), avail); got != MoveSurrender {
		t.Errorf("15 vs ace under h17 = %s, want surrender", got)
	}
	if got := s.Recommend([]deck.Card{c(deck.Ten), c(deck.Seven)}, c2(deck.Ace), avail); got != MoveSurrender {
		t.Errorf("17 vs ace under h17 = %s, want surrender", got)
	}
}

package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, King), "K♣"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2},
		{Six, 6},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}
	for _, tt := range tests {
		if got := tt.rank.Value(); got != tt.want {
			t.Errorf("%s.Value() = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestIsTenValued(t *testing.T) {
	for rank := Two; rank <= Ace; rank++ {
		card := NewCard(Spades, rank)
		want := rank >= Ten && rank <= King
		if got := card.IsTenValued(); got != want {
			t.Errorf("%s.IsTenValued() = %v, want %v", card, got, want)
		}
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Five).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Diamonds, Five).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Spades, Five).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Clubs, Five).IsRed() {
		t.Error("clubs should not be red")
	}
}

package deck

import (
	"errors"
	"testing"

	"github.com/lox/twentyone/internal/randutil"
)

func TestNewShoeSize(t *testing.T) {
	t.Parallel()
	for _, decks := range []int{1, 2, 6, 8} {
		shoe, err := NewShoe(decks, 0.75, randutil.New(1))
		if err != nil {
			t.Fatalf("NewShoe(%d): %v", decks, err)
		}
		if shoe.TotalCards() != decks*52 {
			t.Errorf("TotalCards() = %d, want %d", shoe.TotalCards(), decks*52)
		}
		if shoe.Remaining() != decks*52 {
			t.Errorf("Remaining() = %d, want %d", shoe.Remaining(), decks*52)
		}
	}
}

func TestNewShoeValidation(t *testing.T) {
	t.Parallel()
	if _, err := NewShoe(0, 0.5, randutil.New(1)); err == nil {
		t.Error("expected error for zero deck count")
	}
	if _, err := NewShoe(1, 0, randutil.New(1)); err == nil {
		t.Error("expected error for zero penetration")
	}
	if _, err := NewShoe(1, 1.5, randutil.New(1)); err == nil {
		t.Error("expected error for penetration > 1")
	}
	if _, err := NewShoe(1, 0.5, nil); err == nil {
		t.Error("expected error for nil rng without stack")
	}
}

func TestShoeContainsFullDecks(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(2, 1.0, randutil.New(42))
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[Card]int)
	for {
		card, err := shoe.Draw()
		if err != nil {
			break
		}
		seen[card]++
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
	for card, n := range seen {
		if n != 2 {
			t.Errorf("card %s appeared %d times, want 2", card, n)
		}
	}
}

func TestDrawPastEnd(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(1, 1.0, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	for range 52 {
		if _, err := shoe.Draw(); err != nil {
			t.Fatalf("unexpected draw error: %v", err)
		}
	}
	if _, err := shoe.Draw(); !errors.Is(err, ErrShoeExhausted) {
		t.Errorf("expected ErrShoeExhausted, got %v", err)
	}
}

func TestNeedsReshuffleAtPenetration(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(1, 0.5, randutil.New(7))
	if err != nil {
		t.Fatal(err)
	}
	for i := range 26 {
		if shoe.NeedsReshuffle() {
			t.Fatalf("NeedsReshuffle() true after only %d draws", i)
		}
		if _, err := shoe.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if !shoe.NeedsReshuffle() {
		t.Error("NeedsReshuffle() false after 26 of 52 cards")
	}
}

func TestReshuffleResetsCursor(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(1, 0.5, randutil.New(7))
	if err != nil {
		t.Fatal(err)
	}
	for range 30 {
		if _, err := shoe.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	shoe.Reshuffle()
	if shoe.Dealt() != 0 {
		t.Errorf("Dealt() = %d after reshuffle, want 0", shoe.Dealt())
	}
	if shoe.Remaining() != 52 {
		t.Errorf("Remaining() = %d after reshuffle, want 52", shoe.Remaining())
	}
}

func TestStackedShoeReplaysSequence(t *testing.T) {
	t.Parallel()
	stack := []Card{
		NewCard(Clubs, Ten),
		NewCard(Spades, Ace),
		NewCard(Diamonds, Nine),
		NewCard(Hearts, Six),
	}
	shoe, err := NewShoe(1, 1.0, nil, WithStack(stack))
	if err != nil {
		t.Fatal(err)
	}
	for round := range 3 {
		for i, want := range stack {
			got, err := shoe.Draw()
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("round %d card %d = %s, want %s", round, i, got, want)
			}
		}
		shoe.Reshuffle()
	}
}

func TestDeterministicShuffle(t *testing.T) {
	t.Parallel()
	a, _ := NewShoe(1, 1.0, randutil.New(99))
	b, _ := NewShoe(1, 1.0, randutil.New(99))
	for range 52 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatal("same seed produced different shuffles")
		}
	}
}

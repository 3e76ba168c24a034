package game

import "fmt"

// Player is a session participant: an identity and a bank. Hands exist
// only within the current round; the bank persists across rounds.
type Player struct {
	ID   string
	Name string
	bank int
}

// Bank returns the player's current balance.
func (p *Player) Bank() int {
	return p.bank
}

// debit removes amount from the bank. The caller validates affordability
// first; a negative balance here is an invariant breach, not a user error.
func (p *Player) debit(amount int) {
	p.bank -= amount
	if p.bank < 0 {
		panic(fmt.Sprintf("player %s bank went negative (%d)", p.ID, p.bank))
	}
}

// credit adds amount to the bank.
func (p *Player) credit(amount int) {
	p.bank += amount
}

// Bet pairs a player with a wager for a round start.
type Bet struct {
	PlayerID string
	Amount   int
}

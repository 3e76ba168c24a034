package game

import "errors"

var (
	// ErrInsufficientFunds is returned when a bet exceeds the player's
	// bank balance. Round starts are all-or-nothing: no bank is debited
	// when any single bet fails.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrIllegalAction is returned when an action is not in the legal set
	// for the active hand. State is left unchanged.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInvalidInsuranceTarget is returned when an insurance decision
	// targets a hand that was not offered insurance or has already decided.
	ErrInvalidInsuranceTarget = errors.New("invalid insurance target")

	// ErrIllegalStateTransition is returned when a command is issued in a
	// round state that does not permit it.
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrUnknownPlayer is returned when a command references a player id
	// that is not registered with the session.
	ErrUnknownPlayer = errors.New("unknown player")
)

package engine

import (
	"errors"
	"time"
)

// ErrInputClosed is returned when the input source stops while the game
// is waiting for a key.
var ErrInputClosed = errors.New("input closed")

// State is a phase of the game loop.
type State int

const (
	StatePlaying State = iota // a round is in progress
	StateMenu                 // a round ended, waiting for confirm or quit
	StateExit                 // Run is returning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateMenu:
		return "menu"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // still playing
	OutcomeWin                 // swarm destroyed
	OutcomeLose                // swarm reached the player's row
	OutcomeQuit                // player quit mid-round
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// RoundStats summarizes one round.
type RoundStats struct {
	Round   int
	Outcome Outcome
	Ticks   int
	Kills   int
	Total   int
	Elapsed time.Duration
}

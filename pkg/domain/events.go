package domain

import "time"

// Op identifies the kind of navigator mutation that produced an event.
type Op string

const (
	OpNext     Op = "next"
	OpPrevious Op = "previous"
	OpGoto     Op = "goto"
	OpFlip     Op = "flip"
)

// TransitionEvent represents a single navigator mutation.
type TransitionEvent[S comparable] struct {
	Timestamp time.Time `json:"timestamp"`
	Op        Op        `json:"op"`
	From      S         `json:"from"`
	To        S         `json:"to"`
	FromIndex int       `json:"from_index"`
	ToIndex   int       `json:"to_index"`
}

// Hooks defines callbacks for navigator observability.
// A zero Hooks is valid and fires nothing.
type Hooks[S comparable] struct {
	OnTransition func(*TransitionEvent[S])
}

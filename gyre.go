package gyre

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/gyre/pkg/domain"
)

// Navigator is a mutable cursor over a Domain. It holds exactly one current
// state; every mutating operation returns the pre-mutation state and leaves
// the navigator on the new one. A Navigator is not safe for concurrent
// mutation without external synchronization.
type Navigator[S comparable] struct {
	dom     *domain.Domain[S]
	current S
	logger  *slog.Logger
	hooks   domain.Hooks[S]
}

// Option defines a functional option for configuring a Navigator.
type Option[S comparable] func(*Navigator[S])

// WithLogger sets a custom structured logger. Transitions are logged at
// Debug level. The default logger discards everything.
func WithLogger[S comparable](logger *slog.Logger) Option[S] {
	return func(n *Navigator[S]) {
		n.logger = logger
	}
}

// WithHooks registers observability hooks fired on every mutation.
func WithHooks[S comparable](hooks domain.Hooks[S]) Option[S] {
	return func(n *Navigator[S]) {
		n.hooks = hooks
	}
}

// NewNavigator creates a Navigator positioned on start, which may be any
// member of the domain, not necessarily the canonical start state.
// It returns ErrUnknownState if start is not a member.
func NewNavigator[S comparable](dom *domain.Domain[S], start S, opts ...Option[S]) (*Navigator[S], error) {
	if !dom.Contains(start) {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownState, start)
	}

	n := &Navigator[S]{
		dom:     dom,
		current: start,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return n, nil
}

// Current returns the state the navigator is on. Pure query.
func (n *Navigator[S]) Current() S {
	return n.current
}

// Start returns the first state of the domain.
func (n *Navigator[S]) Start() S {
	return n.dom.Start()
}

// End returns the last state of the domain.
func (n *Navigator[S]) End() S {
	return n.dom.End()
}

// Len returns the number of states in the domain.
func (n *Navigator[S]) Len() int {
	return n.dom.Len()
}

// Domain returns the descriptor the navigator operates over.
func (n *Navigator[S]) Domain() *domain.Domain[S] {
	return n.dom
}

// Next advances to the following state, wrapping from end to start.
// It returns the previous state. For a single-state domain this is a no-op
// that still returns the sole state.
func (n *Navigator[S]) Next() S {
	i, _ := n.dom.IndexOf(n.current)
	return n.replace(domain.OpNext, n.dom.At(i+1))
}

// Previous retreats to the preceding state, wrapping from start to end.
// It returns the previous state.
func (n *Navigator[S]) Previous() S {
	i, _ := n.dom.IndexOf(n.current)
	return n.replace(domain.OpPrevious, n.dom.At(i-1))
}

// Goto jumps directly to target, with no wraparound arithmetic involved.
// It returns the pre-jump state, or ErrUnknownState if target is not a
// member of the domain. Jumping to the current state is a valid no-op.
func (n *Navigator[S]) Goto(target S) (S, error) {
	if !n.dom.Contains(target) {
		var zero S
		return zero, fmt.Errorf("%w: %v", domain.ErrUnknownState, target)
	}
	return n.replace(domain.OpGoto, target), nil
}

// replace swaps the current state and emits observability signals.
func (n *Navigator[S]) replace(op domain.Op, to S) S {
	prev := n.current
	n.current = to

	n.logger.Debug("transition",
		"op", string(op),
		"from", fmt.Sprintf("%v", prev),
		"to", fmt.Sprintf("%v", to),
	)

	if n.hooks.OnTransition != nil {
		fromIdx, _ := n.dom.IndexOf(prev)
		toIdx, _ := n.dom.IndexOf(to)
		n.hooks.OnTransition(&domain.TransitionEvent[S]{
			Timestamp: time.Now(),
			Op:        op,
			From:      prev,
			To:        to,
			FromIndex: fromIdx,
			ToIndex:   toIdx,
		})
	}

	return prev
}

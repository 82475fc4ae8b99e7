package domain

import (
	"fmt"
	"slices"
)

// Domain is an immutable, ordered, duplicate-free set of N >= 1 states.
// The declaration order is the total order: index 0 is the start state,
// index N-1 the end state. A Domain holds no external resources and may be
// shared read-only by any number of navigators and walkers.
type Domain[S comparable] struct {
	states []S
	index  map[S]int
}

// New builds a Domain from the given states in declaration order.
// It returns ErrEmptyDomain for an empty declaration and ErrDuplicateState
// if a state appears more than once.
func New[S comparable](states ...S) (*Domain[S], error) {
	if len(states) == 0 {
		return nil, ErrEmptyDomain
	}

	index := make(map[S]int, len(states))
	for i, s := range states {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateState, s)
		}
		index[s] = i
	}

	return &Domain[S]{
		states: slices.Clone(states),
		index:  index,
	}, nil
}

// Must is a New wrapper that panics on error. Intended for package-level
// domain declarations where the state list is a literal.
func Must[S comparable](states ...S) *Domain[S] {
	d, err := New(states...)
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of states in the domain.
func (d *Domain[S]) Len() int {
	return len(d.states)
}

// IndexOf returns the declaration index of the given state,
// or false if it is not a member.
func (d *Domain[S]) IndexOf(state S) (int, bool) {
	i, ok := d.index[state]
	return i, ok
}

// At returns the state at the given index. It is total: any integer is
// reduced modulo the domain size (floored, so negative indices wrap from
// the end).
func (d *Domain[S]) At(i int) S {
	n := len(d.states)
	i = ((i % n) + n) % n
	return d.states[i]
}

// Start returns the state at index 0.
func (d *Domain[S]) Start() S {
	return d.states[0]
}

// End returns the state at index N-1.
func (d *Domain[S]) End() S {
	return d.states[len(d.states)-1]
}

// Contains reports whether the given state is a member of the domain.
func (d *Domain[S]) Contains(state S) bool {
	_, ok := d.index[state]
	return ok
}

// IsBinary reports whether the domain has exactly two states, which is the
// precondition for the Flip capability.
func (d *Domain[S]) IsBinary() bool {
	return len(d.states) == 2
}

// States returns the states in declaration order. The returned slice is a
// copy; mutating it does not affect the domain.
func (d *Domain[S]) States() []S {
	return slices.Clone(d.states)
}

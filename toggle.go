package gyre

import (
	"github.com/aretw0/gyre/pkg/domain"
)

// Toggle is a Navigator over a binary domain with the additional Flip
// capability. The capability is gated at construction: NewToggle rejects
// any domain whose size is not exactly 2, so Flip can never be reached on
// a domain that does not support it.
type Toggle[S comparable] struct {
	*Navigator[S]
}

// NewToggle creates a Toggle positioned on start.
// It returns ErrNotBinary if the domain does not have exactly two states,
// and ErrUnknownState if start is not a member.
func NewToggle[S comparable](dom *domain.Domain[S], start S, opts ...Option[S]) (*Toggle[S], error) {
	if !dom.IsBinary() {
		return nil, domain.ErrNotBinary
	}
	nav, err := NewNavigator(dom, start, opts...)
	if err != nil {
		return nil, err
	}
	return &Toggle[S]{Navigator: nav}, nil
}

// Flip toggles to the other state and returns the previous one.
// On a two-state domain this is exactly Next with a more honest name.
func (t *Toggle[S]) Flip() S {
	i, _ := t.dom.IndexOf(t.current)
	return t.replace(domain.OpFlip, t.dom.At(i+1))
}

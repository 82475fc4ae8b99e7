package gyre

import (
	"github.com/aretw0/gyre/pkg/domain"
)

// Walker is a lazy, bidirectional sequence of states. It owns a single
// cursor shared by both ends: forward and backward consumption may be
// interleaved, and in bounded mode they share one exhaustion point.
//
// A cyclic walker never exhausts. A bounded walker exhausts after yielding
// the domain's end state going forward, or its start state going backward —
// walking stops at the domain boundary in the direction of travel rather
// than emitting a fixed count.
//
// Walkers are not restartable; construct a fresh one from a navigator to
// walk again. A single walker must not be consumed from two goroutines
// without external locking.
type Walker[S comparable] struct {
	dom     *domain.Domain[S]
	current S
	cyclic  bool
	done    bool
}

// Walk returns a cyclic walker starting at the navigator's current state.
// The walker snapshots the position at creation and never observes or
// mutates the navigator afterwards.
func (n *Navigator[S]) Walk() *Walker[S] {
	return &Walker[S]{dom: n.dom, current: n.current, cyclic: true}
}

// WalkOnce returns a bounded walker starting at the navigator's current
// state. Forward consumption runs to the domain's end state; backward
// consumption runs to its start state.
func (n *Navigator[S]) WalkOnce() *Walker[S] {
	return &Walker[S]{dom: n.dom, current: n.current, cyclic: false}
}

// Cyclic reports whether the walker wraps around forever.
func (w *Walker[S]) Cyclic() bool {
	return w.cyclic
}

// Exhausted reports whether the walker has terminated. Always false for
// cyclic walkers.
func (w *Walker[S]) Exhausted() bool {
	return w.done
}

// Next yields the cursor state and advances. It returns false once a
// bounded walker has passed the domain's end state.
func (w *Walker[S]) Next() (S, bool) {
	if w.done {
		var zero S
		return zero, false
	}
	if !w.cyclic && w.current == w.dom.End() {
		w.done = true
	}

	emitted := w.current
	i, _ := w.dom.IndexOf(w.current)
	w.current = w.dom.At(i + 1)
	return emitted, true
}

// Prev yields the cursor state and retreats. It returns false once a
// bounded walker has passed the domain's start state. Prev shares the
// cursor and exhaustion point with Next.
func (w *Walker[S]) Prev() (S, bool) {
	if w.done {
		var zero S
		return zero, false
	}
	if !w.cyclic && w.current == w.dom.Start() {
		w.done = true
	}

	emitted := w.current
	i, _ := w.dom.IndexOf(w.current)
	w.current = w.dom.At(i - 1)
	return emitted, true
}

// Take consumes up to k states forward. Fewer than k are returned only if
// the walker exhausts first.
func (w *Walker[S]) Take(k int) []S {
	out := make([]S, 0, k)
	for range k {
		s, ok := w.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// TakeBack consumes up to k states backward.
func (w *Walker[S]) TakeBack(k int) []S {
	out := make([]S, 0, k)
	for range k {
		s, ok := w.Prev()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// Collect drains the walker forward. It returns nil for cyclic walkers,
// which never terminate.
func (w *Walker[S]) Collect() []S {
	if w.cyclic {
		return nil
	}
	var out []S
	for {
		s, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

// CollectBack drains the walker backward. It returns nil for cyclic
// walkers.
func (w *Walker[S]) CollectBack() []S {
	if w.cyclic {
		return nil
	}
	var out []S
	for {
		s, ok := w.Prev()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

package gyre_test

import (
	"errors"
	"testing"

	"github.com/aretw0/gyre"
	"github.com/aretw0/gyre/pkg/domain"
)

func phases(t *testing.T) *domain.Domain[string] {
	t.Helper()
	d, err := domain.New("start", "next", "rollback", "error", "end")
	if err != nil {
		t.Fatalf("declaring domain: %v", err)
	}
	return d
}

func TestNavigator_Queries(t *testing.T) {
	nav, err := gyre.NewNavigator(phases(t), "rollback")
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}

	if nav.Len() != 5 {
		t.Errorf("Len() = %d, want 5", nav.Len())
	}
	if nav.Start() != "start" {
		t.Errorf("Start() = %q, want 'start'", nav.Start())
	}
	if nav.End() != "end" {
		t.Errorf("End() = %q, want 'end'", nav.End())
	}

	// Current is a pure query: repeated calls never move the cursor.
	for range 3 {
		if nav.Current() != "rollback" {
			t.Fatalf("Current() = %q, want 'rollback'", nav.Current())
		}
	}
}

func TestNavigator_UnknownStart(t *testing.T) {
	_, err := gyre.NewNavigator(phases(t), "bogus")
	if !errors.Is(err, domain.ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}

func TestNavigator_Wraparound(t *testing.T) {
	d := phases(t)

	// 1. Forward wrap: from end, Next returns the old end and lands on start.
	nav, _ := gyre.NewNavigator(d, d.End())
	if prev := nav.Next(); prev != "end" {
		t.Errorf("Next() returned %q, want 'end'", prev)
	}
	if nav.Current() != "start" {
		t.Errorf("current = %q after wrap, want 'start'", nav.Current())
	}

	// 2. Backward wrap: from start, Previous returns the old start and
	// lands on end.
	nav, _ = gyre.NewNavigator(d, d.Start())
	if prev := nav.Previous(); prev != "start" {
		t.Errorf("Previous() returned %q, want 'start'", prev)
	}
	if nav.Current() != "end" {
		t.Errorf("current = %q after wrap, want 'end'", nav.Current())
	}
}

func TestNavigator_NextPreviousRoundTrip(t *testing.T) {
	d := phases(t)
	for _, origin := range d.States() {
		nav, _ := gyre.NewNavigator(d, origin)
		nav.Next()
		nav.Previous()
		if nav.Current() != origin {
			t.Errorf("round trip from %q landed on %q", origin, nav.Current())
		}
	}
}

func TestNavigator_Goto(t *testing.T) {
	nav, _ := gyre.NewNavigator(phases(t), "error")

	prev, err := nav.Goto("next")
	if err != nil {
		t.Fatalf("Goto failed: %v", err)
	}
	if prev != "error" {
		t.Errorf("Goto returned %q, want 'error'", prev)
	}
	if nav.Current() != "next" {
		t.Errorf("current = %q, want 'next'", nav.Current())
	}

	// Jumping to the current state is a valid no-op.
	prev, err = nav.Goto("next")
	if err != nil {
		t.Fatalf("idempotent Goto failed: %v", err)
	}
	if prev != "next" || nav.Current() != "next" {
		t.Errorf("idempotent Goto: prev=%q current=%q, want 'next'/'next'", prev, nav.Current())
	}

	// Unknown targets are rejected and the cursor does not move.
	if _, err := nav.Goto("bogus"); !errors.Is(err, domain.ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	if nav.Current() != "next" {
		t.Errorf("cursor moved on rejected Goto: %q", nav.Current())
	}
}

func TestNavigator_SingleStateDomain(t *testing.T) {
	d, err := domain.New("only")
	if err != nil {
		t.Fatal(err)
	}
	nav, _ := gyre.NewNavigator(d, "only")

	// next/previous are no-ops that still return the sole state.
	if prev := nav.Next(); prev != "only" || nav.Current() != "only" {
		t.Errorf("Next on N=1: prev=%q current=%q", prev, nav.Current())
	}
	if prev := nav.Previous(); prev != "only" || nav.Current() != "only" {
		t.Errorf("Previous on N=1: prev=%q current=%q", prev, nav.Current())
	}
	if prev, err := nav.Goto("only"); err != nil || prev != "only" {
		t.Errorf("Goto on N=1: prev=%q err=%v", prev, err)
	}
}

func TestNavigator_Hooks(t *testing.T) {
	var events []*domain.TransitionEvent[string]
	hooks := domain.Hooks[string]{
		OnTransition: func(e *domain.TransitionEvent[string]) {
			events = append(events, e)
		},
	}

	nav, err := gyre.NewNavigator(phases(t), "start", gyre.WithHooks[string](hooks))
	if err != nil {
		t.Fatal(err)
	}

	nav.Next()
	if _, err := nav.Goto("end"); err != nil {
		t.Fatal(err)
	}
	nav.Previous()

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	want := []struct {
		op       domain.Op
		from, to string
	}{
		{domain.OpNext, "start", "next"},
		{domain.OpGoto, "next", "end"},
		{domain.OpPrevious, "end", "error"},
	}
	for i, w := range want {
		e := events[i]
		if e.Op != w.op || e.From != w.from || e.To != w.to {
			t.Errorf("event %d = {%s %s %s}, want {%s %s %s}",
				i, e.Op, e.From, e.To, w.op, w.from, w.to)
		}
	}
}

/*
Package gyre gives any closed, ordered set of named states a uniform set of
cyclic-navigation behaviors: advance, retreat, jump, bounded and unbounded
bidirectional traversal, and a specialized two-state toggle.

It is aimed at small finite-state machines (protocol phases, retry/rollback
sequences, binary flags) where the traversal mechanics should be supplied
automatically rather than hand-written per state set. The only topology is
the fixed cycle implied by declaration order; transition legality is never
validated (any state may jump to any other).

# Concept

A Domain is the immutable, ordered set of states. A Navigator is a mutable
cursor over a Domain: every mutating operation returns the previous state
and leaves the navigator on the new one. Walkers are lazy bidirectional
sequences snapshotted from a navigator's position; once created they own an
independent cursor and never touch the originating navigator again.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/gyre"
		"github.com/aretw0/gyre/pkg/domain"
	)

	func main() {
		phases := domain.Must("start", "next", "rollback", "error", "end")

		nav, err := gyre.NewNavigator(phases, "rollback")
		if err != nil {
			log.Fatal(err)
		}

		// Mutations return the previous state.
		prev := nav.Next() // prev == "rollback", current == "error"
		fmt.Println(prev, nav.Current())

		// Bounded walk backward from the current position.
		walk := nav.WalkOnce()
		fmt.Println(walk.CollectBack()) // [error rollback next start]
	}

# Two-state domains

Domains with exactly two states additionally support Flip via a dedicated
constructor. The capability is gated at construction, never at call time:

	coin := domain.Must("heads", "tails")
	toggle, _ := gyre.NewToggle(coin, "heads")
	toggle.Flip() // returns "heads", current is now "tails"
*/
package gyre

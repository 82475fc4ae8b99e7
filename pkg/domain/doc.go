/*
Package domain contains the core domain models for the Gyre engine.

It defines the Domain descriptor (the fixed, ordered set of states that
navigation operates over), the sentinel errors of the library, and the
lifecycle event types used for observability. This package is kept pure and
free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Domain: An immutable, ordered, duplicate-free sequence of states. Index 0
    is the canonical start state, index N-1 the canonical end state.
  - TransitionEvent: A snapshot of a single navigator mutation (op, from, to).
  - Hooks: Callbacks fired by navigators for observability.
*/
package domain

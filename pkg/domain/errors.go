package domain

import "errors"

// ErrEmptyDomain is returned when a domain is declared with no states.
var ErrEmptyDomain = errors.New("domain requires at least one state")

// ErrDuplicateState is returned when a domain declaration repeats a state.
var ErrDuplicateState = errors.New("duplicate state in domain")

// ErrUnknownState is returned when a state is not a member of the domain.
var ErrUnknownState = errors.New("state not in domain")

// ErrNotBinary is returned when a two-state capability (Flip) is requested
// on a domain whose size is not exactly 2.
var ErrNotBinary = errors.New("domain is not binary")

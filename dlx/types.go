// Package dlx defines core types, configuration options, and sentinel
// errors for the dancing-links exact-cover solver.
//
// An exact-cover instance is a universe of items 0..numItems-1 and a
// list of options, each option covering a distinct subset of items.
// A solution is a selection of options whose item sets partition the
// universe: every item covered exactly once.
//
// Errors (sentinel):
//
//	– ErrInvalidInput      class sentinel; every construction error wraps it.
//	– ErrNonPositiveItems  if NewMatrix is called with numItems <= 0.
//	– ErrEmptyOption       if AddOption is called with no items.
//	– ErrItemOutOfRange    if an option references an item outside [0, numItems).
//	– ErrDuplicateItem     if an option references the same item twice.
//
// Example usage:
//
//	m, err := dlx.NewMatrix(6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, err := m.AddOption(0, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("first option:", id)
package dlx

import (
	"errors"
	"math"
)

// Sentinel errors returned by the matrix builder.
var (
	// ErrInvalidInput is the class sentinel for every malformed
	// construction call. The specific sentinels below wrap it, so
	// callers can match the whole class with errors.Is(err, ErrInvalidInput).
	ErrInvalidInput = errors.New("dlx: invalid input")

	// ErrNonPositiveItems indicates NewMatrix was called with numItems <= 0.
	ErrNonPositiveItems = errors.New("dlx: item count must be positive")

	// ErrEmptyOption indicates AddOption was called with an empty item set.
	ErrEmptyOption = errors.New("dlx: option must cover at least one item")

	// ErrItemOutOfRange indicates an option item index outside [0, numItems).
	ErrItemOutOfRange = errors.New("dlx: option item out of range")

	// ErrDuplicateItem indicates the same item appears twice in one option.
	ErrDuplicateItem = errors.New("dlx: option items must be distinct")
)

// RowID identifies one option (row) of the matrix. IDs are assigned
// sequentially by AddOption starting at 0 and remain stable for the
// lifetime of the Matrix.
type RowID int

// Options configures the behavior of a Matrix.
//
// Verify       – if true, re-check mesh structural invariants (link symmetry,
//
//	column size counters) after every top-level Solve/SolveAll
//	and panic on violation. Intended for debugging and tests;
//	the check walks the whole mesh, so it is O(nodes).
//
// MaxSolutions – cap on the number of solutions SolveAll enumerates.
//
//	Must be > 0. Default is math.MaxInt (enumerate everything).
type Options struct {
	Verify       bool // re-verify mesh invariants after each solve
	MaxSolutions int  // stop SolveAll after this many solutions
}

// Option represents a functional option for configuring a Matrix.
type Option func(*Options)

// WithVerify enables post-solve verification of the mesh invariants.
// A violation indicates a bug in the cover/uncover bookkeeping, never
// a property of the input, so it panics rather than returning an error.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithMaxSolutions caps the number of solutions SolveAll reports.
// Must pass a positive value; zero or negative values panic.
// Default (if not set) is math.MaxInt (no cap).
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early, matching the
			// option-constructor convention used across the library.
			panic("dlx: MaxSolutions must be positive")
		}
		o.MaxSolutions = n
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults used when no functional options are supplied.
//
// Defaults:
//   - Verify:       false (no post-solve invariant checking).
//   - MaxSolutions: math.MaxInt (SolveAll enumerates every solution).
func DefaultOptions() Options {
	return Options{
		Verify:       false,
		MaxSolutions: math.MaxInt,
	}
}

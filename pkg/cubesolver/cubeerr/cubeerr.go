// Package cubeerr defines the sentinel error kinds shared across the solver.
//
// Callers use errors.Is against these sentinels; wrapping code attaches context
// with fmt.Errorf("...: %w", ...) so the sentinel survives the wrap.
package cubeerr

import "errors"

var (
	// ErrUnknownMove is returned when a move-name string is outside the 18 generators.
	ErrUnknownMove = errors.New("unknown move")

	// ErrInvalidSticker is returned when a face grid cannot be decoded: some
	// corner or edge color set does not match any cubie.
	ErrInvalidSticker = errors.New("invalid sticker configuration")

	// ErrInvalidState is returned when a decoded state violates one of the
	// four physical-realizability invariants.
	ErrInvalidState = errors.New("invalid cube state")

	// ErrPDBNotFound is returned when pattern database cache files are missing
	// and building on demand was disabled.
	ErrPDBNotFound = errors.New("pattern database not found")

	// ErrNoSolution is returned when IDA* exhausts max_iterations without
	// finding a solution. This is a normal return value, not a fatal error.
	ErrNoSolution = errors.New("no solution found within iteration bound")
)

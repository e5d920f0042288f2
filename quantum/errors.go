package quantum

import "errors"

// Error classes for the simulation core. All three signal programming
// errors rather than expected runtime conditions: they propagate to the
// caller and are never retried.
var (
	// ErrInvalidQubitCount reports a register or circuit constructed with
	// an unusable qubit count.
	ErrInvalidQubitCount = errors.New("quantum: invalid qubit count")

	// ErrUnnormalizedState reports a register whose total probability has
	// drifted from 1 beyond tolerance. This means a gate implementation is
	// broken, not that the caller did anything wrong.
	ErrUnnormalizedState = errors.New("quantum: unnormalized state")

	// ErrDecode reports a measurement outcome outside the decoder's
	// expected domain.
	ErrDecode = errors.New("quantum: undecodable outcome")
)

package dice

import "errors"

var (
	// ErrInvalidState is returned when charge/release is called out of
	// sequence. The request is rejected; the simulation is unaffected.
	ErrInvalidState = errors.New("dice: invalid charge state")

	// ErrAlreadyInFlight is returned when a throw is requested while the
	// previous throw has not been read out yet.
	ErrAlreadyInFlight = errors.New("dice: throw already in flight")

	// ErrNotSettled is returned when an outcome read is attempted before the
	// die has settled.
	ErrNotSettled = errors.New("dice: die not settled")
)

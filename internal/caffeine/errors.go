package caffeine

import "errors"

var (
	// ErrInvalidParameter marks a precondition violation (non-positive half-life, zero grid step, ...).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDailyLimitExceeded is returned when a schedule sums above the daily maximum.
	ErrDailyLimitExceeded = errors.New("daily caffeine limit exceeded")
	// ErrGapTooShort is returned when two consecutive doses are closer than the minimum gap.
	ErrGapTooShort = errors.New("dose gap below minimum")
	// ErrAfterCutoff is returned when a dose is timestamped after the caffeine cutoff.
	ErrAfterCutoff = errors.New("dose after caffeine cutoff")
)

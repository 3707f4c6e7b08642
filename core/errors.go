package core

import "errors"

// Configuration errors, reported once at engine construction.
var (
	ErrNilChannel    = errors.New("duty channel is nil")
	ErrRangeInverted = errors.New("duty range min exceeds max")
	ErrRangeOverMax  = errors.New("duty range exceeds channel maximum")
)

// Per-call parameter errors. These leave effect state and the channel
// untouched.
var (
	ErrZeroPeriod = errors.New("breathing period must be nonzero")
)

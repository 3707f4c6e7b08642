package core

// DutyValue is a raw duty-cycle value as accepted by the output hardware.
type DutyValue uint32

// DutyChannel is the abstract PWM output the effect engine drives.
// Platform-specific implementations handle actual hardware control;
// the core only ever writes duty values through this interface.
type DutyChannel interface {
	// SetDuty sets the output duty cycle.
	// value: 0 (fully off) to MaxDuty() (fully on).
	SetDuty(value DutyValue) error

	// MaxDuty returns the maximum duty value the hardware accepts
	// (e.g. 255 for an 8-bit output).
	MaxDuty() DutyValue
}

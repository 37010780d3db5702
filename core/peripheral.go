package core

// CountdownTimer is the abstract countdown-timer peripheral the timebase runs
// on: a register that free-runs downward from the reload value to zero,
// reloads, and raises a wrap condition on each underflow. Platform code
// (targets/) implements this over the real registers; tests use a simulated
// implementation.
//
// Once bound via Init the timebase owns the peripheral exclusively. No other
// subsystem may touch its registers until Free returns it.
type CountdownTimer interface {
	// SetCoreClockSource selects the core clock as the countdown source.
	SetCoreClockSource()

	// SetReload writes the reload register. The value must not exceed
	// MaxReload.
	SetReload(value uint32)

	// Reload returns the reload register value.
	Reload() uint32

	// Value returns the live countdown register value.
	Value() uint32

	// ClearValue clears the live countdown register.
	ClearValue()

	// CheckWrapped reports whether the counter underflowed since the last
	// call. Reading clears the condition, so call it exactly once per
	// logical check and account for the result immediately.
	CheckWrapped() bool

	// EnableInterrupt enables the underflow interrupt.
	EnableInterrupt()

	// DisableInterrupt disables the underflow interrupt.
	DisableInterrupt()

	// StartCounter starts counting. Configuration is untouched.
	StartCounter()

	// StopCounter stops counting. Configuration is untouched.
	StopCounter()

	// MaxReload returns the largest value the reload register can hold
	// (0x00FFFFFF on the 24-bit SysTick).
	MaxReload() uint32
}

// mustTimer returns the bound peripheral or panics. Calling any query or
// control operation before Init or after Free is a programmer error, not a
// recoverable condition.
func mustTimer() CountdownTimer {
	if timer == nil {
		panic("timebase not initialized")
	}
	return timer
}

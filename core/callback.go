package core

// callback is the single tick-callback slot. Written by mainline code under
// the critical section, read by the interrupt body.
var callback func(tick uint64)

// SetCallback registers fn to run on every tick, receiving the
// post-increment tick count. It executes in interrupt context with
// interrupts masked: keep it short and never block, since it delays both
// further ticks and mainline critical sections. Calling SetCallback or
// ClearCallback from inside a running callback is allowed and takes effect
// on the next tick.
func SetCallback(fn func(tick uint64)) {
	state := disableInterrupts()
	callback = fn
	restoreInterrupts(state)
}

// ClearCallback removes the registered tick callback.
func ClearCallback() {
	state := disableInterrupts()
	callback = nil
	restoreInterrupts(state)
}

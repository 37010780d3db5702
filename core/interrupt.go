package core

import "sync/atomic"

// Interrupt is the tick entry point, called once per underflow event. It is
// either bound to the hardware vector by a target adapter (see
// targets/cortexm) or invoked by an external vector dispatcher in builds
// that multiplex the vector; the body does not depend on which adapter
// called it.
func Interrupt() {
	state := disableInterrupts()

	tick := atomic.AddUint64(&tickCount, 1)

	// The wrap flag must be consumed even though the event is already
	// known, or the exception stays pending and refires.
	mustTimer().CheckWrapped()

	// The slot is latched before the call: a callback that swaps or
	// clears the registration from inside itself takes effect on the
	// next tick.
	if cb := callback; cb != nil {
		cb(tick)
	}

	restoreInterrupts(state)
}

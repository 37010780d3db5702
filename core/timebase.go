package core

import "sync/atomic"

// Timebase state shared between mainline code and the tick interrupt. The
// tick counter is written only by the interrupt body; mainline code reads it
// atomically (single scalar) or snapshots it together with the peripheral
// registers inside a critical section (multi-field reads). Configuration is
// written only by Init, with the interrupt disabled.
var (
	// timer is the bound countdown peripheral. Non-nil means initialized.
	timer CountdownTimer

	// tickCount is incremented exactly once per underflow event.
	tickCount uint64

	clockFreq uint32 // countdown source clock in Hz
	tickFreq  uint32 // underflow (tick) frequency in Hz
	reload    uint32 // reload register value, clockFreq/tickFreq - 1
)

// Init binds the countdown peripheral and configures the tick rate.
//
// The peripheral's interrupt is disabled while the registers are
// reprogrammed so a stale handler cannot fire mid-configuration. Counting is
// not started; use Start.
//
// tickFreqHz should evenly divide clockFreqHz; the remainder is discarded.
// Panics if either frequency is zero or the derived reload value does not
// fit the peripheral's reload register.
func Init(t CountdownTimer, clockFreqHz, tickFreqHz uint32) {
	if t == nil {
		panic("timebase: nil peripheral")
	}
	if clockFreqHz == 0 || tickFreqHz == 0 {
		panic("timebase: clock and tick frequencies must be non-zero")
	}
	r := clockFreqHz/tickFreqHz - 1
	if r > t.MaxReload() {
		panic("timebase: reload value exceeds peripheral register range")
	}

	t.DisableInterrupt()
	t.SetCoreClockSource()
	t.SetReload(r)
	t.ClearValue()
	t.EnableInterrupt()

	state := disableInterrupts()
	atomic.StoreUint64(&tickCount, 0)
	atomic.StoreUint32(&clockFreq, clockFreqHz)
	atomic.StoreUint32(&tickFreq, tickFreqHz)
	reload = r
	timer = t
	restoreInterrupts(state)

	DebugPrintln("timebase: init reload=" + utoa(r))
}

// Free releases the countdown peripheral and returns it to the caller.
// The timebase is uninitialized afterwards: every operation except Init
// panics until Init is called again. The counter is not stopped first.
func Free() CountdownTimer {
	state := disableInterrupts()
	t := mustTimer()
	timer = nil
	restoreInterrupts(state)
	return t
}

// Initialized reports whether a peripheral is currently bound.
func Initialized() bool {
	return timer != nil
}

// Start starts the countdown. Init must have been called.
func Start() {
	state := disableInterrupts()
	mustTimer().StartCounter()
	restoreInterrupts(state)
}

// Stop halts the countdown. Configuration and counters are untouched; use
// Start to resume.
func Stop() {
	state := disableInterrupts()
	mustTimer().StopCounter()
	restoreInterrupts(state)
}

// Reset zeroes the live register and the tick counter in a single critical
// section so queries observe a consistent zero point. A wrap pending from
// before the zero point is consumed rather than carried over. Run state is
// unchanged: a running counter keeps running.
func Reset() {
	state := disableInterrupts()
	t := mustTimer()
	t.ClearValue()
	t.CheckWrapped()
	atomic.StoreUint64(&tickCount, 0)
	restoreInterrupts(state)
}

// Ticks returns the number of underflow events since Init or the last Reset.
func Ticks() uint64 {
	mustTimer()
	return atomic.LoadUint64(&tickCount)
}

// ClockCycles returns the number of source clock cycles elapsed since Init
// or the last Reset, combining the tick counter with a live read of the
// still-counting register.
//
// The snapshot of {tick counter, register value, wrap flag} is taken with
// interrupts masked. If the wrap flag is set the counter underflowed after
// the tick counter was read but before the tick interrupt could run; the
// pending tick is added locally. The flag read consumes it, so the interrupt
// that runs after this section increments the real counter exactly once and
// the period is never counted twice.
func ClockCycles() uint64 {
	state := disableInterrupts()
	t := mustTimer()
	ticks := atomic.LoadUint64(&tickCount)
	r := reload
	val := t.Value()
	if t.CheckWrapped() {
		ticks++
	}
	restoreInterrupts(state)

	return (uint64(r)+1)*ticks + uint64(r-val)
}

// Millis returns elapsed milliseconds at tick resolution.
func Millis() uint64 {
	mustTimer()
	return atomic.LoadUint64(&tickCount) * 1000 / uint64(atomic.LoadUint32(&tickFreq))
}

// Micros returns elapsed microseconds at clock-cycle resolution.
//
// The clock frequency must be at least 1 MHz, and the division is exact only
// when it is a whole number of MHz; otherwise the result truncates toward
// zero.
func Micros() uint64 {
	mhz := atomic.LoadUint32(&clockFreq) / 1000000
	return ClockCycles() / uint64(mhz)
}

// ClockFreq returns the configured source clock frequency in Hz.
func ClockFreq() uint32 {
	mustTimer()
	return atomic.LoadUint32(&clockFreq)
}

// TickFreq returns the configured tick frequency in Hz.
func TickFreq() uint32 {
	mustTimer()
	return atomic.LoadUint32(&tickFreq)
}

// ReloadValue returns the configured countdown reload value.
func ReloadValue() uint32 {
	mustTimer()
	return reload
}

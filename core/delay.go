package core

// Busy-wait delay helpers on top of the query API. Both block the calling
// context for the full duration and have no timeout: if the timebase is
// stopped or freed while a wait is in flight, the loop never terminates.
// That hazard belongs to the caller.

// DelayMillis busy-waits until at least ms milliseconds have elapsed.
// Resolution is one tick.
func DelayMillis(ms uint64) {
	target := Millis() + ms
	for Millis() < target {
	}
}

// DelayMicros busy-waits until at least us microseconds have elapsed.
// Resolution is one clock cycle, subject to the Micros truncation rule.
func DelayMicros(us uint64) {
	target := Micros() + us
	for Micros() < target {
	}
}

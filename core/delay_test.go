package core

import (
	"testing"
	"time"
)

func TestDelayMicros(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	// Free-run the simulated counter: each poll of the live register moves
	// time forward, so the busy-wait makes progress. Start from a full
	// period so the short wait stays clear of the underflow boundary.
	s.value = s.reload
	s.autoAdvance = 7

	before := Micros()
	DelayMicros(50)
	after := Micros()

	if after < before+50 {
		t.Errorf("Expected at least 50 us elapsed, got %d", after-before)
	}
	// The wait overshoots by at most one poll step plus the cycles the
	// measurement reads themselves consume.
	if after > before+50+5*uint64(s.autoAdvance) {
		t.Errorf("Delay overshot: %d us elapsed", after-before)
	}
}

func TestDelayMicrosZero(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()
	s.value = s.reload
	s.autoAdvance = 7

	DelayMicros(0) // must return promptly
}

func TestDelayMillis(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	// Millis only advances with delivered tick interrupts, so simulate the
	// hardware vector from a second context.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				s.wrapped = true
				Interrupt()
				time.Sleep(time.Millisecond)
			}
		}
	}()

	before := Millis()
	DelayMillis(3)
	after := Millis()
	close(stop)
	<-done

	if after < before+3 {
		t.Errorf("Expected at least 3 ms elapsed, got %d", after-before)
	}
}

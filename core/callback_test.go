package core

import "testing"

func TestCallbackDelivery(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	var got []uint64
	SetCallback(func(tick uint64) {
		got = append(got, tick)
	})

	const n = 5
	for i := 0; i < n; i++ {
		s.fireTick()
	}

	if len(got) != n {
		t.Fatalf("Expected %d callback invocations, got %d", n, len(got))
	}
	for i, tick := range got {
		if tick != uint64(i+1) {
			t.Errorf("Invocation %d: expected tick %d, got %d", i, i+1, tick)
		}
	}
}

func TestCallbackSeesCommittedTick(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	SetCallback(func(tick uint64) {
		// The counter already includes the current event.
		if tick != Ticks() {
			t.Errorf("Callback saw tick %d but counter reads %d", tick, Ticks())
		}
	})
	for i := 0; i < 3; i++ {
		s.fireTick()
	}
}

func TestClearCallbackStopsDelivery(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	calls := 0
	SetCallback(func(tick uint64) { calls++ })
	s.fireTick()
	ClearCallback()
	s.fireTick()
	s.fireTick()

	if calls != 1 {
		t.Errorf("Expected 1 invocation, got %d", calls)
	}
}

func TestCallbackMaySwapItself(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	var order []string
	second := func(tick uint64) {
		order = append(order, "second")
	}
	SetCallback(func(tick uint64) {
		order = append(order, "first")
		// Takes effect on the next tick; the current invocation already
		// latched the old slot.
		SetCallback(second)
	})

	s.fireTick()
	s.fireTick()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

func TestCallbackMayClearItself(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	calls := 0
	SetCallback(func(tick uint64) {
		calls++
		ClearCallback()
	})

	s.fireTick()
	s.fireTick()

	if calls != 1 {
		t.Errorf("Expected 1 invocation, got %d", calls)
	}
}

func TestCallbackSurvivesReset(t *testing.T) {
	s := newTimebase(t, 1_000_000, 1_000)
	Start()

	var got []uint64
	SetCallback(func(tick uint64) {
		got = append(got, tick)
	})

	s.fireTick()
	s.fireTick()
	Reset()
	s.fireTick()

	// Tick numbering restarts at 1 after Reset.
	want := []uint64{1, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

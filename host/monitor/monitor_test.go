package monitor

import (
	"strings"
	"testing"
	"time"
)

func TestParseReport(t *testing.T) {
	r, err := ParseReport("tick=5 cycles=5499 ms=5 us=5499")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Tick != 5 || r.Cycles != 5499 || r.Millis != 5 || r.Micros != 5499 {
		t.Errorf("Wrong report: %+v", r)
	}
}

func TestParseReportRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"tick=5",
		"tick=5 cycles=9 ms=1 us=x",
		"tick=5 cycles=9 ms=1 bogus=2",
		"tick 5 cycles 9",
	}
	for _, line := range bad {
		if _, err := ParseReport(line); err == nil {
			t.Errorf("Expected error for %q", line)
		}
	}
}

func TestMonitorDetectsBackwardsCounters(t *testing.T) {
	m := New()
	m.Observe(Report{Tick: 10, Cycles: 10000, Millis: 10, Micros: 10000})
	m.Observe(Report{Tick: 9, Cycles: 9000, Millis: 9, Micros: 9000})

	v := m.Violations()
	if len(v) != 3 {
		t.Fatalf("Expected 3 violations (tick, cycles, us), got %d: %v", len(v), v)
	}
}

func TestMonitorAcceptsMonotoneStream(t *testing.T) {
	m := New()
	for i := uint64(1); i <= 10; i++ {
		m.Observe(Report{Tick: i, Cycles: i * 1000, Millis: i, Micros: i * 1000})
	}
	if v := m.Violations(); len(v) != 0 {
		t.Errorf("Unexpected violations: %v", v)
	}
	if m.Count() != 10 {
		t.Errorf("Expected 10 reports, got %d", m.Count())
	}
	last, ok := m.Last()
	if !ok || last.Tick != 10 {
		t.Errorf("Wrong last report: %+v ok=%v", last, ok)
	}
}

func TestMonitorMicrosFloor(t *testing.T) {
	m := New()
	m.Observe(Report{Tick: 5, Cycles: 5499, Millis: 5, Micros: 4999})
	if v := m.Violations(); len(v) != 1 {
		t.Errorf("Expected 1 violation, got %v", v)
	}
}

func TestDrift(t *testing.T) {
	m := New()
	base := time.Now()
	m.observeAt(Report{Micros: 0}, base)
	// Device reports 1.001s elapsed over exactly 1s of host time.
	m.observeAt(Report{Tick: 1001, Cycles: 1_001_000, Millis: 1001, Micros: 1_001_000}, base.Add(time.Second))

	m.mu.Lock()
	ppm, ok := m.driftAt(base.Add(time.Second))
	m.mu.Unlock()
	if !ok {
		t.Fatal("Drift unavailable")
	}
	if ppm < 900 || ppm > 1100 {
		t.Errorf("Expected ~1000 ppm fast, got %f", ppm)
	}
}

func TestRunSkipsDebugLines(t *testing.T) {
	input := strings.NewReader(
		"timebase: init reload=47999\n" +
			"tick=1 cycles=48000 ms=1 us=1000\n" +
			"\n" +
			"tick=2 cycles=96000 ms=2 us=2000\n")

	var other []string
	m := New()
	if err := m.Run(input, func(line string) { other = append(other, line) }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if m.Count() != 2 {
		t.Errorf("Expected 2 reports, got %d", m.Count())
	}
	if len(other) != 1 || other[0] != "timebase: init reload=47999" {
		t.Errorf("Wrong passthrough lines: %v", other)
	}
}

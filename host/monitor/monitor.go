// Package monitor consumes the telemetry stream the demo firmware emits and
// checks it against the guarantees the timebase makes: ticks and cycle
// counts never go backwards, and the finer-grained readings stay consistent
// with the coarser ones.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Report is one parsed telemetry line.
type Report struct {
	Tick   uint64
	Cycles uint64
	Millis uint64
	Micros uint64
}

// ParseReport parses a telemetry line of the form
// "tick=<n> cycles=<n> ms=<n> us=<n>".
func ParseReport(line string) (Report, error) {
	var r Report
	seen := 0
	for _, field := range strings.Fields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return Report{}, fmt.Errorf("malformed field %q", field)
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return Report{}, fmt.Errorf("field %q: %w", field, err)
		}
		switch key {
		case "tick":
			r.Tick = n
		case "cycles":
			r.Cycles = n
		case "ms":
			r.Millis = n
		case "us":
			r.Micros = n
		default:
			return Report{}, fmt.Errorf("unknown field %q", field)
		}
		seen++
	}
	if seen != 4 {
		return Report{}, fmt.Errorf("expected 4 fields, got %d", seen)
	}
	return r, nil
}

// Monitor accumulates reports and tracks property violations.
type Monitor struct {
	mu sync.Mutex

	count      uint64
	last       Report
	haveLast   bool
	violations []string

	firstHost   time.Time
	firstReport Report
}

// New returns an empty Monitor.
func New() *Monitor {
	return &Monitor{}
}

// Observe records one report against the current host clock.
func (m *Monitor) Observe(r Report) {
	m.observeAt(r, time.Now())
}

func (m *Monitor) observeAt(r Report, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.haveLast {
		if r.Tick < m.last.Tick {
			m.violation("tick went backwards: %d after %d", r.Tick, m.last.Tick)
		}
		if r.Cycles < m.last.Cycles {
			m.violation("cycles went backwards: %d after %d", r.Cycles, m.last.Cycles)
		}
		if r.Micros < m.last.Micros {
			m.violation("us went backwards: %d after %d", r.Micros, m.last.Micros)
		}
	} else {
		m.firstHost = now
		m.firstReport = r
	}

	if r.Micros < r.Millis*1000 {
		m.violation("us=%d below ms=%d floor", r.Micros, r.Millis)
	}

	m.last = r
	m.haveLast = true
	m.count++
}

func (m *Monitor) violation(format string, args ...interface{}) {
	m.violations = append(m.violations, fmt.Sprintf(format, args...))
}

// Count returns the number of reports observed.
func (m *Monitor) Count() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Last returns the most recent report, if any.
func (m *Monitor) Last() (Report, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.haveLast
}

// Violations returns the property violations seen so far.
func (m *Monitor) Violations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.violations))
	copy(out, m.violations)
	return out
}

// Drift returns the device clock drift against the host clock in parts per
// million, positive when the device runs fast. Needs at least two reports.
func (m *Monitor) Drift() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.driftAt(time.Now())
}

func (m *Monitor) driftAt(now time.Time) (float64, bool) {
	if m.count < 2 {
		return 0, false
	}
	hostUS := float64(now.Sub(m.firstHost).Microseconds())
	if hostUS <= 0 {
		return 0, false
	}
	deviceUS := float64(m.last.Micros - m.firstReport.Micros)
	return (deviceUS - hostUS) / hostUS * 1e6, true
}

// Run reads telemetry lines until EOF, feeding every well-formed report to
// the monitor. Lines that are not telemetry (firmware debug output) are
// passed to onOther when it is non-nil.
func (m *Monitor) Run(r io.Reader, onOther func(line string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "tick=") {
			if onOther != nil {
				onOther(line)
			}
			continue
		}
		report, err := ParseReport(line)
		if err != nil {
			return fmt.Errorf("bad telemetry line %q: %w", line, err)
		}
		m.Observe(report)
	}
	return scanner.Err()
}

package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Raw tty (using github.com/mattn/go-tty)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored for USB CDC devices)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the demo firmware
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // Matches targets/demo serial setup
		ReadTimeout: 0,      // Telemetry is line oriented; block on reads
	}
}

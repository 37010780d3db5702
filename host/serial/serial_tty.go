package serial

import (
	"fmt"

	tty "github.com/mattn/go-tty"
)

// TTYPort talks to the device through a raw tty. Useful where tarm/serial
// cannot configure the device (USB CDC gadgets that ignore termios baud
// settings).
type TTYPort struct {
	io      *tty.TTY
	restore func() error
}

// OpenTTY opens the device as a raw tty
func OpenTTY(device string) (Port, error) {
	t, err := tty.OpenDevice(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open tty %s: %w", device, err)
	}
	restore := t.MustRaw()
	return &TTYPort{io: t, restore: restore}, nil
}

// Read reads data from the tty
func (p *TTYPort) Read(b []byte) (int, error) {
	return p.io.Input().Read(b)
}

// Write writes data to the tty
func (p *TTYPort) Write(b []byte) (int, error) {
	return p.io.Output().Write(b)
}

// Close restores the tty state and closes it
func (p *TTYPort) Close() error {
	if p.restore != nil {
		_ = p.restore()
	}
	return p.io.Close()
}

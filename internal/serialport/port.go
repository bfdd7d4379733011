// Package serialport wraps the USB serial link to the display device:
// opening ports, discovery of a likely device path, and the narrow Port
// interface the state machines read and write through.
package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Port defines the serial port operations used by the sender and receiver
// loops. The interface exists so tests can inject fakes.
type Port interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error
	SetReadTimeout(t time.Duration) error
	ResetInputBuffer() error
}

// Factory creates a serial port connection for a device path.
type Factory func(path string, baudRate int) (Port, error)

// DefaultFactory opens real serial ports via go.bug.st/serial.
func DefaultFactory(path string, baudRate int) (Port, error) {
	port, err := serial.Open(path, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}
	return port, nil
}

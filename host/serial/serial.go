// Package serial opens the link to the effect firmware.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config selects the serial device.
type Config struct {
	Device string
	Baud   int
}

// Port is the byte stream to the firmware. The control link is
// one-way, so only writing is needed.
type Port interface {
	io.Writer
	io.Closer
}

// Open opens the configured serial port.
func Open(cfg Config) (Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("serial device not set")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: 500 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	return port, nil
}

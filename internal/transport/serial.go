package transport

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.bug.st/serial"
)

// defaultBaud matches the GNSS receiver family's default UART speed.
const defaultBaud = 38400

// readPollInterval is the SetReadTimeout value used to give Read its
// non-blocking, "0 on no data" semantics (go.bug.st/serial returns (0, nil)
// when the read timeout elapses without data).
const readPollInterval = 50 * time.Millisecond

const (
	openMaxRetries   = 5
	openInitialDelay = 100 * time.Millisecond
	openMaxDelay     = 3 * time.Second
)

type serialTransport struct {
	device string
	baud   int

	port    serial.Port
	aborted atomic.Bool
}

func newSerialTransport(s Spec) *serialTransport {
	baud := s.Baud
	if baud == 0 {
		baud = defaultBaud
	}
	return &serialTransport{device: s.Host, baud: baud}
}

func (t *serialTransport) Open(ctx context.Context) error {
	delay := openInitialDelay
	var lastErr error
	for attempt := 0; attempt <= openMaxRetries; attempt++ {
		if t.aborted.Load() {
			return fmt.Errorf("transport: open aborted for %s", t.device)
		}
		mode := &serial.Mode{BaudRate: t.baud, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
		port, err := serial.Open(t.device, mode)
		if err == nil {
			if err := port.SetReadTimeout(readPollInterval); err != nil {
				port.Close()
				return fmt.Errorf("transport: set read timeout on %s: %w", t.device, err)
			}
			t.port = port
			return nil
		}
		lastErr = err
		if attempt == openMaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > openMaxDelay {
			delay = openMaxDelay
		}
	}
	return fmt.Errorf("transport: open %s failed after %d attempts: %w", t.device, openMaxRetries+1, lastErr)
}

func (t *serialTransport) Close() error {
	if t.port == nil {
		return nil
	}
	return t.port.Close()
}

func (t *serialTransport) Read(buf []byte) (int, error) {
	if t.port == nil {
		return 0, fmt.Errorf("transport: %s not open", t.device)
	}
	n, err := t.port.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	return n, nil
}

func (t *serialTransport) Write(data []byte) (int, error) {
	if t.port == nil {
		return 0, fmt.Errorf("transport: %s not open", t.device)
	}
	return t.port.Write(data)
}

func (t *serialTransport) Abort() {
	t.aborted.Store(true)
}

func (t *serialTransport) CanBaudrate() bool { return true }

func (t *serialTransport) SetBaudrate(baud int) error {
	t.baud = baud
	if t.port == nil {
		return nil
	}
	mode := &serial.Mode{BaudRate: baud, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	return t.port.SetMode(mode)
}

func (t *serialTransport) GetBaudrate() int { return t.baud }

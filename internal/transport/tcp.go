package transport

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

type tcpTransport struct {
	addr string

	conn    net.Conn
	aborted atomic.Bool
}

func newTCPTransport(s Spec) *tcpTransport {
	return &tcpTransport{addr: net.JoinHostPort(s.Host, s.Port)}
}

func (t *tcpTransport) Open(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", t.addr, err)
	}
	t.conn = conn
	return nil
}

func (t *tcpTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}

func (t *tcpTransport) Read(buf []byte) (int, error) {
	if t.conn == nil {
		return 0, fmt.Errorf("transport: %s not open", t.addr)
	}
	t.conn.SetReadDeadline(time.Now().Add(readPollInterval))
	n, err := t.conn.Read(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	return n, nil
}

func (t *tcpTransport) Write(data []byte) (int, error) {
	if t.conn == nil {
		return 0, fmt.Errorf("transport: %s not open", t.addr)
	}
	return t.conn.Write(data)
}

func (t *tcpTransport) Abort() {
	t.aborted.Store(true)
	if t.conn != nil {
		t.conn.SetDeadline(time.Now())
	}
}

func (t *tcpTransport) CanBaudrate() bool         { return false }
func (t *tcpTransport) SetBaudrate(baud int) error { return ErrNotSupported }
func (t *tcpTransport) GetBaudrate() int            { return 0 }

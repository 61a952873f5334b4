// Package transport provides a uniform, non-blocking byte-stream interface
// over the three ways a receiver driver can reach a GNSS receiver: a local
// serial port, a plain TCP stream, or a telnet (RFC854) stream carrying
// RFC2217 com-port-control for remote baud changes.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEOF is returned by Read when the transport has permanently closed.
var ErrEOF = errors.New("transport: closed")

// ErrNotSupported is returned by baud operations on transports that do not
// support them (plain TCP).
var ErrNotSupported = errors.New("transport: operation not supported by this transport kind")

// Transport is the uniform interface every backend implements.
type Transport interface {
	// Open performs a blocking open of the underlying device/connection.
	Open(ctx context.Context) error
	// Close releases the underlying resource. Safe to call more than once.
	Close() error

	// Read is non-blocking: it returns (0, nil) when there is no data
	// currently available, (n, nil) with n>0 on bytes produced, and
	// (0, ErrEOF) (or another error) on permanent failure.
	Read(buf []byte) (int, error)
	// Write is a best-effort full write of data.
	Write(data []byte) (int, error)

	// Abort sets a flag observed by blocking operations (notably Open's
	// retry loop) to short-circuit them promptly.
	Abort()

	// CanBaudrate reports whether SetBaudrate/GetBaudrate are meaningful
	// for this transport kind.
	CanBaudrate() bool
	// SetBaudrate changes the baud rate without closing the transport,
	// where supported.
	SetBaudrate(baud int) error
	// GetBaudrate returns the current baud rate, or 0 if not applicable.
	GetBaudrate() int
}

// Kind identifies which of the three transport backings a descriptor names.
type Kind int

const (
	KindSerial Kind = iota
	KindTCP
	KindTelnet
)

// Spec is a parsed transport spec string.
type Spec struct {
	Kind Kind
	Host string // serial: device path; tcp/telnet: hostname
	Port string // tcp/telnet: port
	Baud int    // 0 if unspecified (serial: use default; telnet: leave as-is)
}

// ParseSpec parses the transport spec grammar:
//
//	ser://<device>[@<baud>]
//	tcp://<host>:<port>
//	telnet://<host>:<port>[@<baud>]
func ParseSpec(s string) (Spec, error) {
	switch {
	case strings.HasPrefix(s, "ser://"):
		rest := s[len("ser://"):]
		dev, baud, err := splitBaud(rest)
		if err != nil {
			return Spec{}, err
		}
		if dev == "" {
			return Spec{}, fmt.Errorf("transport: empty device in spec %q", s)
		}
		return Spec{Kind: KindSerial, Host: dev, Baud: baud}, nil

	case strings.HasPrefix(s, "telnet://"):
		rest := s[len("telnet://"):]
		hostPort, baud, err := splitBaud(rest)
		if err != nil {
			return Spec{}, err
		}
		host, port, err := splitHostPort(hostPort, s)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: KindTelnet, Host: host, Port: port, Baud: baud}, nil

	case strings.HasPrefix(s, "tcp://"):
		rest := s[len("tcp://"):]
		host, port, err := splitHostPort(rest, s)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: KindTCP, Host: host, Port: port}, nil

	default:
		return Spec{}, fmt.Errorf("transport: unrecognized spec %q", s)
	}
}

func splitBaud(s string) (rest string, baud int, err error) {
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		b, convErr := strconv.Atoi(s[i+1:])
		if convErr != nil {
			return "", 0, fmt.Errorf("transport: bad baud in %q: %w", s, convErr)
		}
		return s[:i], b, nil
	}
	return s, 0, nil
}

func splitHostPort(s, orig string) (host, port string, err error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return "", "", fmt.Errorf("transport: missing port in %q", orig)
	}
	host, port = s[:i], s[i+1:]
	if host == "" || port == "" {
		return "", "", fmt.Errorf("transport: malformed host:port in %q", orig)
	}
	return host, port, nil
}

// Open parses spec and constructs (but does not yet open) the
// corresponding Transport.
func Open(spec string) (Transport, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindSerial:
		return newSerialTransport(s), nil
	case KindTCP:
		return newTCPTransport(s), nil
	case KindTelnet:
		return newTelnetTransport(s), nil
	default:
		return nil, fmt.Errorf("transport: unknown kind")
	}
}

package receiver

import (
	"fmt"
	"time"

	"github.com/bramburn/gnss-toolkit/internal/framer"
)

const ubxAckClass = 0x05
const ubxAckAckID = 0x01
const ubxAckNakID = 0x00

// pollRequest builds a UBX frame for (class, id, payload), writes it, and
// pumps the framer until a UBX frame with matching class/id arrives
// (success), or — when cfgPoll is set — a matching UBX-ACK-NAK arrives
// (the "not-pollable" case, distinct from timeout), or the deadline expires
// after retries. Every other message seen while waiting is forwarded to the
// normal event path, never dropped (spec.md §4.6).
func (d *Driver) pollRequest(class, id byte, payload []byte, timeout time.Duration, retries int, cfgPoll bool) (*framer.Message, bool, error) {
	frame := framer.BuildUBX(class, id, payload)
	buf := make([]byte, 4096)

	for attempt := 0; attempt <= retries; attempt++ {
		if _, err := d.tr.Write(frame); err != nil {
			return nil, false, fmt.Errorf("receiver: write: %w", err)
		}
		deadline := time.Now().Add(timeout)
		for time.Now().Before(deadline) {
			if d.abort.Load() {
				return nil, false, ErrAborted
			}
			n, err := d.tr.Read(buf)
			if err != nil {
				return nil, false, fmt.Errorf("receiver: read: %w", err)
			}
			if n > 0 {
				d.fr.Feed(buf[:n])
			}
			for {
				msg := d.fr.Next()
				if msg == nil {
					break
				}
				if msg.Type == framer.UBX && len(msg.Data) >= 4 {
					msgClass, msgID := msg.Data[2], msg.Data[3]
					if msgClass == class && msgID == id {
						d.handleMessage(msg)
						return msg, false, nil
					}
					if cfgPoll && msgClass == ubxAckClass && msgID == ubxAckNakID {
						if ackedClassID(msg) == [2]byte{class, id} {
							return nil, true, nil
						}
					}
				}
				d.handleMessage(msg)
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}
	return nil, false, ErrTimeout
}

// pollAck is pollRequest's counterpart for commands that are confirmed only
// via UBX-ACK-ACK/NAK (VALSET, CFG-RST): it never expects a direct response
// frame of its own.
func (d *Driver) pollAck(class, id byte, payload []byte, timeout time.Duration, retries int) (bool, error) {
	frame := framer.BuildUBX(class, id, payload)
	buf := make([]byte, 4096)

	for attempt := 0; attempt <= retries; attempt++ {
		if _, err := d.tr.Write(frame); err != nil {
			return false, fmt.Errorf("receiver: write: %w", err)
		}
		deadline := time.Now().Add(timeout)
		for time.Now().Before(deadline) {
			if d.abort.Load() {
				return false, ErrAborted
			}
			n, err := d.tr.Read(buf)
			if err != nil {
				return false, fmt.Errorf("receiver: read: %w", err)
			}
			if n > 0 {
				d.fr.Feed(buf[:n])
			}
			for {
				msg := d.fr.Next()
				if msg == nil {
					break
				}
				if msg.Type == framer.UBX && len(msg.Data) >= 4 && msg.Data[2] == ubxAckClass {
					want := [2]byte{class, id}
					if msg.Data[3] == ubxAckAckID && ackedClassID(msg) == want {
						return true, nil
					}
					if msg.Data[3] == ubxAckNakID && ackedClassID(msg) == want {
						return false, nil
					}
				}
				d.handleMessage(msg)
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}
	return false, ErrTimeout
}

// ackedClassID extracts the {class,id} pair an ACK-ACK/ACK-NAK payload
// refers to (the two-byte UBX-ACK payload).
func ackedClassID(msg *framer.Message) [2]byte {
	payload := msg.Data[6 : len(msg.Data)-2]
	if len(payload) < 2 {
		return [2]byte{}
	}
	return [2]byte{payload[0], payload[1]}
}

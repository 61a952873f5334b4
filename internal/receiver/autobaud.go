package receiver

import "time"

// autobaudCandidates is the fixed fallback list tried after the transport's
// current baud rate (spec.md §4.6).
var autobaudCandidates = []int{9600, 38400, 115200, 230400, 460800, 921600}

const (
	autobaudPass1Timeout = 1 * time.Second
	autobaudPass1Retries = 1
	autobaudPass2Timeout = 2500 * time.Millisecond
	autobaudPass2Retries = 2
)

// autobaud tries the transport's current baud, then the candidate list, at
// each step polling UBX-MON-VER. A first quick pass covers the common case;
// a second, slower pass with more retries (draining rx/tx first) runs only
// if the first pass found nothing. No-op when the transport doesn't support
// baud changes.
func (d *Driver) autobaud() error {
	if !d.tr.CanBaudrate() {
		d.baud.Store(int32(d.tr.GetBaudrate()))
		return nil
	}

	tries := candidateOrder(d.tr.GetBaudrate())

	if d.tryBauds(tries, autobaudPass1Timeout, autobaudPass1Retries, false) {
		return nil
	}
	if d.tryBauds(tries, autobaudPass2Timeout, autobaudPass2Retries, true) {
		return nil
	}
	return ErrTimeout
}

func candidateOrder(current int) []int {
	order := make([]int, 0, len(autobaudCandidates)+1)
	if current != 0 {
		order = append(order, current)
	}
	for _, b := range autobaudCandidates {
		if b != current {
			order = append(order, b)
		}
	}
	return order
}

func (d *Driver) tryBauds(bauds []int, timeout time.Duration, retries int, drain bool) bool {
	for _, b := range bauds {
		if d.abort.Load() {
			return false
		}
		if err := d.tr.SetBaudrate(b); err != nil {
			continue
		}
		if drain {
			d.drainTransport()
		}
		msg, _, err := d.pollRequest(0x0a, 0x04, nil, timeout, retries, false)
		if err == nil && msg != nil {
			d.baud.Store(int32(b))
			return true
		}
	}
	return false
}

// drainTransport empties whatever bytes are currently available without
// feeding them to the framer (used before the slower autobaud pass, per
// spec.md §4.6 "drains rx/tx before polling").
func (d *Driver) drainTransport() {
	buf := make([]byte, 4096)
	for {
		n, err := d.tr.Read(buf)
		if err != nil || n == 0 {
			return
		}
	}
}

package framer

import "time"

// Framer consumes bytes fed via Feed and emits classified Message values
// via Next, one at a time, in input order. It is not safe for concurrent
// use — each receiver driver owns exactly one Framer.
type Framer struct {
	buf     []byte
	pending []Message // messages recognized but not yet handed to the caller

	garbage []byte // bytes accumulated while no sync has been found

	seq   uint64
	stats Stats

	now func() time.Time // overridable for tests
}

// New creates an empty Framer.
func New() *Framer {
	return &Framer{now: time.Now}
}

// Feed appends newly-received bytes to the framer's internal buffer. It
// never blocks and never itself produces messages; call Next to drain them.
func (f *Framer) Feed(data []byte) {
	f.buf = append(f.buf, data...)
}

// Next returns the next classified message, or nil if the buffered bytes
// do not (yet) contain a complete message. Call it repeatedly after each
// Feed until it returns nil.
func (f *Framer) Next() *Message {
	for {
		if len(f.pending) > 0 {
			m := f.pending[0]
			f.pending = f.pending[1:]
			return &m
		}
		if !f.step() {
			return nil
		}
	}
}

// Flush emits any residual bytes — a partial frame that will never
// complete, or an unflushed garbage run — as a single GARBAGE message. It
// should be called once when the underlying transport is closing. Returns
// nil if there is nothing left to flush.
func (f *Framer) Flush() *Message {
	if len(f.buf) > 0 {
		f.garbage = append(f.garbage, f.buf...)
		f.buf = nil
	}
	if len(f.garbage) == 0 {
		return nil
	}
	m := f.emitGarbage()
	return &m
}

// Stats returns a snapshot of the framer's counters.
func (f *Framer) Stats() Stats {
	return f.stats
}

// step attempts to make one unit of progress against the buffer: recognize
// and queue one message, accumulate one garbage byte, or flush a garbage
// run that has reached the chunk threshold. Returns false when no further
// progress is possible without more input (buffer empty, or the only
// candidate frame is incomplete).
func (f *Framer) step() bool {
	if len(f.garbage) >= GarbageChunkSize {
		f.pending = append(f.pending, f.emitGarbage())
		return true
	}
	if len(f.buf) == 0 {
		return false
	}

	for _, p := range probes {
		out := p.fn(f.buf)
		switch out.result {
		case probeNoMatch:
			continue
		case probeIncomplete:
			return false
		case probeInvalid:
			f.garbage = append(f.garbage, f.buf[0])
			f.buf = f.buf[1:]
			return true
		case probeOK:
			if len(f.garbage) > 0 {
				f.pending = append(f.pending, f.emitGarbage())
			}
			frame := f.buf[:out.size]
			f.buf = f.buf[out.size:]
			f.pending = append(f.pending, f.emit(p.typ, frame, out.name, out.info))
			return true
		}
	}

	// No probe recognized a sync at all: this byte is garbage.
	f.garbage = append(f.garbage, f.buf[0])
	f.buf = f.buf[1:]
	return true
}

func (f *Framer) emit(t MsgType, data []byte, name, info string) Message {
	m := Message{
		Type: t,
		Data: append([]byte(nil), data...),
		Size: len(data),
		Seq:  f.seq,
		Ts:   f.now(),
		Name: name,
		Info: info,
	}
	f.seq++
	f.stats.Count[t]++
	f.stats.Bytes[t] += uint64(len(data))
	f.stats.TotalCount++
	f.stats.TotalBytes += uint64(len(data))
	return m
}

func (f *Framer) emitGarbage() Message {
	data := f.garbage
	f.garbage = nil
	return f.emit(Garbage, data, "", "")
}

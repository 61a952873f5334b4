package receiver

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bramburn/gnss-toolkit/internal/epoch"
	"github.com/bramburn/gnss-toolkit/internal/framer"
	"github.com/bramburn/gnss-toolkit/internal/transport"
	"github.com/bramburn/gnss-toolkit/internal/ubxcfg"
)

// pollIntervalIdle is the worker's sleep when a Read produced no bytes
// (spec.md §5: "short non-blocking reads with a ~10ms sleep when idle").
const pollIntervalIdle = 10 * time.Millisecond

// StartOptions controls Driver.Start's opening sequence.
type StartOptions struct {
	Autobaud bool
}

// Driver is the asynchronous worker owning one transport, framer, and
// epoch collector (spec.md §4.6). The zero value is not usable; construct
// with New.
type Driver struct {
	tr  transport.Transport
	fr  *framer.Framer
	col *epoch.Collector

	cmds   *commandQueue
	events *eventQueue

	state atomic.Int32
	baud  atomic.Int32
	abort atomic.Bool
	corr  atomic.Uint64

	stopped chan struct{}
}

// New constructs a Driver around an already-built transport. The transport
// is opened by Start, not here.
func New(tr transport.Transport) *Driver {
	d := &Driver{
		tr:     tr,
		fr:     framer.New(),
		col:    epoch.NewCollector(),
		cmds:   newCommandQueue(CommandQueueCap),
		events: newEventQueue(EventQueueCap),
	}
	return d
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() State { return State(d.state.Load()) }

// Baud returns the last baud rate observed as active, or 0 for transports
// without a baud concept.
func (d *Driver) Baud() int { return int(d.baud.Load()) }

// Start opens the transport, optionally autobauds, and — on success —
// starts the worker goroutine and transitions to ready. On failure it
// returns to idle and emits an error event.
func (d *Driver) Start(ctx context.Context, opts StartOptions) error {
	d.state.Store(int32(StateBusy))

	if err := d.tr.Open(ctx); err != nil {
		d.state.Store(int32(StateIdle))
		d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("open: %v", err)})
		return err
	}

	if opts.Autobaud {
		if err := d.autobaud(); err != nil {
			d.state.Store(int32(StateIdle))
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("autobaud: %v", err)})
			return err
		}
	} else {
		d.baud.Store(int32(d.tr.GetBaudrate()))
	}

	d.state.Store(int32(StateReady))
	d.stopped = make(chan struct{})
	go d.run()
	return nil
}

// Stop aborts the transport, waits for the worker to exit, and closes it.
func (d *Driver) Stop() {
	d.abort.Store(true)
	d.tr.Abort()
	if d.stopped != nil {
		<-d.stopped
	}
	d.tr.Close()
	d.cmds.close()
	d.events.close()
	d.state.Store(int32(StateIdle))
}

// NextEvent blocks until an event is available or ctx is done.
func (d *Driver) NextEvent(ctx context.Context) (Event, bool) {
	type result struct {
		e  Event
		ok bool
	}
	ch := make(chan result, 1)
	go func() {
		e, ok := d.events.pop()
		ch <- result{e, ok}
	}()
	select {
	case r := <-ch:
		return r.e, r.ok
	case <-ctx.Done():
		return Event{}, false
	}
}

// TryEvent pops one event without blocking.
func (d *Driver) TryEvent() (Event, bool) { return d.events.tryPop() }

func (d *Driver) nextCorrelationID() uint64 { return d.corr.Add(1) }

// Send enqueues a raw-bytes passthrough command.
func (d *Driver) Send(data []byte) { d.cmds.push(Command{Kind: CmdSend, Data: data}) }

// SetBaud enqueues a baud-change command.
func (d *Driver) SetBaud(baud int) { d.cmds.push(Command{Kind: CmdSetBaud, Baud: baud}) }

// Reset enqueues a UBX-CFG-RST command.
func (d *Driver) Reset(kind ResetKind) { d.cmds.push(Command{Kind: CmdReset, Reset: kind}) }

// GetConfig enqueues a get-config command and returns its correlation id;
// the result arrives as an EvGetConfigDone event carrying the same id.
func (d *Driver) GetConfig(layer ubxcfg.Layer, keys []uint32) uint64 {
	id := d.nextCorrelationID()
	d.cmds.push(Command{Kind: CmdGetConfig, Layer: layer, Keys: keys, CorrelationID: id})
	return id
}

// SetConfig enqueues a set-config command and returns its correlation id;
// the result arrives as an EvSetConfigDone event carrying the same id.
func (d *Driver) SetConfig(layers ubxcfg.LayerBit, apply bool, pairs []ubxcfg.KeyVal) uint64 {
	id := d.nextCorrelationID()
	d.cmds.push(Command{Kind: CmdSetConfig, TargetLayers: layers, Apply: apply, Pairs: pairs, CorrelationID: id})
	return id
}

func (d *Driver) emitEvent(e Event) { d.events.push(e) }

// run is the worker loop: drain transport into the framer, process emitted
// messages, then execute at most one queued command, repeating until
// aborted (spec.md §4.6 step-by-step dispatch).
func (d *Driver) run() {
	defer close(d.stopped)
	buf := make([]byte, 4096)

	for !d.abort.Load() {
		n, err := d.tr.Read(buf)
		if err != nil {
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("transport read: %v", err)})
			d.state.Store(int32(StateIdle))
			return
		}
		if n > 0 {
			d.fr.Feed(buf[:n])
			for {
				msg := d.fr.Next()
				if msg == nil {
					break
				}
				d.handleMessage(msg)
			}
		}

		if cmd, ok := d.cmds.tryPop(); ok {
			d.dispatch(cmd)
		}

		if n == 0 {
			time.Sleep(pollIntervalIdle)
		}
	}
}

func (d *Driver) dispatch(cmd Command) {
	switch cmd.Kind {
	case CmdNoop:
	case CmdSend:
		if _, err := d.tr.Write(cmd.Data); err != nil {
			d.emitEvent(Event{Kind: EvWarning, Text: fmt.Sprintf("send: %v", err)})
		}
	case CmdSetBaud:
		if err := d.tr.SetBaudrate(cmd.Baud); err != nil {
			d.emitEvent(Event{Kind: EvWarning, Text: fmt.Sprintf("set baud: %v", err)})
			return
		}
		d.baud.Store(int32(cmd.Baud))
		d.emitEvent(Event{Kind: EvNotice, Text: fmt.Sprintf("baud set to %d", cmd.Baud)})
	case CmdReset:
		d.doReset(cmd)
	case CmdGetConfig:
		d.doGetConfig(cmd)
	case CmdSetConfig:
		d.doSetConfig(cmd)
	}
}

// handleMessage is the per-message pipeline: emit the message event, feed
// the epoch collector and emit an epoch event on closure, then apply any
// message-specific side effects (spec.md §4.6 step 2).
func (d *Driver) handleMessage(msg *framer.Message) {
	d.emitEvent(Event{Kind: EvMessage, Message: msg})
	if ep := d.col.Collect(msg); ep != nil {
		d.emitEvent(Event{Kind: EvEpoch, Epoch: ep})
	}
	d.applySideEffects(msg)
}

// applySideEffects promotes UBX-INF-WARNING/ERROR and NMEA TXT severity
// "00"/"01" to warning/error events, in addition to their plain message
// event.
func (d *Driver) applySideEffects(msg *framer.Message) {
	switch msg.Type {
	case framer.UBX:
		if len(msg.Data) < 4 || msg.Data[2] != 0x04 {
			return
		}
		switch msg.Data[3] {
		case 0x00:
			d.emitEvent(Event{Kind: EvError, Text: msg.Info})
		case 0x01:
			d.emitEvent(Event{Kind: EvWarning, Text: msg.Info})
		}
	case framer.NMEA:
		sev, text, ok := nmeaTXTSeverity(msg.Data)
		if !ok {
			return
		}
		switch sev {
		case "00":
			d.emitEvent(Event{Kind: EvError, Text: text})
		case "01":
			d.emitEvent(Event{Kind: EvWarning, Text: text})
		}
	}
}

// nmeaTXTSeverity pulls the severity code (fourth field) out of a raw
// "$..TXT,xx,yy,zz,text*hh\r\n" sentence: xx total messages, yy message
// number, zz severity ("00" error, "01" warning, "02" notice, "07" user).
func nmeaTXTSeverity(data []byte) (sev, text string, ok bool) {
	body := strings.TrimRight(string(data), "\r\n")
	star := strings.IndexByte(body, '*')
	if star < 0 {
		return "", "", false
	}
	fields := strings.Split(body[1:star], ",")
	if len(fields) < 4 {
		return "", "", false
	}
	if !strings.HasSuffix(fields[0], "TXT") {
		return "", "", false
	}
	return fields[3], fields[len(fields)-1], true
}

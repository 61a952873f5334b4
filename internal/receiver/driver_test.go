package receiver

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramburn/gnss-toolkit/internal/framer"
)

// mockTransport is a transport.Transport double whose Write behavior is
// driven by an injectable hook, letting tests script request/response
// exchanges without a real receiver.
type mockTransport struct {
	mu      sync.Mutex
	baud    int
	canBaud bool
	toSend  []byte
	writes  [][]byte
	onWrite func(mt *mockTransport, data []byte)
	aborted atomic.Bool
}

func (m *mockTransport) Open(ctx context.Context) error { return nil }
func (m *mockTransport) Close() error                   { return nil }

func (m *mockTransport) Read(buf []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.toSend) == 0 {
		return 0, nil
	}
	n := copy(buf, m.toSend)
	m.toSend = m.toSend[n:]
	return n, nil
}

func (m *mockTransport) Write(data []byte) (int, error) {
	m.mu.Lock()
	m.writes = append(m.writes, append([]byte{}, data...))
	hook := m.onWrite
	m.mu.Unlock()
	if hook != nil {
		hook(m, data)
	}
	return len(data), nil
}

func (m *mockTransport) Abort()              { m.aborted.Store(true) }
func (m *mockTransport) CanBaudrate() bool   { return m.canBaud }
func (m *mockTransport) SetBaudrate(b int) error {
	m.mu.Lock()
	m.baud = b
	m.mu.Unlock()
	return nil
}
func (m *mockTransport) GetBaudrate() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baud
}

func (m *mockTransport) enqueue(data []byte) {
	m.mu.Lock()
	m.toSend = append(m.toSend, data...)
	m.mu.Unlock()
}

func monVerResponse() []byte {
	payload := make([]byte, 40)
	copy(payload[0:30], []byte("ROM CORE 3.01 (107888)"))
	copy(payload[30:40], []byte("00080000"))
	return framer.BuildUBX(0x0a, 0x04, payload)
}

// TestUBXPollAckFixtureS4: a mock that replies to a UBX-MON-VER poll with a
// matching frame must be returned from pollRequest within one iteration,
// and the consumer must also see one message event for it.
func TestUBXPollAckFixtureS4(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x0a && data[3] == 0x04 {
			mt.enqueue(monVerResponse())
		}
	}
	d := New(mock)

	msg, nak, err := d.pollRequest(0x0a, 0x04, nil, 1500*time.Millisecond, 2, false)
	require.NoError(t, err)
	assert.False(t, nak)
	require.NotNil(t, msg)
	assert.Equal(t, "UBX-MON-VER", msg.Name)

	ev, ok := d.TryEvent()
	require.True(t, ok)
	assert.Equal(t, EvMessage, ev.Kind)
	assert.Equal(t, "UBX-MON-VER", ev.Message.Name)
}

// TestUBXPollNakFixtureS5: a poll for a CFG item that NAKs must return
// immediately with nak=true and issue no further retries.
func TestUBXPollNakFixtureS5(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x06 && data[3] == 0x8b {
			nak := framer.BuildUBX(0x05, 0x00, []byte{0x06, 0x8b})
			mt.enqueue(nak)
		}
	}
	d := New(mock)

	msg, nak, err := d.pollRequest(0x06, 0x8b, []byte{0, 1, 0, 0}, 1500*time.Millisecond, 2, true)
	require.NoError(t, err)
	assert.True(t, nak)
	assert.Nil(t, msg)
	assert.Len(t, mock.writes, 1, "no retries should follow a NAK")
}

// TestAutobaudFixtureS6: a mock that only answers at 38400 must be found
// within two full passes over the candidate list.
func TestAutobaudFixtureS6(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 9600}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x0a && data[3] == 0x04 && mt.GetBaudrate() == 38400 {
			mt.enqueue(monVerResponse())
		}
	}
	d := New(mock)

	err := d.autobaud()
	require.NoError(t, err)
	assert.Equal(t, 38400, d.Baud())
}

// TestDriverOrderingAcrossCommands (property 8): events surface in the
// order the worker produced them, and a getConfig completion carries the
// correlation id of its originating command.
func TestDriverOrderingAcrossCommands(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x06 && data[3] == 0x8b {
			resp := framer.BuildUBX(0x06, 0x8b, []byte{1, 0, 0, 0})
			mt.enqueue(resp)
		}
	}
	d := New(mock)
	require.NoError(t, d.Start(context.Background(), StartOptions{}))
	defer d.Stop()

	id := d.GetConfig(0, nil)

	var done *Event
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := d.TryEvent()
		if ok && ev.Kind == EvGetConfigDone {
			done = &ev
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.NotNil(t, done)
	assert.Equal(t, id, done.CorrelationID)
}

// TestQueueSaturationDropsOnlyPayloadClass (property 9): flooding the event
// queue with EvMessage events must drop only that class, deliver at least
// one saturation warning, and never drop a notice.
func TestQueueSaturationDropsOnlyPayloadClass(t *testing.T) {
	q := newEventQueue(8)
	for i := 0; i < 100; i++ {
		q.push(Event{Kind: EvMessage})
	}
	q.push(Event{Kind: EvNotice, Text: "important"})

	var sawSaturationWarning, sawNotice bool
	count := 0
	for {
		e, ok := q.tryPop()
		if !ok {
			break
		}
		count++
		if e.Kind == EvWarning {
			sawSaturationWarning = true
		}
		if e.Kind == EvNotice && e.Text == "important" {
			sawNotice = true
		}
	}
	assert.True(t, sawSaturationWarning)
	assert.True(t, sawNotice)
	assert.LessOrEqual(t, count, 9) // 7 kept payload messages + saturation warning + notice
}

// TestDoResetNoneIsNoop: ResetNone sends nothing and emits only a notice.
func TestDoResetNoneIsNoop(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	d := New(mock)

	d.doReset(Command{Reset: ResetNone})

	assert.Empty(t, mock.writes)
	ev, ok := d.TryEvent()
	require.True(t, ok)
	assert.Equal(t, EvNotice, ev.Kind)
}

// TestDoResetHotDoesNotReenumerate: Hot/Warm/Cold reset the GNSS engine in
// place, so the transport must stay open (no Close/Open round trip) and the
// navBbrMask/resetMode pair must match the hotstart/GNSS-reset values.
func TestDoResetHotDoesNotReenumerate(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	d := New(mock)

	d.doReset(Command{Reset: ResetHot})

	require.Len(t, mock.writes, 1)
	frame := mock.writes[0]
	require.True(t, len(frame) >= 10)
	assert.Equal(t, byte(0x06), frame[2])
	assert.Equal(t, byte(0x04), frame[3])
	payload := frame[6 : len(frame)-2]
	assert.Equal(t, []byte{0x00, 0x00, 0x02, 0x00}, payload)

	ev, ok := d.TryEvent()
	require.True(t, ok)
	assert.Equal(t, EvNotice, ev.Kind)
	assert.Contains(t, ev.Text, "sent")
}

// TestDoResetColdNavBbrMask: Cold clears all BBR sectors (navBbrMask
// 0xffff).
func TestDoResetColdNavBbrMask(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	d := New(mock)

	d.doReset(Command{Reset: ResetCold})

	require.Len(t, mock.writes, 1)
	payload := mock.writes[0][6 : len(mock.writes[0])-2]
	assert.Equal(t, []byte{0xff, 0xff, 0x02, 0x00}, payload)
}

// TestDoResetSafebootSendsUpdSafeboot: Safeboot is a distinct, payload-less
// UBX-UPD-SAFEBOOT message, not UBX-CFG-RST, and it reenumerates like a
// hardware reset.
func TestDoResetSafebootSendsUpdSafeboot(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	d := New(mock)

	d.doReset(Command{Reset: ResetSafeboot})

	require.Len(t, mock.writes, 1)
	frame := mock.writes[0]
	assert.Equal(t, byte(0x09), frame[2])
	assert.Equal(t, byte(0x41), frame[3])
	assert.Equal(t, byte(0), frame[4], "UBX-UPD-SAFEBOOT carries no payload")

	ev, ok := d.TryEvent()
	require.True(t, ok)
	assert.Equal(t, EvNotice, ev.Kind)
	assert.Contains(t, ev.Text, "reopened")
}

// TestDoResetDefaultClearsConfigFirst: Default/Factory clear stored BBR and
// Flash configuration via UBX-CFG-CFG before the reset frame itself.
func TestDoResetDefaultClearsConfigFirst(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x06 && data[3] == 0x09 {
			ack := framer.BuildUBX(0x05, 0x01, []byte{0x06, 0x09})
			mt.enqueue(ack)
		}
	}
	d := New(mock)

	d.doReset(Command{Reset: ResetDefault})

	require.Len(t, mock.writes, 2, "clear-config frame then reset frame")
	assert.Equal(t, byte(0x09), mock.writes[0][3], "first frame is UBX-CFG-CFG")
	assert.Equal(t, byte(0x04), mock.writes[1][3], "second frame is UBX-CFG-RST")
	resetPayload := mock.writes[1][6 : len(mock.writes[1])-2]
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, resetPayload, "Default: navBbrMask none, resetMode HW-forced")
}

// TestDoResetGNSSStopStartRestart covers the remaining GNSS-level kinds,
// each with its own resetMode and (per rxReset's own table) the transport
// reopen path.
func TestDoResetGNSSStopStartRestart(t *testing.T) {
	cases := []struct {
		kind      ResetKind
		resetMode byte
	}{
		{ResetGNSSStop, 0x08},
		{ResetGNSSStart, 0x09},
		{ResetGNSSRestart, 0x02},
	}
	for _, c := range cases {
		mock := &mockTransport{canBaud: true, baud: 38400}
		d := New(mock)

		d.doReset(Command{Reset: c.kind})

		require.Len(t, mock.writes, 1, c.kind)
		payload := mock.writes[0][6 : len(mock.writes[0])-2]
		assert.Equal(t, c.resetMode, payload[2], c.kind)
	}
}

func TestSetConfigAckThenDone(t *testing.T) {
	mock := &mockTransport{canBaud: true, baud: 38400}
	mock.onWrite = func(mt *mockTransport, data []byte) {
		if len(data) >= 4 && data[2] == 0x06 && data[3] == 0x8a {
			ack := framer.BuildUBX(0x05, 0x01, []byte{0x06, 0x8a})
			mt.enqueue(ack)
		}
	}
	d := New(mock)
	require.NoError(t, d.Start(context.Background(), StartOptions{}))
	defer d.Stop()

	id := d.SetConfig(1, false, nil)

	var done *Event
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := d.TryEvent()
		if ok && ev.Kind == EvSetConfigDone {
			done = &ev
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.NotNil(t, done)
	assert.Equal(t, id, done.CorrelationID)
	assert.True(t, done.Ack)
}

package framer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUBX(class, id byte, payload []byte) []byte {
	buf := []byte{0xb5, 0x62, class, id, byte(len(payload)), byte(len(payload) >> 8)}
	buf = append(buf, payload...)
	ckA, ckB := ubxChecksum(buf[2:])
	return append(buf, ckA, ckB)
}

func buildNMEA(body string) []byte {
	cs := nmeaChecksum([]byte(body))
	return []byte("$" + body + "*" + hexByte(cs) + "\r\n")
}

func hexByte(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}

func buildRTCM3(msgType int, extra []byte) []byte {
	payload := make([]byte, 2+len(extra))
	payload[0] = byte(msgType >> 4)
	payload[1] = byte(msgType<<4) & 0xf0
	copy(payload[2:], extra)

	header := []byte{0xd3, byte(len(payload) >> 8 & 0x03), byte(len(payload))}
	frame := append(append([]byte{}, header...), payload...)
	crc := crc24q(frame)
	return append(frame, byte(crc>>16), byte(crc>>8), byte(crc))
}

// drain pulls every available message out of f without feeding more data.
func drain(f *Framer) []Message {
	var out []Message
	for {
		m := f.Next()
		if m == nil {
			return out
		}
		out = append(out, *m)
	}
}

func TestProbeUBXRoundTrip(t *testing.T) {
	frame := buildUBX(0x0a, 0x04, bytes.Repeat([]byte{0}, 4))
	f := New()
	f.Feed(frame)
	msgs := drain(f)
	require.Len(t, msgs, 1)
	assert.Equal(t, UBX, msgs[0].Type)
	assert.Equal(t, frame, msgs[0].Data)
	assert.Equal(t, "UBX-MON-VER", msgs[0].Name)
}

func TestNMEAFrameIsolationFixtureS3(t *testing.T) {
	nmea := buildNMEA("GNGGA,fieldsgohere")
	input := append([]byte("garbage"), append(nmea, []byte("more")...)...)

	f := New()
	f.Feed(input)
	msgs := drain(f)
	f.Feed(nil)
	if m := f.Flush(); m != nil {
		msgs = append(msgs, *m)
	}

	require.Len(t, msgs, 3)
	assert.Equal(t, Garbage, msgs[0].Type)
	assert.Equal(t, []byte("garbage"), msgs[0].Data)
	assert.Len(t, msgs[0].Data, 7)

	assert.Equal(t, NMEA, msgs[1].Type)
	assert.Equal(t, nmea, msgs[1].Data)

	assert.Equal(t, Garbage, msgs[2].Type)
	assert.Equal(t, []byte("more"), msgs[2].Data)
	assert.Len(t, msgs[2].Data, 4)
}

// TestNMEANameKeepsTalkerPrefix pins the canonical "NMEA-GP-GGA" name
// derivation: talker-prefixed sentences keep both the talker and sentence
// id, proprietary ("$P...") sentences keep the address as-is.
func TestNMEANameKeepsTalkerPrefix(t *testing.T) {
	f := New()
	f.Feed(buildNMEA("GPGGA,fieldsgohere"))
	msgs := drain(f)
	require.Len(t, msgs, 1)
	assert.Equal(t, "NMEA-GP-GGA", msgs[0].Name)

	f2 := New()
	f2.Feed(buildNMEA("GNRMC,fieldsgohere"))
	msgs2 := drain(f2)
	require.Len(t, msgs2, 1)
	assert.Equal(t, "NMEA-GN-RMC", msgs2[0].Name)

	f3 := New()
	f3.Feed(buildNMEA("PUBX,00,fieldsgohere"))
	msgs3 := drain(f3)
	require.Len(t, msgs3, 1)
	assert.Equal(t, "NMEA-PUBX", msgs3[0].Name)
}

// TestFramerConservation covers property 4: the concatenation of every
// emitted message's data, including the final flush, equals the input.
func TestFramerConservation(t *testing.T) {
	ubx := buildUBX(0x01, 0x07, make([]byte, 20))
	nmea := buildNMEA("GPRMC,abc")
	rtcm := buildRTCM3(1005, []byte{1, 2, 3, 4})
	input := append([]byte("xx"), ubx...)
	input = append(input, nmea...)
	input = append(input, []byte("yy")...)
	input = append(input, rtcm...)
	input = append(input, []byte("trailing")...)

	f := New()
	f.Feed(input)
	msgs := drain(f)
	if m := f.Flush(); m != nil {
		msgs = append(msgs, *m)
	}

	var got []byte
	for _, m := range msgs {
		got = append(got, m.Data...)
	}
	assert.Equal(t, input, got)
}

// TestFramerIdempotentClassification covers property 5: feeding the same
// stream byte-at-a-time or in one chunk yields the same non-GARBAGE
// messages in the same order.
func TestFramerIdempotentClassification(t *testing.T) {
	ubx := buildUBX(0x0a, 0x04, make([]byte, 4))
	nmea := buildNMEA("GPGGA,xyz")
	input := append([]byte("noise"), ubx...)
	input = append(input, nmea...)
	input = append(input, []byte("more-noise")...)

	whole := New()
	whole.Feed(input)
	wholeMsgs := drain(whole)
	if m := whole.Flush(); m != nil {
		wholeMsgs = append(wholeMsgs, *m)
	}

	byByte := New()
	var byByteMsgs []Message
	for i := range input {
		byByte.Feed(input[i : i+1])
		byByteMsgs = append(byByteMsgs, drain(byByte)...)
	}
	if m := byByte.Flush(); m != nil {
		byByteMsgs = append(byByteMsgs, *m)
	}

	filterNonGarbage := func(msgs []Message) []Message {
		var out []Message
		for _, m := range msgs {
			if m.Type != Garbage {
				out = append(out, m)
			}
		}
		return out
	}

	a, b := filterNonGarbage(wholeMsgs), filterNonGarbage(byByteMsgs)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Type, b[i].Type)
		assert.Equal(t, a[i].Data, b[i].Data)
		assert.Equal(t, a[i].Name, b[i].Name)
	}
}

// TestChecksumRejectionFixture covers property 6: a single flipped payload
// byte turns a would-be valid frame into GARBAGE of exactly that many
// bytes.
func TestChecksumRejectionFixture(t *testing.T) {
	frame := buildUBX(0x0a, 0x04, []byte{1, 2, 3, 4})
	corrupt := append([]byte(nil), frame...)
	corrupt[6] ^= 0xff // flip a payload byte, not sync/length

	f := New()
	f.Feed(corrupt)
	msgs := drain(f)
	if m := f.Flush(); m != nil {
		msgs = append(msgs, *m)
	}

	require.Len(t, msgs, 1)
	assert.Equal(t, Garbage, msgs[0].Type)
	assert.Equal(t, len(corrupt), msgs[0].Size)
	assert.Equal(t, corrupt, msgs[0].Data)
}

func TestRTCM3RoundTrip(t *testing.T) {
	frame := buildRTCM3(1077, []byte{0xaa, 0xbb, 0xcc})
	f := New()
	f.Feed(frame)
	msgs := drain(f)
	require.Len(t, msgs, 1)
	assert.Equal(t, RTCM3, msgs[0].Type)
	assert.Equal(t, "RTCM3-TYPE1077", msgs[0].Name)
}

func TestOversizedUBXLengthDemotesToGarbage(t *testing.T) {
	buf := []byte{0xb5, 0x62, 0x01, 0x07, 0xff, 0xff} // length = 0xffff > MaxUBXSize
	f := New()
	f.Feed(buf)
	f.Feed(make([]byte, 16))
	msgs := drain(f)
	if m := f.Flush(); m != nil {
		msgs = append(msgs, *m)
	}
	require.NotEmpty(t, msgs)
	assert.Equal(t, Garbage, msgs[0].Type)
}

func TestStatsAccumulate(t *testing.T) {
	f := New()
	f.Feed(buildUBX(0x0a, 0x04, []byte{1}))
	f.Feed(buildNMEA("GPGGA,x"))
	drain(f)

	st := f.Stats()
	assert.Equal(t, uint64(1), st.Count[UBX])
	assert.Equal(t, uint64(1), st.Count[NMEA])
	assert.Equal(t, uint64(2), st.TotalCount)
}

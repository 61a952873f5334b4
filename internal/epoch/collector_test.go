package epoch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramburn/gnss-toolkit/internal/framer"
)

func putLE32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

func putLE16(b []byte, off int, v uint16) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func buildNavPVT(iTOW uint32, numSV uint8) []byte {
	payload := make([]byte, 92)
	putLE32(payload, 0, iTOW)
	putLE16(payload, 4, 2026) // year
	payload[6], payload[7] = 7, 30
	payload[8], payload[9], payload[10] = 12, 0, 0
	payload[11] = 0x07 // validDate|validTime|fullyResolved
	payload[20] = 3    // fixType = 3D
	payload[21] = 0x01 // gnssFixOK
	payload[23] = numSV
	putLE32(payload, 24, 123456789)  // lon
	putLE32(payload, 28, 451234567)  // lat
	putLE32(payload, 32, 10000)      // height mm
	putLE32(payload, 36, 9500)       // hMSL mm
	putLE32(payload, 40, 1500)       // hAcc mm
	putLE32(payload, 44, 2000)       // vAcc mm
	putLE16(payload, 76, 150)        // pDOP (1.50)

	frame := append([]byte{0xb5, 0x62, 0x01, 0x07, byte(len(payload)), byte(len(payload) >> 8)}, payload...)
	return append(frame, 0, 0) // checksum not validated by the collector
}

func navPVTMessage(iTOW uint32, numSV uint8, seq uint64) *framer.Message {
	return &framer.Message{Type: framer.UBX, Data: buildNavPVT(iTOW, numSV), Name: "UBX-NAV-PVT", Seq: seq}
}

func buildNavHPPOSLLH(iTOW uint32, lonE7, latE7 int32, lonHP, latHP int8) []byte {
	payload := make([]byte, 36)
	putLE32(payload, 4, iTOW)
	putLE32(payload, 8, uint32(lonE7))
	putLE32(payload, 12, uint32(latE7))
	putLE32(payload, 16, 10000) // height mm
	putLE32(payload, 20, 9500)  // hMSL mm
	payload[24] = byte(lonHP)
	payload[25] = byte(latHP)
	payload[26] = 1 // heightHp: +0.1mm
	payload[27] = 1 // hMSLHp: +0.1mm
	putLE32(payload, 28, 15) // hAcc: 1.5mm
	putLE32(payload, 32, 20) // vAcc: 2.0mm

	frame := append([]byte{0xb5, 0x62, 0x01, 0x14, byte(len(payload)), byte(len(payload) >> 8)}, payload...)
	return append(frame, 0, 0)
}

func navHPPOSLLHMessage(iTOW uint32, lonE7, latE7 int32, lonHP, latHP int8) *framer.Message {
	return &framer.Message{Type: framer.UBX, Data: buildNavHPPOSLLH(iTOW, lonE7, latE7, lonHP, latHP), Name: "UBX-NAV-HPPOSLLH"}
}

func TestEpochMonotonicity(t *testing.T) {
	c := NewCollector()

	assert.Nil(t, c.Collect(navPVTMessage(1000, 8, 0)))
	e1 := c.Collect(navPVTMessage(2000, 9, 1))
	require.NotNil(t, e1)
	assert.Equal(t, uint64(0), e1.Seq)

	e2 := c.Collect(navPVTMessage(3000, 10, 2))
	require.NotNil(t, e2)
	assert.Equal(t, uint64(1), e2.Seq)
	assert.Greater(t, e2.Seq, e1.Seq)
}

func TestEpochIdempotence(t *testing.T) {
	c := NewCollector()
	c.Collect(navPVTMessage(1000, 8, 0))
	// duplicate pivot with identical iTOW must not emit or advance seq
	dup := c.Collect(navPVTMessage(1000, 8, 1))
	assert.Nil(t, dup)

	e := c.Collect(navPVTMessage(2000, 8, 2))
	require.NotNil(t, e)
	assert.Equal(t, uint64(0), e.Seq)
}

func TestEpochFieldsPopulated(t *testing.T) {
	c := NewCollector()
	c.Collect(navPVTMessage(1000, 8, 0))
	e := c.Collect(navPVTMessage(2000, 11, 1))
	require.NotNil(t, e)
	assert.Equal(t, Fix3D, e.Fix)
	assert.True(t, e.FixOK)
	assert.Equal(t, 8, e.NumSV)
	assert.InDelta(t, 12.3456789, e.LonDeg, 1e-6)
	assert.InDelta(t, 45.1234567, e.LatDeg, 1e-6)
	assert.NotEmpty(t, e.Summary)
}

// TestHPPOSLLHRefinesPosition: a UBX-NAV-HPPOSLLH arriving inside an open
// epoch must refine LatDeg/LonDeg/HAccM to sub-cm precision without itself
// opening or closing an epoch.
func TestHPPOSLLHRefinesPosition(t *testing.T) {
	c := NewCollector()
	c.Collect(navPVTMessage(1000, 8, 0))

	assert.Nil(t, c.Collect(navHPPOSLLHMessage(1000, 123456789, 451234567, 4, -3)))

	e := c.Collect(navPVTMessage(2000, 8, 1))
	require.NotNil(t, e)
	assert.True(t, e.HaveHighPrecision)
	assert.InDelta(t, 12.3456789+4e-9, e.LonDeg, 1e-12)
	assert.InDelta(t, 45.1234567-3e-9, e.LatDeg, 1e-12)
	assert.InDelta(t, 0.0015, e.HAccM, 1e-9)
}

func TestStickyReceiverVersionSurvivesReset(t *testing.T) {
	c := NewCollector()
	verFrame := &framer.Message{Type: framer.UBX, Data: append([]byte{0xb5, 0x62, 0x0a, 0x04, 0, 0}, 0, 0), Info: "SW=1.0 HW=ABC"}
	c.Collect(verFrame)

	c.Collect(navPVTMessage(1000, 5, 0))
	e := c.Collect(navPVTMessage(2000, 5, 1))
	require.NotNil(t, e)
	assert.Equal(t, "SW=1.0 HW=ABC", e.ReceiverVersion)
}

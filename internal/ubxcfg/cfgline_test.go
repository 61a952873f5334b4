package ubxcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripConfigLine(t *testing.T) {
	assert.Equal(t, "", StripConfigLine(""))
	assert.Equal(t, "", StripConfigLine("   "))
	assert.Equal(t, "", StripConfigLine("# just a comment"))
	assert.Equal(t, "CFG-RATE-MEAS 100", StripConfigLine("  CFG-RATE-MEAS 100  # comment"))
}

func TestParseConfigLineKeyVal(t *testing.T) {
	cl, err := ParseConfigLine("CFG-RATE-MEAS 100")
	require.NoError(t, err)
	assert.Equal(t, LineKeyVal, cl.Kind)
	assert.Equal(t, "CFG-RATE-MEAS", cl.Name)
	assert.Equal(t, "100", cl.Value)
}

func TestParseConfigLineHexID(t *testing.T) {
	cl, err := ParseConfigLine("0x30210001 100")
	require.NoError(t, err)
	assert.Equal(t, LineHexID, cl.Kind)
	assert.Equal(t, uint32(0x30210001), cl.KeyID)
	assert.Equal(t, "100", cl.Value)
}

func TestParseConfigLineMsgRate(t *testing.T) {
	cl, err := ParseConfigLine("UBX_NAV_PVT 1 - 0 5 -")
	require.NoError(t, err)
	assert.Equal(t, LineMsgRate, cl.Kind)
	assert.Equal(t, "UBX_NAV_PVT", cl.MsgRate.MsgName)
	require.NotNil(t, cl.MsgRate.UART1)
	assert.Equal(t, 1, *cl.MsgRate.UART1)
	assert.Nil(t, cl.MsgRate.UART2)
	require.NotNil(t, cl.MsgRate.SPI)
	assert.Equal(t, 0, *cl.MsgRate.SPI)
	require.NotNil(t, cl.MsgRate.I2C)
	assert.Equal(t, 5, *cl.MsgRate.I2C)
	assert.Nil(t, cl.MsgRate.USB)
}

func TestParseConfigLinePort(t *testing.T) {
	cl, err := ParseConfigLine("UART1 115200 UBX,NMEA UBX,!NMEA")
	require.NoError(t, err)
	assert.Equal(t, LinePort, cl.Kind)
	require.NotNil(t, cl.Port.Baud)
	assert.Equal(t, 115200, *cl.Port.Baud)
	assert.Equal(t, []string{"UBX", "NMEA"}, cl.Port.InProt.Enable)
	assert.Empty(t, cl.Port.InProt.Disable)

	cl2, err := ParseConfigLine("UART2 - - -")
	require.NoError(t, err)
	assert.Nil(t, cl2.Port.Baud)
	assert.True(t, cl2.Port.InProt.Unchanged)
	assert.True(t, cl2.Port.OutProt.Unchanged)
}

func TestParseConfigLinePortWithNegation(t *testing.T) {
	cl, err := ParseConfigLine("USB - UBX !RTCM3X")
	require.NoError(t, err)
	assert.Equal(t, []string{"UBX"}, cl.Port.InProt.Enable)
	assert.Equal(t, []string{"RTCM3X"}, cl.Port.OutProt.Disable)
}

func TestParseConfigLineRejectsMalformed(t *testing.T) {
	_, err := ParseConfigLine("CFG-RATE-MEAS")
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = ParseConfigLine("UART1 notanumber UBX UBX")
	assert.ErrorIs(t, err, ErrBadInput)
}

package receiver

import (
	"fmt"

	"github.com/bramburn/gnss-toolkit/internal/ubxcfg"
)

// portRates is the cfg2rx/rx2cfg textual format's column order: "MSGNAME u1
// u2 spi i2c usb" (spec.md §3, §6).
type portRates struct {
	UART1, UART2, SPI, I2C, USB int
}

// RateToKeyVals converts one cfg2rx-style rate line into the key/value pairs
// a SetConfig command needs, skipping any port whose rate is -1 ("leave
// unchanged" in the textual grammar). Returns an error if msgName is not a
// known output message.
func RateToKeyVals(msgName string, rates portRates) ([]ubxcfg.KeyVal, error) {
	mr := ubxcfg.GetMsgRate(msgName)
	if mr == nil {
		return nil, fmt.Errorf("receiver: unknown message %q", msgName)
	}

	var kvs []ubxcfg.KeyVal
	add := func(id uint32, rate int) {
		if id == 0 || rate < 0 {
			return
		}
		kvs = append(kvs, ubxcfg.KeyVal{ID: id, Val: ubxcfg.ValueFromBytes(ubxcfg.SizeOne, []byte{byte(rate)})})
	}
	add(mr.UART1ID, rates.UART1)
	add(mr.UART2ID, rates.UART2)
	add(mr.SPIID, rates.SPI)
	add(mr.I2CID, rates.I2C)
	add(mr.USBID, rates.USB)
	return kvs, nil
}

// KeyValsToRates is RateToKeyVals's inverse: given a message name and the
// key/value pairs returned by a GetConfig poll, it reports the rate on each
// port, or -1 for a port whose item wasn't present in pairs.
func KeyValsToRates(msgName string, pairs []ubxcfg.KeyVal) (portRates, error) {
	mr := ubxcfg.GetMsgRate(msgName)
	if mr == nil {
		return portRates{}, fmt.Errorf("receiver: unknown message %q", msgName)
	}

	byID := make(map[uint32]ubxcfg.Value, len(pairs))
	for _, kv := range pairs {
		byID[kv.ID] = kv.Val
	}

	lookup := func(id uint32) int {
		if id == 0 {
			return -1
		}
		v, ok := byID[id]
		if !ok {
			return -1
		}
		return int(v.U1())
	}

	return portRates{
		UART1: lookup(mr.UART1ID),
		UART2: lookup(mr.UART2ID),
		SPI:   lookup(mr.SPIID),
		I2C:   lookup(mr.I2CID),
		USB:   lookup(mr.USBID),
	}, nil
}

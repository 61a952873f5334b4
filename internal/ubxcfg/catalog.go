package ubxcfg

import (
	"fmt"
	"strconv"
	"strings"
)

// catalog is the immutable, process-wide table of known configuration items.
// It is built once in init() and never mutated afterwards, so it may be read
// from any goroutine without synchronization (spec.md §4.1/§9).
var catalog []*Item

// byID and byName back the two sub-microsecond lookups the catalog offers.
var byID map[uint32]*Item
var byName map[string]*Item

// msgRates is the message-rate shortcut table, keyed by short message name.
var msgRates []*MsgRate
var msgRateByName map[string]*MsgRate

func init() {
	catalog = make([]*Item, 0, len(baseItems)+5*len(msgoutFamilies))
	for i := range baseItems {
		catalog = append(catalog, &baseItems[i])
	}

	msgRates = make([]*MsgRate, 0, len(msgoutFamilies))
	msgRateByName = make(map[string]*MsgRate, len(msgoutFamilies))
	for _, fam := range msgoutFamilies {
		rate := &MsgRate{MsgName: fam.shortName}
		for _, p := range portOffsets {
			id := fam.baseID + p.offset
			it := &Item{
				ID:    id,
				Type:  U1,
				Name:  fmt.Sprintf("CFG-MSGOUT-%s_%s", fam.shortName, p.name),
				Title: fmt.Sprintf("Output rate of %s on %s", strings.ReplaceAll(fam.shortName, "_", "-"), p.name),
			}
			catalog = append(catalog, it)
			switch p.name {
			case "UART1":
				rate.UART1ID = id
			case "UART2":
				rate.UART2ID = id
			case "SPI":
				rate.SPIID = id
			case "I2C":
				rate.I2CID = id
			case "USB":
				rate.USBID = id
			}
		}
		msgRates = append(msgRates, rate)
		msgRateByName[fam.shortName] = rate
	}

	byID = make(map[uint32]*Item, len(catalog))
	byName = make(map[string]*Item, len(catalog))
	for _, it := range catalog {
		byID[it.ID] = it
		byName[it.Name] = it
	}
}

// portOffset associates a port name with the ID offset used by the MSGOUT
// item family generator, matching the layout pinned by spec.md §8 S1
// (..._UART1 = base+1 relative to the I2C/base entry).
type portOffset struct {
	name   string
	offset uint32
}

var portOffsets = []portOffset{
	{"I2C", 0},
	{"UART1", 1},
	{"UART2", 2},
	{"USB", 3},
	{"SPI", 4},
}

// GetItemByID looks up a configuration item by its 32-bit ID. Returns nil if
// unknown.
func GetItemByID(id uint32) *Item {
	return byID[id]
}

// GetItemByName looks up a configuration item by its name (e.g.
// "CFG-NAVSPG-FIXMODE"), or by a hex ID string when name starts with "0x"
// (e.g. "0x20110011"). Returns nil if unknown or malformed.
func GetItemByName(name string) *Item {
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		id, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil {
			return nil
		}
		return byID[uint32(id)]
	}
	return byName[name]
}

// AllItems returns the full catalog. The returned slice must not be mutated
// by callers; it is the catalog's own backing array.
func AllItems() []*Item {
	return catalog
}

// GetMsgRate looks up the message-rate descriptor for a short message name
// (e.g. "UBX_NAV_PVT").
func GetMsgRate(msgName string) *MsgRate {
	return msgRateByName[msgName]
}

// AllMsgRates returns every known message-rate descriptor.
func AllMsgRates() []*MsgRate {
	return msgRates
}

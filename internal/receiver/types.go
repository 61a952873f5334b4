// Package receiver drives a live GNSS receiver through an asynchronous
// worker: it owns exactly one transport, framer, and epoch collector, pumps
// bytes in one direction and a bounded command queue in the other, and
// delivers a bounded stream of events to a consumer. See the package's
// driver.go for the worker loop.
package receiver

import (
	"github.com/bramburn/gnss-toolkit/internal/epoch"
	"github.com/bramburn/gnss-toolkit/internal/framer"
	"github.com/bramburn/gnss-toolkit/internal/ubxcfg"
)

// State is the receiver's coarse lifecycle state, observed by the consumer
// and updated by Start, Stop and the worker.
type State int32

const (
	StateIdle State = iota
	StateBusy
	StateReady
)

func (s State) String() string {
	switch s {
	case StateBusy:
		return "busy"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// ResetKind selects which UBX-CFG-RST (or, for Safeboot, UBX-UPD-SAFEBOOT)
// variant a CmdReset issues. Mirrors u-blox's RX_RESET_t enumeration.
type ResetKind int

const (
	ResetNone ResetKind = iota
	ResetSoft
	ResetHard
	ResetHot
	ResetWarm
	ResetCold
	ResetDefault
	ResetFactory
	ResetGNSSStop
	ResetGNSSStart
	ResetGNSSRestart
	ResetSafeboot
)

func (k ResetKind) String() string {
	switch k {
	case ResetNone:
		return "none"
	case ResetSoft:
		return "soft"
	case ResetHard:
		return "hard"
	case ResetHot:
		return "hot"
	case ResetWarm:
		return "warm"
	case ResetCold:
		return "cold"
	case ResetDefault:
		return "default"
	case ResetFactory:
		return "factory"
	case ResetGNSSStop:
		return "gnss-stop"
	case ResetGNSSStart:
		return "gnss-start"
	case ResetGNSSRestart:
		return "gnss-restart"
	case ResetSafeboot:
		return "safeboot"
	default:
		return "unknown"
	}
}

// CommandKind tags a Command's variant.
type CommandKind int

const (
	CmdNoop CommandKind = iota
	CmdSetBaud
	CmdReset
	CmdSend
	CmdGetConfig
	CmdSetConfig
)

// Command is the tagged variant the consumer pushes onto the driver's
// inbound queue. Only the fields relevant to Kind are populated.
type Command struct {
	Kind CommandKind

	Baud  int
	Reset ResetKind
	Data  []byte

	Layer ubxcfg.Layer // CmdGetConfig
	Keys  []uint32     // CmdGetConfig

	TargetLayers ubxcfg.LayerBit // CmdSetConfig
	Apply        bool            // CmdSetConfig
	Pairs        []ubxcfg.KeyVal // CmdSetConfig

	CorrelationID uint64
}

// EventKind tags an Event's variant.
type EventKind int

const (
	EvMessage EventKind = iota
	EvEpoch
	EvNotice
	EvWarning
	EvError
	EvGetConfigDone
	EvSetConfigDone
)

// Event is the tagged variant the worker pushes onto the outbound queue.
type Event struct {
	Kind EventKind

	Message *framer.Message // EvMessage
	Epoch   *epoch.Epoch    // EvEpoch
	Text    string          // EvNotice/EvWarning/EvError

	Layer ubxcfg.Layer    // EvGetConfigDone
	Pairs []ubxcfg.KeyVal // EvGetConfigDone
	Ack   bool            // EvSetConfigDone

	CorrelationID uint64 // EvGetConfigDone/EvSetConfigDone
}

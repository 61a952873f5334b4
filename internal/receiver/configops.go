package receiver

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bramburn/gnss-toolkit/internal/framer"
	"github.com/bramburn/gnss-toolkit/internal/ubxcfg"
)

const (
	cfgPollTimeout  = 2 * time.Second
	cfgPollRetries  = 2
	resetAckTimeout = 2 * time.Second
	resetAckRetries = 2
	reopenTimeout   = 10 * time.Second
)

const (
	ubxClassCFG = 0x06
	ubxIDValset = 0x8a
	ubxIDValget = 0x8b
	ubxIDRst    = 0x04
	ubxIDCfgCfg = 0x09

	ubxClassUPD      = 0x09
	ubxIDUpdSafeboot = 0x41
)

// UBX-CFG-RST navBbrMask values (which navigation-data BBR sections to
// clear).
const (
	navBbrNone      uint16 = 0x0000
	navBbrHotstart  uint16 = 0x0000
	navBbrWarmstart uint16 = 0x0001
	navBbrColdstart uint16 = 0xffff
)

// UBX-CFG-RST resetMode values.
const (
	resetModeHWForced     byte = 0x00
	resetModeSW           byte = 0x01
	resetModeGNSS         byte = 0x02
	resetModeHWControlled byte = 0x04
	resetModeGNSSStop     byte = 0x08
	resetModeGNSSStart    byte = 0x09
)

// UBX-CFG-CFG masks/bits used to clear stored configuration from BBR and
// Flash ahead of a Default/Factory reset.
const (
	cfgCfgClearAll    uint32 = 0xffffffff
	cfgCfgSaveNone    uint32 = 0x00000000
	cfgCfgLoadNone    uint32 = 0x00000000
	cfgCfgDeviceBBR   byte   = 0x01
	cfgCfgDeviceFlash byte   = 0x02
)

// resetSpec is what resetParams derives from a ResetKind: the UBX-CFG-RST
// payload fields, whether the reset disconnects the transport (so the
// worker needs to close/reopen it), whether it's sent as UBX-UPD-SAFEBOOT
// instead of UBX-CFG-RST, and whether stored config must be cleared first.
type resetSpec struct {
	navBbrMask  uint16
	resetMode   byte
	reenumerate bool
	safeboot    bool
	clearConfig bool
}

// doGetConfig pages a key list through UBX-CFG-VALGET polls, MaxKV keys at
// a time, decoding and accumulating each response (spec.md §4.6).
func (d *Driver) doGetConfig(cmd Command) {
	var all []ubxcfg.KeyVal
	keys := cmd.Keys

	for start := 0; start < len(keys) || (start == 0 && len(keys) == 0); start += ubxcfg.MaxKV {
		end := start + ubxcfg.MaxKV
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[start:end]

		payload, err := ubxcfg.BuildValgetPoll(cmd.Layer, 0, chunk)
		if err != nil {
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("get-config: %v", err)})
			return
		}
		msg, nak, err := d.pollRequest(ubxClassCFG, ubxIDValget, payload, cfgPollTimeout, cfgPollRetries, true)
		if err != nil {
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("get-config: %v", err)})
			return
		}
		if nak {
			// Empty layer (e.g. BBR/Flash with no stored override): no
			// records for this chunk, not a failure.
			if len(keys) == 0 {
				break
			}
			continue
		}
		respPayload := msg.Data[6 : len(msg.Data)-2]
		_, kvs, err := ubxcfg.ParseValgetResponse(respPayload)
		if err != nil {
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("get-config: %v", err)})
			return
		}
		all = append(all, kvs...)

		if len(keys) == 0 {
			break
		}
	}

	d.emitEvent(Event{Kind: EvGetConfigDone, Layer: cmd.Layer, Pairs: all, CorrelationID: cmd.CorrelationID})
}

// doSetConfig batches pairs into UBX-CFG-VALSET messages, confirming each
// via UBX-ACK before sending the next, then optionally finishes with a soft
// reset (spec.md §4.6).
func (d *Driver) doSetConfig(cmd Command) {
	chunks, err := ubxcfg.BuildValset(cmd.TargetLayers, cmd.Pairs)
	if err != nil {
		d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("set-config: %v", err)})
		d.emitEvent(Event{Kind: EvSetConfigDone, Ack: false, CorrelationID: cmd.CorrelationID})
		return
	}

	for _, payload := range chunks {
		ack, err := d.pollAck(ubxClassCFG, ubxIDValset, payload, cfgPollTimeout, cfgPollRetries)
		if err != nil {
			d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("set-config: %v", err)})
			d.emitEvent(Event{Kind: EvSetConfigDone, Ack: false, CorrelationID: cmd.CorrelationID})
			return
		}
		if !ack {
			d.emitEvent(Event{Kind: EvSetConfigDone, Ack: false, CorrelationID: cmd.CorrelationID})
			return
		}
	}

	if cmd.Apply {
		spec := resetParams(ResetHot)
		payload := []byte{byte(spec.navBbrMask), byte(spec.navBbrMask >> 8), spec.resetMode, 0}
		ack, err := d.pollAck(ubxClassCFG, ubxIDRst, payload, resetAckTimeout, resetAckRetries)
		if err != nil || !ack {
			d.emitEvent(Event{Kind: EvSetConfigDone, Ack: false, CorrelationID: cmd.CorrelationID})
			return
		}
	}

	d.emitEvent(Event{Kind: EvSetConfigDone, Ack: true, CorrelationID: cmd.CorrelationID})
}

// resetParams maps a ResetKind to its UBX-CFG-RST navBbrMask/resetMode (or,
// for Safeboot, the fact that UBX-UPD-SAFEBOOT is sent instead), whether the
// transport needs closing/reopening afterward, and whether stored
// configuration must be cleared first. Hot/Warm/Cold don't reenumerate
// because they reset the GNSS engine in place, not the receiver's USB
// interface; every other kind does, including GNSS-stop/start/restart,
// which — despite not reconnecting hardware either — reenumerate the same
// way the hardware-reset kinds do.
func resetParams(kind ResetKind) resetSpec {
	switch kind {
	case ResetSoft:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeSW, reenumerate: true}
	case ResetHard:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeHWControlled, reenumerate: true}
	case ResetHot:
		return resetSpec{navBbrMask: navBbrHotstart, resetMode: resetModeGNSS, reenumerate: false}
	case ResetWarm:
		return resetSpec{navBbrMask: navBbrWarmstart, resetMode: resetModeGNSS, reenumerate: false}
	case ResetCold:
		return resetSpec{navBbrMask: navBbrColdstart, resetMode: resetModeGNSS, reenumerate: false}
	case ResetDefault:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeHWForced, reenumerate: true, clearConfig: true}
	case ResetFactory:
		return resetSpec{navBbrMask: navBbrColdstart, resetMode: resetModeHWControlled, reenumerate: true, clearConfig: true}
	case ResetGNSSStop:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeGNSSStop, reenumerate: true}
	case ResetGNSSStart:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeGNSSStart, reenumerate: true}
	case ResetGNSSRestart:
		return resetSpec{navBbrMask: navBbrNone, resetMode: resetModeGNSS, reenumerate: true}
	case ResetSafeboot:
		return resetSpec{safeboot: true, reenumerate: true}
	default: // ResetNone and anything unrecognized: no-op, caller checks kind first
		return resetSpec{}
	}
}

// buildCfgCfgClear builds a UBX-CFG-CFG message clearing all stored config
// sections from the BBR and Flash layers (the deprecated config-clear
// interface; UBX-CFG-VALDEL has no wildcard-all key).
func buildCfgCfgClear() []byte {
	payload := make([]byte, 13)
	binary.LittleEndian.PutUint32(payload[0:4], cfgCfgClearAll)
	binary.LittleEndian.PutUint32(payload[4:8], cfgCfgSaveNone)
	binary.LittleEndian.PutUint32(payload[8:12], cfgCfgLoadNone)
	payload[12] = cfgCfgDeviceBBR | cfgCfgDeviceFlash
	return payload
}

// doReset issues the reset UBX-CFG-RST demands (or UBX-UPD-SAFEBOOT, for
// Safeboot), optionally clearing stored config first. The reset frame
// itself is fire-and-forget, not ACKed: a receiver committing to Hot/Warm/
// Cold or a hardware reset may not answer before it resets. Kinds that
// reenumerate close and reopen the transport with retry; kinds that don't
// (Hot/Warm/Cold) leave it open since the receiver stays on the bus.
func (d *Driver) doReset(cmd Command) {
	if cmd.Reset == ResetNone {
		d.emitEvent(Event{Kind: EvNotice, Text: "reset: none requested, no-op"})
		return
	}

	spec := resetParams(cmd.Reset)

	if spec.clearConfig {
		ack, err := d.pollAck(ubxClassCFG, ubxIDCfgCfg, buildCfgCfgClear(), cfgPollTimeout, cfgPollRetries)
		if err != nil || !ack {
			d.emitEvent(Event{Kind: EvError, Text: "reset: clearing stored configuration failed"})
			return
		}
	}

	var frame []byte
	if spec.safeboot {
		frame = framer.BuildUBX(ubxClassUPD, ubxIDUpdSafeboot, nil)
	} else {
		payload := []byte{byte(spec.navBbrMask), byte(spec.navBbrMask >> 8), spec.resetMode, 0}
		frame = framer.BuildUBX(ubxClassCFG, ubxIDRst, payload)
	}
	if _, err := d.tr.Write(frame); err != nil {
		d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("reset: %v", err)})
		return
	}

	if !spec.reenumerate {
		d.emitEvent(Event{Kind: EvNotice, Text: fmt.Sprintf("reset (%s) sent", cmd.Reset)})
		return
	}

	d.tr.Close()
	ctx, cancel := context.WithTimeout(context.Background(), reopenTimeout)
	defer cancel()
	if err := d.tr.Open(ctx); err != nil {
		d.emitEvent(Event{Kind: EvError, Text: fmt.Sprintf("reset: reopen failed: %v", err)})
		d.state.Store(int32(StateIdle))
		return
	}
	d.emitEvent(Event{Kind: EvNotice, Text: fmt.Sprintf("reset (%s) complete, transport reopened", cmd.Reset)})
}

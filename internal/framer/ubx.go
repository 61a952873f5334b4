package framer

import (
	"bytes"
	"fmt"
)

// ubxClassNames maps a UBX class byte to its mnemonic; unknown classes
// fall back to a hex literal.
var ubxClassNames = map[byte]string{
	0x01: "NAV", 0x02: "RXM", 0x04: "INF", 0x05: "ACK", 0x06: "CFG",
	0x09: "UPD", 0x0a: "MON", 0x0b: "AID", 0x0d: "TIM", 0x10: "ESF",
	0x13: "MGA", 0x21: "LOG", 0x27: "SEC", 0x28: "HNR",
}

// ubxMsgNames maps known {class, id} pairs to their message mnemonic.
var ubxMsgNames = map[[2]byte]string{
	{0x01, 0x07}: "NAV-PVT", {0x01, 0x35}: "NAV-SAT", {0x01, 0x04}: "NAV-DOP",
	{0x01, 0x03}: "NAV-STATUS", {0x01, 0x21}: "NAV-TIMEUTC", {0x01, 0x14}: "NAV-HPPOSLLH",
	{0x01, 0x13}: "NAV-HPPOSECEF", {0x01, 0x22}: "NAV-CLOCK", {0x01, 0x12}: "NAV-VELNED",
	{0x01, 0x34}: "NAV-ORB", {0x01, 0x3b}: "NAV-SVIN", {0x01, 0x43}: "NAV-SIG",
	{0x02, 0x15}: "RXM-RAWX", {0x02, 0x13}: "RXM-SFRBX", {0x02, 0x32}: "RXM-RTCM",
	{0x05, 0x01}: "ACK-ACK", {0x05, 0x00}: "ACK-NAK",
	{0x06, 0x8a}: "CFG-VALSET", {0x06, 0x8b}: "CFG-VALGET", {0x06, 0x04}: "CFG-RST",
	{0x0a, 0x04}: "MON-VER", {0x0a, 0x36}: "MON-COMMS", {0x0a, 0x38}: "MON-RF", {0x0a, 0x09}: "MON-HW",
	{0x0d, 0x01}: "TIM-TP",
	{0x04, 0x00}: "INF-ERROR", {0x04, 0x01}: "INF-WARNING", {0x04, 0x02}: "INF-NOTICE",
	{0x04, 0x03}: "INF-TEST", {0x04, 0x04}: "INF-DEBUG",
}

func ubxName(class, id byte) string {
	if n, ok := ubxMsgNames[[2]byte{class, id}]; ok {
		return "UBX-" + n
	}
	cn, ok := ubxClassNames[class]
	if !ok {
		cn = fmt.Sprintf("0x%02x", class)
	}
	return fmt.Sprintf("UBX-%s-0x%02x", cn, id)
}

// probeUBX recognizes a UBX frame: sync B5 62, class, id, length(u16_le),
// payload, two checksum bytes (8-bit Fletcher over class..payload).
func probeUBX(buf []byte) probeOutcome {
	if len(buf) < 2 || buf[0] != 0xb5 || buf[1] != 0x62 {
		return probeOutcome{result: probeNoMatch}
	}
	if len(buf) < 6 {
		return probeOutcome{result: probeIncomplete}
	}
	class, id := buf[2], buf[3]
	length := int(buf[4]) | int(buf[5])<<8
	if length > MaxUBXSize {
		return probeOutcome{result: probeInvalid}
	}
	total := 6 + length + 2
	if len(buf) < total {
		return probeOutcome{result: probeIncomplete}
	}
	wantA, wantB := ubxChecksum(buf[2 : 4+2+length])
	gotA, gotB := buf[total-2], buf[total-1]
	if wantA != gotA || wantB != gotB {
		return probeOutcome{result: probeInvalid}
	}

	name := ubxName(class, id)
	payload := buf[6 : 6+length]
	info := ""
	switch {
	case class == 0x0a && id == 0x04:
		info = ubxMonVerInfo(payload)
	case class == 0x04:
		info = string(bytes.TrimRight(payload, "\x00"))
	}
	return probeOutcome{result: probeOK, size: total, name: name, info: info}
}

// ubxMonVerInfo summarizes the fixed swVersion/hwVersion fields plus any
// "FWVER=..." / "MOD=..." extension strings of a UBX-MON-VER payload.
func ubxMonVerInfo(payload []byte) string {
	if len(payload) < 40 {
		return ""
	}
	sw := string(bytes.TrimRight(payload[0:30], "\x00"))
	hw := string(bytes.TrimRight(payload[30:40], "\x00"))
	info := fmt.Sprintf("SW=%s HW=%s", sw, hw)
	for off := 40; off+30 <= len(payload); off += 30 {
		ext := string(bytes.TrimRight(payload[off:off+30], "\x00"))
		if ext == "" {
			continue
		}
		if bytes.HasPrefix([]byte(ext), []byte("FWVER=")) || bytes.HasPrefix([]byte(ext), []byte("MOD=")) {
			info += " " + ext
		}
	}
	return info
}

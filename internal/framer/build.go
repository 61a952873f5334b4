package framer

// BuildUBX assembles a complete outgoing UBX frame: sync bytes, class, id,
// little-endian length, payload, and the 8-bit Fletcher checksum. Callers
// that issue UBX requests (the receiver driver's poll/ACK helpers) use this
// instead of hand-rolling the framing on the write side.
func BuildUBX(class, id byte, payload []byte) []byte {
	frame := make([]byte, 0, 8+len(payload))
	frame = append(frame, 0xb5, 0x62, class, id, byte(len(payload)), byte(len(payload)>>8))
	frame = append(frame, payload...)
	ckA, ckB := ubxChecksum(frame[2:])
	return append(frame, ckA, ckB)
}

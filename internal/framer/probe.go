package framer

// probeResult is the outcome of attempting to recognize a frame of one
// particular protocol at the current buffer position.
type probeResult int

const (
	// probeNoMatch means the sync bytes for this protocol are not present
	// at this position; the caller should try the next protocol.
	probeNoMatch probeResult = iota
	// probeIncomplete means the sync matched and the header (so far as
	// decoded) is plausible, but not enough bytes are buffered yet to
	// complete the frame. The caller must wait for more input.
	probeIncomplete
	// probeInvalid means the sync matched but the frame failed a
	// structural check (oversized length) or checksum validation; the
	// byte at the sync position is garbage and the caller should advance
	// by one byte and retry from scratch.
	probeInvalid
	// probeOK means a complete, valid frame was recognized.
	probeOK
)

// probeOutcome is returned by every protocol probe.
type probeOutcome struct {
	result probeResult
	size   int // valid only when result == probeOK
	name   string
	info   string
}

// probe recognizes one protocol's frame at the start of buf.
type probe struct {
	typ MsgType
	fn  func(buf []byte) probeOutcome
}

// probes lists the recognizers in the order they are tried at each buffer
// position (spec order: UBX, NMEA, RTCM3, SPARTN, NOVATEL).
var probes = []probe{
	{UBX, probeUBX},
	{NMEA, probeNMEA},
	{RTCM3, probeRTCM3},
	{SPARTN, probeSPARTN},
	{NOVATEL, probeNOVATEL},
}

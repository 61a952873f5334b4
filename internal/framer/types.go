// Package framer turns a raw, possibly interleaved byte stream from a GNSS
// receiver into a sequence of classified messages. It recognizes UBX, NMEA,
// RTCM3, SPARTN and NOVATEL frames and passes everything else through as
// GARBAGE. It never interprets message payloads beyond what is needed to
// validate framing and, for a handful of message kinds, extract a short
// human-readable info string.
package framer

import "time"

// MsgType classifies one emitted message.
type MsgType int

const (
	Garbage MsgType = iota
	UBX
	NMEA
	RTCM3
	SPARTN
	NOVATEL
	numMsgTypes
)

var msgTypeNames = [...]string{
	Garbage: "GARBAGE", UBX: "UBX", NMEA: "NMEA", RTCM3: "RTCM3", SPARTN: "SPARTN", NOVATEL: "NOVATEL",
}

func (t MsgType) String() string {
	if int(t) >= 0 && int(t) < len(msgTypeNames) {
		return msgTypeNames[t]
	}
	return "?"
}

// MsgSrc records where a message came from or is headed, mirroring the
// source tag carried by messages logged or replayed through the toolkit.
// The framer itself always sets Unknown; callers that feed it bytes
// received from (or about to be sent to) a receiver stamp messages
// accordingly once emitted.
type MsgSrc int

const (
	SrcUnknown MsgSrc = iota
	SrcFromReceiver
	SrcToReceiver
	SrcVirtual
	SrcUser
	SrcLog
)

// Message is one classified frame (or GARBAGE run) produced by the framer.
type Message struct {
	Type MsgType
	Data []byte // the exact bytes of the frame, including sync/checksum
	Size int
	Seq  uint64
	Ts   time.Time
	Src  MsgSrc
	Name string // short message name, e.g. "UBX-NAV-PVT", "NMEA-GP-GGA"; "" for GARBAGE
	Info string // extra text for select kinds (UBX-MON-VER, UBX-INF-*, NMEA TXT); "" otherwise
}

// Protocol-specific hard size caps (original_source/ff/ff_parser.h). Frames
// whose declared length exceeds these are demoted to GARBAGE rather than
// accepted.
const (
	MaxUBXSize     = 8192
	MaxNMEASize    = 400
	MaxRTCM3Size   = 4096
	MaxSPARTNSize  = 4096
	MaxNOVATELSize = 4096

	// GarbageChunkSize is the run length at which accumulated
	// unrecognized bytes are flushed as one GARBAGE message rather than
	// held indefinitely waiting for a sync.
	GarbageChunkSize = 4096
)

// Stats is a point-in-time snapshot of the framer's per-protocol and
// aggregate counters. Counters are monotone for the lifetime of a Framer.
type Stats struct {
	Count      [numMsgTypes]uint64
	Bytes      [numMsgTypes]uint64
	TotalCount uint64
	TotalBytes uint64
}

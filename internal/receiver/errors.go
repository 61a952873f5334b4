package receiver

import "errors"

// Sentinel errors distinct from ubxcfg's codec errors (spec.md §7):
// ProtocolNak, Timeout and Aborted are driver-level, not codec-level. Event
// queue saturation is not an error; it surfaces as a warning event.
var (
	// ErrProtocolNak names a matching UBX-ACK-NAK reply to a UBX request.
	// pollRequest and pollAck report a NAK through their boolean result with
	// a nil error, so no function in this package returns it.
	ErrProtocolNak = errors.New("receiver: request NAKed")

	// ErrTimeout is returned when no matching response arrived within the
	// bound, after retries.
	ErrTimeout = errors.New("receiver: request timed out")

	// ErrAborted is returned by blocking helpers when Stop's abort flag was
	// observed mid-wait.
	ErrAborted = errors.New("receiver: aborted")
)

package ubxcfg

import "errors"

// Sentinel errors returned by this package's codec, stringify and parse
// functions. Callers should compare with errors.Is, not string matching.
var (
	// ErrUnknownItem is returned when an ID or name does not resolve to any
	// catalog entry.
	ErrUnknownItem = errors.New("ubxcfg: unknown configuration item")

	// ErrBadInput is returned for malformed wire data, out-of-range values,
	// or malformed textual representations.
	ErrBadInput = errors.New("ubxcfg: bad input")

	// ErrTooManyKeyVals is returned by BuildValgetPoll when a caller asks
	// for more than MaxKV keys in a single VALGET poll. BuildValset does not
	// return it; it splits longer lists across several VALSET messages.
	ErrTooManyKeyVals = errors.New("ubxcfg: too many key/value pairs for one VALSET message")
)

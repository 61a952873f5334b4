package ubxcfg

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueFromString parses a textual value for the given type, consulting
// item (which may be nil) for named E/X constants. Leading or trailing
// whitespace is rejected outright — a known source of silent
// misconfiguration in the reference implementation that this package does
// not repeat. Each size class is range-checked; out-of-range numbers are
// rejected rather than silently truncated.
func ValueFromString(t Type, item *Item, s string) (Value, error) {
	if s == "" || s != strings.TrimSpace(s) {
		return Value{}, fmt.Errorf("%w: value %q has leading/trailing whitespace or is empty", ErrBadInput, s)
	}

	switch t {
	case L:
		switch s {
		case "0", "false":
			return ValueFromBool(false), nil
		case "1", "true":
			return ValueFromBool(true), nil
		default:
			return Value{}, fmt.Errorf("%w: %q is not a valid L value", ErrBadInput, s)
		}

	case U1, U2, U4, U8:
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid %s value: %v", ErrBadInput, s, t, err)
		}
		if !fitsUnsigned(t, u) {
			return Value{}, fmt.Errorf("%w: %q out of range for %s", ErrBadInput, s, t)
		}
		return valueFromUint(t, u), nil

	case I1, I2, I4, I8:
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid %s value: %v", ErrBadInput, s, t, err)
		}
		if !fitsSigned(t, i) {
			return Value{}, fmt.Errorf("%w: %q out of range for %s", ErrBadInput, s, t)
		}
		return valueFromInt(t, i), nil

	case R4:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid R4 value: %v", ErrBadInput, s, err)
		}
		return ValueFromFloat32(float32(f)), nil

	case R8:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid R8 value: %v", ErrBadInput, s, err)
		}
		return ValueFromFloat64(f), nil

	case E1, E2, E4:
		if item != nil {
			for _, c := range item.Consts {
				if c.Name == s {
					return valueFromInt(t, c.Value), nil
				}
			}
		}
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a known constant or numeric %s value", ErrBadInput, s, t)
		}
		if !fitsSigned(t, i) {
			return Value{}, fmt.Errorf("%w: %q out of range for %s", ErrBadInput, s, t)
		}
		return valueFromInt(t, i), nil

	case X1, X2, X4, X8:
		return parseBitmask(t, item, s)

	default:
		return Value{}, fmt.Errorf("%w: unknown type", ErrBadInput)
	}
}

// parseBitmask accepts either a single numeric literal ("0x83") or a
// "|"-joined list of named constants and/or numeric literals
// ("FIRST|SECOND|0x7c"), mirroring what StringifyValue produces for X
// types.
func parseBitmask(t Type, item *Item, s string) (Value, error) {
	parts := strings.Split(s, "|")
	var u uint64
	for _, p := range parts {
		if p == "" {
			return Value{}, fmt.Errorf("%w: empty term in bitmask %q", ErrBadInput, s)
		}
		matched := false
		if item != nil {
			for _, c := range item.Consts {
				if c.Name == p {
					u |= uint64(c.Value)
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		v, err := strconv.ParseUint(p, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a known constant or numeric term", ErrBadInput, p)
		}
		u |= v
	}
	if !fitsUnsigned(t, u) {
		return Value{}, fmt.Errorf("%w: %q out of range for %s", ErrBadInput, s, t)
	}
	return valueFromUint(t, u), nil
}

func fitsUnsigned(t Type, u uint64) bool {
	switch TypeSize(t) {
	case SizeBit, SizeOne:
		return u <= 0xff
	case SizeTwo:
		return u <= 0xffff
	case SizeFour:
		return u <= 0xffffffff
	case SizeEight:
		return true
	default:
		return false
	}
}

func fitsSigned(t Type, i int64) bool {
	switch TypeSize(t) {
	case SizeOne:
		return i >= -0x80 && i <= 0x7f
	case SizeTwo:
		return i >= -0x8000 && i <= 0x7fff
	case SizeFour:
		return i >= -0x80000000 && i <= 0x7fffffff
	case SizeEight:
		return true
	default:
		return false
	}
}

package ubxcfg

import (
	"fmt"
	"strconv"
	"strings"
)

// StringifyValue renders a value the way the catalog's own generator does.
// No item scale factor or unit is applied here — callers that want a scaled,
// unit-suffixed rendering do that on top of this, using the item's
// Scale/Unit fields. Named constants are added for L, and for X/E types
// when item is non-nil and carries Consts.
//
//	L: "0 (false)" / "1 (true)"
//	U: "0", "42", "8190232132"
//	I: "0", "-42", "3423443"
//	X: "0x81 (FIRST|LAST)", "0x7c (n/a)", "0xff (FIRST|SECOND|LAST|0x7c)"
//	E: "1 (ONE)", "2 (TWO)", "3 (n/a)"
//	R: "0", "1", "0.5", "1.25e-24"
func StringifyValue(t Type, item *Item, val Value) string {
	switch t {
	case L:
		if val.L() {
			return "1 (true)"
		}
		return "0 (false)"

	case U1, U2, U4, U8:
		return strconv.FormatUint(val.AsUint(t), 10)

	case I1, I2, I4, I8:
		return strconv.FormatInt(val.AsInt(t), 10)

	case R4:
		return strconv.FormatFloat(float64(val.R4()), 'g', -1, 32)
	case R8:
		return strconv.FormatFloat(val.R8(), 'g', -1, 64)

	case E1, E2, E4:
		v := val.AsInt(t)
		name := "n/a"
		if item != nil {
			for _, c := range item.Consts {
				if c.Value == v {
					name = c.Name
					break
				}
			}
		}
		return fmt.Sprintf("%d (%s)", v, name)

	case X1, X2, X4, X8:
		u := val.AsUint(t)
		width := IDWidthHexDigits(t)
		var consts []Const
		if item != nil {
			consts = item.Consts
		}
		return fmt.Sprintf("0x%0*x (%s)", width, u, stringifyBitmask(u, consts))

	default:
		return "?"
	}
}

// IDWidthHexDigits returns the number of hex digits used to print a value of
// this type's size class (2 per byte).
func IDWidthHexDigits(t Type) int {
	return TypeSize(t).ByteLen() * 2
}

// stringifyBitmask decomposes u into named constants (in declaration order,
// each consumed at most once) followed by any leftover bits as a bare hex
// literal. Returns "n/a" if no named constant matched anything (including
// u == 0).
func stringifyBitmask(u uint64, consts []Const) string {
	var names []string
	remainder := u
	for _, c := range consts {
		if c.Value == 0 {
			continue
		}
		bits := uint64(c.Value)
		if remainder&bits == bits {
			names = append(names, c.Name)
			remainder &^= bits
		}
	}
	if len(names) == 0 {
		return "n/a"
	}
	if remainder != 0 {
		names = append(names, fmt.Sprintf("0x%x", remainder))
	}
	return strings.Join(names, "|")
}

// StringifyKeyVal renders "NAME (0xNNNNNNNN, TYPE) = VALUE", with an
// optional trailing " [scale·unit]" when the item declares either, per
// spec.md's "stringify key/value" rule. Unknown items (absent from the
// catalog) use their hex id as NAME and stringify as if they were X type,
// per the catalog's own convention.
func StringifyKeyVal(kv KeyVal) string {
	item := GetItemByID(kv.ID)
	if item == nil {
		t := xTypeForSize(IDSize(kv.ID))
		return fmt.Sprintf("0x%08x (0x%08x, %s) = %s", kv.ID, kv.ID, t, StringifyValue(t, nil, kv.Val))
	}
	s := fmt.Sprintf("%s (0x%08x, %s) = %s", item.Name, kv.ID, item.Type, StringifyValue(item.Type, item, kv.Val))
	if suffix := scaleUnitSuffix(item); suffix != "" {
		s += suffix
	}
	return s
}

// scaleUnitSuffix renders " [scale·unit]", dropping whichever half is empty,
// or "" when the item has neither.
func scaleUnitSuffix(item *Item) string {
	switch {
	case item.Scale != "" && item.Unit != "":
		return fmt.Sprintf(" [%s·%s]", item.Scale, item.Unit)
	case item.Scale != "":
		return fmt.Sprintf(" [%s]", item.Scale)
	case item.Unit != "":
		return fmt.Sprintf(" [%s]", item.Unit)
	default:
		return ""
	}
}

// xTypeForSize returns the bitmask (X) type matching a size class, used to
// stringify items absent from the catalog the same way the reference
// generator does ("unknown items all stringify to X type").
func xTypeForSize(size Size) Type {
	switch size {
	case SizeBit, SizeOne:
		return X1
	case SizeTwo:
		return X2
	case SizeFour:
		return X4
	case SizeEight:
		return X8
	default:
		return X4
	}
}

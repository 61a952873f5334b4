package ubxcfg

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigLineKind distinguishes the four textual configuration line shapes
// (cfg2rx / rx2cfg format).
type ConfigLineKind int

const (
	LineKeyVal ConfigLineKind = iota // CFG-GROUP-NAME value
	LineHexID                       // 0xHHHHHHHH value
	LineMsgRate                     // MSGNAME u1 u2 spi i2c usb
	LinePort                        // PORT baud inprot outprot
)

// MsgRateLine is the parsed form of a MSGNAME rate line. A nil *int means
// "leave unchanged" (the '-' placeholder).
type MsgRateLine struct {
	MsgName string
	UART1   *int
	UART2   *int
	SPI     *int
	I2C     *int
	USB     *int
}

// PortLine is the parsed form of a PORT configuration line.
type PortLine struct {
	Port     string // UART1, UART2, SPI, I2C, USB
	Baud     *int   // nil means "leave unchanged"
	InProt   ProtList
	OutProt  ProtList
}

// ProtList is a comma-separated list of protocol names with optional '!'
// negation; Unchanged is set for "leave unchanged" ('-').
type ProtList struct {
	Unchanged bool
	Enable    []string // protocol names to enable
	Disable   []string // protocol names to disable (named with leading '!')
}

// ConfigLine is the parsed form of one non-empty, non-comment line of a
// textual configuration file.
type ConfigLine struct {
	Kind   ConfigLineKind
	KeyID  uint32 // LineHexID: the literal id; 0 for LineKeyVal (look Name up in the catalog)
	Name   string // LineKeyVal: the catalog name as written
	Value  string // LineKeyVal/LineHexID: the raw value text, still unparsed
	MsgRate MsgRateLine
	Port   PortLine
}

// StripConfigLine removes a trailing '#'-introduced comment and leading/
// trailing whitespace from one raw input line. Returns "" for a blank or
// fully-commented line, which callers should skip.
func StripConfigLine(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

// ParseConfigLine parses one already-stripped, non-empty configuration
// line into its structured form.
func ParseConfigLine(line string) (ConfigLine, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ConfigLine{}, fmt.Errorf("%w: empty config line", ErrBadInput)
	}

	first := fields[0]

	switch {
	case strings.HasPrefix(first, "0x") || strings.HasPrefix(first, "0X"):
		if len(fields) != 2 {
			return ConfigLine{}, fmt.Errorf("%w: hex id line needs exactly one value: %q", ErrBadInput, line)
		}
		id, err := strconv.ParseUint(first[2:], 16, 32)
		if err != nil {
			return ConfigLine{}, fmt.Errorf("%w: bad hex id %q: %v", ErrBadInput, first, err)
		}
		return ConfigLine{Kind: LineHexID, KeyID: uint32(id), Value: fields[1]}, nil

	case isPortName(first):
		if len(fields) != 4 {
			return ConfigLine{}, fmt.Errorf("%w: port line needs baud, inprot, outprot: %q", ErrBadInput, line)
		}
		pl := PortLine{Port: first}
		if fields[1] != "-" {
			b, err := strconv.Atoi(fields[1])
			if err != nil {
				return ConfigLine{}, fmt.Errorf("%w: bad baud %q: %v", ErrBadInput, fields[1], err)
			}
			pl.Baud = &b
		}
		in, err := parseProtList(fields[2])
		if err != nil {
			return ConfigLine{}, err
		}
		out, err := parseProtList(fields[3])
		if err != nil {
			return ConfigLine{}, err
		}
		pl.InProt, pl.OutProt = in, out
		return ConfigLine{Kind: LinePort, Port: pl}, nil

	case len(fields) == 6:
		mr := MsgRateLine{MsgName: first}
		rates := make([]*int, 5)
		for i, f := range fields[1:] {
			if f == "-" {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 255 {
				return ConfigLine{}, fmt.Errorf("%w: bad rate %q in %q", ErrBadInput, f, line)
			}
			rates[i] = &v
		}
		mr.UART1, mr.UART2, mr.SPI, mr.I2C, mr.USB = rates[0], rates[1], rates[2], rates[3], rates[4]
		return ConfigLine{Kind: LineMsgRate, MsgRate: mr}, nil

	case len(fields) == 2:
		return ConfigLine{Kind: LineKeyVal, Name: first, Value: fields[1]}, nil

	default:
		return ConfigLine{}, fmt.Errorf("%w: unrecognized config line: %q", ErrBadInput, line)
	}
}

func isPortName(s string) bool {
	switch s {
	case "UART1", "UART2", "SPI", "I2C", "USB":
		return true
	default:
		return false
	}
}

func parseProtList(s string) (ProtList, error) {
	if s == "-" {
		return ProtList{Unchanged: true}, nil
	}
	var pl ProtList
	for _, p := range strings.Split(s, ",") {
		if p == "" {
			return ProtList{}, fmt.Errorf("%w: empty protocol term in %q", ErrBadInput, s)
		}
		if strings.HasPrefix(p, "!") {
			pl.Disable = append(pl.Disable, p[1:])
		} else {
			pl.Enable = append(pl.Enable, p)
		}
	}
	return pl, nil
}

// FormatConfigLine renders a key/value pair as a "CFG-GROUP-NAME value"
// line (or "0xHHHHHHHH value" when the item is unknown), suitable as one
// line of a cfg2rx/rx2cfg-format file.
func FormatConfigLine(kv KeyVal) string {
	item := GetItemByID(kv.ID)
	if item == nil {
		t := xTypeForSize(IDSize(kv.ID))
		return fmt.Sprintf("0x%08x 0x%0*x", kv.ID, IDWidthHexDigits(t), kv.Val.AsUint(t))
	}
	return fmt.Sprintf("%s %s", item.Name, rawValueString(item, kv.Val))
}

// rawValueString renders just the value portion without the constant
// annotation StringifyValue adds for E/X/L types — a config line's value
// field must itself be re-parseable by ValueFromString.
func rawValueString(item *Item, val Value) string {
	switch item.Type {
	case L:
		if val.L() {
			return "true"
		}
		return "false"
	case E1, E2, E4:
		v := val.AsInt(item.Type)
		for _, c := range item.Consts {
			if c.Value == v {
				return c.Name
			}
		}
		return strconv.FormatInt(v, 10)
	case X1, X2, X4, X8:
		u := val.AsUint(item.Type)
		s := stringifyBitmask(u, item.Consts)
		if s == "n/a" {
			return fmt.Sprintf("0x%0*x", IDWidthHexDigits(item.Type), u)
		}
		return s
	default:
		return StringifyValue(item.Type, item, val)
	}
}

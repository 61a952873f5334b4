package ubxcfg

import "fmt"

// Layer identifies a configuration storage layer on the receiver.
type Layer uint8

const (
	LayerRAM     Layer = 0
	LayerBBR     Layer = 1
	LayerFlash   Layer = 2
	LayerDefault Layer = 7 // VALGET only
)

// LayerBit is the VALSET bitmask form of a layer (RAM=1, BBR=2, Flash=4).
type LayerBit uint8

const (
	LayerBitRAM   LayerBit = 0x01
	LayerBitBBR   LayerBit = 0x02
	LayerBitFlash LayerBit = 0x04
)

// Transaction is the VALSET transaction-sequencing flag.
type Transaction uint8

const (
	TxnNone     Transaction = 0
	TxnBegin    Transaction = 1
	TxnContinue Transaction = 2
	TxnEnd      Transaction = 3
)

// MaxKV is the upper bound of key/value pairs packed into a single
// UBX-CFG-VALSET message (and of keys in one VALGET poll), fixed at 64. The
// payload cap alone would allow far more: (8192-byte UBX payload cap minus
// the 4-byte VALSET header) divided by 5 bytes for the smallest possible
// record (4-byte id + 1-byte value) is 1637.
const MaxKV = 64

// MakeData encodes a list of key/value pairs as the concatenation of
// {id:u32_le, value:LE-bytes} records used by both VALSET and VALGET
// response payloads (spec.md §4.2).
func MakeData(kvs []KeyVal) ([]byte, error) {
	out := make([]byte, 0, len(kvs)*5)
	for _, kv := range kvs {
		size := IDSize(kv.ID)
		n := size.ByteLen()
		if n == 0 {
			return nil, fmt.Errorf("%w: item 0x%08x has unknown size class", ErrBadInput, kv.ID)
		}
		var idBuf [4]byte
		putLE32(idBuf[:], kv.ID)
		out = append(out, idBuf[:]...)
		out = append(out, kv.Val.Bytes(size)...)
	}
	return out, nil
}

// ParseData decodes a concatenation of {id:u32_le, value:LE-bytes} records
// back into key/value pairs. The size of each value is derived from the
// id's top nibble, so no catalog lookup is required to parse — only to
// give the values meaning.
func ParseData(data []byte) ([]KeyVal, error) {
	var out []KeyVal
	i := 0
	for i < len(data) {
		if i+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated record id", ErrBadInput)
		}
		id := leU32(data[i : i+4])
		i += 4
		size := IDSize(id)
		n := size.ByteLen()
		if n == 0 {
			return nil, fmt.Errorf("%w: item 0x%08x has unknown size class", ErrBadInput, id)
		}
		if i+n > len(data) {
			return nil, fmt.Errorf("%w: truncated record value", ErrBadInput)
		}
		out = append(out, KeyVal{ID: id, Val: ValueFromBytes(size, data[i:i+n])})
		i += n
	}
	return out, nil
}

// BuildValsetHeader encodes the 4-byte VALSET payload header.
func BuildValsetHeader(layers LayerBit, txn Transaction) []byte {
	return []byte{1, byte(layers), byte(txn), 0}
}

// BuildValgetPoll encodes a UBX-CFG-VALGET poll payload: a 4-byte header
// followed by up to MaxKV key ids.
func BuildValgetPoll(layer Layer, position uint16, ids []uint32) ([]byte, error) {
	if len(ids) > MaxKV {
		return nil, fmt.Errorf("%w: %d ids exceeds MaxKV (%d)", ErrTooManyKeyVals, len(ids), MaxKV)
	}
	out := make([]byte, 0, 4+4*len(ids))
	out = append(out, 0, byte(layer))
	var posBuf [2]byte
	putLE16(posBuf[:], position)
	out = append(out, posBuf[:]...)
	for _, id := range ids {
		var idBuf [4]byte
		putLE32(idBuf[:], id)
		out = append(out, idBuf[:]...)
	}
	return out, nil
}

// ParseValgetResponse decodes a UBX-CFG-VALGET response payload: a 4-byte
// header (version, layer, position low/high) followed by {id,value}
// records, as produced by ParseData.
func ParseValgetResponse(payload []byte) (layer Layer, kvs []KeyVal, err error) {
	if len(payload) < 4 {
		return 0, nil, fmt.Errorf("%w: VALGET response too short", ErrBadInput)
	}
	layer = Layer(payload[1])
	kvs, err = ParseData(payload[4:])
	return layer, kvs, err
}

// BuildValset turns an arbitrary-length key/value list into one or more
// on-wire UBX-CFG-VALSET payloads, each carrying at most MaxKV pairs.
// Transaction flags are BEGIN on the first payload, CONTINUE on
// intermediate ones, and an extra, empty END payload is appended whenever
// more than one payload is required (the hardware is documented to
// silently ignore pairs carried in the END message, so it is always sent
// empty).
func BuildValset(layers LayerBit, kvs []KeyVal) ([][]byte, error) {
	if len(kvs) == 0 {
		data, err := MakeData(nil)
		if err != nil {
			return nil, err
		}
		return [][]byte{append(BuildValsetHeader(layers, TxnNone), data...)}, nil
	}

	var chunks [][]KeyVal
	for i := 0; i < len(kvs); i += MaxKV {
		end := i + MaxKV
		if end > len(kvs) {
			end = len(kvs)
		}
		chunks = append(chunks, kvs[i:end])
	}

	multi := len(chunks) > 1
	out := make([][]byte, 0, len(chunks)+1)
	for i, chunk := range chunks {
		txn := TxnNone
		if multi {
			if i == 0 {
				txn = TxnBegin
			} else {
				txn = TxnContinue
			}
		}
		data, err := MakeData(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, append(BuildValsetHeader(layers, txn), data...))
	}
	if multi {
		out = append(out, BuildValsetHeader(layers, TxnEnd))
	}
	return out, nil
}

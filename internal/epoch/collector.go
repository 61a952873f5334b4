package epoch

import (
	"fmt"
	"strings"

	"github.com/adrianmo/go-nmea"

	"github.com/bramburn/gnss-toolkit/internal/framer"
)

// Collector fuses a stream of framer.Message values into Epoch records.
// Not safe for concurrent use; one Collector belongs to one receiver
// driver.
//
// Pivot resolution (an Open Question in the source this was distilled
// from): UBX-NAV-PVT is used as the pivot whenever it has ever been seen on
// this collector — a "haveUbx" sticky flag — falling back to NMEA RMC/GGA
// only for receivers that never emit UBX-NAV-PVT at all. This avoids
// flip-flopping pivot identity on a stream that interleaves both.
type Collector struct {
	haveUBXPivot bool
	pivotSeen    bool
	pivotKey     string // iTOW (UBX) or UTC time text (NMEA) identifying the open epoch
	pivotKind    string // "UBX" or the NMEA sentence name that established the pivot

	acc Epoch
	seq uint64

	stickyVersion string
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect feeds one classified message into the collector. It returns a
// non-nil Epoch exactly when that message's arrival closed a previously
// open epoch.
func (c *Collector) Collect(msg *framer.Message) *Epoch {
	switch msg.Type {
	case framer.UBX:
		return c.collectUBX(msg)
	case framer.NMEA:
		return c.collectNMEA(msg)
	case framer.RTCM3:
		c.collectRTCM3(msg)
		return nil
	default:
		return nil
	}
}

func (c *Collector) collectUBX(msg *framer.Message) *Epoch {
	if len(msg.Data) < 8 {
		return nil
	}
	class, id := msg.Data[2], msg.Data[3]
	payload := msg.Data[6 : len(msg.Data)-2]

	switch {
	case class == 0x0a && id == 0x04:
		c.stickyVersion = msg.Info
		return nil

	case class == 0x01 && id == 0x14: // NAV-HPPOSLLH
		hp, ok := parseNavHPPOSLLH(payload)
		if !ok {
			return nil
		}
		c.applyNavHPPOSLLH(hp)
		return nil

	case class == 0x01 && id == 0x07: // NAV-PVT
		pvt, ok := parseNavPVT(payload)
		if !ok {
			return nil
		}
		c.haveUBXPivot = true
		key := fmt.Sprintf("%d", pvt.iTOW)

		var emitted *Epoch
		if c.pivotSeen && c.pivotKind == "UBX" && key == c.pivotKey {
			return nil // exact duplicate pivot: idempotent, no new epoch
		}
		if c.pivotSeen {
			emitted = c.closeEpoch()
		}
		c.pivotSeen, c.pivotKind, c.pivotKey = true, "UBX", key
		c.applyNavPVT(pvt)
		return emitted

	default:
		return nil
	}
}

func (c *Collector) collectNMEA(msg *framer.Message) *Epoch {
	sentence, err := nmea.Parse(string(msg.Data))
	if err != nil {
		return nil
	}

	isPivotCandidate := !c.haveUBXPivot && (sentence.DataType() == nmea.TypeRMC || sentence.DataType() == nmea.TypeGGA)
	if !isPivotCandidate {
		c.applyNMEANonPivot(sentence)
		return nil
	}

	key, ok := nmeaTimeKey(sentence)
	if !ok {
		c.applyNMEANonPivot(sentence)
		return nil
	}

	var emitted *Epoch
	if c.pivotSeen && c.pivotKind == string(sentence.DataType()) && key == c.pivotKey {
		return nil
	}
	if c.pivotSeen {
		emitted = c.closeEpoch()
	}
	c.pivotSeen, c.pivotKind, c.pivotKey = true, string(sentence.DataType()), key
	c.applyNMEAPivot(sentence)
	return emitted
}

// collectRTCM3 extracts only the reference station id, for display — the
// spec's Non-goal on full RTCM3 parsing stops here. Message number (12
// bits) followed immediately by a 12-bit reference station id is the
// layout shared by the observation (100x/101x), MSM (107x-112x), and most
// other common message families; types that don't follow it are left at
// the accumulator's last-seen value.
func (c *Collector) collectRTCM3(msg *framer.Message) {
	if len(msg.Data) < 6 {
		return
	}
	payload := msg.Data[3 : len(msg.Data)-3] // strip D3+len(2) header and CRC-24Q trailer
	if len(payload) < 3 {
		return
	}
	br := bitReader{data: payload}
	br.read(12) // message number, already carried in msg.Name
	stationID, ok := br.readChecked(12)
	if !ok {
		return
	}
	c.acc.StationID = int(stationID)
}

// bitReader reads big-endian, MSB-first bitfields out of an RTCM3 payload.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) read(n int) uint32 {
	v, _ := r.readChecked(n)
	return v
}

func (r *bitReader) readChecked(n int) (uint32, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := (r.pos + i) / 8
		bitIdx := 7 - (r.pos+i)%8
		bit := (r.data[byteIdx] >> bitIdx) & 1
		v = v<<1 | uint32(bit)
	}
	r.pos += n
	return v, true
}

func nmeaTimeKey(s nmea.Sentence) (string, bool) {
	switch v := s.(type) {
	case nmea.RMC:
		return formatNMEATime(v.Time), v.Time.Valid
	case nmea.GGA:
		return formatNMEATime(v.Time), v.Time.Valid
	default:
		return "", false
	}
}

func formatNMEATime(t nmea.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

// closeEpoch finalizes the accumulator into an emitted Epoch, resets it for
// the next epoch, and carries sticky fields (receiver version) forward.
func (c *Collector) closeEpoch() *Epoch {
	e := c.acc
	e.Seq = c.seq
	e.ReceiverVersion = c.stickyVersion
	e.Summary = summarize(&e)
	c.seq++

	c.acc = Epoch{}
	c.pivotSeen = false
	c.pivotKey = ""
	c.pivotKind = ""
	return &e
}

func summarize(e *Epoch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d fix=%s rtk=%s", e.Seq, e.Fix, e.RTK)
	if e.HavePosition {
		fmt.Fprintf(&b, " lat=%.7f lon=%.7f hMSL=%.2fm", e.LatDeg, e.LonDeg, e.HeightMSLM)
	}
	if e.HaveVelocity {
		fmt.Fprintf(&b, " speed=%.2fm/s", e.SpeedMS)
	}
	if e.NumSV > 0 {
		fmt.Fprintf(&b, " numSV=%d", e.NumSV)
	}
	return b.String()
}

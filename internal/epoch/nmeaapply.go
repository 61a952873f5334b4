package epoch

import (
	"time"

	"github.com/adrianmo/go-nmea"
)

// applyNMEAPivot applies an RMC/GGA sentence that is acting as this
// collector's pivot (no UBX-NAV-PVT has ever been seen).
func (c *Collector) applyNMEAPivot(s nmea.Sentence) {
	c.applyNMEANonPivot(s)
}

// applyNMEANonPivot folds position/time/DOP/fix-quality fields from an NMEA
// sentence into the open accumulator without affecting epoch boundaries.
// Used both for RMC/GGA when UBX already owns the pivot role, and for any
// NMEA sentence (including GSA) regardless of pivot state.
func (c *Collector) applyNMEANonPivot(s nmea.Sentence) {
	e := &c.acc
	switch v := s.(type) {
	case nmea.GGA:
		e.HavePosition = true
		e.LatDeg = v.Latitude
		e.LonDeg = v.Longitude
		e.HeightMSLM = v.Altitude
		e.NumSV = int(v.NumSatellites)
		e.HavePDOP = true
		e.PDOP = v.HDOP
		e.RTK = rtkFromGGAQuality(int(v.FixQuality))
		e.FixOK = v.FixQuality > 0

	case nmea.RMC:
		e.HavePosition = true
		e.LatDeg = v.Latitude
		e.LonDeg = v.Longitude
		e.HaveVelocity = true
		e.SpeedMS = v.Speed * 0.514444 // knots to m/s
		e.HeadingDeg = v.Course
		e.FixOK = v.Validity == "A"
		e.HaveTime = true
		e.TimeValid = v.Time.Valid
		e.DateValid = v.Date.Valid
		if v.Time.Valid && v.Date.Valid {
			year := v.Date.YY
			if year < 100 {
				year += 2000
			}
			e.UTC = time.Date(year, time.Month(v.Date.MM), v.Date.DD, v.Time.Hour, v.Time.Minute, v.Time.Second, 0, time.UTC)
		}

	case nmea.GSA:
		e.HavePDOP = true
		e.PDOP = v.PDOP
	}
}

func rtkFromGGAQuality(q int) RTKState {
	switch q {
	case 0:
		return RTKNone
	case 4:
		return RTKFixed
	case 5:
		return RTKFloat
	default:
		return RTKUnknown
	}
}

package ubxcfg

import "math"

func f32FromBits(u uint32) float32 { return math.Float32frombits(u) }
func f64FromBits(u uint64) float64 { return math.Float64frombits(u) }
func f32Bits(f float32) uint32     { return math.Float32bits(f) }
func f64Bits(f float64) uint64     { return math.Float64bits(f) }

// pkg/view/ticks.go
package view

import (
	"math"
	"strconv"
)

// Ticks returns round tick values covering [lo, hi] with roughly n ticks.
func Ticks(lo, hi float64, n int) []float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo || n < 2 {
		return []float64{lo}
	}

	step := niceNum((hi - lo) / float64(n-1))
	start := math.Ceil(lo/step-1e-9) * step
	eps := step * 1e-9

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// TickLabel formats a tick value compactly.
func TickLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// niceNum rounds x to a 1, 2 or 5 multiple of a power of ten.
func niceNum(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	switch {
	case f < 1.5:
		nf = 1
	case f < 3:
		nf = 2
	case f < 7:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

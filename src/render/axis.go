package render

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// NiceAxisBounds widens [min,max] by a 5% margin and rounds the ends to the
// span's order of magnitude so axis labels land on round numbers.
func NiceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// NiceTicks generates up to n ticks spanning [min,max] on a 1/2/2.5/5 step
// pattern with compact labels.
func NiceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []chart.Tick
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		rv := math.Round(v*1e6) / 1e6
		out = append(out, chart.Tick{Value: rv, Label: FormatTick(rv)})
	}
	if len(out) < 2 {
		out = []chart.Tick{{Value: min, Label: FormatTick(min)}, {Value: max, Label: FormatTick(max)}}
	}
	return out
}

// FormatTick provides a compact numeric label.
func FormatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

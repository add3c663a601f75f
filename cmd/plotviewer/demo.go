package main

import (
	"math"
	"math/rand"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
)

// demoSeries builds three synthetic series exercising every trace kind:
// a gradient-segment wave, a color-mapped scatter cloud and a small
// error-barred line. Deterministic for a given n so reloads look identical.
func demoSeries(n int) []chartdata.Series {
	rng := rand.New(rand.NewSource(42))

	wavePts := make([]chartdata.Point, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1) * 10
		y := math.Sin(x) * 40
		p := chartdata.NewPoint(x, y).WithColorFeature(math.Abs(math.Cos(x)))
		wavePts = append(wavePts, p)
	}
	wave := chartdata.NewSeries("Wave", wavePts)
	wave.ConnectAdjacent = true
	wave.UseGradientSegments = true
	wave.Marker.Size = 3

	cloudPts := make([]chartdata.Point, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Float64() * 10
		y := rng.NormFloat64()*12 + 10
		cloudPts = append(cloudPts, chartdata.NewPoint(x, y).WithColorFeature(y))
	}
	cloud := chartdata.NewSeries("Cloud", cloudPts)
	cloud.Marker.Size = 5
	cloud.Marker.UseColorFeature = true

	barPts := make([]chartdata.Point, 0, 12)
	for i := 0; i < 12; i++ {
		x := float64(i) / 11 * 10
		y := -30 + x*3
		barPts = append(barPts, chartdata.NewPoint(x, y).WithErrorY(3+rng.Float64()*4))
	}
	bars := chartdata.NewSeries("Trend", barPts)
	bars.ConnectAdjacent = true
	bars.Line = chartdata.LineStyle{Width: 2, Color: drawing.Color{R: 120, G: 120, B: 220, A: 255}}
	bars.Marker.Size = 4

	return []chartdata.Series{wave, cloud, bars}
}

// Headless renderer: runs the progressive pipeline over the demo dataset (or
// a caller-supplied point count) and writes the final chart to a PNG file.
// Useful for CI artifacts and for checking the pipeline without a display.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/progressive"
	"github.com/plotstream/plotstream/src/render"
)

func main() {
	var out string
	var points, chunk, width, height int
	var scaleName, logLevel string
	var chunked bool
	flag.StringVar(&out, "out", "chart.png", "output PNG path")
	flag.IntVar(&points, "points", 600, "points per demo series")
	flag.IntVar(&chunk, "chunk", 75, "chunk size for progressive loading")
	flag.IntVar(&width, "width", 1100, "chart width")
	flag.IntVar(&height, "height", 480, "chart height")
	flag.StringVar(&scaleName, "scale", "viridis", "color scale preset")
	flag.StringVar(&logLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&chunked, "progressive", true, "use chunked loading")
	flag.Parse()
	chartdata.SetLogLevel(logLevel)

	scale, err := colorscale.ByName(scaleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctrl := progressive.NewController(scale)
	done := make(chan chartdata.StatisticsSnapshot, 1)
	opts := progressive.Options{Enabled: chunked, ChunkSize: chunk, InterChunkDelay: 0}
	err = ctrl.Load(renderSeries(points), opts,
		func(pct float64, phase string, loaded int) {
			chartdata.Debugf("%5.1f%% %s", pct, phase)
		},
		func(total int, stats chartdata.StatisticsSnapshot) {
			done <- stats
		})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	var stats chartdata.StatisticsSnapshot
	select {
	case stats = <-done:
	case <-time.After(2 * time.Minute):
		fmt.Fprintln(os.Stderr, "error: load did not complete")
		os.Exit(1)
	}

	img, err := render.Render(ctrl.Traces(), render.Options{
		Width:  width,
		Height: height,
		Title:  fmt.Sprintf("plotstream (%d points)", stats.TotalPoints),
		Scale:  scale,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: render: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "error: encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d points, %d series, x=[%.2f,%.2f] y=[%.2f,%.2f])\n",
		out, stats.TotalPoints, stats.SeriesCount,
		stats.XRange[0], stats.XRange[1], stats.YRange[0], stats.YRange[1])
}

// renderSeries mirrors the viewer's demo dataset: a gradient wave, a
// color-mapped cloud and an error-barred trend line.
func renderSeries(n int) []chartdata.Series {
	rng := rand.New(rand.NewSource(42))

	wavePts := make([]chartdata.Point, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1) * 10
		p := chartdata.NewPoint(x, math.Sin(x)*40).WithColorFeature(math.Abs(math.Cos(x)))
		wavePts = append(wavePts, p)
	}
	wave := chartdata.NewSeries("Wave", wavePts)
	wave.ConnectAdjacent = true
	wave.UseGradientSegments = true

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
		barPts = append(barPts, chartdata.NewPoint(x, -30+x*3).WithErrorY(3+rng.Float64()*4))
	}
	bars := chartdata.NewSeries("Trend", barPts)
	bars.ConnectAdjacent = true
	bars.Line = chartdata.LineStyle{Width: 2, Color: drawing.Color{R: 120, G: 120, B: 220, A: 255}}

	return []chartdata.Series{wave, cloud, bars}
}

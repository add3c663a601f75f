// Package render is the rendering collaborator: it consumes synthesized
// traces and draws them with go-chart. The trace pipeline makes no
// assumptions about this package beyond handing over the trace list.
package render

import (
	"bytes"
	"image"
	"image/color"
	png "image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/tracegen"
)

// Options configures one rendered frame.
type Options struct {
	Width, Height int
	Title         string
	XAxisName     string
	YAxisName     string
	// Scale is used to paint the color-bar strip when a marker set carries
	// one. Zero means no strip even when requested by a trace.
	Scale colorscale.Scale
	// Badge, when non-empty, is drawn onto the bottom-left of the image
	// (live progress text, hints).
	Badge string
}

const errorBarColorAlpha = 160

// BuildChart converts traces into a go-chart chart. Traces that opted out of
// the legend get no series name, which keeps go-chart's legend from listing
// them.
func BuildChart(traces []tracegen.Trace, opts Options) chart.Chart {
	var series []chart.Series
	for _, tr := range traces {
		switch t := tr.(type) {
		case tracegen.Line:
			series = append(series, lineSeries(t))
		case tracegen.MarkerSet:
			series = append(series, markerSeries(t))
		case tracegen.ErrorBarOverlay:
			series = append(series, errorBarSeries(t)...)
		}
	}

	xMin, xMax, yMin, yMax := traceExtents(traces)
	var xAxis chart.XAxis
	var yAxis chart.YAxis
	if opts.XAxisName != "" {
		xAxis.Name = opts.XAxisName
	}
	if opts.YAxisName != "" {
		yAxis.Name = opts.YAxisName
	}
	if !math.IsInf(xMin, 1) {
		a, b := NiceAxisBounds(xMin, xMax)
		xAxis.Range = &chart.ContinuousRange{Min: a, Max: b}
		xAxis.Ticks = NiceTicks(a, b, 8)
	}
	if !math.IsInf(yMin, 1) {
		a, b := NiceAxisBounds(yMin, yMax)
		yAxis.Range = &chart.ContinuousRange{Min: a, Max: b}
		yAxis.Ticks = NiceTicks(a, b, 6)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 900
	}
	if h <= 0 {
		h = 320
	}
	ch := chart.Chart{
		Title:      opts.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Render draws traces to an image. Rendering failures fall back to a blank
// image so the surface visibly updates; the error is returned alongside for
// callers that care.
func Render(traces []tracegen.Trace, opts Options) (image.Image, error) {
	if len(traces) == 0 {
		return Blank(orDefault(opts.Width, 900), orDefault(opts.Height, 320)), nil
	}
	ch := BuildChart(traces, opts)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		chartdata.Errorf("chart render failed: %v", err)
		return Blank(ch.Width, ch.Height), err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		chartdata.Errorf("chart decode failed: %v", err)
		return Blank(ch.Width, ch.Height), err
	}
	if bar, ok := colorBarRequest(traces); ok && !opts.Scale.IsZero() {
		img = drawColorBar(img, opts.Scale, bar.ColorBarRange)
	}
	if opts.Badge != "" {
		img = DrawBadge(img, opts.Badge)
	}
	return img, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func lineSeries(t tracegen.Line) chart.Series {
	xs, ys := pointValues(t.Points)
	st := chart.Style{
		StrokeWidth:     t.Style.Width,
		StrokeColor:     t.Style.Color,
		StrokeDashArray: t.Style.Dash,
	}
	if st.StrokeWidth == 0 {
		st.StrokeWidth = 1.5
	}
	if t.Markers != nil {
		st.DotWidth = t.Markers.Size
		st.DotColor = markerColor(*t.Markers, t.Style.Color)
	}
	name := ""
	if t.ShowInLegend {
		name = t.Name
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st}
}

func markerSeries(t tracegen.MarkerSet) chart.Series {
	xs, ys := pointValues(t.Points)
	st := chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    t.Style.Size,
		DotColor:    markerColor(t.Style, drawing.Color{}),
	}
	if st.DotWidth <= 0 {
		st.DotWidth = 4
	}
	if len(t.Colors) > 0 {
		colors := t.Colors
		fallback := st.DotColor
		st.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			if index >= 0 && index < len(colors) {
				return colors[index]
			}
			return fallback
		}
	}
	name := ""
	if t.ShowInLegend {
		name = t.Name
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st}
}

// errorBarSeries emits one thin two-point segment per error bar. Segments
// carry no name so they stay out of the legend.
func errorBarSeries(t tracegen.ErrorBarOverlay) []chart.Series {
	st := chart.Style{
		StrokeWidth: 1,
		StrokeColor: chart.ColorAlternateGray.WithAlpha(errorBarColorAlpha),
	}
	out := make([]chart.Series, 0, len(t.Points))
	for i, p := range t.Points {
		m := t.Magnitudes[i]
		var xs, ys []float64
		if t.Axis == tracegen.AxisX {
			xs = []float64{p.X - m, p.X + m}
			ys = []float64{p.Y, p.Y}
		} else {
			xs = []float64{p.X, p.X}
			ys = []float64{p.Y - m, p.Y + m}
		}
		out = append(out, chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st})
	}
	return out
}

// pointValues extracts plottable x/y slices. go-chart rejects single-value
// series, so a lone point is padded with a duplicate one unit to the right.
func pointValues(points []chartdata.Point) ([]float64, []float64) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}

func markerColor(m chartdata.MarkerStyle, fallback drawing.Color) drawing.Color {
	if !m.Color.IsZero() {
		return m.Color
	}
	if !fallback.IsZero() {
		return fallback
	}
	return chart.ColorBlue
}

func traceExtents(traces []tracegen.Trace) (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = math.Inf(1), math.Inf(-1)
	yMin, yMax = math.Inf(1), math.Inf(-1)
	visit := func(points []chartdata.Point) {
		for _, p := range points {
			if p.X < xMin {
				xMin = p.X
			}
			if p.X > xMax {
				xMax = p.X
			}
			if p.Y < yMin {
				yMin = p.Y
			}
			if p.Y > yMax {
				yMax = p.Y
			}
		}
	}
	for _, tr := range traces {
		switch t := tr.(type) {
		case tracegen.Line:
			visit(t.Points)
		case tracegen.MarkerSet:
			visit(t.Points)
		case tracegen.ErrorBarOverlay:
			for i, p := range t.Points {
				m := t.Magnitudes[i]
				if t.Axis == tracegen.AxisX {
					visit([]chartdata.Point{{X: p.X - m, Y: p.Y}, {X: p.X + m, Y: p.Y}})
				} else {
					visit([]chartdata.Point{{X: p.X, Y: p.Y - m}, {X: p.X, Y: p.Y + m}})
				}
			}
		}
	}
	return
}

// colorBarRequest finds the marker set flagged to carry the shared color bar.
func colorBarRequest(traces []tracegen.Trace) (tracegen.MarkerSet, bool) {
	for _, tr := range traces {
		if ms, ok := tr.(tracegen.MarkerSet); ok && ms.ColorBar {
			return ms, true
		}
	}
	return tracegen.MarkerSet{}, false
}

// Blank returns a dark placeholder image.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

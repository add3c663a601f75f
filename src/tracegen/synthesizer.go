package tracegen

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
)

// Synthesizer turns one series configuration plus a batch of its points into
// renderable traces. It holds only the color scale; all per-call state comes
// in through Options so repeated synthesis of identical input yields deeply
// equal output (required for flicker-free chunked reloading).
type Synthesizer struct {
	scale colorscale.Scale
}

// New returns a synthesizer over the given scale. A zero scale falls back to
// the default preset.
func New(scale colorscale.Scale) *Synthesizer {
	if scale.IsZero() {
		scale = colorscale.Default()
	}
	return &Synthesizer{scale: scale}
}

// Options carries cross-collection decisions the synthesizer cannot make on
// its own.
type Options struct {
	// ColorBar marks this series as the one showing the shared color-bar
	// legend. Callers set it for the first color-mapped series only.
	ColorBar bool
	// FeatureRange is the series' full color-feature range, so colors stay
	// stable while a chunked load is still growing the point set. Nil means
	// compute from the supplied points.
	FeatureRange *[2]float64
}

// Synthesize returns the traces for one series over the given points, in a
// fixed order: gradient segments, the main trace, then error-bar overlays.
// Invisible series and empty batches yield nil.
func (sy *Synthesizer) Synthesize(series chartdata.Series, points []chartdata.Point, opts Options) ([]Trace, error) {
	if !series.Visible || len(points) == 0 {
		return nil, nil
	}
	featRange := chartdata.ColorFeatureRange(points)
	if opts.FeatureRange != nil {
		featRange = *opts.FeatureRange
	}

	var traces []Trace
	if series.ConnectAdjacent && series.UseGradientSegments && len(points) > 1 {
		segments, err := sy.gradientSegments(series, points, featRange)
		if err != nil {
			return nil, err
		}
		traces = append(traces, segments...)
	}

	main, err := sy.mainTrace(series, points, featRange, opts.ColorBar)
	if err != nil {
		return nil, err
	}
	traces = append(traces, main)

	traces = append(traces, errorOverlays(series, points)...)
	return traces, nil
}

// gradientSegments emits one two-point line per adjacent pair, colored by the
// mean of the endpoints' color-feature values. Segments stay out of the
// legend and out of hover handling.
func (sy *Synthesizer) gradientSegments(series chartdata.Series, points []chartdata.Point, featRange [2]float64) ([]Trace, error) {
	out := make([]Trace, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		mean := (featureOrZero(a) + featureOrZero(b)) / 2
		col, err := sy.scale.Interpolate(normalizeFeature(mean, featRange))
		if err != nil {
			return nil, err
		}
		style := series.Line
		style.Color = col
		out = append(out, Line{
			Points:       []chartdata.Point{a, b},
			Style:        style,
			ShowInLegend: false,
			Hoverable:    false,
		})
	}
	return out, nil
}

// mainTrace builds the single aggregate trace carrying every supplied point,
// labeled with a live count suffix.
func (sy *Synthesizer) mainTrace(series chartdata.Series, points []chartdata.Point, featRange [2]float64, colorBar bool) (Trace, error) {
	name := fmt.Sprintf("%s (%d pts)", series.Name, len(points))
	if series.ConnectAdjacent && !series.UseGradientSegments {
		var markers *chartdata.MarkerStyle
		if series.Marker.Size > 0 {
			m := series.Marker
			markers = &m
		}
		return Line{
			Name:         name,
			Points:       points,
			Style:        series.Line,
			Markers:      markers,
			ShowInLegend: series.ShowInLegend,
			Hoverable:    true,
		}, nil
	}
	ms := MarkerSet{
		Name:         name,
		Points:       points,
		Style:        series.Marker,
		ShowInLegend: series.ShowInLegend,
	}
	if series.Marker.UseColorFeature {
		colors := make([]drawing.Color, len(points))
		for i, p := range points {
			col, err := sy.scale.Interpolate(normalizeFeature(featureOrZero(p), featRange))
			if err != nil {
				return nil, err
			}
			colors[i] = col
		}
		ms.Colors = colors
		ms.ColorBar = colorBar
		ms.ColorBarRange = featRange
	}
	return ms, nil
}

// errorOverlays collects per-axis error-bar traces for points carrying error
// magnitudes. Point and magnitude order follows the input order.
func errorOverlays(series chartdata.Series, points []chartdata.Point) []Trace {
	var xPts, yPts []chartdata.Point
	var xMag, yMag []float64
	for _, p := range points {
		if p.HasErrorX() {
			xPts = append(xPts, p)
			xMag = append(xMag, *p.ErrorX)
		}
		if p.HasErrorY() {
			yPts = append(yPts, p)
			yMag = append(yMag, *p.ErrorY)
		}
	}
	var out []Trace
	if len(xPts) > 0 {
		out = append(out, ErrorBarOverlay{Name: series.Name + " x-error", Points: xPts, Magnitudes: xMag, Axis: AxisX})
	}
	if len(yPts) > 0 {
		out = append(out, ErrorBarOverlay{Name: series.Name + " y-error", Points: yPts, Magnitudes: yMag, Axis: AxisY})
	}
	return out
}

func featureOrZero(p chartdata.Point) float64 {
	if p.HasColorFeature() {
		return *p.ColorFeature
	}
	return 0
}

// normalizeFeature maps v into [0,1] against the series feature range. A
// collapsed range pins everything to the scale midpoint.
func normalizeFeature(v float64, r [2]float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if r[1] <= r[0] {
		return 0.5
	}
	return (v - r[0]) / (r[1] - r[0])
}

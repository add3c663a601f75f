package chartdata

import "github.com/wcharczuk/go-chart/v2/drawing"

// LineStyle controls how connecting lines are drawn.
type LineStyle struct {
	Width float64
	Color drawing.Color
	// Dash is a stroke dash pattern; empty means solid.
	Dash []float64
}

// MarkerStyle controls how point markers are drawn.
type MarkerStyle struct {
	Size  float64
	Color drawing.Color
	// UseColorFeature maps each marker's color through the active color
	// scale using the point's ColorFeature value.
	UseColorFeature bool
}

// Series is a named, ordered collection of points sharing one visual style.
// The pipeline only reads it; ownership stays with the caller.
type Series struct {
	Name   string
	Points []Point

	Line   LineStyle
	Marker MarkerStyle

	Visible bool
	// ConnectAdjacent draws lines between consecutive points.
	ConnectAdjacent bool
	// UseGradientSegments colors each adjacent-pair segment individually by
	// the endpoints' color feature instead of one flat line color.
	UseGradientSegments bool
	ShowInLegend        bool
}

// NewSeries returns a visible, legend-enabled series with the given points.
func NewSeries(name string, points []Point) Series {
	return Series{
		Name:         name,
		Points:       points,
		Visible:      true,
		ShowInLegend: true,
		Line:         LineStyle{Width: 1.5},
		Marker:       MarkerStyle{Size: 4},
	}
}

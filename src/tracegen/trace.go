// Package tracegen converts series configurations plus point batches into
// renderable trace primitives.
package tracegen

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
)

// Trace is a renderable primitive. It is a closed set: renderers type-switch
// over Line, MarkerSet and ErrorBarOverlay. Traces are immutable and replaced
// wholesale on every update, never mutated in place.
type Trace interface {
	isTrace()
	// TraceName returns the display name (may be empty for segments).
	TraceName() string
}

// Line is a polyline through Points, optionally with markers at each vertex.
// Gradient segments are two-point Lines with ShowInLegend and Hoverable off.
type Line struct {
	Name   string
	Points []chartdata.Point
	Style  chartdata.LineStyle
	// Markers, when non-nil, draws markers on top of the line.
	Markers      *chartdata.MarkerStyle
	ShowInLegend bool
	Hoverable    bool
}

func (Line) isTrace()            {}
func (l Line) TraceName() string { return l.Name }

// MarkerSet draws one marker per point. Colors, when non-nil, holds one
// color per point (color-feature mapping); otherwise Style.Color applies to
// all markers.
type MarkerSet struct {
	Name   string
	Points []chartdata.Point
	Style  chartdata.MarkerStyle
	Colors []drawing.Color
	ShowInLegend bool
	// ColorBar marks this trace as the one carrying the shared color-bar
	// legend. At most one marker set per chart has it set.
	ColorBar      bool
	ColorBarRange [2]float64
}

func (MarkerSet) isTrace()            {}
func (m MarkerSet) TraceName() string { return m.Name }

// Axis selects which axis an error-bar overlay spans.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ErrorBarOverlay draws symmetric error bars of Magnitudes[i] around
// Points[i] along Axis. Never shown in the legend.
type ErrorBarOverlay struct {
	Name       string
	Points     []chartdata.Point
	Magnitudes []float64
	Axis       Axis
}

func (ErrorBarOverlay) isTrace()            {}
func (e ErrorBarOverlay) TraceName() string { return e.Name }

// Package colorscale maps normalized scalars in [0,1] to colors through an
// ordered list of (position, color) stops.
//
// Interpolation happens per channel in straight RGBA space (alpha included).
// That keeps the math trivially continuous at stop boundaries; perceptual
// spaces were considered and rejected to keep outputs bit-stable across
// repeated synthesis of the same input.
package colorscale

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
)

// Stop is one control point of a scale.
type Stop struct {
	Pos   float64
	Color drawing.Color
}

// Scale is an ordered sequence of stops with non-decreasing positions.
// A single-stop scale is degenerate and yields a constant color.
type Scale struct {
	stops []Stop
}

// New validates the stops and returns a scale. An empty list or stops with
// decreasing positions are rejected with a ConfigurationError; the scale is
// never silently re-sorted.
func New(stops []Stop) (Scale, error) {
	if len(stops) == 0 {
		return Scale{}, chartdata.ConfigErrorf("colorscale.New", "scale needs at least one stop")
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Pos < stops[i-1].Pos {
			return Scale{}, chartdata.ConfigErrorf("colorscale.New", "stop positions must be non-decreasing (stop %d at %v after %v)", i, stops[i].Pos, stops[i-1].Pos)
		}
	}
	cp := make([]Stop, len(stops))
	copy(cp, stops)
	return Scale{stops: cp}, nil
}

// MustNew is New for compile-time constant stop lists (presets, tests).
func MustNew(stops []Stop) Scale {
	s, err := New(stops)
	if err != nil {
		panic(err)
	}
	return s
}

// Stops returns a copy of the scale's stops.
func (s Scale) Stops() []Stop {
	cp := make([]Stop, len(s.stops))
	copy(cp, s.stops)
	return cp
}

// IsZero reports whether the scale was never constructed via New.
func (s Scale) IsZero() bool { return len(s.stops) == 0 }

// Interpolate maps v (clamped to [0,1]) to a color. Values outside the stop
// span return the boundary stop's color; there is no extrapolation.
func (s Scale) Interpolate(v float64) (drawing.Color, error) {
	if len(s.stops) == 0 {
		return drawing.Color{}, chartdata.ConfigErrorf("colorscale.Interpolate", "empty scale")
	}
	if math.IsNaN(v) {
		v = 0
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	if v <= s.stops[0].Pos {
		return s.stops[0].Color, nil
	}
	last := s.stops[len(s.stops)-1]
	if v >= last.Pos {
		return last.Color, nil
	}
	for i := 1; i < len(s.stops); i++ {
		a, b := s.stops[i-1], s.stops[i]
		if v > b.Pos {
			continue
		}
		if a.Pos == b.Pos {
			// duplicate stop positions; left color wins
			return a.Color, nil
		}
		t := (v - a.Pos) / (b.Pos - a.Pos)
		return blend(a.Color, b.Color, t), nil
	}
	return last.Color, nil
}

func blend(a, b drawing.Color, t float64) drawing.Color {
	return drawing.Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the '#' is optional)
// into a drawing.Color.
func ParseHex(s string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = fmt.Sprintf("%c%c%c%c%c%c", h[0], h[0], h[1], h[1], h[2], h[2])
	}
	if len(h) != 6 && len(h) != 8 {
		return drawing.Color{}, chartdata.ConfigErrorf("colorscale.ParseHex", "invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return drawing.Color{}, chartdata.ConfigErrorf("colorscale.ParseHex", "invalid hex color %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return drawing.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// NewFromHex builds a scale from (position, hex color) pairs.
func NewFromHex(stops map[float64]string) (Scale, error) {
	// maps are convenient at call sites but unordered; materialize and sort
	// by position before validation so iteration order never leaks through.
	out := make([]Stop, 0, len(stops))
	for pos, hex := range stops {
		c, err := ParseHex(hex)
		if err != nil {
			return Scale{}, err
		}
		out = append(out, Stop{Pos: pos, Color: c})
	}
	sortStops(out)
	return New(out)
}

func sortStops(st []Stop) {
	// insertion sort; preset scales stay tiny
	for i := 1; i < len(st); i++ {
		for j := i; j > 0 && st[j].Pos < st[j-1].Pos; j-- {
			st[j], st[j-1] = st[j-1], st[j]
		}
	}
}

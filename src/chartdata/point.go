package chartdata

// Point is one sample of a series. X and Y are required; the remaining
// numeric fields are optional and nil when absent, so zero stays a legal
// value. Points are treated as immutable once created; the With* builders
// return modified copies.
type Point struct {
	X, Y float64
	// Z is an optional third coordinate (depth/value axis).
	Z *float64
	// ColorFeature drives color-mapped markers and gradient segments.
	ColorFeature *float64
	// ErrorX / ErrorY are optional symmetric error-bar magnitudes.
	ErrorX *float64
	ErrorY *float64
	// Label is an optional per-point annotation shown by the renderer.
	Label string
}

// NewPoint returns a point with all optional fields absent.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) HasZ() bool            { return p.Z != nil }
func (p Point) HasColorFeature() bool { return p.ColorFeature != nil }
func (p Point) HasErrorX() bool       { return p.ErrorX != nil }
func (p Point) HasErrorY() bool       { return p.ErrorY != nil }

// WithZ returns a copy with the z coordinate set.
func (p Point) WithZ(z float64) Point { p.Z = &z; return p }

// WithColorFeature returns a copy with the color feature value set.
func (p Point) WithColorFeature(v float64) Point { p.ColorFeature = &v; return p }

// WithErrorX returns a copy with a horizontal error magnitude set.
func (p Point) WithErrorX(m float64) Point { p.ErrorX = &m; return p }

// WithErrorY returns a copy with a vertical error magnitude set.
func (p Point) WithErrorY(m float64) Point { p.ErrorY = &m; return p }

// WithLabel returns a copy with the label set.
func (p Point) WithLabel(s string) Point { p.Label = s; return p }

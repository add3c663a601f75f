package colorscale

import (
	"errors"
	"math"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
)

func grayRamp(t *testing.T) Scale {
	t.Helper()
	s, err := New([]Stop{
		{Pos: 0, Color: drawing.Color{R: 0, G: 0, B: 0, A: 255}},
		{Pos: 1, Color: drawing.Color{R: 255, G: 255, B: 255, A: 255}},
	})
	if err != nil {
		t.Fatalf("ramp: %v", err)
	}
	return s
}

func channelsWithin(a, b drawing.Color, tol int) bool {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(int(a.R)-int(b.R)) <= tol && abs(int(a.G)-int(b.G)) <= tol &&
		abs(int(a.B)-int(b.B)) <= tol && abs(int(a.A)-int(b.A)) <= tol
}

func TestInterpolateEndpoints(t *testing.T) {
	s := grayRamp(t)
	c0, err := s.Interpolate(0)
	if err != nil {
		t.Fatalf("interpolate 0: %v", err)
	}
	if c0.R != 0 || c0.G != 0 || c0.B != 0 {
		t.Fatalf("expected black at 0, got %+v", c0)
	}
	c1, err := s.Interpolate(1)
	if err != nil {
		t.Fatalf("interpolate 1: %v", err)
	}
	if c1.R != 255 || c1.G != 255 || c1.B != 255 {
		t.Fatalf("expected white at 1, got %+v", c1)
	}
}

func TestInterpolateMidGray(t *testing.T) {
	s := grayRamp(t)
	c, err := s.Interpolate(0.5)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	want := drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 255}
	if !channelsWithin(c, want, 1) {
		t.Fatalf("expected mid-gray ±1, got %+v", c)
	}
}

func TestInterpolateClampsOutOfRange(t *testing.T) {
	s := grayRamp(t)
	lo, _ := s.Interpolate(-3.5)
	hi, _ := s.Interpolate(42)
	if lo.R != 0 || hi.R != 255 {
		t.Fatalf("expected boundary colors for clamped inputs, got lo=%+v hi=%+v", lo, hi)
	}
	nan, _ := s.Interpolate(math.NaN())
	if nan.R != 0 {
		t.Fatalf("NaN should clamp to first stop, got %+v", nan)
	}
}

func TestInterpolateContinuousAtStopBoundary(t *testing.T) {
	s := MustNew([]Stop{
		{Pos: 0, Color: drawing.Color{R: 0, G: 0, B: 255, A: 255}},
		{Pos: 0.4, Color: drawing.Color{R: 255, G: 0, B: 0, A: 255}},
		{Pos: 1, Color: drawing.Color{R: 0, G: 255, B: 0, A: 255}},
	})
	at, _ := s.Interpolate(0.4)
	below, _ := s.Interpolate(0.4 - 1e-9)
	above, _ := s.Interpolate(0.4 + 1e-9)
	if !channelsWithin(at, below, 1) || !channelsWithin(at, above, 1) {
		t.Fatalf("discontinuity at stop: at=%+v below=%+v above=%+v", at, below, above)
	}
}

func TestSingleStopScaleIsConstant(t *testing.T) {
	red := drawing.Color{R: 200, G: 10, B: 10, A: 255}
	s := MustNew([]Stop{{Pos: 0.5, Color: red}})
	for _, v := range []float64{0, 0.25, 0.5, 0.9, 1} {
		c, err := s.Interpolate(v)
		if err != nil {
			t.Fatalf("interpolate %v: %v", v, err)
		}
		if c != red {
			t.Fatalf("expected constant color at %v, got %+v", v, c)
		}
	}
}

func TestNewRejectsEmptyScale(t *testing.T) {
	_, err := New(nil)
	var ce *chartdata.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestNewRejectsUnsortedStops(t *testing.T) {
	_, err := New([]Stop{
		{Pos: 0.8, Color: drawing.Color{A: 255}},
		{Pos: 0.2, Color: drawing.Color{A: 255}},
	})
	var ce *chartdata.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError for unsorted stops, got %v", err)
	}
}

func TestInterpolateOnEmptyScaleErrors(t *testing.T) {
	var s Scale
	if _, err := s.Interpolate(0.3); err == nil {
		t.Fatalf("expected error interpolating zero scale")
	}
}

func TestByName(t *testing.T) {
	for _, name := range PresetNames() {
		s, err := ByName(name)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if s.IsZero() {
			t.Fatalf("preset %q is zero scale", name)
		}
	}
	// case and whitespace tolerant
	if _, err := ByName("  Viridis "); err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	_, err := ByName("nope")
	var ce *chartdata.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError for unknown scale, got %v", err)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want drawing.Color
	}{
		{"#7f7f7f", drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}},
		{"ffffff", drawing.Color{R: 255, G: 255, B: 255, A: 255}},
		{"#f00", drawing.Color{R: 255, G: 0, B: 0, A: 255}},
		{"#11223344", drawing.Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: got %+v want %+v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#12", "zzzzzz", "#12345"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNewFromHexSortsByPosition(t *testing.T) {
	s, err := NewFromHex(map[float64]string{
		1:   "#ffffff",
		0:   "#000000",
		0.5: "#7f7f7f",
	})
	if err != nil {
		t.Fatalf("NewFromHex: %v", err)
	}
	stops := s.Stops()
	if len(stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(stops))
	}
	if stops[0].Pos != 0 || stops[1].Pos != 0.5 || stops[2].Pos != 1 {
		t.Fatalf("stops not ordered: %+v", stops)
	}
}

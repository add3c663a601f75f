package colorscale

import (
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
)

// Preset scales. Viridis/plasma stops follow the matplotlib control points;
// thermal is a simple blue-to-red heat ramp.
var presets = map[string]Scale{
	"grayscale": MustNew([]Stop{
		{Pos: 0, Color: drawing.Color{R: 0, G: 0, B: 0, A: 255}},
		{Pos: 1, Color: drawing.Color{R: 255, G: 255, B: 255, A: 255}},
	}),
	"viridis": MustNew([]Stop{
		{Pos: 0.0, Color: drawing.Color{R: 68, G: 1, B: 84, A: 255}},
		{Pos: 0.25, Color: drawing.Color{R: 59, G: 82, B: 139, A: 255}},
		{Pos: 0.5, Color: drawing.Color{R: 33, G: 145, B: 140, A: 255}},
		{Pos: 0.75, Color: drawing.Color{R: 94, G: 201, B: 98, A: 255}},
		{Pos: 1.0, Color: drawing.Color{R: 253, G: 231, B: 37, A: 255}},
	}),
	"plasma": MustNew([]Stop{
		{Pos: 0.0, Color: drawing.Color{R: 13, G: 8, B: 135, A: 255}},
		{Pos: 0.25, Color: drawing.Color{R: 126, G: 3, B: 168, A: 255}},
		{Pos: 0.5, Color: drawing.Color{R: 204, G: 71, B: 120, A: 255}},
		{Pos: 0.75, Color: drawing.Color{R: 248, G: 149, B: 64, A: 255}},
		{Pos: 1.0, Color: drawing.Color{R: 240, G: 249, B: 33, A: 255}},
	}),
	"thermal": MustNew([]Stop{
		{Pos: 0.0, Color: drawing.Color{R: 5, G: 48, B: 97, A: 255}},
		{Pos: 0.5, Color: drawing.Color{R: 247, G: 247, B: 247, A: 255}},
		{Pos: 1.0, Color: drawing.Color{R: 103, G: 0, B: 31, A: 255}},
	}),
}

// ByName looks up a preset scale. Unknown names are a ConfigurationError,
// never a silent fallback, so typos surface immediately.
func ByName(name string) (Scale, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scale{}, chartdata.ConfigErrorf("colorscale.ByName", "unknown color scale %q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	return s, nil
}

// PresetNames returns the sorted names of the built-in scales.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default returns the scale used when a caller does not pick one.
func Default() Scale { return presets["viridis"] }

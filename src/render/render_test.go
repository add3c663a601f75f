package render

import (
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/tracegen"
)

func samplePoints(n int) []chartdata.Point {
	pts := make([]chartdata.Point, n)
	for i := range pts {
		pts[i] = chartdata.NewPoint(float64(i), float64(i%5))
	}
	return pts
}

func sampleTraces() []tracegen.Trace {
	colors := []drawing.Color{
		{R: 10, G: 10, B: 10, A: 255},
		{R: 100, G: 100, B: 100, A: 255},
		{R: 200, G: 200, B: 200, A: 255},
	}
	return []tracegen.Trace{
		tracegen.Line{Name: "wave (8 pts)", Points: samplePoints(8), Style: chartdata.LineStyle{Width: 2}, ShowInLegend: true, Hoverable: true},
		tracegen.MarkerSet{Name: "cloud (3 pts)", Points: samplePoints(3), Style: chartdata.MarkerStyle{Size: 5}, Colors: colors, ShowInLegend: true, ColorBar: true, ColorBarRange: [2]float64{0, 4}},
		tracegen.ErrorBarOverlay{Name: "bars", Points: samplePoints(2), Magnitudes: []float64{1, 2}, Axis: tracegen.AxisY},
	}
}

func TestBuildChartSeriesMapping(t *testing.T) {
	ch := BuildChart(sampleTraces(), Options{Width: 400, Height: 300, Title: "t"})
	// line + marker set + one segment per error bar
	if len(ch.Series) != 4 {
		t.Fatalf("expected 4 chart series, got %d", len(ch.Series))
	}
	line, ok := ch.Series[0].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("series 0 is %T", ch.Series[0])
	}
	if line.Name != "wave (8 pts)" {
		t.Fatalf("line series name %q", line.Name)
	}
	markers, ok := ch.Series[1].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("series 1 is %T", ch.Series[1])
	}
	if markers.Style.DotColorProvider == nil {
		t.Fatalf("per-point colors must map to a dot color provider")
	}
	got := markers.Style.DotColorProvider(nil, nil, 1, 0, 0)
	if got.R != 100 {
		t.Fatalf("dot color provider returned %+v", got)
	}
	for i := 2; i < 4; i++ {
		seg, ok := ch.Series[i].(chart.ContinuousSeries)
		if !ok {
			t.Fatalf("series %d is %T", i, ch.Series[i])
		}
		if seg.Name != "" {
			t.Fatalf("error bar segment leaked into legend: %q", seg.Name)
		}
	}
}

func TestBuildChartHidesLegendOptOuts(t *testing.T) {
	traces := []tracegen.Trace{
		tracegen.Line{Name: "seg", Points: samplePoints(2), ShowInLegend: false},
		tracegen.MarkerSet{Name: "quiet", Points: samplePoints(3), ShowInLegend: false},
	}
	ch := BuildChart(traces, Options{})
	for i, s := range ch.Series {
		if s.GetName() != "" {
			t.Fatalf("series %d should stay out of the legend, has name %q", i, s.GetName())
		}
	}
}

func TestBuildChartPadsSinglePoint(t *testing.T) {
	traces := []tracegen.Trace{
		tracegen.MarkerSet{Name: "solo (1 pts)", Points: samplePoints(1), ShowInLegend: true},
	}
	ch := BuildChart(traces, Options{})
	ms := ch.Series[0].(chart.ContinuousSeries)
	if len(ms.XValues) != 2 || len(ms.YValues) != 2 {
		t.Fatalf("single point should be padded for go-chart: x=%d y=%d", len(ms.XValues), len(ms.YValues))
	}
}

func TestRenderProducesImage(t *testing.T) {
	img, err := Render(sampleTraces(), Options{Width: 500, Height: 300, Title: "demo", Scale: colorscale.Default(), Badge: "Loading 42%"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 500 || b.Dy() != 300 {
		t.Fatalf("image size %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderEmptyTracesYieldsBlank(t *testing.T) {
	img, err := Render(nil, Options{Width: 120, Height: 80})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Fatalf("blank size wrong: %v", img.Bounds())
	}
}

func TestDrawBadge(t *testing.T) {
	base := Blank(200, 100)
	out := DrawBadge(base, "Loading Wave (70/600 points)")
	if out == nil || out.Bounds() != base.Bounds() {
		t.Fatalf("badge changed bounds")
	}
	if same := DrawBadge(base, "   "); same != base {
		t.Fatalf("empty badge text should return the input image")
	}
}

func TestNiceAxisBoundsWidenRange(t *testing.T) {
	a, b := NiceAxisBounds(5, 123)
	if a > 5 || b < 123 {
		t.Fatalf("bounds must cover input: [%v,%v]", a, b)
	}
	// degenerate span still yields a usable range
	a, b = NiceAxisBounds(10, 10)
	if a >= b {
		t.Fatalf("expected widened range, got [%v,%v]", a, b)
	}
}

func TestNiceTicksLabelsNonEmpty(t *testing.T) {
	ticks := NiceTicks(1, 9, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Label == "" {
			t.Fatalf("empty label at tick %d", i)
		}
	}
}

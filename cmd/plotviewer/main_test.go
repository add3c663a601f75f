package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/plotstream/plotstream/src/chartdata"
	"github.com/plotstream/plotstream/src/colorscale"
	"github.com/plotstream/plotstream/src/progressive"
)

func TestDemoSeriesShape(t *testing.T) {
	series := demoSeries(100)
	if len(series) != 3 {
		t.Fatalf("expected 3 demo series, got %d", len(series))
	}
	wave := series[0]
	if !wave.ConnectAdjacent || !wave.UseGradientSegments {
		t.Fatalf("wave should use gradient segments: %+v", wave)
	}
	if len(wave.Points) != 100 {
		t.Fatalf("wave has %d points", len(wave.Points))
	}
	cloud := series[1]
	if !cloud.Marker.UseColorFeature {
		t.Fatalf("cloud should color-map its markers")
	}
	bars := series[2]
	hasErr := false
	for _, p := range bars.Points {
		if p.HasErrorY() {
			hasErr = true
			break
		}
	}
	if !hasErr {
		t.Fatalf("trend series should carry error bars")
	}
}

func TestDemoSeriesDeterministic(t *testing.T) {
	if !reflect.DeepEqual(demoSeries(80), demoSeries(80)) {
		t.Fatalf("demo data must be reproducible across reloads")
	}
}

func TestDemoSeriesLoadsEndToEnd(t *testing.T) {
	c := progressive.NewController(colorscale.Default())
	series := demoSeries(60)
	var total int
	if err := c.Load(series, progressive.Options{}, nil, func(n int, stats chartdata.StatisticsSnapshot) {
		total = n
	}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if total != chartdata.TotalPointCount(series) {
		t.Fatalf("completion total %d, want %d", total, chartdata.TotalPointCount(series))
	}
	if len(c.Traces()) == 0 {
		t.Fatalf("no traces for demo data")
	}
}

func TestStatsSummary(t *testing.T) {
	z := [2]float64{-1, 1}
	s := chartdata.StatisticsSnapshot{
		TotalPoints:    1234,
		SeriesCount:    3,
		XRange:         [2]float64{0, 10},
		YRange:         [2]float64{-40, 40},
		ZRange:         &z,
		EstimatedBytes: 1234 * chartdata.BytesPerPoint,
	}
	out := statsSummary(s)
	for _, want := range []string{"1234 pts", "3 series", "x=[", "z=["} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary %q missing %q", out, want)
		}
	}
	s.ZRange = nil
	if out := statsSummary(s); !strings.Contains(out, "z=-") {
		t.Fatalf("summary without z should show a dash: %q", out)
	}
}

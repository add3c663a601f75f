package chartdata

import "math"

// ColorFeatureRange returns the min and max color-feature values carried by
// points. Points without a feature value are skipped; when none carries one
// the unit range [0,1] is returned so normalization stays well defined.
func ColorFeatureRange(points []Point) [2]float64 {
	min, max := math.Inf(1), math.Inf(-1)
	found := false
	for _, p := range points {
		if !p.HasColorFeature() {
			continue
		}
		found = true
		if *p.ColorFeature < min {
			min = *p.ColorFeature
		}
		if *p.ColorFeature > max {
			max = *p.ColorFeature
		}
	}
	if !found {
		return [2]float64{0, 1}
	}
	return [2]float64{min, max}
}

// BytesPerPoint is a fixed per-point memory overhead estimate: eight float64
// slots per point (coordinates, color feature, error magnitudes, padding).
// An estimate, not a measurement.
const BytesPerPoint = 64

// OversizedPointThreshold is the total point count above which Aggregate and
// the load controller log a performance advisory.
const OversizedPointThreshold = 500_000

// StatisticsSnapshot carries aggregate per-axis ranges, counts and a memory
// estimate for one completed load. It is computed in full or not at all.
type StatisticsSnapshot struct {
	TotalPoints int
	SeriesCount int
	XRange      [2]float64
	YRange      [2]float64
	// ZRange is nil when no point anywhere carries a z value.
	ZRange         *[2]float64
	EstimatedBytes int64
}

// Aggregate computes a StatisticsSnapshot over every point of every series in
// a single pass with O(1) extra memory. Points with NaN coordinates still
// count toward TotalPoints but are skipped for the affected axis range.
func Aggregate(series []Series) StatisticsSnapshot {
	snap := StatisticsSnapshot{SeriesCount: len(series)}
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	zMin, zMax := math.Inf(1), math.Inf(-1)
	haveX, haveY, haveZ := false, false, false
	for _, s := range series {
		snap.TotalPoints += len(s.Points)
		for _, p := range s.Points {
			if !math.IsNaN(p.X) {
				haveX = true
				if p.X < xMin {
					xMin = p.X
				}
				if p.X > xMax {
					xMax = p.X
				}
			}
			if !math.IsNaN(p.Y) {
				haveY = true
				if p.Y < yMin {
					yMin = p.Y
				}
				if p.Y > yMax {
					yMax = p.Y
				}
			}
			if p.HasZ() {
				haveZ = true
				if *p.Z < zMin {
					zMin = *p.Z
				}
				if *p.Z > zMax {
					zMax = *p.Z
				}
			}
		}
	}
	if haveX {
		snap.XRange = [2]float64{xMin, xMax}
	}
	if haveY {
		snap.YRange = [2]float64{yMin, yMax}
	}
	if haveZ {
		zr := [2]float64{zMin, zMax}
		snap.ZRange = &zr
	}
	snap.EstimatedBytes = int64(snap.TotalPoints) * BytesPerPoint
	if snap.TotalPoints > OversizedPointThreshold {
		Warnf("aggregating %d points; expect slow renders above %d", snap.TotalPoints, OversizedPointThreshold)
	}
	return snap
}

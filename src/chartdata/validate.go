package chartdata

import (
	"fmt"
	"math"
)

// ValidateSeries drops points whose required coordinates are NaN or infinite
// and returns the offending descriptions as warnings. The caller decides
// whether to log them; processing always continues. The input series is not
// mutated: when points were dropped a copy with the cleaned slice is
// returned, otherwise the original series is returned as-is.
func ValidateSeries(s Series) (Series, []string) {
	bad := 0
	for _, p := range s.Points {
		if !validCoord(p.X) || !validCoord(p.Y) {
			bad++
		}
	}
	if bad == 0 {
		return s, nil
	}
	var warnings []string
	clean := make([]Point, 0, len(s.Points)-bad)
	for i, p := range s.Points {
		if !validCoord(p.X) || !validCoord(p.Y) {
			warnings = append(warnings, fmt.Sprintf("series %q point %d has non-finite coordinates (x=%v y=%v); dropped", s.Name, i, p.X, p.Y))
			continue
		}
		clean = append(clean, p)
	}
	s.Points = clean
	return s, warnings
}

func validCoord(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// TotalPointCount sums the point counts of all series.
func TotalPointCount(series []Series) int {
	n := 0
	for _, s := range series {
		n += len(s.Points)
	}
	return n
}

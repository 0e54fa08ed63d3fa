package analysis

import (
	"math"
	"sort"
)

// Quartiles summarizes a goal distribution for tabular output. The renderer
// computes its own box statistics; this is for text summaries only.
type Quartiles struct {
	Q1, Median, Q3 float64
}

// DistributionQuartiles returns the quartiles of a per-match goal
// distribution using linear interpolation between order statistics.
func DistributionQuartiles(goals []int) Quartiles {
	if len(goals) == 0 {
		return Quartiles{}
	}
	sorted := make([]float64, len(goals))
	for i, g := range goals {
		sorted[i] = float64(g)
	}
	sort.Float64s(sorted)
	return Quartiles{
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
	}
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

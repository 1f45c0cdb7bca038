package stats

import "sort"

// SortedCopy returns a sorted copy of values without mutating the input
func SortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// NearestRank calculates the q-th quantile (0-1) using the nearest-rank
// method: the value at index floor(q*n) of the sorted data, with no
// interpolation between ranks.
func NearestRank(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	idx := int(q * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

// MinMax returns the extremes of a sorted slice
func MinMax(sorted []float64) (min, max float64) {
	if len(sorted) == 0 {
		return 0, 0
	}
	return sorted[0], sorted[len(sorted)-1]
}

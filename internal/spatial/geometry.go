// Package spatial provides planar geometry helpers for pixel-space and
// table-space coordinates.
package spatial

import (
	"math"

	"github.com/golang/geo/r2"
)

// Distance calculates the Euclidean distance between two planar points
func Distance(x1, y1, x2, y2 float64) float64 {
	a := r2.Point{X: x1, Y: y1}
	b := r2.Point{X: x2, Y: y2}
	return a.Sub(b).Norm()
}

// Sign returns -1 for negative values and 1 otherwise
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// SoftClamp compresses |v| beyond limit with a tanh saturation instead of
// a hard cutoff. Values inside the limit are returned unchanged; values
// outside approach limit+softness asymptotically. The transition at the
// limit is continuous and strictly monotonic.
func SoftClamp(v, limit, softness float64) float64 {
	abs := math.Abs(v)
	if abs <= limit {
		return v
	}
	return Sign(v) * (limit + math.Tanh((abs-limit)/softness)*softness)
}

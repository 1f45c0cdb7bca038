package heatmap

import (
	"github.com/courtside/heatmap-backend-go/internal/models"
	"github.com/courtside/heatmap-backend-go/internal/stats"
)

// SessionBounds holds the per-axis extremes and interquartile values of
// one session's filtered trajectory. They describe that session's
// arbitrary camera framing and drive the normalization into table
// coordinates.
type SessionBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	XP25, XP75 float64
	YP25, YP75 float64
}

// EstimateBounds computes min/max and nearest-rank quartiles over the
// filtered points of one session. The input must be non-empty; callers
// skip sessions whose filtered trajectory came back empty. A
// single-point input yields min=max=p25=p75 on each axis, and mapping
// guards against the resulting zero spans.
func EstimateBounds(points []models.RawPoint) SessionBounds {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	sortedX := stats.SortedCopy(xs)
	sortedY := stats.SortedCopy(ys)

	var b SessionBounds
	b.MinX, b.MaxX = stats.MinMax(sortedX)
	b.MinY, b.MaxY = stats.MinMax(sortedY)
	b.XP25 = stats.NearestRank(sortedX, 0.25)
	b.XP75 = stats.NearestRank(sortedX, 0.75)
	b.YP25 = stats.NearestRank(sortedY, 0.25)
	b.YP75 = stats.NearestRank(sortedY, 0.75)
	return b
}

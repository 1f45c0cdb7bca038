package heatmap

import (
	"math"
	"sort"

	"github.com/courtside/heatmap-backend-go/internal/models"
	"github.com/courtside/heatmap-backend-go/internal/spatial"
)

const (
	// maxNeighborGap is the largest frame gap across which adjacent
	// points are still treated as a reliable local baseline.
	maxNeighborGap = 3

	// jumpThresholdPx is the pixel distance beyond which a point that
	// teleports away from both neighbors is considered a tracking spike.
	jumpThresholdPx = 80.0
)

// FilterTrajectory removes isolated tracking spikes from one session's
// raw point sequence. Points with NaN or Inf coordinates are dropped
// first; the remainder is sorted by frame and interior points that jump
// more than jumpThresholdPx away from both immediate neighbors are
// removed. First and last points are always kept, and sequences with
// fewer than three points pass through unchanged.
func FilterTrajectory(points []models.RawPoint) []models.RawPoint {
	pts := dropMalformed(points)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Frame < pts[j].Frame })

	if len(pts) < 3 {
		return pts
	}

	kept := make([]models.RawPoint, 0, len(pts))
	kept = append(kept, pts[0])

	for i := 1; i < len(pts)-1; i++ {
		prev, cur, next := pts[i-1], pts[i], pts[i+1]

		// A large frame gap means the neighbors are not a usable
		// baseline; keep the point unconditionally.
		if cur.Frame-prev.Frame > maxNeighborGap || next.Frame-cur.Frame > maxNeighborGap {
			kept = append(kept, cur)
			continue
		}

		distPrev := spatial.Distance(cur.X, cur.Y, prev.X, prev.Y)
		distNext := spatial.Distance(cur.X, cur.Y, next.X, next.Y)
		if distPrev > jumpThresholdPx && distNext > jumpThresholdPx {
			// Isolated spike: teleports in and back out.
			continue
		}

		kept = append(kept, cur)
	}

	kept = append(kept, pts[len(pts)-1])
	return kept
}

// dropMalformed removes points whose coordinates are NaN or Inf. The
// upstream pipeline does not validate these, and a single NaN would
// poison every grid cell it splats into.
func dropMalformed(points []models.RawPoint) []models.RawPoint {
	clean := make([]models.RawPoint, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		clean = append(clean, p)
	}
	return clean
}

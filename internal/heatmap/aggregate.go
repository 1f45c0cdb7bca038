package heatmap

import (
	"math"

	"github.com/courtside/heatmap-backend-go/internal/models"
)

// kernelRadius bounds the 5x5 Gaussian splat neighborhood
const kernelRadius = 2

// Aggregate builds the shared density grid from the complete current
// session list. Each session is independently noise-filtered, bounded,
// and mapped into table coordinates; every mapped point then splats a
// 5x5 Gaussian kernel into the grid together with the session's
// provenance. Sessions whose filtered trajectory is empty contribute
// nothing. Deterministic: identical input yields an identical grid.
func Aggregate(sessions []models.Session) *DensityGrid {
	grid := NewDensityGrid()

	for _, s := range sessions {
		if len(s.Points) == 0 {
			continue
		}
		filtered := FilterTrajectory(s.Points)
		if len(filtered) == 0 {
			continue
		}
		bounds := EstimateBounds(filtered)
		for _, p := range filtered {
			grid.splat(MapToTable(p, bounds), s.ID, s.Name)
		}
	}

	for _, cell := range grid.cells {
		if cell.Density > grid.MaxDensity {
			grid.MaxDensity = cell.Density
		}
	}
	return grid
}

// splat distributes one point's contribution across the 5x5 bin
// neighborhood around its base bin. The base bin is clamped into the
// grid; neighbor offsets that land outside are skipped, not errors.
func (g *DensityGrid) splat(tc TableCoordinate, sessionID, sessionName string) {
	bx := clampBin(int(math.Floor(((tc.X+TableLength/2)/TableLength)*float64(g.BinsX))), g.BinsX)
	bz := clampBin(int(math.Floor(((tc.Z+TableWidth/2)/TableWidth)*float64(g.BinsZ))), g.BinsZ)

	for dx := -kernelRadius; dx <= kernelRadius; dx++ {
		for dz := -kernelRadius; dz <= kernelRadius; dz++ {
			nx, nz := bx+dx, bz+dz
			if nx < 0 || nx >= g.BinsX || nz < 0 || nz >= g.BinsZ {
				continue
			}

			key := CellKey{BX: nx, BZ: nz}
			cell := g.cells[key]
			if cell == nil {
				cell = &GridCell{
					SessionIDs:   make(map[string]struct{}),
					SessionNames: make(map[string]struct{}),
				}
				g.cells[key] = cell
			}

			cell.Density += math.Exp(-float64(dx*dx+dz*dz) / 2)
			cell.SessionIDs[sessionID] = struct{}{}
			cell.SessionNames[sessionName] = struct{}{}
		}
	}
}

func clampBin(b, bins int) int {
	if b < 0 {
		return 0
	}
	if b >= bins {
		return bins - 1
	}
	return b
}

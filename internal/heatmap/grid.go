package heatmap

import "sort"

// Grid resolution of the canonical density map.
const (
	BinsX = 80
	BinsZ = 50
)

// noiseFloor is the density below which a cell is treated as empty for
// query purposes.
const noiseFloor = 0.02

// CellKey identifies one bin of the density grid
type CellKey struct {
	BX int
	BZ int
}

// GridCell accumulates density and provenance for one bin. The session
// sets are true sets: one session contributing many points to the same
// bin appears once, while its density still accumulates per point.
type GridCell struct {
	Density      float64
	SessionIDs   map[string]struct{}
	SessionNames map[string]struct{}
}

// DensityGrid is the sparse cross-session impact map over the canonical
// table surface. It is built fresh per aggregation and must be treated
// as immutable once published to readers.
type DensityGrid struct {
	BinsX      int
	BinsZ      int
	MaxDensity float64
	cells      map[CellKey]*GridCell
}

// NewDensityGrid creates an empty grid at the canonical resolution
func NewDensityGrid() *DensityGrid {
	return &DensityGrid{
		BinsX:      BinsX,
		BinsZ:      BinsZ,
		MaxDensity: 1,
		cells:      make(map[CellKey]*GridCell),
	}
}

// Cell returns the cell at (bx, bz), or nil if nothing splatted there
func (g *DensityGrid) Cell(bx, bz int) *GridCell {
	return g.cells[CellKey{BX: bx, BZ: bz}]
}

// Len returns the number of occupied cells
func (g *DensityGrid) Len() int {
	return len(g.cells)
}

// Keys returns the occupied cell keys in deterministic row-major order
func (g *DensityGrid) Keys() []CellKey {
	keys := make([]CellKey, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].BZ != keys[j].BZ {
			return keys[i].BZ < keys[j].BZ
		}
		return keys[i].BX < keys[j].BX
	})
	return keys
}

// Query looks up the contributing sessions at (bx, bz). Cells that are
// absent or below the noise floor report no match. The returned slices
// are sorted copies; the grid is never mutated.
func (g *DensityGrid) Query(bx, bz int) (sessionIDs, sessionNames []string, ok bool) {
	cell := g.cells[CellKey{BX: bx, BZ: bz}]
	if cell == nil || cell.Density <= noiseFloor {
		return nil, nil, false
	}
	return sortedSet(cell.SessionIDs), sortedSet(cell.SessionNames), true
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

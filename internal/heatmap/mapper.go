package heatmap

import (
	"math"

	"github.com/courtside/heatmap-backend-go/internal/models"
	"github.com/courtside/heatmap-backend-go/internal/spatial"
)

// Physical dimensions of a regulation table-tennis table in meters.
const (
	TableLength = 2.74
	TableWidth  = 1.525
)

const (
	// iqrWiden stretches the interquartile range so the normalization
	// is not dominated by the densest cluster of contacts.
	iqrWiden = 1.6

	// spreadFactor widens the mapped x spread beyond the raw
	// interquartile range so extreme shots are not crushed toward the
	// table center.
	spreadFactor = 1.3

	// clampLimitRatio is the fraction of the half width past which the
	// depth axis saturates instead of extrapolating linearly.
	clampLimitRatio = 0.6
	clampSoftness   = 0.3
)

// TableCoordinate is a point in canonical table-relative meters,
// centered at the table's geometric center. X runs along the length of
// the table, Z across its width.
type TableCoordinate struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// MapToTable converts one raw pixel-space point into canonical table
// coordinates using the owning session's bounds. The horizontal axis is
// centered on the interquartile midpoint and scaled by the widened IQR;
// the depth axis is scaled by the full observed span and soft-clamped
// past the plausible table edge. Pure function; degenerate bounds are
// floored to a unit range so the result is always finite.
func MapToTable(p models.RawPoint, b SessionBounds) TableCoordinate {
	midX := (b.XP25 + b.XP75) / 2
	rangeX := math.Max((b.XP75-b.XP25)*iqrWiden, 1)
	nx := (p.X - midX) / rangeX
	x := nx * TableLength * spreadFactor

	rangeY := math.Max(b.MaxY-b.MinY, 1)
	nyFull := (p.Y - b.MinY) / rangeY
	z := (nyFull - 0.5) * TableWidth

	limit := clampLimitRatio * (TableWidth / 2)
	z = spatial.SoftClamp(z, limit, clampSoftness)

	return TableCoordinate{X: x, Z: z}
}

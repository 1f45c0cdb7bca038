package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside/heatmap-backend-go/internal/models"
)

func TestMapToTable(t *testing.T) {
	t.Parallel()

	t.Run("coincident points never divide by zero", func(t *testing.T) {
		t.Parallel()
		b := EstimateBounds([]models.RawPoint{{Frame: 0, X: 320, Y: 240}})
		tc := MapToTable(models.RawPoint{Frame: 0, X: 320, Y: 240}, b)
		assert.False(t, math.IsNaN(tc.X) || math.IsInf(tc.X, 0))
		assert.False(t, math.IsNaN(tc.Z) || math.IsInf(tc.Z, 0))
		assert.Equal(t, 0.0, tc.X, "pixel at the IQR midpoint maps to the table center")
	})

	t.Run("interquartile midpoint maps to x zero", func(t *testing.T) {
		t.Parallel()
		b := SessionBounds{XP25: 100, XP75: 300, MinY: 0, MaxY: 100}
		tc := MapToTable(models.RawPoint{X: 200, Y: 50}, b)
		assert.InDelta(t, 0, tc.X, 1e-12)
		assert.InDelta(t, 0, tc.Z, 1e-12)
	})

	t.Run("x scales by the widened interquartile range", func(t *testing.T) {
		t.Parallel()
		b := SessionBounds{XP25: 100, XP75: 300, MinY: 0, MaxY: 100}
		// rangeX = 200*1.6 = 320; nx = 160/320 = 0.5
		tc := MapToTable(models.RawPoint{X: 360, Y: 50}, b)
		assert.InDelta(t, 0.5*TableLength*1.3, tc.X, 1e-12)
	})

	t.Run("depth inside the clamp limit is linear", func(t *testing.T) {
		t.Parallel()
		b := SessionBounds{MinY: 0, MaxY: 100}
		// nyFull = 0.7 -> zRaw = 0.2*TableWidth = 0.305, inside 0.6*halfWidth
		tc := MapToTable(models.RawPoint{Y: 70}, b)
		assert.InDelta(t, 0.2*TableWidth, tc.Z, 1e-12)
	})

	t.Run("depth past the clamp limit saturates smoothly", func(t *testing.T) {
		t.Parallel()
		b := SessionBounds{MinY: 0, MaxY: 100}
		limit := 0.6 * TableWidth / 2

		prev := math.Inf(-1)
		prevDelta := math.Inf(1)
		sawClamped := false
		for y := 50.0; y <= 400; y += 5 {
			tc := MapToTable(models.RawPoint{Y: y}, b)
			assert.Greater(t, tc.Z, prev, "z must increase strictly at y=%f", y)
			if prev > limit {
				delta := tc.Z - prev
				assert.LessOrEqual(t, delta, prevDelta+1e-12, "growth rate must not increase at y=%f", y)
				prevDelta = delta
				sawClamped = true
			}
			prev = tc.Z
		}
		assert.True(t, sawClamped, "sweep must cross the clamp limit")
		assert.Less(t, prev, limit+clampSoftness, "clamped depth saturates below limit+softness")
	})
}

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestRank(t *testing.T) {
	t.Parallel()

	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	t.Run("quartiles use floor index without interpolation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 3.0, NearestRank(sorted, 0.25)) // floor(0.25*8) = index 2
		assert.Equal(t, 7.0, NearestRank(sorted, 0.75)) // floor(0.75*8) = index 6
	})

	t.Run("q of 1 is clamped to the last element", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 8.0, NearestRank(sorted, 1))
	})

	t.Run("empty input yields zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, NearestRank(nil, 0.5))
	})

	t.Run("single element is every quantile", func(t *testing.T) {
		t.Parallel()
		single := []float64{42}
		assert.Equal(t, 42.0, NearestRank(single, 0))
		assert.Equal(t, 42.0, NearestRank(single, 0.25))
		assert.Equal(t, 42.0, NearestRank(single, 0.75))
		assert.Equal(t, 42.0, NearestRank(single, 1))
	})
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	min, max := MinMax([]float64{-3, 0, 7})
	assert.Equal(t, -3.0, min)
	assert.Equal(t, 7.0, max)

	min, max = MinMax(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}

func TestSortedCopy(t *testing.T) {
	t.Parallel()

	in := []float64{3, 1, 2}
	out := SortedCopy(in)
	assert.Equal(t, []float64{1, 2, 3}, out)
	assert.Equal(t, []float64{3, 1, 2}, in, "input must not be mutated")
}

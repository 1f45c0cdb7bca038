package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 0.0, Distance(1, 1, 1, 1))
}

func TestSoftClamp(t *testing.T) {
	t.Parallel()

	t.Run("values inside the limit pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.3, SoftClamp(0.3, 0.5, 0.3))
		assert.Equal(t, -0.3, SoftClamp(-0.3, 0.5, 0.3))
	})

	t.Run("continuous at the limit", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.5, SoftClamp(0.5+1e-12, 0.5, 0.3), 1e-9)
	})

	t.Run("monotonic with decreasing slope past the limit", func(t *testing.T) {
		t.Parallel()
		prev := SoftClamp(0.5, 0.5, 0.3)
		prevDelta := 1.0
		for v := 0.6; v < 3.0; v += 0.1 {
			cur := SoftClamp(v, 0.5, 0.3)
			delta := cur - prev
			assert.Greater(t, delta, 0.0, "must keep increasing at v=%f", v)
			assert.LessOrEqual(t, delta, prevDelta, "slope must not grow at v=%f", v)
			prev = cur
			prevDelta = delta
		}
	})

	t.Run("saturates near limit plus softness", func(t *testing.T) {
		t.Parallel()
		assert.Less(t, SoftClamp(100, 0.5, 0.3), 0.5+0.3+1e-9)
	})
}

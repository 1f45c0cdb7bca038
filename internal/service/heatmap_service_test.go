package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/heatmap-backend-go/internal/models"
)

type fakeSource struct {
	sessions  []models.Session
	revision  int64
	loadCalls int
}

func (f *fakeSource) SessionsWithPoints() ([]models.Session, error) {
	f.loadCalls++
	return f.sessions, nil
}

func (f *fakeSource) Revision() (int64, error) {
	return f.revision, nil
}

func (f *fakeSource) addSession(s models.Session) {
	f.sessions = append(f.sessions, s)
	f.revision++
}

func drillSession(id, name string) models.Session {
	return models.Session{ID: id, Name: name, Points: []models.RawPoint{
		{Frame: 0, X: 100, Y: 100},
		{Frame: 1, X: 110, Y: 105},
		{Frame: 2, X: 120, Y: 110},
	}}
}

func TestHeatmapServiceSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("snapshot is memoized until the revision moves", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		source.addSession(drillSession("s1", "Session 1"))

		svc := NewHeatmapService(source)

		first, err := svc.Snapshot()
		require.NoError(t, err)
		second, err := svc.Snapshot()
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, source.loadCalls)
	})

	t.Run("session changes trigger a rebuild", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		source.addSession(drillSession("s1", "Session 1"))

		svc := NewHeatmapService(source)
		first, err := svc.Snapshot()
		require.NoError(t, err)

		source.addSession(drillSession("s2", "Session 2"))
		second, err := svc.Snapshot()
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.Equal(t, []string{"s1"}, first.SessionIDs)
		assert.Equal(t, []string{"s1", "s2"}, second.SessionIDs)
		assert.NotEqual(t, first.CacheKey, second.CacheKey)
		assert.Equal(t, 2, source.loadCalls)
	})

	t.Run("subscribers see each publication exactly once", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		source.addSession(drillSession("s1", "Session 1"))

		svc := NewHeatmapService(source)

		var seen []*GridSnapshot
		token := svc.Subscribe(func(snap *GridSnapshot) {
			seen = append(seen, snap)
		})

		_, err := svc.Snapshot()
		require.NoError(t, err)
		_, err = svc.Snapshot() // memoized, no publication
		require.NoError(t, err)
		require.Len(t, seen, 1)

		source.addSession(drillSession("s2", "Session 2"))
		_, err = svc.Snapshot()
		require.NoError(t, err)
		require.Len(t, seen, 2)

		svc.Unsubscribe(token)
		source.addSession(drillSession("s3", "Session 3"))
		_, err = svc.Snapshot()
		require.NoError(t, err)
		assert.Len(t, seen, 2)
	})
}

func TestHeatmapServicePayloads(t *testing.T) {
	t.Parallel()

	t.Run("heatmap intensities are normalized to the unit interval", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		source.addSession(drillSession("s1", "Session 1"))
		source.addSession(drillSession("s2", "Session 2"))

		svc := NewHeatmapService(source)
		resp, err := svc.Heatmap()
		require.NoError(t, err)

		assert.Equal(t, 80, resp.BinsX)
		assert.Equal(t, 50, resp.BinsZ)
		assert.GreaterOrEqual(t, resp.MaxDensity, 1.0)
		require.NotEmpty(t, resp.Cells)

		sawPeak := false
		for _, cell := range resp.Cells {
			assert.GreaterOrEqual(t, cell.Intensity, 0.0)
			assert.LessOrEqual(t, cell.Intensity, 1.0)
			if cell.Intensity == 1.0 {
				sawPeak = true
			}
		}
		assert.True(t, sawPeak, "the hottest cell must normalize to exactly 1")
	})

	t.Run("cell query returns provenance or nil", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		source.addSession(drillSession("s1", "Session 1"))

		svc := NewHeatmapService(source)
		resp, err := svc.Heatmap()
		require.NoError(t, err)
		require.NotEmpty(t, resp.Cells)

		hot := resp.Cells[0]
		for _, cell := range resp.Cells {
			if cell.Density > hot.Density {
				hot = cell
			}
		}

		prov, err := svc.QueryCell(hot.BX, hot.BZ)
		require.NoError(t, err)
		require.NotNil(t, prov)
		assert.Equal(t, []string{"s1"}, prov.SessionIDs)
		assert.Equal(t, []string{"Session 1"}, prov.SessionNames)

		empty, err := svc.QueryCell(0, 0)
		require.NoError(t, err)
		assert.Nil(t, empty)
	})
}

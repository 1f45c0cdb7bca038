package service

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/courtside/heatmap-backend-go/internal/heatmap"
	"github.com/courtside/heatmap-backend-go/internal/models"
)

// SessionSource supplies the current session set and a revision counter
// that changes whenever the set changes
type SessionSource interface {
	SessionsWithPoints() ([]models.Session, error)
	Revision() (int64, error)
}

// GridSnapshot is one published aggregation result. It is immutable
// once published: readers and subscribers share the same instance and
// must not modify the grid.
type GridSnapshot struct {
	Grid       *heatmap.DensityGrid
	SessionIDs []string
	Revision   int64
	CacheKey   string
	BuiltAt    time.Time
}

// HeatmapService owns the grid lifecycle: it recomputes the density
// grid from the full session set whenever the store revision moves, and
// memoizes the published snapshot in between. Listeners can subscribe
// to republications.
type HeatmapService struct {
	source SessionSource

	mu     sync.Mutex
	cached *GridSnapshot

	subMu     sync.Mutex
	subs      map[int]func(*GridSnapshot)
	nextSubID int
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(source SessionSource) *HeatmapService {
	return &HeatmapService{
		source: source,
		subs:   make(map[int]func(*GridSnapshot)),
	}
}

// Snapshot returns the current grid, recomputing it only when the
// session set changed since the last publication
func (s *HeatmapService) Snapshot() (*GridSnapshot, error) {
	rev, err := s.source.Revision()
	if err != nil {
		return nil, fmt.Errorf("failed to read revision: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cached.Revision == rev {
		return s.cached, nil
	}

	sessions, err := s.source.SessionsWithPoints()
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	start := time.Now()
	grid := heatmap.Aggregate(sessions)

	ids := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	sort.Strings(ids)

	snapshot := &GridSnapshot{
		Grid:       grid,
		SessionIDs: ids,
		Revision:   rev,
		CacheKey:   strings.Join(ids, ",") + "@" + strconv.FormatInt(rev, 10),
		BuiltAt:    time.Now(),
	}
	s.cached = snapshot

	log.Printf("[HeatmapService] Rebuilt grid: %d sessions, %d occupied cells, max density %.2f (%v)",
		len(sessions), grid.Len(), grid.MaxDensity, time.Since(start))

	s.notify(snapshot)
	return snapshot, nil
}

// Heatmap returns the renderer payload: every occupied cell with its
// raw density and display intensity normalized to [0,1]
func (s *HeatmapService) Heatmap() (*models.HeatmapResponse, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	grid := snapshot.Grid
	cells := make([]models.HeatmapCell, 0, grid.Len())
	for _, key := range grid.Keys() {
		cell := grid.Cell(key.BX, key.BZ)
		cells = append(cells, models.HeatmapCell{
			BX:        key.BX,
			BZ:        key.BZ,
			Density:   cell.Density,
			Intensity: cell.Density / grid.MaxDensity,
		})
	}

	return &models.HeatmapResponse{
		BinsX:      grid.BinsX,
		BinsZ:      grid.BinsZ,
		MaxDensity: grid.MaxDensity,
		Count:      len(cells),
		Cells:      cells,
	}, nil
}

// QueryCell returns the sessions contributing to one grid cell, or nil
// when the cell is empty or below the noise floor
func (s *HeatmapService) QueryCell(bx, bz int) (*models.CellProvenance, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	ids, names, ok := snapshot.Grid.Query(bx, bz)
	if !ok {
		return nil, nil
	}

	return &models.CellProvenance{
		BX:           bx,
		BZ:           bz,
		SessionIDs:   ids,
		SessionNames: names,
	}, nil
}

// Subscribe registers a listener called with every newly published
// snapshot. Returns a token for Unsubscribe.
func (s *HeatmapService) Subscribe(fn func(*GridSnapshot)) int {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a listener registered with Subscribe
func (s *HeatmapService) Unsubscribe(id int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, id)
}

func (s *HeatmapService) notify(snapshot *GridSnapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}

package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/courtside/heatmap-backend-go/internal/models"
	"github.com/courtside/heatmap-backend-go/internal/repository"
)

// SessionService handles business logic for sessions
type SessionService struct {
	repo *repository.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Ingest validates and stores one uploaded session. Points with NaN or
// Inf coordinates are dropped at the door; a missing session_id gets a
// generated one. Returns the stored session metadata.
func (s *SessionService) Ingest(req models.SessionIngest) (*models.Session, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	points := make([]models.RawPoint, 0, len(req.TrajectoryFrames))
	for _, p := range req.TrajectoryFrames {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		points = append(points, p)
	}

	session := &models.Session{
		ID:     id,
		Name:   req.SessionName,
		Points: points,
	}
	if err := s.repo.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	session.PointCount = len(points)

	return session, nil
}

// GetSessions retrieves sessions with filtering and pagination
func (s *SessionService) GetSessions(filter models.SessionFilter) (*models.SessionsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	sessions, total, err := s.repo.GetSessions(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.SessionsResponse{
		Data:       sessions,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetSession retrieves a single session with its trajectory, or nil
// when it does not exist
func (s *SessionService) GetSession(id string) (*models.Session, error) {
	return s.repo.GetSession(id)
}

// DeleteSession removes a session. Returns false when it did not exist.
func (s *SessionService) DeleteSession(id string) (bool, error) {
	return s.repo.DeleteSession(id)
}

package models

import "time"

// RawPoint represents one tracked ball contact in a session's original
// pixel space. Frame order is not guaranteed by the upstream pipeline.
type RawPoint struct {
	Frame int     `json:"frame"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Session represents one recorded coaching session and its trajectory
type Session struct {
	ID         string     `json:"session_id" db:"id"`
	Name       string     `json:"session_name" db:"name"`
	PointCount int        `json:"point_count" db:"point_count"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	Points     []RawPoint `json:"trajectory_frames,omitempty"`
}

// SessionIngest represents the upload payload from the tracking pipeline
type SessionIngest struct {
	SessionID        string     `json:"session_id"`
	SessionName      string     `json:"session_name" binding:"required"`
	TrajectoryFrames []RawPoint `json:"trajectory_frames"`
}

// SessionsResponse represents a paginated response of sessions
type SessionsResponse struct {
	Data       []Session `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

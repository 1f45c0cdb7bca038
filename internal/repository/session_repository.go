package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/courtside/heatmap-backend-go/internal/database"
	"github.com/courtside/heatmap-backend-go/internal/models"
)

// SessionRepository handles database operations for sessions and their
// trajectory points
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a session with its trajectory points in one
// transaction and bumps the store revision
func (r *SessionRepository) CreateSession(session *models.Session) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO sessions (id, name, point_count) VALUES (?, ?, ?)",
			session.ID, session.Name, len(session.Points),
		)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}

		stmt, err := tx.Prepare("INSERT INTO trajectory_points (session_id, frame, x, y) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare point insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range session.Points {
			if _, err := stmt.Exec(session.ID, p.Frame, p.X, p.Y); err != nil {
				return fmt.Errorf("failed to insert point: %w", err)
			}
		}

		return bumpRevision(tx)
	})
}

// GetSessions retrieves sessions (without points) with filtering and
// pagination. Returns the page and the unfiltered-by-page total.
func (r *SessionRepository) GetSessions(filter models.SessionFilter) ([]models.Session, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sessions"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	query := "SELECT id, name, point_count, created_at FROM sessions" + where +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.PointCount, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, rows.Err()
}

// GetSession retrieves a single session with its trajectory points.
// Returns nil when the session does not exist.
func (r *SessionRepository) GetSession(id string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(
		"SELECT id, name, point_count, created_at FROM sessions WHERE id = ?", id,
	).Scan(&s.ID, &s.Name, &s.PointCount, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	points, err := r.pointsForSession(id)
	if err != nil {
		return nil, err
	}
	s.Points = points

	return &s, nil
}

// DeleteSession removes a session and its points (cascade) and bumps
// the store revision. Returns false when the session did not exist.
func (r *SessionRepository) DeleteSession(id string) (bool, error) {
	deleted := false
	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM sessions WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if n == 0 {
			return nil
		}
		deleted = true
		return bumpRevision(tx)
	})
	return deleted, err
}

// SessionsWithPoints loads every session together with its full
// trajectory, in stable creation order, for grid aggregation
func (r *SessionRepository) SessionsWithPoints() ([]models.Session, error) {
	rows, err := r.db.Query("SELECT id, name, point_count, created_at FROM sessions ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.PointCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	for i := range sessions {
		points, err := r.pointsForSession(sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Points = points
	}

	return sessions, nil
}

// Revision returns the store revision counter, bumped on every session
// mutation. Used as the grid cache key.
func (r *SessionRepository) Revision() (int64, error) {
	var rev int64
	if err := r.db.QueryRow("SELECT revision FROM store_revision WHERE id = 1").Scan(&rev); err != nil {
		return 0, fmt.Errorf("failed to read store revision: %w", err)
	}
	return rev, nil
}

func (r *SessionRepository) pointsForSession(sessionID string) ([]models.RawPoint, error) {
	rows, err := r.db.Query(
		"SELECT frame, x, y FROM trajectory_points WHERE session_id = ? ORDER BY frame, id", sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query points: %w", err)
	}
	defer rows.Close()

	var points []models.RawPoint
	for rows.Next() {
		var p models.RawPoint
		if err := rows.Scan(&p.Frame, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func bumpRevision(tx *sql.Tx) error {
	if _, err := tx.Exec("UPDATE store_revision SET revision = revision + 1 WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to bump store revision: %w", err)
	}
	return nil
}

package models

// SessionFilter represents filter parameters for querying sessions
type SessionFilter struct {
	Name     string `form:"name"`     // Substring match on session name
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

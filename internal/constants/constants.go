package constants

// Session
const (
	SessionCookieName = "agenda_session"
	SessionMaxAge     = 86400 * 7 // 7 days
)

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Database connection pool
const (
	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 5
)

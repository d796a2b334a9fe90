package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second
	ShutdownTimeout       = 15 * time.Second
	HealthCheckTimeout    = 2 * time.Second
)

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
)

// Pagination
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// Stats cache. A read that races a write can repopulate a stale value, so
// the lifetime is capped.
const (
	StatsCacheTTL    = 15 * time.Second
	StatsCacheMaxTTL = time.Minute
)

// Redis keys
const (
	RedisKeyHostingRequestStats = "hosting_requests:stats"
	RedisKeyEDStatsPrefix       = "hosting_requests:ed_stats:"
)

// Queue task types
const (
	TaskNotificationCreate = "notification:create"
)

// Context keys
const (
	ContextKeyTokenData = "token_data"
)

// Roles
const (
	RoleAdmin         = "admin"
	RoleEventDirector = "event_director"
	RoleUser          = "user"
)

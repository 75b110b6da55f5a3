// File: utils/constants.go
package utils

import (
	"os"
	"time"
)

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "avail:"

// DateLayout is the calendar-date format used across storage and the API.
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format for slot times (zero-padded 24h).
const TimeLayout = "15:04"

// DefaultRequestTimeout bounds collaborator calls (Mongo, Redis).
const DefaultRequestTimeout = 5 * time.Second

// IsProduction reports whether the service runs in production mode.
func IsProduction() bool {
	return os.Getenv("ENV") == "production"
}

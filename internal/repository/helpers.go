package repository

import "time"

// sqliteTimestampLayout is the format CURRENT_TIMESTAMP produces. Older
// rows carry it; rows written here use RFC3339.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

// parseStoredTime parses a created_at column value, accepting both layouts.
func parseStoredTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(sqliteTimestampLayout, s)
}

// nowUTC returns the current UTC time truncated to whole seconds, the
// resolution the created_at column stores.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

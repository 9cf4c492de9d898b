package sqlite

import "time"

// LogLine is one persisted row of the time log
type LogLine struct {
	ID        int64
	Line      string
	CreatedAt time.Time
}

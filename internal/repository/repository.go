package repository

import (
	"context"
)

// LogStore is the persistence boundary for the append-only time log.
// Lines are returned in the order they were appended, trimmed, with blank
// lines dropped.
type LogStore interface {
	// ReadLines returns every non-blank line of the log.
	ReadLines(ctx context.Context) ([]string, error)

	// AppendLine durably appends a single line to the end of the log.
	AppendLine(ctx context.Context, line string) error

	// Close releases any resources held by the store
	Close() error
}

package memory

import (
	"context"
	"strings"
	"sync"

	"timetracker/internal/errors"
)

// Store is an in-memory log store
type Store struct {
	mu    sync.Mutex
	lines []string
}

// New creates a store pre-populated with lines, which are trimmed and
// filtered like a file read would be.
func New(lines ...string) *Store {
	s := &Store{}
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			s.lines = append(s.lines, line)
		}
	}
	return s
}

// ReadLines returns a copy of the stored lines.
func (s *Store) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("read log", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

// AppendLine adds line to the end of the log.
func (s *Store) AppendLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("append to log", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if line = strings.TrimSpace(line); line != "" {
		s.lines = append(s.lines, line)
	}
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timetracker/internal/errors"
	"timetracker/internal/logging"
	"timetracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store keeps the time log as rows of a SQLite table, one row per line.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the database at dbPath and applies pending migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// A single connection keeps ":memory:" databases consistent across calls.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	logging.Debugln("opened sqlite log store", logging.F("path", dbPath))
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// ReadLines returns the stored lines in insertion order.
func (s *Store) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("read log", err.Error())
	}

	query := `
	SELECT id, line, created_at
	FROM log_lines
	ORDER BY id ASC`

	rows, err := QueryMultiple(ctx, s.db, query, ScanLogLines, "log lines")
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.Line)
	}
	return lines, nil
}

// AppendLine inserts line as the newest row.
func (s *Store) AppendLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("append to log", err.Error())
	}

	query := `INSERT INTO log_lines (line, created_at) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, s.db, query, line, FormatTimeForDB(s.now()))
	if err != nil {
		return err
	}

	logging.Debugln("appended log line", logging.F("id", id), logging.F("line", line))
	return nil
}

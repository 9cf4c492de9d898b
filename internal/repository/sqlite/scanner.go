package sqlite

import (
	"strings"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanLogLine scans a single log line from a database row
func ScanLogLine(scanner Scanner) (*LogLine, error) {
	line := &LogLine{}
	var createdAt string

	if err := scanner.Scan(&line.ID, &line.Line, &createdAt); err != nil {
		return nil, err
	}

	line.Line = strings.TrimSpace(line.Line)
	if t, err := ParseTimeFromDB(createdAt); err == nil {
		line.CreatedAt = t
	}

	return line, nil
}

// ScanLogLines scans log lines from database rows, dropping blank ones
func ScanLogLines(rows Rows) ([]*LogLine, error) {
	var lines []*LogLine
	for rows.Next() {
		line, err := ScanLogLine(rows)
		if err != nil {
			return nil, err
		}
		if line.Line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

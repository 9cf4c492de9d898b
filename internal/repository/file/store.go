package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"timetracker/internal/errors"
	"timetracker/internal/logging"
)

// Options configures a flat-file log store.
type Options struct {
	// DirPerm is applied when the parent directory has to be created.
	DirPerm os.FileMode
	// Locking enables advisory flock around reads and appends.
	Locking bool
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{DirPerm: 0755, Locking: true}
}

// Store keeps the time log as one mark per line in a plain text file.
type Store struct {
	path string
	opts Options
}

// New creates the store, making the parent directory and an empty log file
// if they do not exist yet.
func New(path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, errors.NewValidationError("log file path cannot be empty", nil)
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = DefaultOptions().DirPerm
	}

	if err := os.MkdirAll(filepath.Dir(path), opts.DirPerm); err != nil {
		return nil, storageError("create log directory", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return nil, storageError("create log file", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, errors.NewStorageError("create log file", err)
	}

	logging.Debugln("opened file log store", logging.F("path", path), logging.F("locking", opts.Locking))
	return &Store{path: path, opts: opts}, nil
}

// Path returns the location of the log file
func (s *Store) Path() string {
	return s.path
}

// ReadLines returns the trimmed, non-blank lines of the log in file order.
func (s *Store) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("read log", err.Error())
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, storageError("open log file", s.path, err)
	}
	defer f.Close()

	if s.opts.Locking {
		if err := lockShared(f); err != nil {
			return nil, errors.NewStorageError("lock log file", err)
		}
		defer unlock(f)
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewStorageError("read log file", err)
	}

	logging.Debugf("read %d lines from %s", len(lines), s.path)
	return lines, nil
}

// AppendLine writes line followed by a newline at the end of the log.
func (s *Store) AppendLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("append to log", err.Error())
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return storageError("open log file", s.path, err)
	}
	defer f.Close()

	if s.opts.Locking {
		if err := lockExclusive(f); err != nil {
			return errors.NewStorageError("lock log file", err)
		}
		defer unlock(f)
	}

	if _, err := fmt.Fprintln(f, line); err != nil {
		return errors.NewStorageError("append to log file", err)
	}
	if err := f.Sync(); err != nil {
		return errors.NewStorageError("sync log file", err)
	}

	logging.Debugln("appended log line", logging.F("line", line))
	return nil
}

// Close is a no-op; the file is only held open for the duration of a call.
func (s *Store) Close() error {
	return nil
}

func storageError(operation, path string, err error) error {
	if os.IsPermission(err) {
		return errors.NewPermissionError(operation, path).WithContext("cause", err.Error())
	}
	return errors.NewStorageError(operation, err)
}

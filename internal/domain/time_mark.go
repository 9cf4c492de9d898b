package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the minute-resolution, zone-less layout of log timestamps.
const TimestampLayout = "2006-01-02 15:04"

// Line prefixes that tag an entry as a start or a stop.
const (
	StartPrefix = "from:"
	StopPrefix  = "to:"
)

// MarkKind tags a TimeMark as the start or the stop of a work session.
type MarkKind int

const (
	Start MarkKind = iota
	Stop
)

// String returns the kind name
func (k MarkKind) String() string {
	switch k {
	case Start:
		return "start"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Prefix returns the log line prefix for the kind.
func (k MarkKind) Prefix() string {
	if k == Stop {
		return StopPrefix
	}
	return StartPrefix
}

// TimeMark is one parsed log line: a start or stop event at a point in time.
type TimeMark struct {
	Kind MarkKind
	At   time.Time
}

// NewTimeMark creates a mark truncated to the minute, the resolution of the log.
func NewTimeMark(kind MarkKind, at time.Time) TimeMark {
	return TimeMark{Kind: kind, At: TruncateToMinute(at)}
}

// String renders the mark as a log line, e.g. "from:2016-12-31 09:00".
func (m TimeMark) String() string {
	return m.Kind.Prefix() + FormatTimestamp(m.At)
}

// IsStopLine reports whether a raw log line carries the stop prefix.
func IsStopLine(line string) bool {
	return strings.HasPrefix(line, StopPrefix)
}

// ParseTimeMark parses a single trimmed log line in the local time zone.
func ParseTimeMark(line string) (TimeMark, error) {
	return ParseTimeMarkInLocation(line, time.Local)
}

// ParseTimeMarkInLocation parses a single trimmed log line, interpreting the
// zone-less timestamp in loc.
func ParseTimeMarkInLocation(line string, loc *time.Location) (TimeMark, error) {
	var kind MarkKind
	var rest string
	switch {
	case strings.HasPrefix(line, StartPrefix):
		kind, rest = Start, strings.TrimPrefix(line, StartPrefix)
	case strings.HasPrefix(line, StopPrefix):
		kind, rest = Stop, strings.TrimPrefix(line, StopPrefix)
	default:
		return TimeMark{}, fmt.Errorf("line must start with %q or %q", StartPrefix, StopPrefix)
	}

	at, err := time.ParseInLocation(TimestampLayout, rest, loc)
	if err != nil {
		return TimeMark{}, fmt.Errorf("invalid %s timestamp: %w", kind, err)
	}
	// time.Parse accepts unpadded hours; every field must be fixed width.
	if at.Format(TimestampLayout) != rest {
		return TimeMark{}, fmt.Errorf("invalid %s timestamp: %q is not in %s form", kind, rest, TimestampLayout)
	}
	return TimeMark{Kind: kind, At: at}, nil
}

// FormatTimestamp formats t in the log's timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// TruncateToMinute drops seconds and below while keeping t's location.
func TruncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

package domain

import (
	"time"
)

// Interval is one tracked work session reconstructed from the log.
// An interval with a nil End is open: the session has not been stopped yet.
type Interval struct {
	Start time.Time
	End   *time.Time
}

// NewClosedInterval creates an interval with both endpoints recorded.
func NewClosedInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: &end}
}

// NewOpenInterval creates an interval that is still running.
func NewOpenInterval(start time.Time) Interval {
	return Interval{Start: start}
}

// IsOpen returns true if the interval has no recorded end.
func (i Interval) IsOpen() bool {
	return i.End == nil
}

// Elapsed returns the interval's length, resolving an open end against now.
// Negative lengths (end recorded before start) are reported as zero.
func (i Interval) Elapsed(now time.Time) time.Duration {
	end := now
	if i.End != nil {
		end = *i.End
	}
	if d := end.Sub(i.Start); d > 0 {
		return d
	}
	return 0
}

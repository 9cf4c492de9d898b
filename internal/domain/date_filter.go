package domain

import (
	"fmt"
	"time"
)

// WeekID identifies an ISO 8601 week.
type WeekID struct {
	Year int
	Week int
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) WeekID {
	year, week := t.ISOWeek()
	return WeekID{Year: year, Week: week}
}

// String formats the week as e.g. "2016-W52".
func (w WeekID) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// FilterKind selects how a DateFilter matches timestamps.
type FilterKind int

const (
	SameDayFilter FilterKind = iota
	SameWeekFilter
)

// DateFilter selects the timestamps that count toward a reported total.
type DateFilter struct {
	Kind FilterKind
	Day  time.Time
	Week WeekID
}

// SameDay matches timestamps on the calendar date of day.
func SameDay(day time.Time) DateFilter {
	return DateFilter{
		Kind: SameDayFilter,
		Day:  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
	}
}

// SameWeek matches timestamps in ISO week w.
func SameWeek(w WeekID) DateFilter {
	return DateFilter{Kind: SameWeekFilter, Week: w}
}

// Matches reports whether t passes the filter. Calendar fields are read
// in t's own location.
func (f DateFilter) Matches(t time.Time) bool {
	switch f.Kind {
	case SameDayFilter:
		y, m, d := t.Date()
		fy, fm, fd := f.Day.Date()
		return y == fy && m == fm && d == fd
	case SameWeekFilter:
		return WeekOf(t) == f.Week
	default:
		return false
	}
}

// String returns the label used in reports.
func (f DateFilter) String() string {
	switch f.Kind {
	case SameDayFilter:
		return f.Day.Format("2006-01-02")
	case SameWeekFilter:
		return f.Week.String()
	default:
		return "unknown"
	}
}

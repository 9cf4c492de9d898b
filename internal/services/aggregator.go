package services

import (
	"time"

	"timetracker/internal/domain"
)

// Counted returns the intervals that contribute to a total under filter.
// A closed interval counts only when both endpoints match; an open interval
// counts when its start matches. Intervals are never split at day or week
// boundaries.
func Counted(intervals []domain.Interval, filter domain.DateFilter) []domain.Interval {
	var counted []domain.Interval
	for _, iv := range intervals {
		if !filter.Matches(iv.Start) {
			continue
		}
		if iv.End != nil && !filter.Matches(*iv.End) {
			continue
		}
		counted = append(counted, iv)
	}
	return counted
}

// Aggregate sums the elapsed time of the counted intervals, resolving an open
// interval against now. The result is never negative.
func Aggregate(intervals []domain.Interval, filter domain.DateFilter, now time.Time) time.Duration {
	var total time.Duration
	for _, iv := range Counted(intervals, filter) {
		total += iv.Elapsed(now)
	}
	return total
}

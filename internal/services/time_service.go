package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"timetracker/internal/errors"
)

// DateExprLayout is the layout of explicit date expressions, e.g. "20161231".
const DateExprLayout = "20060102"

var explicitDatePattern = regexp.MustCompile(`^\d{8}$`)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct{}

// NewTimeService creates a new TimeService instance
func NewTimeService() TimeService {
	return &timeServiceImpl{}
}

// ResolveDate turns a date expression into midnight of the date it names,
// in now's location.
//
//	"" or "today"   today
//	"yesterday"     the day before today
//	1 .. 7          that ISO weekday (Monday = 1) of the current week;
//	                any integer spelling counts, e.g. "03" or "+3"
//	"YYYYMMDD"      an explicit calendar date
func (t *timeServiceImpl) ResolveDate(expr string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	trimmed := strings.TrimSpace(expr)

	switch trimmed {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	ordinal, ordinalErr := strconv.Atoi(trimmed)
	if ordinalErr == nil && ordinal >= 1 && ordinal <= 7 {
		return today.AddDate(0, 0, ordinal-isoWeekday(today)), nil
	}

	if !explicitDatePattern.MatchString(trimmed) {
		if ordinalErr == nil {
			return time.Time{}, errors.NewInvalidInputError("date", expr, "weekday must be between 1 (Monday) and 7 (Sunday)")
		}
		return time.Time{}, errors.NewInvalidInputError("date", expr, "expected today, yesterday, a weekday 1-7 or YYYYMMDD")
	}

	date, err := time.ParseInLocation(DateExprLayout, trimmed, now.Location())
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", expr, "not a valid calendar date")
	}
	return date, nil
}

// FormatDuration renders d as "<H> hours <M> minutes". Hours are not
// wrapped at 24.
func (t *timeServiceImpl) FormatDuration(d time.Duration) string {
	hours, minutes := splitDuration(d)
	return fmt.Sprintf("%d hours %d minutes", hours, minutes)
}

// FormatShort renders d as "<H>h <M>m".
func (t *timeServiceImpl) FormatShort(d time.Duration) string {
	hours, minutes := splitDuration(d)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func splitDuration(d time.Duration) (int, int) {
	if d < 0 {
		d = 0
	}
	return int(d.Hours()), int(d.Minutes()) % 60
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

package services

import (
	"timetracker/internal/domain"
	"timetracker/internal/errors"
	"timetracker/internal/logging"
)

// ReconstructIntervals pairs the ordered log lines into work intervals.
//
// Every start opens an interval and the next stop closes it. A trailing start
// without a stop yields a final open interval. A log whose first line is a
// stop is rejected as corrupt before any line is parsed, and a line that is
// not a valid mark is rejected with its 1-based line number.
func ReconstructIntervals(lines []string) ([]domain.Interval, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	if domain.IsStopLine(lines[0]) {
		return nil, errors.NewCorruptLogError("log starts with a stop entry")
	}

	intervals := make([]domain.Interval, 0, len(lines)/2+1)
	var open *domain.TimeMark

	for i, line := range lines {
		mark, err := domain.ParseTimeMark(line)
		if err != nil {
			return nil, errors.NewMalformedEntryError(i+1, line, err)
		}

		switch mark.Kind {
		case domain.Start:
			if open != nil {
				logging.Debugln("start while tracking, dropping earlier start",
					logging.F("line", i+1), logging.F("dropped", domain.FormatTimestamp(open.At)))
			}
			m := mark
			open = &m
		case domain.Stop:
			if open == nil {
				logging.Debugln("stop without start, ignoring", logging.F("line", i+1))
				continue
			}
			intervals = append(intervals, domain.NewClosedInterval(open.At, mark.At))
			open = nil
		}
	}

	if open != nil {
		intervals = append(intervals, domain.NewOpenInterval(open.At))
	}

	return intervals, nil
}

// LastMark parses the final log line, or returns nil for an empty log.
func LastMark(lines []string) (*domain.TimeMark, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	last := lines[len(lines)-1]
	mark, err := domain.ParseTimeMark(last)
	if err != nil {
		return nil, errors.NewMalformedEntryError(len(lines), last, err)
	}
	return &mark, nil
}

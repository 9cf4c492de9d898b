package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetracker/internal/domain"
	"timetracker/internal/errors"
)

func local(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func TestReconstructIntervals(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []domain.Interval
	}{
		{
			name:     "empty log",
			lines:    nil,
			expected: nil,
		},
		{
			name:  "single closed interval",
			lines: []string{"from:2016-12-31 09:00", "to:2016-12-31 12:30"},
			expected: []domain.Interval{
				domain.NewClosedInterval(local(2016, 12, 31, 9, 0), local(2016, 12, 31, 12, 30)),
			},
		},
		{
			name:  "trailing start stays open",
			lines: []string{"from:2016-12-31 09:00", "to:2016-12-31 12:30", "from:2016-12-31 13:15"},
			expected: []domain.Interval{
				domain.NewClosedInterval(local(2016, 12, 31, 9, 0), local(2016, 12, 31, 12, 30)),
				domain.NewOpenInterval(local(2016, 12, 31, 13, 15)),
			},
		},
		{
			name:  "consecutive starts keep the latest",
			lines: []string{"from:2016-12-31 09:00", "from:2016-12-31 10:00", "to:2016-12-31 11:00"},
			expected: []domain.Interval{
				domain.NewClosedInterval(local(2016, 12, 31, 10, 0), local(2016, 12, 31, 11, 0)),
			},
		},
		{
			name:  "stray stop is ignored",
			lines: []string{"from:2016-12-31 09:00", "to:2016-12-31 10:00", "to:2016-12-31 11:00"},
			expected: []domain.Interval{
				domain.NewClosedInterval(local(2016, 12, 31, 9, 0), local(2016, 12, 31, 10, 0)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intervals, err := ReconstructIntervals(tt.lines)
			require.NoError(t, err)
			require.Len(t, intervals, len(tt.expected))
			for i, want := range tt.expected {
				got := intervals[i]
				assert.True(t, want.Start.Equal(got.Start), "interval %d start: got %v, want %v", i, got.Start, want.Start)
				if want.End == nil {
					assert.Nil(t, got.End, "interval %d should be open", i)
					continue
				}
				require.NotNil(t, got.End, "interval %d should be closed", i)
				assert.True(t, want.End.Equal(*got.End), "interval %d end: got %v, want %v", i, *got.End, *want.End)
			}
		})
	}
}

func TestReconstructIntervals_LeadingStop(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"only line is a stop", []string{"to:2016-12-31 09:00"}},
		{"stop before start", []string{"to:2016-12-31 09:00", "from:2016-12-31 10:00"}},
		{"leading stop with bad timestamp", []string{"to:not a date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconstructIntervals(tt.lines)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrCorruptLog)
			assert.Equal(t, "CORRUPT_LOG", errors.GetErrorCode(err))
		})
	}
}

func TestReconstructIntervals_MalformedEntry(t *testing.T) {
	lines := []string{"from:2016-12-31 09:00", "to:2016-12-31 12:30", "from:31.12.2016 13:15"}

	_, err := ReconstructIntervals(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedEntry)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCorruptLog))

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 3, appErr.Context["line"])
	assert.Equal(t, "from:31.12.2016 13:15", appErr.Context["content"])
}

func TestReconstructIntervals_UnpaddedTimestamp(t *testing.T) {
	intervals, err := ReconstructIntervals([]string{"from:2016-12-31 9:00", "to:2016-12-31 9:30"})
	require.Error(t, err)
	assert.Nil(t, intervals)
	assert.ErrorIs(t, err, errors.ErrMalformedEntry)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 1, appErr.Context["line"])
}

func TestReconstructIntervals_UnknownPrefix(t *testing.T) {
	_, err := ReconstructIntervals([]string{"from:2016-12-31 09:00", "break:2016-12-31 10:00"})
	assert.ErrorIs(t, err, errors.ErrMalformedEntry)
}

func TestLastMark(t *testing.T) {
	mark, err := LastMark(nil)
	require.NoError(t, err)
	assert.Nil(t, mark)

	mark, err = LastMark([]string{"from:2016-12-31 09:00", "to:2016-12-31 10:00"})
	require.NoError(t, err)
	require.NotNil(t, mark)
	assert.Equal(t, domain.Stop, mark.Kind)
	assert.True(t, local(2016, 12, 31, 10, 0).Equal(mark.At))

	_, err = LastMark([]string{"from:2016-12-31 09:00", "garbage"})
	assert.ErrorIs(t, err, errors.ErrMalformedEntry)
}

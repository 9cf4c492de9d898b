package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"timetracker/internal/api"
	"timetracker/internal/config"
	"timetracker/internal/domain"
)

// mockBusinessAPI implements the BusinessAPI interface for testing.
// It keeps just enough state to answer start, stop and current like the
// real implementation and returns canned reports.
type mockBusinessAPI struct {
	now         time.Time
	last        *domain.TimeMark
	appended    []domain.TimeMark
	dayReport   *api.Report
	weekReport  *api.Report
	err         error
	lastDayExpr string
}

func newMockBusinessAPI(now time.Time) *mockBusinessAPI {
	return &mockBusinessAPI{
		now:        now,
		dayReport:  &api.Report{Label: domain.SameDay(now).String(), Formatted: "0 hours 0 minutes"},
		weekReport: &api.Report{Label: domain.WeekOf(now).String(), Formatted: "0 hours 0 minutes"},
	}
}

func (m *mockBusinessAPI) StartTracking(ctx context.Context) (*api.TrackingResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	mark := domain.NewTimeMark(domain.Start, m.now)
	result := &api.TrackingResult{Mark: mark, Previous: m.last}
	if m.last != nil && m.last.Kind == domain.Start {
		return result, nil
	}
	m.append(mark)
	result.Applied = true
	return result, nil
}

func (m *mockBusinessAPI) StopTracking(ctx context.Context) (*api.TrackingResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	mark := domain.NewTimeMark(domain.Stop, m.now)
	result := &api.TrackingResult{Mark: mark, Previous: m.last, Today: m.dayReport}
	if m.last == nil || m.last.Kind == domain.Stop {
		return result, nil
	}
	m.append(mark)
	result.Applied = true
	return result, nil
}

func (m *mockBusinessAPI) GetCurrentSession(ctx context.Context) (*api.SessionStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	status := &api.SessionStatus{State: domain.StateOf(m.last)}
	if status.State == domain.Tracking {
		since := m.last.At
		status.Since = &since
		status.Elapsed = m.now.Sub(since)
		status.Duration = "1h 30m"
	}
	return status, nil
}

func (m *mockBusinessAPI) GetDayReport(ctx context.Context, dateExpr string) (*api.Report, error) {
	m.lastDayExpr = dateExpr
	if m.err != nil {
		return nil, m.err
	}
	return m.dayReport, nil
}

func (m *mockBusinessAPI) GetWeekReport(ctx context.Context) (*api.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.weekReport, nil
}

func (m *mockBusinessAPI) append(mark domain.TimeMark) {
	m.appended = append(m.appended, mark)
	m.last = &mark
}

// setupTestAppWithMockBusinessAPI creates an App backed by the mock and a captured output buffer
func setupTestAppWithMockBusinessAPI(t *testing.T) (*App, *mockBusinessAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockBusinessAPI(time.Date(2016, 12, 31, 10, 30, 0, 0, time.Local))
	out := &bytes.Buffer{}
	return NewAppWithOutput(mock, config.NewConfig(), out), mock, out
}

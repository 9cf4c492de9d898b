package services

import (
	"context"
	"time"

	"timetracker/internal/domain"
	"timetracker/internal/logging"
	"timetracker/internal/repository"
)

// trackingServiceImpl implements the TrackingService interface
type trackingServiceImpl struct {
	store repository.LogStore
}

// NewTrackingService creates a new TrackingService instance
func NewTrackingService(store repository.LogStore) TrackingService {
	return &trackingServiceImpl{store: store}
}

// State derives the session state from the last line of the log.
func (t *trackingServiceImpl) State(ctx context.Context) (*Session, error) {
	lines, err := t.store.ReadLines(ctx)
	if err != nil {
		return nil, err
	}

	last, err := LastMark(lines)
	if err != nil {
		return nil, err
	}

	return &Session{State: domain.StateOf(last), Last: last}, nil
}

// Start appends a start mark unless a session is already being tracked.
func (t *trackingServiceImpl) Start(ctx context.Context, now time.Time) (*Transition, error) {
	session, err := t.State(ctx)
	if err != nil {
		return nil, err
	}

	mark := domain.NewTimeMark(domain.Start, now)
	if session.State == domain.Tracking {
		logging.Debugln("start ignored, already tracking", logging.F("since", domain.FormatTimestamp(session.Last.At)))
		return &Transition{Mark: mark, Previous: session.Last}, nil
	}

	if err := t.store.AppendLine(ctx, mark.String()); err != nil {
		return nil, err
	}
	return &Transition{Mark: mark, Previous: session.Last, Applied: true}, nil
}

// Stop appends a stop mark when a session is being tracked. A stop on an
// empty log is not written because a leading stop makes the log unreadable.
func (t *trackingServiceImpl) Stop(ctx context.Context, now time.Time) (*Transition, error) {
	session, err := t.State(ctx)
	if err != nil {
		return nil, err
	}

	mark := domain.NewTimeMark(domain.Stop, now)
	if session.State != domain.Tracking {
		logging.Debugln("stop ignored", logging.F("state", session.State.String()))
		return &Transition{Mark: mark, Previous: session.Last}, nil
	}

	if err := t.store.AppendLine(ctx, mark.String()); err != nil {
		return nil, err
	}
	return &Transition{Mark: mark, Previous: session.Last, Applied: true}, nil
}

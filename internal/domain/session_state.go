package domain

// SessionState is the tracking state derived from the last log line.
type SessionState int

const (
	NeverStarted SessionState = iota
	Tracking
	Stopped
)

// String returns the state name
func (s SessionState) String() string {
	switch s {
	case NeverStarted:
		return "never started"
	case Tracking:
		return "tracking"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StateOf derives the session state from the kind of the last mark.
// last is nil for an empty log.
func StateOf(last *TimeMark) SessionState {
	if last == nil {
		return NeverStarted
	}
	if last.Kind == Start {
		return Tracking
	}
	return Stopped
}

package tracker

// State of the tracking session.
type State int

const (
	// StateIdle - no flight tracked
	StateIdle State = iota
	// StateNewFlight - a different flight came within the threshold, session is being reset
	StateNewFlight
	// StateDisplaying - display cycles left for the tracked flight
	StateDisplaying
	// StateExhausted - all cycles shown, the same flight is still close
	StateExhausted
	// StateDeparted - the tracked flight left the threshold, session is being closed
	StateDeparted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNewFlight:
		return "new-flight"
	case StateDisplaying:
		return "displaying"
	case StateExhausted:
		return "exhausted"
	case StateDeparted:
		return "departed"
	default:
		return "unknown"
	}
}

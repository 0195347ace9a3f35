package domain

// AvailabilityState reports whether AI-assisted refactoring can currently be offered.
type AvailabilityState uint8

const (
	// StateLoading indicates a preflight probe is in progress. It is the initial state.
	StateLoading AvailabilityState = iota
	// StateEnabled indicates refactoring is available.
	StateEnabled
	// StateOffline indicates the engine reported the feature as unavailable.
	StateOffline
	// StateError indicates the last preflight probe failed.
	StateError
	// StateDisabled indicates the feature has been turned off.
	StateDisabled
)

// String returns the string representation of the AvailabilityState.
func (s AvailabilityState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEnabled:
		return "enabled"
	case StateOffline:
		return "offline"
	case StateError:
		return "error"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Transition describes a single availability state change.
type Transition struct {
	Previous AvailabilityState
	Current  AvailabilityState
	Err      error
}

// BackOnline reports whether the feature returned from offline.
func (t Transition) BackOnline() bool {
	return t.Previous == StateOffline && t.Current == StateEnabled
}

// WentOffline reports whether the feature just went offline.
func (t Transition) WentOffline() bool {
	return t.Previous != StateOffline && t.Current == StateOffline
}

// NewError reports whether the feature just entered the error state.
func (t Transition) NewError() bool {
	return t.Previous != StateError && t.Current == StateError
}

// FirstActivation reports whether the feature became available after the initial load.
func (t Transition) FirstActivation() bool {
	return t.Previous == StateLoading && t.Current == StateEnabled
}

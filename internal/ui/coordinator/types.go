package coordinator

import "jobs4u/internal/domain"

// State is the screen-level search state. Keywords live in the keyword
// service; State.Keywords is filled in by Snapshot.
type State struct {
	Mode        domain.Mode
	Keywords    []string
	Location    string // country code as shown in the picker, e.g. "US"
	Jobs        []domain.Job
	CurrentPage int
	Generation  uint64
	InFlight    bool
	Err         error // last search failure, cleared by the next search or reset
}

// Event types
type ModeChangedEvent struct {
	OldMode domain.Mode
	NewMode domain.Mode
}

type SearchStartedEvent struct {
	Request domain.SearchRequest
}

type ResultsLoadedEvent struct {
	Generation uint64
	Count      int
}

type SearchErroredEvent struct {
	Generation uint64
	Err        error
}

type StaleResultDroppedEvent struct {
	Generation uint64
	Current    uint64
}

type ResetEvent struct{}

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventJobApplied      EventType = "JobApplied"
	EventConfigLoaded    EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent asks the search service to run a query
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the search service answered with jobs
type SearchCompletedEvent struct {
	Generation uint64
	RequestID  string
	Jobs       []Job
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the request failed or the body was unusable
type SearchFailedEvent struct {
	Generation uint64
	RequestID  string
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// JobAppliedEvent is emitted after the job URL was handed to the browser
type JobAppliedEvent struct {
	Job Job
}

func (e JobAppliedEvent) Type() EventType { return EventJobApplied }

// ConfigLoadedEvent is emitted once settings are resolved
type ConfigLoadedEvent struct {
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ResultFromEvent converts a search outcome event into a SearchResult.
// ok is false for events that are not search outcomes.
func ResultFromEvent(e DomainEvent) (SearchResult, bool) {
	switch ev := e.(type) {
	case SearchCompletedEvent:
		return SearchResult{Generation: ev.Generation, Jobs: ev.Jobs}, true
	case SearchFailedEvent:
		return SearchResult{Generation: ev.Generation, Err: ev.Err}, true
	default:
		return SearchResult{}, false
	}
}

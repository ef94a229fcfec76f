package pagination

import (
	"jobs4u/internal/ui/services/events"
)

// VisibleSlice returns the items on page (1-based) for the given page
// size. Pages before the first or past the data yield an empty slice.
func VisibleSlice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// PageCount returns ceil(n / pageSize), zero for no items
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// InRange reports whether page addresses existing data
func InRange(page, n, pageSize int) bool {
	return page >= 1 && page <= PageCount(n, pageSize)
}

// Service tracks the current page
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new pagination service starting on page 1
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Page: 1},
		bus:   bus,
	}
}

// SetPage accepts any page number. Out-of-range pages are kept and simply
// render as empty.
func (s *Service) SetPage(page int) {
	if page == s.state.Page {
		return
	}
	old := s.state.Page
	s.state.Page = page
	s.bus.Publish(PageChangedEvent{OldPage: old, NewPage: page})
}

// Reset goes back to page 1
func (s *Service) Reset() {
	s.SetPage(1)
}

// Page returns the current page
func (s *Service) Page() int {
	return s.state.Page
}

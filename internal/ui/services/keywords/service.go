package keywords

import (
	"errors"
	"fmt"
	"strings"

	"jobs4u/internal/ui/services/events"
)

// ErrIndexOutOfRange is returned by Remove for an index outside the list
var ErrIndexOutOfRange = errors.New("keyword index out of range")

// Service manages the ordered, capacity-bounded keyword tags
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new keyword service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Tags: make([]string, 0, MaxTags)},
		bus:   bus,
	}
}

// Add trims token and appends it. Empty input or a full list is a silent
// no-op because Add sits on the keystroke path. Duplicates are accepted.
// It reports whether a tag was appended.
func (s *Service) Add(token string) bool {
	tag := strings.TrimSpace(token)
	if tag == "" || s.Full() {
		return false
	}

	s.state.Tags = append(s.state.Tags, tag)
	s.bus.Publish(TagAddedEvent{
		Tag:   tag,
		Index: len(s.state.Tags) - 1,
		Total: len(s.state.Tags),
	})
	return true
}

// WouldAdd reports whether a delimiter typed after token is swallowed,
// i.e. the trimmed token is non-empty. Capacity does not matter.
func (s *Service) WouldAdd(token string) bool {
	return strings.TrimSpace(token) != ""
}

// Remove deletes the tag at index, keeping the others in order
func (s *Service) Remove(index int) error {
	if index < 0 || index >= len(s.state.Tags) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.state.Tags))
	}

	tag := s.state.Tags[index]
	tags := make([]string, 0, MaxTags)
	tags = append(tags, s.state.Tags[:index]...)
	tags = append(tags, s.state.Tags[index+1:]...)
	s.state.Tags = tags

	s.bus.Publish(TagRemovedEvent{
		Tag:   tag,
		Index: index,
		Total: len(s.state.Tags),
	})
	return nil
}

// Clear drops every tag
func (s *Service) Clear() {
	s.state.Tags = make([]string, 0, MaxTags)
	s.bus.Publish(TagsClearedEvent{})
}

// Tags returns a copy of the tags in order
func (s *Service) Tags() []string {
	out := make([]string, len(s.state.Tags))
	copy(out, s.state.Tags)
	return out
}

// Len returns the number of tags
func (s *Service) Len() int {
	return len(s.state.Tags)
}

// Full reports whether the capacity is reached
func (s *Service) Full() bool {
	return len(s.state.Tags) >= MaxTags
}

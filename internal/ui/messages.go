package ui

import (
	"jobs4u/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg reports that the external pager has exited
type pagerMsg struct {
	err error
}

// clearStatusMsg clears the status line if it still shows the message
// with the given sequence number
type clearStatusMsg struct {
	seq int
}

package jobsearch

import (
	"context"
	"log"
	"time"

	"jobs4u/internal/eventbus"
)

// Service answers SearchRequestedEvents on the bus with
// SearchCompletedEvent or SearchFailedEvent
type Service struct {
	bus      eventbus.EventBus
	searcher Searcher
	timeout  time.Duration
	ctx      context.Context
}

// NewService wires searcher to the bus. Requests are bounded by timeout and
// abandoned when ctx is cancelled.
func NewService(ctx context.Context, bus eventbus.EventBus, searcher Searcher, timeout time.Duration) *Service {
	s := &Service{
		bus:      bus,
		searcher: searcher,
		timeout:  timeout,
		ctx:      ctx,
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.handle(event)
		}
	})

	return s
}

func (s *Service) handle(event eventbus.SearchRequestedEvent) {
	req := event.Request

	ctx := s.ctx
	var cancel context.CancelFunc
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	jobs, err := s.searcher.Search(ctx, req)
	if err != nil {
		log.Printf("jobsearch: generation %d failed: %v", req.Generation, err)
		s.bus.Publish(eventbus.SearchFailedEvent{
			Generation: req.Generation,
			RequestID:  req.RequestID,
			Err:        err,
		})
		return
	}

	log.Printf("jobsearch: generation %d returned %d jobs", req.Generation, len(jobs))
	s.bus.Publish(eventbus.SearchCompletedEvent{
		Generation: req.Generation,
		RequestID:  req.RequestID,
		Jobs:       jobs,
	})
}

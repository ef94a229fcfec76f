package dialog

import (
	"fmt"

	"github.com/pkg/browser"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/services/events"
)

// Service owns the job detail dialog
type Service struct {
	state  *State
	bus    events.EventBus
	opener Opener
}

// NewService creates a dialog service. A nil opener means the system browser.
func NewService(bus events.EventBus, opener Opener) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if opener == nil {
		opener = browser.OpenURL
	}
	return &Service{
		state:  &State{},
		bus:    bus,
		opener: opener,
	}
}

// Open shows job in the dialog. The record is not validated.
func (s *Service) Open(job domain.Job) {
	s.state.Selected = &job
	s.bus.Publish(DialogOpenedEvent{Job: job})
}

// Close hides the dialog and forgets the job
func (s *Service) Close() {
	if s.state.Selected == nil {
		return
	}
	s.state.Selected = nil
	s.bus.Publish(DialogClosedEvent{})
}

// Apply opens the selected job's URL and closes the dialog. With no job
// selected it does nothing. The dialog is closed even if the opener fails.
func (s *Service) Apply() error {
	if s.state.Selected == nil {
		return nil
	}
	job := *s.state.Selected

	var err error
	if openErr := s.opener(job.URL); openErr != nil {
		err = fmt.Errorf("failed to open %q: %w", job.URL, openErr)
	}

	s.bus.Publish(JobAppliedEvent{Job: job, Err: err})
	s.Close()
	return err
}

// Visible reports whether the dialog is shown
func (s *Service) Visible() bool {
	return s.state.Selected != nil
}

// Selected returns the job in the dialog
func (s *Service) Selected() (domain.Job, bool) {
	if s.state.Selected == nil {
		return domain.Job{}, false
	}
	return *s.state.Selected, true
}

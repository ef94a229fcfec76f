package dialog

import "jobs4u/internal/domain"

// Opener hands a URL to something that can display it, such as the
// system browser
type Opener func(url string) error

// State holds the job shown in the detail dialog. The dialog is visible
// exactly when Selected is non-nil.
type State struct {
	Selected *domain.Job
}

// Event types
type DialogOpenedEvent struct {
	Job domain.Job
}

type DialogClosedEvent struct{}

type JobAppliedEvent struct {
	Job domain.Job
	Err error
}

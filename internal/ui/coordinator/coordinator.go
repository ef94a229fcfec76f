package coordinator

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/services/dialog"
	"jobs4u/internal/ui/services/events"
	"jobs4u/internal/ui/services/keywords"
	"jobs4u/internal/ui/services/pagination"
)

var (
	ErrNotInForm       = errors.New("search is only possible from the search form")
	ErrSearchInFlight  = errors.New("a search is already running")
	ErrUnknownLocation = errors.New("unknown country")
	ErrNoJobAtIndex    = errors.New("no job at that position")
)

// Coordinator owns the search screen state and the services that make it up.
// All methods are expected to run on the UI goroutine.
type Coordinator struct {
	// Services
	Keywords   *keywords.Service
	Pagination *pagination.Service
	Dialog     *dialog.Service

	state *State
	bus   events.EventBus
}

// NewCoordinator creates a new coordinator in form mode
func NewCoordinator(bus events.EventBus, opener dialog.Opener) *Coordinator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Coordinator{
		Keywords:   keywords.NewService(bus),
		Pagination: pagination.NewService(bus),
		Dialog:     dialog.NewService(bus, opener),
		state: &State{
			Mode:        domain.ModeForm,
			Jobs:        []domain.Job{},
			CurrentPage: 1,
		},
		bus: bus,
	}
}

// SetLocation picks the country for the next search. An empty code clears it.
func (c *Coordinator) SetLocation(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		c.state.Location = ""
		return nil
	}
	country, ok := domain.LookupCountry(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, code)
	}
	c.state.Location = country.Code
	return nil
}

// BeginSearch produces the request to send. An unset country is sent as an
// empty location. The
// screen stays in form mode until Resolve is called with the answer.
func (c *Coordinator) BeginSearch() (domain.SearchRequest, error) {
	if c.state.Mode != domain.ModeForm {
		return domain.SearchRequest{}, ErrNotInForm
	}
	if c.state.InFlight {
		return domain.SearchRequest{}, ErrSearchInFlight
	}
	c.state.Generation++
	c.state.InFlight = true
	c.state.Err = nil

	req := domain.SearchRequest{
		Keywords:   c.Keywords.Tags(),
		Location:   strings.ToLower(c.state.Location),
		Generation: c.state.Generation,
		RequestID:  uuid.NewString(),
	}

	log.Printf("coordinator: search %s generation %d keywords=%q location=%s",
		req.RequestID, req.Generation, req.Keywords, req.Location)
	c.bus.Publish(SearchStartedEvent{Request: req})
	return req, nil
}

// Resolve applies the answer to a request started by BeginSearch. Answers
// from an older generation (a reset or newer search happened meanwhile) are
// dropped and Resolve returns false.
func (c *Coordinator) Resolve(result domain.SearchResult) bool {
	if !c.state.InFlight || result.Generation != c.state.Generation {
		log.Printf("coordinator: dropping stale result for generation %d (current %d)", result.Generation, c.state.Generation)
		c.bus.Publish(StaleResultDroppedEvent{Generation: result.Generation, Current: c.state.Generation})
		return false
	}

	c.state.InFlight = false

	if result.Err != nil {
		c.state.Err = result.Err
		c.bus.Publish(SearchErroredEvent{Generation: result.Generation, Err: result.Err})
		return true
	}

	jobs := make([]domain.Job, len(result.Jobs))
	copy(jobs, result.Jobs)
	c.state.Jobs = jobs
	c.state.Err = nil
	c.Pagination.Reset()
	c.setMode(domain.ModeResults)
	c.bus.Publish(ResultsLoadedEvent{Generation: result.Generation, Count: len(jobs)})
	return true
}

// Reset returns to an empty search form. It always succeeds and any
// request still in flight is orphaned.
func (c *Coordinator) Reset() {
	c.Keywords.Clear()
	c.Dialog.Close()
	c.Pagination.Reset()

	c.state.Location = ""
	c.state.Jobs = []domain.Job{}
	c.state.Err = nil
	c.state.InFlight = false
	c.state.Generation++

	c.setMode(domain.ModeForm)
	c.bus.Publish(ResetEvent{})
}

// SetPage selects a result page without clamping
func (c *Coordinator) SetPage(page int) {
	c.Pagination.SetPage(page)
}

// CurrentPage returns the selected page
func (c *Coordinator) CurrentPage() int {
	return c.Pagination.Page()
}

// VisibleJobs returns the jobs on the current page
func (c *Coordinator) VisibleJobs() []domain.Job {
	return pagination.VisibleSlice(c.state.Jobs, c.Pagination.Page(), pagination.PageSize)
}

// JobCount returns how many jobs the last search returned
func (c *Coordinator) JobCount() int {
	return len(c.state.Jobs)
}

// PageCount returns the number of result pages
func (c *Coordinator) PageCount() int {
	return pagination.PageCount(len(c.state.Jobs), pagination.PageSize)
}

// OpenVisible opens the dialog for the index-th job on the current page
func (c *Coordinator) OpenVisible(index int) error {
	visible := c.VisibleJobs()
	if index < 0 || index >= len(visible) {
		return fmt.Errorf("%w: %d", ErrNoJobAtIndex, index)
	}
	c.Dialog.Open(visible[index])
	return nil
}

// Mode returns the current mode
func (c *Coordinator) Mode() domain.Mode {
	return c.state.Mode
}

// Location returns the selected country code
func (c *Coordinator) Location() string {
	return c.state.Location
}

// InFlight reports whether a search is waiting for its answer
func (c *Coordinator) InFlight() bool {
	return c.state.InFlight
}

// Err returns the last search failure
func (c *Coordinator) Err() error {
	return c.state.Err
}

// Snapshot returns a copy of the full state
func (c *Coordinator) Snapshot() State {
	s := *c.state
	s.Keywords = c.Keywords.Tags()
	s.Jobs = append([]domain.Job{}, c.state.Jobs...)
	s.CurrentPage = c.Pagination.Page()
	return s
}

func (c *Coordinator) setMode(mode domain.Mode) {
	if c.state.Mode == mode {
		return
	}
	old := c.state.Mode
	c.state.Mode = mode
	c.bus.Publish(ModeChangedEvent{OldMode: old, NewMode: mode})
}

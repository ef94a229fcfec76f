package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/config"
	"jobs4u/internal/domain"
	"jobs4u/internal/eventbus"
	"jobs4u/internal/ui/coordinator"
	"jobs4u/internal/ui/input"
	inputtypes "jobs4u/internal/ui/input/types"
	"jobs4u/internal/ui/services/dialog"
	"jobs4u/internal/ui/services/events"
	"jobs4u/internal/ui/services/keywords"
	"jobs4u/internal/ui/services/pagination"
	"jobs4u/internal/ui/state"
	"jobs4u/internal/ui/views"
)

const statusTimeout = 4 * time.Second

// Option customises a Model
type Option func(*Model)

// WithOpener replaces the system browser used by Apply
func WithOpener(opener dialog.Opener) Option {
	return func(m *Model) { m.opener = opener }
}

// WithPager replaces the ov pager
func WithPager(p Pager) Option {
	return func(m *Model) { m.pager = p }
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus // domain events, crosses goroutines
	uiBus  *events.Bus       // UI service events, synchronous
	config *config.Config
	state  *state.AppState

	help    help.Model
	spinner spinner.Model

	coordinator  *coordinator.Coordinator
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	pager        Pager
	opener       dialog.Opener

	statusSeq int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		uiBus:        events.NewBus(),
		config:       cfg,
		state:        state.NewAppState(),
		help:         help.New(),
		spinner:      sp,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		helpRender:   NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.opener == nil && !cfg.UISettings.OpenInBrowser {
		m.opener = func(url string) error {
			log.Printf("ui: browser disabled, not opening %s", url)
			return nil
		}
	}

	// A nil opener makes the dialog use the system browser
	m.coordinator = coordinator.NewCoordinator(m.uiBus, m.opener)
	m.subscribe()

	if loc := cfg.UISettings.DefaultLocation; loc != "" {
		if err := m.coordinator.SetLocation(loc); err != nil {
			log.Printf("ui: ignoring default location: %v", err)
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// Coordinator exposes the search state
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// InputMode returns the active input mode
func (m *Model) InputMode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// State returns UI-only state
func (m *Model) State() *state.AppState {
	return m.state
}

// Buffer returns the pending keyword text
func (m *Model) Buffer() string {
	return m.inputHandler.Buffer()
}

func (m *Model) ctx() *input.ModelContext {
	return &input.ModelContext{State: m.state, Coordinator: m.coordinator}
}

// subscribe keeps the input handler and cursors in step with the services
func (m *Model) subscribe() {
	m.uiBus.Subscribe(events.TypeOf(keywords.TagAddedEvent{}), func(e interface{}) {
		ev := e.(keywords.TagAddedEvent)
		m.inputHandler.ClearBuffer()
		m.state.TagCursor = ev.Total - 1
	})

	m.uiBus.Subscribe(events.TypeOf(keywords.TagRemovedEvent{}), func(e interface{}) {
		ev := e.(keywords.TagRemovedEvent)
		m.state.ClampTagCursor(ev.Total)
	})

	m.uiBus.Subscribe(events.TypeOf(keywords.TagsClearedEvent{}), func(e interface{}) {
		m.state.TagCursor = 0
	})

	m.uiBus.Subscribe(events.TypeOf(pagination.PageChangedEvent{}), func(e interface{}) {
		m.state.JobCursor = 0
	})

	m.uiBus.Subscribe(events.TypeOf(dialog.DialogOpenedEvent{}), func(e interface{}) {
		m.inputHandler.ChangeMode(inputtypes.ModeDialog, m.ctx())
	})

	m.uiBus.Subscribe(events.TypeOf(dialog.DialogClosedEvent{}), func(e interface{}) {
		if m.coordinator.Mode() == domain.ModeResults {
			m.inputHandler.ChangeMode(inputtypes.ModeResults, m.ctx())
		}
	})

	m.uiBus.Subscribe(events.TypeOf(coordinator.ModeChangedEvent{}), func(e interface{}) {
		ev := e.(coordinator.ModeChangedEvent)
		switch ev.NewMode {
		case domain.ModeResults:
			m.state.JobCursor = 0
			m.inputHandler.ChangeMode(inputtypes.ModeResults, m.ctx())
		case domain.ModeForm:
			m.state.JobCursor = 0
			m.state.TagCursor = 0
			m.inputHandler.Reset(m.ctx())
		}
	})

	m.uiBus.Subscribe(events.TypeOf(dialog.JobAppliedEvent{}), func(e interface{}) {
		ev := e.(dialog.JobAppliedEvent)
		if m.bus != nil {
			m.bus.Publish(eventbus.JobAppliedEvent{Job: ev.Job})
		}
	})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// The help popup is modal
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "?", "f1", "esc", "q":
				m.state.ShowHelp = false
			case "v":
				return m, m.showInPager(m.helpRender.RenderHelpContent())
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.ctx())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		if !m.coordinator.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("ui: pager failed: %v", msg.err)
			return m, m.flash(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	result, ok := domain.ResultFromEvent(event)
	if !ok {
		return nil
	}
	if !m.coordinator.Resolve(result) {
		return nil
	}
	if result.Err != nil {
		// The error itself is rendered from coordinator state
		return nil
	}
	return m.flash(fmt.Sprintf("Found %d jobs", len(result.Jobs)), false)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.AddKeywordAction:
		// A full list leaves the buffer untouched; TagAdded clears it on success
		m.coordinator.Keywords.Add(a.Text)

	case inputtypes.InsertTextAction:
		m.inputHandler.InsertText(a.Text)

	case inputtypes.CommitBufferAction:
		buf := m.inputHandler.Buffer()
		if !m.coordinator.Keywords.WouldAdd(buf) {
			m.inputHandler.InsertText(inputtypes.KeywordSeparator)
			break
		}
		m.coordinator.Keywords.Add(buf)

	case inputtypes.RemoveKeywordAction:
		if err := m.coordinator.Keywords.Remove(a.Index); err != nil {
			log.Printf("ui: %v", err)
		}

	case inputtypes.MoveTagCursorAction:
		m.state.TagCursor += a.Delta
		m.state.ClampTagCursor(m.coordinator.Keywords.Len())

	case inputtypes.SelectCountryAction:
		code := ""
		if a.Index >= 0 && a.Index < len(domain.Countries) {
			code = domain.Countries[a.Index].Code
		}
		if err := m.coordinator.SetLocation(code); err != nil {
			return m.flash(err.Error(), true)
		}

	case inputtypes.SubmitSearchAction:
		return m.submitSearch()

	case inputtypes.ResetAction:
		m.coordinator.Reset()
		m.state.ClearStatus()

	case inputtypes.NavigateAction:
		count := len(m.coordinator.VisibleJobs())
		switch a.Direction {
		case "up":
			m.state.MoveJobCursor(-1, count)
		case "down":
			m.state.MoveJobCursor(1, count)
		case "home":
			m.state.JobCursor = 0
		case "end":
			m.state.JobCursor = count - 1
			m.state.ClampJobCursor(count)
		}

	case inputtypes.SetPageAction:
		m.coordinator.SetPage(a.Page)

	case inputtypes.OpenJobAction:
		if err := m.coordinator.OpenVisible(a.Index); err != nil {
			return m.flash(err.Error(), true)
		}

	case inputtypes.ApplyAction:
		return m.apply()

	case inputtypes.CloseDialogAction:
		m.coordinator.Dialog.Close()

	case inputtypes.ViewDescriptionAction:
		if job, ok := m.coordinator.Dialog.Selected(); ok {
			return m.showInPager(JobDocument(job))
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) submitSearch() tea.Cmd {
	req, err := m.coordinator.BeginSearch()
	if err != nil {
		if errors.Is(err, coordinator.ErrSearchInFlight) {
			return nil
		}
		return m.flash(err.Error(), true)
	}

	m.state.ClearStatus()
	if m.bus != nil {
		m.bus.Publish(eventbus.SearchRequestedEvent{Request: req})
	}
	return m.spinner.Tick
}

func (m *Model) apply() tea.Cmd {
	job, ok := m.coordinator.Dialog.Selected()
	if !ok {
		return nil
	}
	if err := m.coordinator.Dialog.Apply(); err != nil {
		log.Printf("ui: %v", err)
		return m.flash(err.Error(), true)
	}
	return m.flash(fmt.Sprintf("Opened %s", job.URL), false)
}

// flash shows a status line that clears itself after a while
func (m *Model) flash(msg string, isError bool) tea.Cmd {
	if isError {
		m.state.SetError(msg)
	} else {
		m.state.SetStatus(msg)
	}
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// showInPager returns a command that shows content in the pager
func (m *Model) showInPager(content string) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		if pager == nil {
			return pagerMsg{err: errors.New("no pager configured")}
		}
		return pagerMsg{err: pager.ShowInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	mode := m.inputHandler.CurrentMode()

	vs := views.ViewState{
		Width:  m.state.Width,
		Height: m.state.Height,
		Mode:   m.coordinator.Mode(),

		Keywords:      m.coordinator.Keywords.Tags(),
		TagCursor:     m.state.TagCursor,
		KeywordsFocus: mode == inputtypes.ModeKeywords,
		KeywordsFull:  m.coordinator.Keywords.Full(),
		KeywordInput:  m.inputHandler.TextInput().View(),
		Location:      m.coordinator.Location(),
		LocationFocus: mode == inputtypes.ModeLocation,
		InFlight:      m.coordinator.InFlight(),
		Spinner:       m.spinner.View(),
		SearchErr:     m.coordinator.Err(),

		Jobs:      m.coordinator.VisibleJobs(),
		TotalJobs: m.coordinator.JobCount(),
		JobCursor: m.state.JobCursor,
		Page:      m.coordinator.CurrentPage(),
		PageCount: m.coordinator.PageCount(),

		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		ShowHelp:      m.state.ShowHelp,
	}

	if job, ok := m.coordinator.Dialog.Selected(); ok {
		vs.Selected = &job
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRender.RenderHelpContent()
	}
	if m.config.UISettings.ShowHelpBar {
		vs.HelpBar = m.help.View(modeKeys[mode])
	}

	return m.renderer.Render(vs)
}

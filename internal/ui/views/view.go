package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobs4u/internal/domain"
)

// Screen copy
const (
	AppTitle       = "Jobs4U.io"
	AppSubtitle    = "Find jobs that fit you, globally!"
	NoJobsMessage  = "No jobs found. Please try different keywords or location."
	SearchingLabel = "Searching..."
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Mode   domain.Mode

	// Form
	Keywords      []string
	TagCursor     int
	KeywordsFocus bool
	KeywordsFull  bool
	KeywordInput  string // rendered text input
	Location      string // country code, empty when none is chosen
	LocationFocus bool
	InFlight      bool
	Spinner       string
	SearchErr     error

	// Results
	Jobs      []domain.Job // jobs on the current page
	TotalJobs int
	JobCursor int
	Page      int
	PageCount int

	// Dialog
	Selected *domain.Job

	// Chrome
	StatusMessage string
	StatusIsError bool
	HelpBar       string
	ShowHelp      bool
	HelpContent   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	formRender    *FormRenderer
	resultsRender *ResultsRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		formRender:    NewFormRenderer(styles),
		resultsRender: NewResultsRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	switch state.Mode {
	case domain.ModeResults:
		content.WriteString(r.resultsRender.Render(state))
	default:
		content.WriteString(r.formRender.Render(state))
	}

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n\n")
		content.WriteString(status)
	}

	// Push the help bar to the bottom
	if state.HelpBar != "" && !state.ShowHelp && state.Selected == nil {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2 // Main padding
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpBar))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// The dialog wins over help; both are modal
	if state.Selected != nil {
		dialog := r.popupRender.RenderJobDialog(*state.Selected, state.Width)
		return r.popupRender.RenderPopupOverlay(finalContent, dialog, state.Height, state.Width, r.styles.Popup)
	}
	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.Popup)
	}

	return finalContent
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render(AppTitle)

	right := ""
	if state.InFlight {
		right = r.styles.Dim.Render(fmt.Sprintf("%s %s", state.Spinner, SearchingLabel))
	} else if state.Mode == domain.ModeResults {
		right = r.styles.Dim.Render(fmt.Sprintf("%d jobs", state.TotalJobs))
	}

	titleLine := logo
	if right != "" {
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
		if padding < 2 {
			padding = 2
		}
		titleLine = logo + strings.Repeat(" ", padding) + right
	}

	return titleLine + "\n" + r.styles.Subtitle.Render(AppSubtitle)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.SearchErr != nil && !state.InFlight {
		return r.styles.StatusError.Render(fmt.Sprintf("Search failed: %v", state.SearchErr))
	}
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.StatusSuccess.Render(state.StatusMessage)
}

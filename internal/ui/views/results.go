package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/services/pagination"
)

const cardColumns = 2

// ResultsRenderer renders the result grid and the pager underneath it
type ResultsRenderer struct {
	styles *Styles
}

// NewResultsRenderer creates a new results renderer
func NewResultsRenderer(styles *Styles) *ResultsRenderer {
	return &ResultsRenderer{styles: styles}
}

// Render draws the visible page of jobs as cards
func (r *ResultsRenderer) Render(state ViewState) string {
	newSearch := r.styles.Button.Render("n New Search")

	if state.TotalJobs == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Dim.Render(NoJobsMessage),
			"",
			newSearch,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderGrid(state),
		"",
		r.renderPager(state),
		"",
		newSearch,
	)
}

func (r *ResultsRenderer) renderGrid(state ViewState) string {
	if !pagination.InRange(state.Page, state.TotalJobs, pagination.PageSize) || len(state.Jobs) == 0 {
		return r.styles.Dim.Render(NoJobsMessage)
	}

	cardWidth := cardWidthFor(state.Width)
	var rows []string
	for start := 0; start < len(state.Jobs); start += cardColumns {
		end := start + cardColumns
		if end > len(state.Jobs) {
			end = len(state.Jobs)
		}
		cards := make([]string, 0, cardColumns)
		for i := start; i < end; i++ {
			cards = append(cards, r.renderCard(state.Jobs[i], i == state.JobCursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *ResultsRenderer) renderCard(job domain.Job, selected bool, width int) string {
	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}

	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	lines := []string{
		r.styles.CardTitle.Render(runewidth.Truncate(job.Title, inner, "…")),
		r.styles.Company.Render(runewidth.Truncate(job.Company, inner, "…")),
		r.styles.Location.Render(runewidth.Truncate(job.Location, inner, "…")),
	}
	if desc := Summarize(job.Description, inner*2); desc != "" {
		lines = append(lines, r.styles.Dim.Render(lipgloss.NewStyle().Width(inner).Render(desc)))
	}

	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *ResultsRenderer) renderPager(state ViewState) string {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = pagination.PageSize
	p.ActiveDot = r.styles.Highlight.Render("•")
	p.InactiveDot = r.styles.Dim.Render("•")
	p.SetTotalPages(state.TotalJobs)
	p.Page = state.Page - 1

	return fmt.Sprintf("%s  %s", p.View(), r.styles.Dim.Render(fmt.Sprintf("page %d/%d", state.Page, state.PageCount)))
}

// Summarize collapses whitespace and truncates text to width cells
func Summarize(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	return runewidth.Truncate(flat, width, "…")
}

func cardWidthFor(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	w := (termWidth - 6) / cardColumns
	if w > 50 {
		w = 50
	}
	if w < 20 {
		w = 20
	}
	return w
}

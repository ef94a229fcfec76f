package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/services/keywords"
)

// CountryPlaceholder is shown while no country is chosen
const CountryPlaceholder = "Select Country"

// FormRenderer renders the search form
type FormRenderer struct {
	styles *Styles
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(styles *Styles) *FormRenderer {
	return &FormRenderer{styles: styles}
}

// Render draws the keyword field, the country picker and the search button
func (f *FormRenderer) Render(state ViewState) string {
	fieldWidth := formWidth(state.Width)

	keywordLabel := fmt.Sprintf("Keywords (%d/%d)", len(state.Keywords), keywords.MaxTags)
	keywordField := f.fieldStyle(state.KeywordsFocus).Width(fieldWidth).Render(f.renderKeywords(state))

	locationField := f.fieldStyle(state.LocationFocus).Width(fieldWidth).Render(f.renderLocation(state))

	button := f.styles.Button.Render("Search")
	if state.InFlight {
		button = f.styles.Button.Render(fmt.Sprintf("%s %s", state.Spinner, SearchingLabel))
	} else if state.LocationFocus {
		button = f.styles.ButtonActive.Render("Search")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		f.styles.Label.Render(keywordLabel),
		keywordField,
		"",
		f.styles.Label.Render("Location"),
		locationField,
		"",
		button,
	)
}

func (f *FormRenderer) fieldStyle(focused bool) lipgloss.Style {
	if focused {
		return f.styles.FieldFocused
	}
	return f.styles.Field
}

func (f *FormRenderer) renderKeywords(state ViewState) string {
	parts := make([]string, 0, len(state.Keywords)+1)
	for i, tag := range state.Keywords {
		style := f.styles.Tag
		if state.KeywordsFocus && i == state.TagCursor && strings.TrimSpace(state.KeywordInput) == "" {
			style = f.styles.TagActive
		}
		parts = append(parts, style.Render(tag+" ×"))
	}

	if state.KeywordsFull {
		parts = append(parts, f.styles.Dim.Render("(limit reached)"))
	} else {
		parts = append(parts, state.KeywordInput)
	}
	return strings.Join(parts, " ")
}

func (f *FormRenderer) renderLocation(state ViewState) string {
	country, ok := domain.LookupCountry(state.Location)
	label := f.styles.Dim.Render(CountryPlaceholder)
	if ok {
		label = country.Label()
	}
	if state.LocationFocus {
		return fmt.Sprintf("‹ %s ›", label)
	}
	return label
}

func formWidth(termWidth int) int {
	if termWidth <= 0 {
		return 60
	}
	w := termWidth - 10
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	return w
}

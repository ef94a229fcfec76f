package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	inputtypes "jobs4u/internal/ui/input/types"
)

// keyMap is the short help shown at the bottom for one input mode
type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding {
	return k
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

func binding(keys []string, helpKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

var modeKeys = map[inputtypes.Mode]keyMap{
	inputtypes.ModeKeywords: {
		binding([]string{"enter", ","}, "enter/,", "add keyword"),
		binding([]string{"enter"}, "enter (empty)", "search"),
		binding([]string{"backspace"}, "⌫", "remove tag"),
		binding([]string{"tab"}, "tab", "country"),
		binding([]string{"f1"}, "f1", "help"),
	},
	inputtypes.ModeLocation: {
		binding([]string{"left", "right"}, "←/→", "choose country"),
		binding([]string{"enter"}, "enter", "search"),
		binding([]string{"tab"}, "tab", "keywords"),
		binding([]string{"?"}, "?", "help"),
		binding([]string{"q"}, "q", "quit"),
	},
	inputtypes.ModeResults: {
		binding([]string{"up", "down"}, "↑/↓", "move"),
		binding([]string{"left", "right"}, "←/→", "page"),
		binding([]string{"enter"}, "enter", "details"),
		binding([]string{"n"}, "n", "new search"),
		binding([]string{"?"}, "?", "help"),
		binding([]string{"q"}, "q", "quit"),
	},
	inputtypes.ModeDialog: {
		binding([]string{"a", "enter"}, "a", "apply"),
		binding([]string{"v"}, "v", "full description"),
		binding([]string{"esc"}, "esc", "close"),
	},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpSection struct {
	title string
	rows  [][2]string
}

var helpSections = []helpSection{
	{"Keywords", [][2]string{
		{"enter / ,", "Turn the typed text into a tag (up to 5)"},
		{"enter", "Search, when nothing is typed"},
		{"⌫ / del", "Remove the highlighted tag"},
		{"←/→", "Highlight another tag"},
		{"tab", "Go to the country picker"},
	}},
	{"Country", [][2]string{
		{"←/→, h/l", "Choose the country"},
		{"x", "Clear the country"},
		{"enter", "Search"},
		{"tab / esc", "Back to keywords"},
	}},
	{"Results", [][2]string{
		{"↑/↓, j/k", "Move between jobs"},
		{"←/→, h/l", "Previous/next page"},
		{"1-9", "Jump to page"},
		{"enter", "Show job details"},
		{"n", "New search"},
	}},
	{"Job details", [][2]string{
		{"a / enter", "Apply (opens the job page)"},
		{"v", "Read the full description"},
		{"esc / c", "Close"},
	}},
	{"Other", [][2]string{
		{"? / f1", "Toggle this help"},
		{"v", "Open this help in a pager"},
		{"q / ctrl+c", "Quit"},
	}},
}

// RenderHelpContent renders the full help for the popup and the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Jobs4U Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, row := range section.rows {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(row[0]), descStyle.Render(row[1])))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

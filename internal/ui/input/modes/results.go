package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/ui/input/types"
)

// ResultsMode handles browsing result pages
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "home", "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "left", "h", "pgup":
		if ctx.CurrentPage() > 1 {
			return []types.Action{types.SetPageAction{Page: ctx.CurrentPage() - 1}}, true
		}
		return nil, true
	case "right", "l", "pgdown":
		if ctx.CurrentPage() < ctx.PageCount() {
			return []types.Action{types.SetPageAction{Page: ctx.CurrentPage() + 1}}, true
		}
		return nil, true
	case "enter", " ":
		if ctx.VisibleJobCount() > 0 {
			return []types.Action{types.OpenJobAction{Index: ctx.JobCursor()}}, true
		}
		return nil, true
	case "n":
		return []types.Action{types.ResetAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Digits jump straight to a page offered by the pager
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		page := int(key[0] - '0')
		if page <= ctx.PageCount() {
			return []types.Action{types.SetPageAction{Page: page}}, true
		}
		return nil, true
	}

	return nil, false
}

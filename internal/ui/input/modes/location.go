package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/input/types"
)

// LocationMode handles the country picker on the search form
type LocationMode struct{}

func NewLocationMode() *LocationMode {
	return &LocationMode{}
}

func (m *LocationMode) Name() string {
	return "location"
}

func (m *LocationMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LocationMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// step moves through "no country" (-1) and the country table, wrapping
func step(index, delta int) int {
	n := len(domain.Countries) + 1
	pos := (index + 1 + delta) % n
	if pos < 0 {
		pos += n
	}
	return pos - 1
}

func (m *LocationMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "tab", "shift+tab", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeKeywords}}, true
	case "left", "h", "up", "k":
		return []types.Action{types.SelectCountryAction{Index: step(ctx.CountryIndex(), -1)}}, true
	case "right", "l", "down", "j":
		return []types.Action{types.SelectCountryAction{Index: step(ctx.CountryIndex(), 1)}}, true
	case "backspace", "delete", "x":
		return []types.Action{types.SelectCountryAction{Index: -1}}, true
	case "enter":
		return []types.Action{types.SubmitSearchAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

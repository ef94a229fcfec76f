package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/ui/input/types"
)

// DialogMode handles the job detail dialog
type DialogMode struct{}

func NewDialogMode() *DialogMode {
	return &DialogMode{}
}

func (m *DialogMode) Name() string {
	return "dialog"
}

func (m *DialogMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "a", "enter":
		return []types.Action{types.ApplyAction{}}, true
	case "esc", "c", "q":
		return []types.Action{types.CloseDialogAction{}}, true
	case "v":
		return []types.Action{types.ViewDescriptionAction{}}, true
	}
	// The dialog is modal: swallow everything else
	return nil, true
}

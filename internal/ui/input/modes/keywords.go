package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/ui/input/types"
)

// CommitKey and SeparatorKey both turn the pending buffer into a tag
const (
	CommitKey    = "enter"
	SeparatorKey = types.KeywordSeparator
)

// KeywordsMode handles typing keyword tags. Keys it does not consume are
// forwarded to the shared text input by the handler.
type KeywordsMode struct {
	textInput *textinput.Model
}

func NewKeywordsMode(ti *textinput.Model) *KeywordsMode {
	return &KeywordsMode{textInput: ti}
}

func (m *KeywordsMode) Name() string {
	return "keywords"
}

func (m *KeywordsMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		m.textInput.Focus()
	}
	return nil
}

// Exit keeps the buffer so tabbing to the country picker and back does not
// lose a half-typed keyword
func (m *KeywordsMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *KeywordsMode) buffer() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}

// splitRunes breaks a burst of typed runes at each separator. Pasted text
// is left to the text input.
func splitRunes(msg tea.KeyMsg) []types.Action {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) < 2 {
		return nil
	}
	text := string(msg.Runes)
	if !strings.Contains(text, types.KeywordSeparator) {
		return nil
	}

	var actions []types.Action
	for i, segment := range strings.Split(text, types.KeywordSeparator) {
		if i > 0 {
			actions = append(actions, types.CommitBufferAction{})
		}
		if segment != "" {
			actions = append(actions, types.InsertTextAction{Text: segment})
		}
	}
	return actions
}

func (m *KeywordsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions := splitRunes(msg); actions != nil {
		return actions, true
	}

	value := m.buffer()
	pending := ctx.WouldAddKeyword(value)

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case CommitKey, SeparatorKey:
		// The delimiter is swallowed whenever a tag is or would be added,
		// even if the list is already full
		if pending {
			return []types.Action{types.AddKeywordAction{Text: value}}, true
		}
		if msg.String() == CommitKey {
			return []types.Action{types.SubmitSearchAction{}}, true
		}
		// A separator with nothing pending is typed literally
		return nil, false

	case "tab", "shift+tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLocation}}, true

	case "f1":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Tag editing keys only apply while the buffer is empty
	if value != "" || ctx.KeywordCount() == 0 {
		return nil, false
	}

	switch msg.String() {
	case "backspace", "delete", "ctrl+d":
		return []types.Action{types.RemoveKeywordAction{Index: ctx.TagCursor()}}, true
	case "left":
		return []types.Action{types.MoveTagCursorAction{Delta: -1}}, true
	case "right":
		return []types.Action{types.MoveTagCursorAction{Delta: 1}}, true
	}

	return nil, false
}

package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobs4u/internal/ui/input/modes"
	"jobs4u/internal/ui/input/types"
)

// KeywordPlaceholder is shown while no tags exist
const KeywordPlaceholder = "Enter keywords (e.g., Javascript, Python)"

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // keyword buffer
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = KeywordPlaceholder
	ti.CharLimit = 64
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeKeywords,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeKeywords] = modes.NewKeywordsMode(h.textInput)
	h.modes[types.ModeLocation] = modes.NewLocationMode()
	h.modes[types.ModeResults] = modes.NewResultsMode()
	h.modes[types.ModeDialog] = modes.NewDialogMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in a text mode are typing
	if !consumed && h.isTextMode(h.currentMode) {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// ChangeMode switches mode from outside a key press, e.g. when a search
// answer arrives
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeKeywords
	}
	return h.currentMode
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeKeywords
}

// Buffer returns the pending keyword text
func (h *Handler) Buffer() string {
	return h.textInput.Value()
}

// ClearBuffer empties the pending keyword text
func (h *Handler) ClearBuffer() {
	h.textInput.Reset()
}

// InsertText types text at the cursor, honouring the character limit
func (h *Handler) InsertText(text string) {
	value := []rune(h.textInput.Value())
	pos := h.textInput.Position()
	if pos > len(value) {
		pos = len(value)
	}
	inserted := []rune(text)
	next := make([]rune, 0, len(value)+len(inserted))
	next = append(next, value[:pos]...)
	next = append(next, inserted...)
	next = append(next, value[pos:]...)
	h.textInput.SetValue(string(next))
	h.textInput.SetCursor(pos + len(inserted))
}

// TextInput returns the keyword input for rendering
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Reset returns to the keyword field with an empty buffer
func (h *Handler) Reset(ctx types.Context) {
	h.ChangeMode(types.ModeKeywords, ctx)
	h.textInput.Reset()
	h.textInput.Focus()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobs4u/internal/domain"
	"jobs4u/internal/ui/input/types"
)

type fakeContext struct {
	keywords  int
	tagCursor int
	country   int
	visible   int
	jobCursor int
	page      int
	pages     int
}

func (c fakeContext) KeywordCount() int { return c.keywords }
func (c fakeContext) TagCursor() int    { return c.tagCursor }
func (c fakeContext) WouldAddKeyword(token string) bool {
	return strings.TrimSpace(token) != ""
}
func (c fakeContext) CountryIndex() int    { return c.country }
func (c fakeContext) VisibleJobCount() int { return c.visible }
func (c fakeContext) JobCursor() int       { return c.jobCursor }
func (c fakeContext) CurrentPage() int     { return c.page }
func (c fakeContext) PageCount() int       { return c.pages }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(h *Handler, ctx types.Context, text string) {
	for _, r := range text {
		h.HandleKey(runes(string(r)), ctx)
	}
}

func TestTypingFillsBuffer(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(runes("G"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "G"}, actions[0])

	typeText(h, ctx, "o")
	assert.Equal(t, "Go", h.Buffer())
}

func TestRuneBurstSplitsAtSeparator(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(runes("Go,Rust"), ctx)
	assert.Equal(t, []types.Action{
		types.InsertTextAction{Text: "Go"},
		types.CommitBufferAction{},
		types.InsertTextAction{Text: "Rust"},
	}, actions)
	assert.Empty(t, h.Buffer(), "the burst is applied by the model, not typed")

	actions, _ = h.HandleKey(runes(",,x,"), ctx)
	assert.Equal(t, []types.Action{
		types.CommitBufferAction{},
		types.CommitBufferAction{},
		types.InsertTextAction{Text: "x"},
		types.CommitBufferAction{},
	}, actions)
}

func TestPasteKeepsSeparators(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	msg := runes("Go,Rust")
	msg.Paste = true
	h.HandleKey(msg, ctx)
	assert.Equal(t, "Go,Rust", h.Buffer())
}

func TestInsertTextAtCursor(t *testing.T) {
	h := New()
	ctx := fakeContext{}
	typeText(h, ctx, "Gang")
	h.HandleKey(key(tea.KeyLeft), ctx)
	h.HandleKey(key(tea.KeyLeft), ctx)

	h.InsertText("oL")
	assert.Equal(t, "GaoLng", h.Buffer())
}

func TestDelimitersCommitAndAreSwallowed(t *testing.T) {
	for name, delimiter := range map[string]tea.KeyMsg{
		"separator": runes(","),
		"commit":    key(tea.KeyEnter),
	} {
		t.Run(name, func(t *testing.T) {
			h := New()
			ctx := fakeContext{}
			typeText(h, ctx, " Python ")

			actions, _ := h.HandleKey(delimiter, ctx)
			assert.Equal(t, []types.Action{types.AddKeywordAction{Text: " Python "}}, actions)
			assert.Equal(t, " Python ", h.Buffer(), "the delimiter never reaches the buffer")
		})
	}
}

func TestDelimiterSwallowedEvenWhenFull(t *testing.T) {
	h := New()
	ctx := fakeContext{keywords: 5}
	typeText(h, ctx, "Rust")

	actions, _ := h.HandleKey(runes(","), ctx)
	assert.Equal(t, []types.Action{types.AddKeywordAction{Text: "Rust"}}, actions)
	assert.Equal(t, "Rust", h.Buffer())
}

func TestSeparatorWithBlankBufferIsTyped(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	actions, _ := h.HandleKey(runes(","), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: ","}}, actions)
	assert.Equal(t, ",", h.Buffer())
}

func TestEnterWithEmptyBufferSubmits(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(key(tea.KeyEnter), fakeContext{keywords: 2})
	assert.Equal(t, []types.Action{types.SubmitSearchAction{}}, actions)
}

func TestTagEditingKeysNeedEmptyBuffer(t *testing.T) {
	h := New()
	ctx := fakeContext{keywords: 3, tagCursor: 1}

	actions, _ := h.HandleKey(key(tea.KeyBackspace), ctx)
	assert.Equal(t, []types.Action{types.RemoveKeywordAction{Index: 1}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyLeft), ctx)
	assert.Equal(t, []types.Action{types.MoveTagCursorAction{Delta: -1}}, actions)

	typeText(h, ctx, "ab")
	actions, _ = h.HandleKey(key(tea.KeyBackspace), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "a"}}, actions)

	// No tags: backspace on empty buffer is just typing
	h.ClearBuffer()
	actions, _ = h.HandleKey(key(tea.KeyBackspace), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: ""}}, actions)
}

func TestTabSwitchesToLocationAndKeepsBuffer(t *testing.T) {
	h := New()
	ctx := fakeContext{country: -1}
	typeText(h, ctx, "Go")

	h.HandleKey(key(tea.KeyTab), ctx)
	assert.Equal(t, types.ModeLocation, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())

	actions, _ := h.HandleKey(key(tea.KeyRight), ctx)
	assert.Equal(t, []types.Action{types.SelectCountryAction{Index: 0}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyLeft), ctx)
	assert.Equal(t, []types.Action{types.SelectCountryAction{Index: len(domain.Countries) - 1}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SubmitSearchAction{}}, actions)

	h.HandleKey(key(tea.KeyTab), ctx)
	assert.Equal(t, types.ModeKeywords, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
	assert.Equal(t, "Go", h.Buffer())
}

func TestResultsKeys(t *testing.T) {
	h := New()
	ctx := fakeContext{visible: 4, jobCursor: 2, page: 1, pages: 2}
	h.ChangeMode(types.ModeResults, ctx)

	actions, _ := h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.OpenJobAction{Index: 2}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyRight), ctx)
	assert.Equal(t, []types.Action{types.SetPageAction{Page: 2}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyLeft), ctx)
	assert.Empty(t, actions, "no page before the first")

	actions, _ = h.HandleKey(runes("2"), ctx)
	assert.Equal(t, []types.Action{types.SetPageAction{Page: 2}}, actions)

	actions, _ = h.HandleKey(runes("7"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(runes("n"), ctx)
	assert.Equal(t, []types.Action{types.ResetAction{}}, actions)

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)
}

func TestResultsOpenNeedsVisibleJobs(t *testing.T) {
	h := New()
	ctx := fakeContext{page: 3, pages: 2}
	h.ChangeMode(types.ModeResults, ctx)

	actions, _ := h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Empty(t, actions)
}

func TestDialogKeysAreModal(t *testing.T) {
	h := New()
	ctx := fakeContext{}
	h.ChangeMode(types.ModeDialog, ctx)

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.ApplyAction{}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.CloseDialogAction{}}, actions)

	actions, _ = h.HandleKey(runes("v"), ctx)
	assert.Equal(t, []types.Action{types.ViewDescriptionAction{}}, actions)

	actions, _ = h.HandleKey(runes("n"), ctx)
	assert.Empty(t, actions, "reset is not reachable while the dialog is open")
}

func TestCtrlCQuitsEverywhere(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeKeywords, types.ModeLocation, types.ModeResults, types.ModeDialog} {
		h := New()
		h.ChangeMode(mode, fakeContext{})
		actions, _ := h.HandleKey(key(tea.KeyCtrlC), fakeContext{})
		assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions, mode.String())
	}
}

func TestResetReturnsToKeywords(t *testing.T) {
	h := New()
	ctx := fakeContext{}
	typeText(h, ctx, "abc")
	h.ChangeMode(types.ModeResults, ctx)

	h.Reset(ctx)
	assert.Equal(t, types.ModeKeywords, h.CurrentMode())
	assert.Empty(t, h.Buffer())
	assert.True(t, h.TextInput().Focused())
}

package types

// Keyword actions
type AddKeywordAction struct {
	Text string
}

func (a AddKeywordAction) Type() string { return "add_keyword" }

// CommitBufferAction adds the pending buffer as a tag, or types a literal
// separator when nothing is pending
type CommitBufferAction struct{}

func (a CommitBufferAction) Type() string { return "commit_buffer" }

type RemoveKeywordAction struct {
	Index int
}

func (a RemoveKeywordAction) Type() string { return "remove_keyword" }

type MoveTagCursorAction struct {
	Delta int
}

func (a MoveTagCursorAction) Type() string { return "move_tag_cursor" }

// Location actions
type SelectCountryAction struct {
	Index int // -1 clears the selection
}

func (a SelectCountryAction) Type() string { return "select_country" }

// Search actions
type SubmitSearchAction struct{}

func (a SubmitSearchAction) Type() string { return "submit_search" }

type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// InsertTextAction types text into the keyword buffer at the cursor
type InsertTextAction struct {
	Text string
}

func (a InsertTextAction) Type() string { return "insert_text" }

// Result navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SetPageAction struct {
	Page int
}

func (a SetPageAction) Type() string { return "set_page" }

type OpenJobAction struct {
	Index int // position on the current page
}

func (a OpenJobAction) Type() string { return "open_job" }

// Dialog actions
type ApplyAction struct{}

func (a ApplyAction) Type() string { return "apply" }

type CloseDialogAction struct{}

func (a CloseDialogAction) Type() string { return "close_dialog" }

type ViewDescriptionAction struct{}

func (a ViewDescriptionAction) Type() string { return "view_description" }

// General actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

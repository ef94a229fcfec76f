package state

// AppState holds UI-only state. Search state proper lives in the
// coordinator; this is cursor and chrome bookkeeping around it.
type AppState struct {
	TagCursor     int  // highlighted keyword tag, used by delete keys
	JobCursor     int  // highlighted job on the current page
	ShowHelp      bool // full help popup
	StatusMessage string
	StatusIsError bool
	Width         int
	Height        int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows an informational status line
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error status line
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus removes the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ClampTagCursor keeps the tag cursor on an existing tag, preferring the
// last one when tags are added
func (s *AppState) ClampTagCursor(count int) {
	s.TagCursor = clamp(s.TagCursor, count)
}

// ClampJobCursor keeps the job cursor on the visible page
func (s *AppState) ClampJobCursor(count int) {
	s.JobCursor = clamp(s.JobCursor, count)
}

// MoveJobCursor moves the job cursor by delta within count items
func (s *AppState) MoveJobCursor(delta, count int) {
	s.JobCursor = clamp(s.JobCursor+delta, count)
}

func clamp(v, count int) int {
	if count <= 0 || v < 0 {
		return 0
	}
	if v >= count {
		return count - 1
	}
	return v
}

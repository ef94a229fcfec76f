package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeKeywords Mode = iota // typing keyword tags on the search form
	ModeLocation             // choosing the country on the search form
	ModeResults              // browsing result pages
	ModeDialog               // job detail dialog is open
)

func (m Mode) String() string {
	switch m {
	case ModeKeywords:
		return "keywords"
	case ModeLocation:
		return "location"
	case ModeResults:
		return "results"
	case ModeDialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// KeywordSeparator splits typed text into keyword tags
const KeywordSeparator = ","

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	KeywordCount() int
	WouldAddKeyword(token string) bool
	TagCursor() int
	CountryIndex() int
	VisibleJobCount() int
	JobCursor() int
	CurrentPage() int
	PageCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

package pagination

// PageSize is the fixed number of jobs shown per page
const PageSize = 4

// State holds pagination state. Page is 1-based and deliberately
// not clamped to the data.
type State struct {
	Page int
}

// Event types
type PageChangedEvent struct {
	OldPage int
	NewPage int
}

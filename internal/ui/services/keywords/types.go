package keywords

// MaxTags is how many keyword tags a search may carry
const MaxTags = 5

// State holds the keyword tags in entry order
type State struct {
	Tags []string
}

// Event types
type TagAddedEvent struct {
	Tag   string
	Index int
	Total int
}

type TagRemovedEvent struct {
	Tag   string
	Index int
	Total int
}

type TagsClearedEvent struct{}

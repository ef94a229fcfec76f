package input

import (
	"jobs4u/internal/domain"
	"jobs4u/internal/ui/coordinator"
	"jobs4u/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.AppState
	Coordinator *coordinator.Coordinator
}

func (c *ModelContext) KeywordCount() int {
	return c.Coordinator.Keywords.Len()
}

func (c *ModelContext) WouldAddKeyword(token string) bool {
	return c.Coordinator.Keywords.WouldAdd(token)
}

func (c *ModelContext) TagCursor() int {
	return c.State.TagCursor
}

func (c *ModelContext) CountryIndex() int {
	return domain.CountryIndex(c.Coordinator.Location())
}

func (c *ModelContext) VisibleJobCount() int {
	return len(c.Coordinator.VisibleJobs())
}

func (c *ModelContext) JobCursor() int {
	return c.State.JobCursor
}

func (c *ModelContext) CurrentPage() int {
	return c.Coordinator.CurrentPage()
}

func (c *ModelContext) PageCount() int {
	return c.Coordinator.PageCount()
}

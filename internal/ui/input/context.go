package input

import (
	"cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/navigation"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	CurrentPage navigation.Page
	Focused     types.Field
	Results     int
}

func (c ModelContext) Page() navigation.Page {
	return c.CurrentPage
}

func (c ModelContext) FocusedField() types.Field {
	return c.Focused
}

func (c ModelContext) ResultCount() int {
	return c.Results
}

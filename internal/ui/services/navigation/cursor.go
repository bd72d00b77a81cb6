package navigation

import (
	"cityscout/internal/ui/services/events"

	tea "github.com/charmbracelet/bubbletea"
)

// reserved rows around the results list: header, summary, filter form, help
const chromeHeight = 12

// Cursor tracks the highlighted card in the results list and keeps it
// inside the viewport.
type Cursor struct {
	state *CursorState
	bus   events.Publisher
}

// NewCursor creates a cursor over an empty list
func NewCursor(bus events.Publisher) *Cursor {
	if bus == nil {
		bus = events.NullBus{}
	}
	return &Cursor{
		state: &CursorState{ViewportHeight: 5},
		bus:   bus,
	}
}

// Index returns the cursor position
func (c *Cursor) Index() int {
	return c.state.Cursor
}

// ViewportOffset returns the first visible index
func (c *Cursor) ViewportOffset() int {
	return c.state.ViewportOffset
}

// ViewportHeight returns how many items fit on screen
func (c *Cursor) ViewportHeight() int {
	return c.state.ViewportHeight
}

// SetViewportHeight derives the visible item count from the terminal height
// and the number of rows each item takes.
func (c *Cursor) SetViewportHeight(height, rowsPerItem int) tea.Cmd {
	if rowsPerItem < 1 {
		rowsPerItem = 1
	}
	c.state.ViewportHeight = max((height-chromeHeight)/rowsPerItem, 1)
	return c.ensureVisible()
}

// Reset points the cursor at the top of a list of count items
func (c *Cursor) Reset(count int) {
	c.state.Count = max(count, 0)
	c.state.Cursor = 0
	c.state.ViewportOffset = 0
}

// Navigate handles navigation in a direction
func (c *Cursor) Navigate(direction Direction) tea.Cmd {
	if c.state.Count == 0 {
		return nil
	}
	pageSize := max(c.state.ViewportHeight-1, 1)

	target := c.state.Cursor
	switch direction {
	case DirectionUp:
		target--
	case DirectionDown:
		target++
	case DirectionPageUp:
		target -= pageSize
	case DirectionPageDown:
		target += pageSize
	case DirectionHome:
		target = 0
	case DirectionEnd:
		target = c.state.Count - 1
	}
	return c.MoveToIndex(target)
}

// MoveToIndex moves the cursor to index, clamped to the list
func (c *Cursor) MoveToIndex(index int) tea.Cmd {
	old := c.state.Cursor
	c.state.Cursor = c.clampIndex(index)

	cmds := []tea.Cmd{c.ensureVisible()}
	if old != c.state.Cursor {
		cmds = append(cmds, c.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: c.state.Cursor}))
	}
	return tea.Batch(cmds...)
}

func (c *Cursor) clampIndex(index int) int {
	if index > c.state.Count-1 {
		index = c.state.Count - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (c *Cursor) ensureVisible() tea.Cmd {
	switch {
	case c.state.Cursor < c.state.ViewportOffset:
		c.state.ViewportOffset = c.state.Cursor
	case c.state.Cursor >= c.state.ViewportOffset+c.state.ViewportHeight:
		c.state.ViewportOffset = c.state.Cursor - c.state.ViewportHeight + 1
	default:
		return nil
	}
	return c.bus.Publish(ViewportChangedEvent{
		Offset: c.state.ViewportOffset,
		Height: c.state.ViewportHeight,
	})
}

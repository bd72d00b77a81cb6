package events

import tea "github.com/charmbracelet/bubbletea"

// Publisher is the publishing half of Bus
type Publisher interface {
	Publish(event any) tea.Cmd
}

// NullBus discards every event
type NullBus struct{}

func (NullBus) Publish(any) tea.Cmd { return nil }

// RowInput is the Row of a hit on a field's input line rather than a dropdown row
const RowInput = -1

// Hit locates a pointer position in the rendered layout. Owner is the id of
// the field under the pointer, empty when the pointer is over anything else.
type Hit struct {
	Owner string
	Row   int
}

// ClickEvent is a mouse press anywhere in the document
type ClickEvent struct {
	Hit
	X, Y int
}

// MotionEvent is pointer movement anywhere in the document
type MotionEvent struct {
	Hit
	X, Y int
}

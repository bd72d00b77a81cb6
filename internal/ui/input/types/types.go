package types

import (
	"cityscout/internal/ui/services/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode
type Mode int

const (
	// ModeForm edits the focused form field
	ModeForm Mode = iota
	// ModeList browses the results list
	ModeList
	// ModeConfirm answers the unknown-city banner
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeList:
		return "list"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Field identifies a search form field
type Field int

const (
	FieldNone Field = iota
	FieldCity
	FieldCategory
	FieldDate
)

// Fields lists the form fields in tab order
var Fields = []Field{FieldCity, FieldCategory, FieldDate}

// Context provides the state the modes need to interpret a key
type Context interface {
	Page() navigation.Page
	FocusedField() Field
	ResultCount() int
}

// ModeHandler interprets keys for one mode. consumed is false when the key
// should reach the focused field instead.
type ModeHandler interface {
	Name() string
	Enter(ctx Context) []Action
	Exit(ctx Context) []Action
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}

// Action is something the model should do in response to input
type Action interface {
	Type() string
}

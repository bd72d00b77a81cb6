package modes

import (
	"cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

// ListMode browses the results list
type ListMode struct{}

func NewListMode() *ListMode {
	return &ListMode{}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{Field: types.FieldNone}}
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "up", "k":
		return navigate(navigation.DirectionUp)
	case "down", "j":
		return navigate(navigation.DirectionDown)
	case "pgup", "ctrl+u":
		return navigate(navigation.DirectionPageUp)
	case "pgdown", "ctrl+d":
		return navigate(navigation.DirectionPageDown)
	case "home", "g":
		return navigate(navigation.DirectionHome)
	case "end", "G":
		return navigate(navigation.DirectionEnd)

	case "enter":
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenEventAction{}}, true
		}
		return nil, true

	case "esc", "backspace":
		return []types.Action{types.BackAction{}}, true

	case "tab", "/", "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true

	case "ctrl+f":
		return []types.Action{types.ApplyFiltersAction{}}, true
	case "ctrl+x", "x":
		return []types.Action{types.ClearFiltersAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, true
}

func navigate(d navigation.Direction) ([]types.Action, bool) {
	return []types.Action{types.NavigateAction{Direction: d}}, true
}

package modes

import (
	"cityscout/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmMode answers the "search anyway?" banner. The banner does not
// block: any other key dismisses it and is then handled by the form.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{Field: types.FieldNone}}
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.ConfirmAction{Accept: true},
			types.ChangeModeAction{Mode: types.ModeForm},
		}, true
	case "n", "N", "esc":
		return []types.Action{
			types.ConfirmAction{Accept: false},
			types.ChangeModeAction{Mode: types.ModeForm},
		}, true
	}

	return []types.Action{
		types.ConfirmAction{Accept: false},
		types.ChangeModeAction{Mode: types.ModeForm},
	}, false
}

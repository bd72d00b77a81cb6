package modes

import (
	"cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

// FormMode handles keys while a search form field has focus. Keys it does
// not consume are typed into the focused field.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	if ctx.FocusedField() == types.FieldNone {
		return []types.Action{types.FocusFieldAction{Field: types.FieldCity}}
	}
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	onResults := ctx.Page() == navigation.PageResults
	onCategory := ctx.FocusedField() == types.FieldCategory

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "tab":
		return []types.Action{types.CycleFieldAction{Delta: 1}}, true

	case "shift+tab":
		return []types.Action{types.CycleFieldAction{Delta: -1}}, true

	case "enter", "ctrl+f":
		if onResults {
			return []types.Action{types.ApplyFiltersAction{}}, true
		}
		return []types.Action{types.SubmitAction{}}, true

	case "ctrl+x":
		if onResults {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "esc":
		if onResults {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
		}
		return nil, true

	case "down":
		if onResults && ctx.FocusedField() == types.FieldDate && ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
		}
		return []types.Action{types.CycleFieldAction{Delta: 1}}, true

	case "up":
		return []types.Action{types.CycleFieldAction{Delta: -1}}, true

	case "left", "h":
		if onCategory {
			return []types.Action{types.CycleCategoryAction{Delta: -1}}, true
		}

	case "right", "l", " ":
		if onCategory {
			return []types.Action{types.CycleCategoryAction{Delta: 1}}, true
		}

	case "backspace", "delete":
		if onCategory {
			return []types.Action{types.ClearCategoryAction{}}, true
		}

	case "?":
		if onCategory {
			return []types.Action{types.ToggleHelpAction{}}, true
		}
	}

	// the category selector has no text to edit
	return nil, onCategory
}

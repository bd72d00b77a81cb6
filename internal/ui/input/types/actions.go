package types

import "cityscout/internal/ui/services/navigation"

// Navigation actions
type NavigateAction struct {
	Direction navigation.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Form actions
type FocusFieldAction struct {
	Field Field // FieldNone blurs every field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type CycleFieldAction struct {
	Delta int
}

func (a CycleFieldAction) Type() string { return "cycle_field" }

type CycleCategoryAction struct {
	Delta int
}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type ClearCategoryAction struct{}

func (a ClearCategoryAction) Type() string { return "clear_category" }

// SubmitAction submits the home search form
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type ApplyFiltersAction struct{}

func (a ApplyFiltersAction) Type() string { return "apply_filters" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// ConfirmAction answers the unknown-city banner
type ConfirmAction struct {
	Accept bool
}

func (a ConfirmAction) Type() string { return "confirm" }

// Results actions
type OpenEventAction struct{}

func (a OpenEventAction) Type() string { return "open_event" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

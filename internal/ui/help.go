package ui

import (
	"cityscout/internal/ui/autocomplete"
	inputtypes "cityscout/internal/ui/input/types"
	"cityscout/internal/ui/services/navigation"

	"github.com/charmbracelet/bubbles/key"
)

// Bindings shown in the help line. The input modes do the actual matching.
var (
	keyQuit     = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	keyQuitList = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keySubmit   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
	keyFields   = key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field"))
	keyCategory = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "category"))
	keyApply    = key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "apply filters"))
	keyClear    = key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear filters"))
	keyToList   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "results"))
	keyMove     = key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move"))
	keyPage     = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page"))
	keyOpen     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))
	keyEdit     = key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "edit filters"))
	keyBack     = key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back"))
	keyHelp     = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more"))
	keyYes      = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "search anyway"))
	keyNo       = key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel"))
)

// helpKeys selects the bindings that apply to the current screen
type helpKeys struct {
	mode     inputtypes.Mode
	page     navigation.Page
	dropdown *autocomplete.KeyMap // set while a dropdown is open
}

// ShortHelp implements help.KeyMap
func (h helpKeys) ShortHelp() []key.Binding {
	if h.dropdown != nil {
		return h.dropdown.ShortHelp()
	}

	switch h.mode {
	case inputtypes.ModeConfirm:
		return []key.Binding{keyYes, keyNo}
	case inputtypes.ModeList:
		return []key.Binding{keyMove, keyOpen, keyEdit, keyBack, keyQuitList}
	}

	if h.page == navigation.PageResults {
		return []key.Binding{keyFields, keyApply, keyClear, keyToList, keyQuit}
	}
	return []key.Binding{keyFields, keySubmit, keyCategory, keyQuit}
}

// FullHelp implements help.KeyMap
func (h helpKeys) FullHelp() [][]key.Binding {
	if h.dropdown != nil {
		return h.dropdown.FullHelp()
	}

	switch h.mode {
	case inputtypes.ModeConfirm:
		return [][]key.Binding{{keyYes, keyNo}}
	case inputtypes.ModeList:
		return [][]key.Binding{
			{keyMove, keyPage},
			{keyOpen, keyEdit, keyApply, keyClear},
			{keyBack, keyHelp, keyQuitList},
		}
	}

	columns := [][]key.Binding{{keyFields, keyCategory}}
	if h.page == navigation.PageResults {
		columns = append(columns, []key.Binding{keyApply, keyClear, keyToList})
	} else {
		columns = append(columns, []key.Binding{keySubmit})
	}
	return append(columns, []key.Binding{keyHelp, keyQuit})
}

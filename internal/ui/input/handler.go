package input

import (
	"cityscout/internal/ui/input/modes"
	"cityscout/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeForm,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeList] = modes.NewListMode()
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()

	return h
}

// HandleKey maps a key to actions. Mode changes requested by the mode are
// applied here and replaced by the enter/exit actions of the modes involved.
// consumed is false when the key should be typed into the focused field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	startMode := h.currentMode
	actions, consumed := handler.HandleKey(msg, ctx)
	allActions := h.apply(actions, ctx)

	// a mode that stepped aside without consuming the key hands it on
	if !consumed && h.currentMode != startMode {
		more, c := h.HandleKey(msg, ctx)
		return append(allActions, more...), c
	}
	return allActions, consumed
}

// ChangeMode switches modes and returns the exit and enter actions
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) apply(actions []types.Action, ctx types.Context) []types.Action {
	var out []types.Action
	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			out = append(out, h.ChangeMode(change.Mode, ctx)...)
			continue
		}
		out = append(out, action)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeForm
	}
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeForm
}

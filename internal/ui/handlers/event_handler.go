package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"cityscout/internal/eventbus"
	"cityscout/internal/ui/state"
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 3 * time.Second

// StatusExpiredMsg clears the status line unless a newer message replaced it
type StatusExpiredMsg struct {
	Generation int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state      *state.AppState
	generation int
	logger     *log.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state:  appState,
		logger: log.WithPrefix("events"),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		}
		return h.SetStatus("Error: " + e.Message)

	case eventbus.DatasetLoadedEvent:
		return h.SetStatus(fmt.Sprintf("Loaded %d cities and %d events", e.Cities, e.Events))

	case eventbus.ConfigSavedEvent:
		h.logger.Debug("config saved", "path", e.Path)
	}
	return nil
}

// SetStatus shows text in the status line and schedules its expiry
func (h *EventHandler) SetStatus(text string) tea.Cmd {
	h.generation++
	h.state.StatusMessage = text
	gen := h.generation
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return StatusExpiredMsg{Generation: gen}
	})
}

// Expire clears the status line if msg belongs to the current message
func (h *EventHandler) Expire(msg StatusExpiredMsg) {
	if msg.Generation == h.generation {
		h.state.StatusMessage = ""
	}
}

package selection

import (
	"cityscout/internal/domain"
	"cityscout/internal/ui/services/events"

	tea "github.com/charmbracelet/bubbletea"
)

// Machine is the dropdown state machine of one autocomplete field. It is
// either Closed or Open with a list of suggestions and a highlighted row
// (-1 for none). Transitions that do not apply in the current state are
// no-ops and return nil.
type Machine struct {
	owner   string
	state   domain.SelectionState
	bus     events.Publisher
	commits uint64
}

// NewMachine creates a closed machine
func NewMachine(owner string, bus events.Publisher) *Machine {
	if bus == nil {
		bus = events.NullBus{}
	}
	return &Machine{
		owner: owner,
		state: domain.ClosedSelection(),
		bus:   bus,
	}
}

// State returns a snapshot of the current state
func (m *Machine) State() domain.SelectionState {
	s := m.state
	s.Suggestions = append(domain.SuggestionList(nil), m.state.Suggestions...)
	return s
}

// IsOpen reports whether the dropdown is showing
func (m *Machine) IsOpen() bool {
	return m.state.Open
}

// Highlighted returns the highlighted row, -1 for none
func (m *Machine) Highlighted() int {
	return m.state.Highlighted
}

// Commits counts committed selections
func (m *Machine) Commits() uint64 {
	return m.commits
}

// Show replaces the suggestions wholesale. An empty list closes the dropdown.
func (m *Machine) Show(list domain.SuggestionList) tea.Cmd {
	if len(list) == 0 {
		return m.Close(ReasonEmpty)
	}
	m.state = domain.SelectionState{
		Open:        true,
		Highlighted: -1,
		Suggestions: append(domain.SuggestionList(nil), list...),
	}
	return m.bus.Publish(OpenedEvent{Owner: m.owner, Count: len(list)})
}

// Next moves the highlight down, stopping at the last row
func (m *Machine) Next() tea.Cmd {
	if !m.state.Open {
		return nil
	}
	return m.highlight(min(m.state.Highlighted+1, len(m.state.Suggestions)-1))
}

// Prev moves the highlight up, stopping at -1 (no highlight)
func (m *Machine) Prev() tea.Cmd {
	if !m.state.Open {
		return nil
	}
	return m.highlight(max(m.state.Highlighted-1, -1))
}

// Hover highlights row i under the pointer
func (m *Machine) Hover(i int) tea.Cmd {
	if !m.state.Open || i < 0 || i >= len(m.state.Suggestions) {
		return nil
	}
	return m.highlight(i)
}

// Confirm commits the highlighted row. ok is false when nothing is
// highlighted or the dropdown is closed.
func (m *Machine) Confirm() (domain.City, bool, tea.Cmd) {
	if !m.state.Open || m.state.Highlighted < 0 {
		return domain.City{}, false, nil
	}
	return m.commit(m.state.Highlighted)
}

// Pick commits row i
func (m *Machine) Pick(i int) (domain.City, bool, tea.Cmd) {
	if !m.state.Open || i < 0 || i >= len(m.state.Suggestions) {
		return domain.City{}, false, nil
	}
	return m.commit(i)
}

// Dismiss closes without committing
func (m *Machine) Dismiss() tea.Cmd {
	return m.Close(ReasonEscape)
}

// Close closes the dropdown for the given reason
func (m *Machine) Close(reason CloseReason) tea.Cmd {
	if !m.state.Open {
		return nil
	}
	m.state = domain.ClosedSelection()
	return m.bus.Publish(ClosedEvent{Owner: m.owner, Reason: reason})
}

func (m *Machine) highlight(i int) tea.Cmd {
	old := m.state.Highlighted
	if old == i {
		return nil
	}
	m.state.Highlighted = i
	return m.bus.Publish(HighlightChangedEvent{Owner: m.owner, OldIndex: old, NewIndex: i})
}

func (m *Machine) commit(i int) (domain.City, bool, tea.Cmd) {
	city := m.state.Suggestions[i].City
	m.commits++
	committed := m.bus.Publish(CommittedEvent{Owner: m.owner, Index: i, City: city})
	return city, true, tea.Batch(committed, m.Close(ReasonCommit))
}

package navigation

import (
	"cityscout/internal/domain"
	"cityscout/internal/ui/services/events"

	tea "github.com/charmbracelet/bubbletea"
)

// Service keeps the page history. The bottom entry is never popped, so
// there is always a current page.
type Service struct {
	history []Entry
	bus     events.Publisher
}

// NewService creates a history starting at start
func NewService(bus events.Publisher, start Entry) *Service {
	if bus == nil {
		bus = events.NullBus{}
	}
	return &Service{
		history: []Entry{start},
		bus:     bus,
	}
}

// Current returns the entry on top of the history
func (s *Service) Current() Entry {
	return s.history[len(s.history)-1]
}

// URL returns the location of the current entry
func (s *Service) URL() string {
	return s.Current().URL()
}

// Depth returns the number of history entries
func (s *Service) Depth() int {
	return len(s.history)
}

// CanGoBack reports whether Back would change the page
func (s *Service) CanGoBack() bool {
	return len(s.history) > 1
}

// Navigate pushes a new entry
func (s *Service) Navigate(page Page, criteria domain.FilterCriteria) tea.Cmd {
	from := s.Current()
	to := Entry{Page: page, Criteria: criteria}
	s.history = append(s.history, to)
	return s.bus.Publish(NavigatedEvent{From: from, To: to})
}

// Replace swaps the current entry's criteria without growing the history
func (s *Service) Replace(criteria domain.FilterCriteria) tea.Cmd {
	from := s.Current()
	to := Entry{Page: from.Page, Criteria: criteria}
	s.history[len(s.history)-1] = to
	return s.bus.Publish(NavigatedEvent{From: from, To: to, Replace: true})
}

// Back pops the current entry. ok is false at the bottom of the history.
func (s *Service) Back() (Entry, bool, tea.Cmd) {
	if !s.CanGoBack() {
		return s.Current(), false, nil
	}
	from := s.Current()
	s.history = s.history[:len(s.history)-1]
	to := s.Current()
	return to, true, s.bus.Publish(NavigatedEvent{From: from, To: to, Back: true})
}

package search

import (
	"unicode/utf8"

	"cityscout/internal/domain"
	"cityscout/internal/logic"
	"cityscout/internal/ui/services/events"
	"cityscout/internal/ui/services/timer"

	tea "github.com/charmbracelet/bubbletea"
)

// TaskName identifies debounce firings among an owner's timers
const TaskName = "debounce"

// Service debounces input changes and ranks suggestions once the input has
// been quiet for the configured delay.
type Service struct {
	owner     string
	state     *State
	opts      Options
	directory logic.Directory
	task      *timer.Task
	bus       events.Publisher
}

// NewService creates a scheduler for the field identified by owner
func NewService(owner string, directory logic.Directory, task *timer.Task, bus events.Publisher, opts Options) *Service {
	if bus == nil {
		bus = events.NullBus{}
	}
	return &Service{
		owner:     owner,
		state:     &State{},
		opts:      opts,
		directory: directory,
		task:      task,
		bus:       bus,
	}
}

// Schedule records an input change and arms the debounce timer, superseding
// any evaluation still pending.
func (s *Service) Schedule(raw string) tea.Cmd {
	cmd := s.task.Arm()
	s.state.Query = domain.Query{
		Raw:        raw,
		Normalized: logic.Normalize(raw),
		Generation: s.task.Generation(),
	}
	return tea.Batch(cmd, s.bus.Publish(SearchScheduledEvent{Owner: s.owner, Query: s.state.Query}))
}

// Cancel drops a pending evaluation
func (s *Service) Cancel() {
	s.task.Cancel()
}

// Accept reports whether msg is the live debounce firing for this field
func (s *Service) Accept(msg timer.FiredMsg) bool {
	return s.task.Accept(msg)
}

// Pending reports whether an evaluation is scheduled
func (s *Service) Pending() bool {
	return s.task.Pending()
}

// Evaluate ranks the directory against value, which must be the input's
// value at the time of the call. It returns false when the normalized value
// is shorter than the minimum length and the dropdown should close.
func (s *Service) Evaluate(value string) (domain.SuggestionList, bool) {
	if !s.Eligible(value) {
		s.bus.Publish(SearchSkippedEvent{Owner: s.owner, Query: value})
		return nil, false
	}

	list := logic.Rank(value, s.directory.Cities(), s.opts.MaxSuggestions)
	s.state.Evaluations++
	s.state.LastCount = len(list)
	s.bus.Publish(SearchCompletedEvent{Owner: s.owner, Query: value, MatchCount: len(list)})
	return list, true
}

// Eligible reports whether value passes the minimum length gate
func (s *Service) Eligible(value string) bool {
	return utf8.RuneCountInString(logic.Normalize(value)) >= s.opts.MinLength
}

// Defaults returns the popular cities offered on focus with an empty input
func (s *Service) Defaults() domain.SuggestionList {
	return logic.PopularCities(s.directory.Cities(), s.opts.MaxSuggestions)
}

// Evaluations returns how many times the ranker ran
func (s *Service) Evaluations() int {
	return s.state.Evaluations
}

// LastQuery returns the most recently scheduled input change
func (s *Service) LastQuery() domain.Query {
	return s.state.Query
}

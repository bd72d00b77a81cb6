package state

import (
	"cityscout/internal/domain"
	"cityscout/internal/ui/services/navigation"
)

// BannerKind selects how a banner is styled and answered
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerError
	BannerConfirm
	BannerInfo
)

// Banner is the message line under the search form
type Banner struct {
	Kind BannerKind
	Text string
	Hint string
}

// AppState contains all the application state
type AppState struct {
	Page navigation.Page

	// Results page data
	Criteria domain.FilterCriteria
	Result   domain.FilterResult

	// Home page data
	Featured []domain.Event

	// Pending holds the search waiting on the unknown-city banner
	Pending *domain.FilterCriteria

	// UI state
	Banner        Banner
	StatusMessage string
	InPagerMode   bool
	Popup         string // fallback for content the pager could not show
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Page: navigation.PageHome,
	}
}

// SetResults stores the outcome of a filter pass
func (s *AppState) SetResults(criteria domain.FilterCriteria, result domain.FilterResult) {
	s.Criteria = criteria
	s.Result = result
}

// ResultCount returns how many events the results page lists
func (s *AppState) ResultCount() int {
	return len(s.Result.Events)
}

// EventAt returns the listed event at index i
func (s *AppState) EventAt(i int) (domain.Event, bool) {
	if i < 0 || i >= len(s.Result.Events) {
		return domain.Event{}, false
	}
	return s.Result.Events[i], true
}

// ShowBanner replaces the banner
func (s *AppState) ShowBanner(kind BannerKind, text, hint string) {
	s.Banner = Banner{Kind: kind, Text: text, Hint: hint}
}

// ClearBanner removes the banner and any search waiting on it
func (s *AppState) ClearBanner() {
	s.Banner = Banner{}
	s.Pending = nil
}

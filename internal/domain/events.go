package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDatasetLoaded   EventType = "DatasetLoaded"
	EventCitySelected    EventType = "CitySelected"
	EventSubmitRequested EventType = "SubmitRequested"
	EventSearchSubmitted EventType = "SearchSubmitted"
	EventUnknownCity     EventType = "UnknownCity"
	EventFiltersApplied  EventType = "FiltersApplied"
	EventFiltersCleared  EventType = "FiltersCleared"
	EventEventOpened     EventType = "EventOpened"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DatasetLoadedEvent is emitted once the directory and events are in memory
type DatasetLoadedEvent struct {
	Cities  int
	Events  int
	Skipped int
	Source  string
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// CitySelectedEvent is emitted when a suggestion is committed
type CitySelectedEvent struct {
	Field string
	City  City
}

func (e CitySelectedEvent) Type() EventType { return EventCitySelected }

// SubmitRequestedEvent is emitted when the primary field auto-advances its form
type SubmitRequestedEvent struct {
	Field string
}

func (e SubmitRequestedEvent) Type() EventType { return EventSubmitRequested }

// SearchSubmittedEvent is emitted when the home form navigates to results
type SearchSubmittedEvent struct {
	Criteria FilterCriteria
	Query    string // encoded query string
}

func (e SearchSubmittedEvent) Type() EventType { return EventSearchSubmitted }

// UnknownCityEvent is emitted when a search names a city outside the directory
type UnknownCityEvent struct {
	City       string
	Suggestion string
}

func (e UnknownCityEvent) Type() EventType { return EventUnknownCity }

// FiltersAppliedEvent is emitted when the results page re-filters
type FiltersAppliedEvent struct {
	Criteria FilterCriteria
	Matches  int
}

func (e FiltersAppliedEvent) Type() EventType { return EventFiltersApplied }

// FiltersClearedEvent is emitted when all results filters are reset
type FiltersClearedEvent struct{}

func (e FiltersClearedEvent) Type() EventType { return EventFiltersCleared }

// EventOpenedEvent is emitted when an event's details are shown
type EventOpenedEvent struct {
	ID int
}

func (e EventOpenedEvent) Type() EventType { return EventEventOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	LastQuery string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

package domain

// City is a directory entry offered as a suggestion
type City struct {
	Name       string
	Country    string
	EventCount int
}

// Category classifies an event
type Category string

const (
	CategoryMusic      Category = "music"
	CategorySports     Category = "sports"
	CategoryArts       Category = "arts"
	CategoryFood       Category = "food"
	CategoryTechnology Category = "technology"
	CategoryBusiness   Category = "business"
)

// Categories lists every known category in display order
var Categories = []Category{
	CategoryMusic,
	CategorySports,
	CategoryArts,
	CategoryFood,
	CategoryTechnology,
	CategoryBusiness,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event is a single listing shown on the results page
type Event struct {
	ID          int
	Name        string
	Category    Category
	Date        string // YYYY-MM-DD
	City        string
	Location    string
	Description string
	Image       string
	Featured    bool
}

// Query is one input change seen by the scheduler
type Query struct {
	Raw        string
	Normalized string
	Generation uint64
}

// Span is a half-open byte range [Start, End) into a city's original name
type Span struct {
	Start int
	End   int
}

// Suggestion is one ranked city plus the part of its name that matched
type Suggestion struct {
	City City
	Span *Span // nil when there is nothing to highlight
}

// SuggestionList is an ordered, capped set of suggestions
type SuggestionList []Suggestion

// Names returns the city names in order
func (l SuggestionList) Names() []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.City.Name
	}
	return names
}

// FilterCriteria narrows the event list. Empty fields are absent.
type FilterCriteria struct {
	City     string
	Category string
	Date     string
}

// IsEmpty reports whether no filter is set
func (c FilterCriteria) IsEmpty() bool {
	return c.City == "" && c.Category == "" && c.Date == ""
}

// FilterResult is the outcome of one filter pass
type FilterResult struct {
	Events    []Event
	CityKnown bool
	// Suggestion is the closest known city name when CityKnown is false
	Suggestion string
}

// ParseCategory maps already normalized text to a known category
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// SelectionState is the dropdown state of one autocomplete field.
// Highlighted is -1 when nothing is highlighted and always -1 when closed.
type SelectionState struct {
	Open        bool
	Highlighted int
	Suggestions SuggestionList
}

// ClosedSelection is the initial selection state
func ClosedSelection() SelectionState {
	return SelectionState{Highlighted: -1}
}

// Current returns the highlighted suggestion, if any
func (s SelectionState) Current() (Suggestion, bool) {
	if !s.Open || s.Highlighted < 0 || s.Highlighted >= len(s.Suggestions) {
		return Suggestion{}, false
	}
	return s.Suggestions[s.Highlighted], true
}

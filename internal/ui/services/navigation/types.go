package navigation

import "cityscout/internal/domain"

// Page identifies a screen
type Page string

const (
	PageHome    Page = "home"
	PageResults Page = "events"
)

// Entry is one history record: a page plus the query it was opened with
type Entry struct {
	Page     Page
	Criteria domain.FilterCriteria
}

// URL renders the entry like a location: the page path plus its query string
func (e Entry) URL() string {
	q := BuildQuery(e.Criteria)
	if e.Page == PageHome || q == "" {
		return string(e.Page)
	}
	return string(e.Page) + "?" + q
}

// CursorState holds the results list cursor and viewport
type CursorState struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Count          int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types

// NavigatedEvent is published whenever the current history entry changes
type NavigatedEvent struct {
	From    Entry
	To      Entry
	Replace bool
	Back    bool
}

type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}

package logic

import "cityscout/internal/domain"

// Directory provides read access to the known cities
type Directory interface {
	Cities() []domain.City
	Lookup(name string) (domain.City, bool)
	Len() int
}

// EventStore provides read access to the event listings
type EventStore interface {
	Events() []domain.Event
	Get(id int) (domain.Event, bool)
	Len() int
}

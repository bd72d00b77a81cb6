package logic

import (
	"slices"
	"strings"

	"cityscout/internal/domain"

	"github.com/tchap/go-patricia/v2/patricia"
)

// MemoryDirectory is an in-memory Directory indexed by normalized name.
// It is immutable once built and safe for concurrent reads.
type MemoryDirectory struct {
	cities []domain.City
	index  *patricia.Trie
}

// NewMemoryDirectory builds a directory. Cities whose normalized name is
// empty or already present are dropped; the first record wins.
func NewMemoryDirectory(cities []domain.City) *MemoryDirectory {
	d := &MemoryDirectory{
		cities: make([]domain.City, 0, len(cities)),
		index:  patricia.NewTrie(),
	}
	for _, city := range cities {
		key := Normalize(city.Name)
		if key == "" {
			continue
		}
		if d.index.Insert(patricia.Prefix(key), city) {
			d.cities = append(d.cities, city)
		}
	}
	return d
}

// Cities returns the directory in load order
func (d *MemoryDirectory) Cities() []domain.City {
	out := make([]domain.City, len(d.cities))
	copy(out, d.cities)
	return out
}

// Lookup finds the city equivalent to name
func (d *MemoryDirectory) Lookup(name string) (domain.City, bool) {
	key := Normalize(name)
	if key == "" {
		return domain.City{}, false
	}
	item := d.index.Get(patricia.Prefix(key))
	if item == nil {
		return domain.City{}, false
	}
	return item.(domain.City), true
}

// WithPrefix returns the cities whose normalized name starts with prefix,
// ordered by normalized name.
func (d *MemoryDirectory) WithPrefix(prefix string) []domain.City {
	var out []domain.City
	_ = d.index.VisitSubtree(patricia.Prefix(Normalize(prefix)), func(key patricia.Prefix, item patricia.Item) error {
		out = append(out, item.(domain.City))
		return nil
	})
	slices.SortFunc(out, func(a, b domain.City) int {
		return strings.Compare(Normalize(a.Name), Normalize(b.Name))
	})
	return out
}

// Len returns the number of cities
func (d *MemoryDirectory) Len() int {
	return len(d.cities)
}

// MemoryEventStore is an in-memory EventStore
type MemoryEventStore struct {
	events []domain.Event
	byID   map[int]int
}

// NewMemoryEventStore creates a store; later duplicates of an id are dropped
func NewMemoryEventStore(events []domain.Event) *MemoryEventStore {
	s := &MemoryEventStore{
		events: make([]domain.Event, 0, len(events)),
		byID:   make(map[int]int, len(events)),
	}
	for _, event := range events {
		if _, exists := s.byID[event.ID]; exists {
			continue
		}
		s.byID[event.ID] = len(s.events)
		s.events = append(s.events, event)
	}
	return s
}

// Events returns all events in load order
func (s *MemoryEventStore) Events() []domain.Event {
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns the event with the given id
func (s *MemoryEventStore) Get(id int) (domain.Event, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Event{}, false
	}
	return s.events[i], true
}

// Len returns the number of events
func (s *MemoryEventStore) Len() int {
	return len(s.events)
}

package session

import (
	"sync"

	"cityscout/internal/eventbus"

	"github.com/charmbracelet/log"
)

// Recorder remembers the last search submitted from the UI
type Recorder interface {
	LastQuery() string
	Searches() int
}

// recorder is the concrete implementation
type recorder struct {
	bus      eventbus.EventBus
	mu       sync.RWMutex
	last     string
	searches int
	logger   *log.Logger
}

// NewRecorder creates a recorder seeded with the query saved by a previous
// run. It announces every new query with a ConfigChangedEvent.
func NewRecorder(bus eventbus.EventBus, lastQuery string) Recorder {
	r := &recorder{
		bus:    bus,
		last:   lastQuery,
		logger: log.WithPrefix("session"),
	}

	bus.Subscribe(eventbus.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSubmittedEvent); ok {
			r.record(event.Query)
		}
	})

	return r
}

func (r *recorder) record(query string) {
	r.mu.Lock()
	r.searches++
	changed := query != r.last
	r.last = query
	r.mu.Unlock()

	if !changed {
		return
	}
	r.logger.Debug("recorded search", "query", query)
	r.bus.Publish(eventbus.ConfigChangedEvent{LastQuery: query})
}

// LastQuery returns the most recent encoded search query
func (r *recorder) LastQuery() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// Searches returns how many searches were submitted this run
func (r *recorder) Searches() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.searches
}

package session

import (
	"testing"
	"time"

	"cityscout/internal/domain"
	"cityscout/internal/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderPublishesChangedQueries(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	changes := make(chan string, 4)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		changes <- e.(eventbus.ConfigChangedEvent).LastQuery
	})

	r := NewRecorder(bus, "city=Berlin")
	assert.Equal(t, "city=Berlin", r.LastQuery())

	bus.Publish(eventbus.SearchSubmittedEvent{Criteria: domain.FilterCriteria{City: "Berlin"}, Query: "city=Berlin"})
	bus.Publish(eventbus.SearchSubmittedEvent{Criteria: domain.FilterCriteria{City: "Paris"}, Query: "city=Paris"})

	select {
	case q := <-changes:
		assert.Equal(t, "city=Paris", q, "repeating the saved query is not a change")
	case <-time.After(time.Second):
		t.Fatal("no ConfigChangedEvent")
	}

	require.Eventually(t, func() bool { return r.Searches() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "city=Paris", r.LastQuery())
	assert.Empty(t, changes)
}

package logic

import (
	"testing"

	"cityscout/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDirectory(t *testing.T) {
	t.Parallel()

	d := NewMemoryDirectory(append(testDirectory(),
		domain.City{Name: " PARIS", Country: "Texas"},
		domain.City{Name: ""},
	))
	require.Equal(t, len(testDirectory()), d.Len())

	city, ok := d.Lookup("  paris ")
	require.True(t, ok)
	assert.Equal(t, "France", city.Country)

	city, ok = d.Lookup("zurich")
	require.True(t, ok)
	assert.Equal(t, "Zürich", city.Name)

	_, ok = d.Lookup("Rome")
	assert.False(t, ok)
	_, ok = d.Lookup("")
	assert.False(t, ok)

	var names []string
	for _, c := range d.WithPrefix("PA") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Palermo", "Paris"}, names)
	assert.Len(t, d.WithPrefix(""), d.Len())

	cities := d.Cities()
	cities[0].Name = "mutated"
	assert.Equal(t, "Paris", d.Cities()[0].Name)
}

func TestMemoryEventStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryEventStore(append(testEvents(), domain.Event{ID: 1, Name: "duplicate"}))
	assert.Equal(t, 4, s.Len())

	event, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Jazz Night", event.Name)

	_, ok = s.Get(42)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.Events()))
}

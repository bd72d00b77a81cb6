package selection

import (
	"testing"

	"cityscout/internal/domain"
	"cityscout/internal/ui/services/events"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestions(names ...string) domain.SuggestionList {
	list := make(domain.SuggestionList, len(names))
	for i, n := range names {
		list[i] = domain.Suggestion{City: domain.City{Name: n}}
	}
	return list
}

// recorder captures every event the machine publishes, in order
func recorder(bus *events.Bus) *[]any {
	var seen []any
	record := func(e any) tea.Cmd {
		seen = append(seen, e)
		return nil
	}
	for _, e := range []any{OpenedEvent{}, HighlightChangedEvent{}, CommittedEvent{}, ClosedEvent{}} {
		bus.Subscribe(events.TypeOf(e), record)
	}
	return &seen
}

func TestInitialStateIsClosed(t *testing.T) {
	t.Parallel()

	m := NewMachine("city", nil)
	assert.False(t, m.IsOpen())
	assert.Equal(t, -1, m.Highlighted())
	assert.Nil(t, m.Next())
	assert.Nil(t, m.Dismiss())
	_, ok, _ := m.Confirm()
	assert.False(t, ok)
}

func TestShowOpensWithoutHighlight(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	seen := recorder(bus)
	m := NewMachine("city", bus)

	m.Show(suggestions("Paris", "Prague"))
	assert.True(t, m.IsOpen())
	assert.Equal(t, -1, m.Highlighted())
	assert.Equal(t, []any{OpenedEvent{Owner: "city", Count: 2}}, *seen)

	m.Next()
	m.Show(suggestions("Berlin"))
	assert.Equal(t, -1, m.Highlighted(), "a new list resets the highlight")
	assert.Equal(t, []string{"Berlin"}, m.State().Suggestions.Names())
}

func TestShowEmptyCloses(t *testing.T) {
	t.Parallel()

	m := NewMachine("city", nil)
	m.Show(suggestions("Paris"))
	m.Show(nil)
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.State().Suggestions)
}

func TestNavigationIsClamped(t *testing.T) {
	t.Parallel()

	m := NewMachine("city", nil)
	m.Show(suggestions("Paris", "Prague", "Cyparissi"))

	for range 5 {
		m.Next()
	}
	assert.Equal(t, 2, m.Highlighted())

	for range 5 {
		m.Prev()
	}
	assert.Equal(t, -1, m.Highlighted())
}

func TestHoverHighlightsRow(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	seen := recorder(bus)
	m := NewMachine("city", bus)
	m.Show(suggestions("Paris", "Prague"))

	m.Hover(1)
	m.Hover(1)
	m.Hover(7)
	assert.Equal(t, 1, m.Highlighted())
	assert.Equal(t, []any{
		OpenedEvent{Owner: "city", Count: 2},
		HighlightChangedEvent{Owner: "city", OldIndex: -1, NewIndex: 1},
	}, *seen)
}

func TestConfirmCommitsHighlightedRow(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	seen := recorder(bus)
	m := NewMachine("city", bus)
	m.Show(suggestions("Paris", "Prague"))

	_, ok, _ := m.Confirm()
	assert.False(t, ok, "nothing highlighted yet")
	assert.True(t, m.IsOpen())

	m.Next()
	m.Next()
	city, ok, _ := m.Confirm()
	require.True(t, ok)
	assert.Equal(t, "Prague", city.Name)
	assert.False(t, m.IsOpen())
	assert.Equal(t, uint64(1), m.Commits())

	tail := (*seen)[len(*seen)-2:]
	assert.Equal(t, []any{
		CommittedEvent{Owner: "city", Index: 1, City: domain.City{Name: "Prague"}},
		ClosedEvent{Owner: "city", Reason: ReasonCommit},
	}, tail)
}

func TestPickCommitsRow(t *testing.T) {
	t.Parallel()

	m := NewMachine("city", nil)
	m.Show(suggestions("Paris", "Prague"))

	_, ok, _ := m.Pick(5)
	assert.False(t, ok)

	city, ok, _ := m.Pick(0)
	require.True(t, ok)
	assert.Equal(t, "Paris", city.Name)
	assert.Equal(t, domain.ClosedSelection(), m.State())
}

func TestDismissDoesNotCommit(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	seen := recorder(bus)
	m := NewMachine("city", bus)
	m.Show(suggestions("Paris"))
	m.Next()

	m.Dismiss()
	assert.False(t, m.IsOpen())
	assert.Zero(t, m.Commits())
	assert.Equal(t, ClosedEvent{Owner: "city", Reason: ReasonEscape}, (*seen)[len(*seen)-1])
}

func TestStateSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	m := NewMachine("city", nil)
	m.Show(suggestions("Paris"))

	snap := m.State()
	snap.Suggestions[0].City.Name = "Lyon"
	assert.Equal(t, []string{"Paris"}, m.State().Suggestions.Names())
}

package search

import (
	"testing"
	"time"

	"cityscout/internal/domain"
	"cityscout/internal/logic"
	"cityscout/internal/ui/services/events"
	"cityscout/internal/ui/services/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(opts Options) (*Service, *events.Bus) {
	dir := logic.NewMemoryDirectory([]domain.City{
		{Name: "Paris", Country: "France", EventCount: 10},
		{Name: "Prague", Country: "Czech Republic", EventCount: 3},
		{Name: "Cyparissi", Country: "Greece", EventCount: 40},
		{Name: "Berlin", Country: "Germany", EventCount: 12},
	})
	bus := events.NewBus()
	task := timer.New("city", TaskName, 300*time.Millisecond, timer.Immediate)
	return NewService("city", dir, task, bus, opts), bus
}

// deliver runs a scheduled command and returns the firing it produced, if any
func deliver(t *testing.T, cmd tea.Cmd) (timer.FiredMsg, bool) {
	t.Helper()
	require.NotNil(t, cmd)
	for _, msg := range collect(cmd) {
		if fired, ok := msg.(timer.FiredMsg); ok {
			return fired, true
		}
	}
	return timer.FiredMsg{}, false
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestScheduleRecordsQuery(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(Options{MinLength: 1, MaxSuggestions: 5})
	svc.Schedule("  PA ")

	q := svc.LastQuery()
	assert.Equal(t, "  PA ", q.Raw)
	assert.Equal(t, "pa", q.Normalized)
	assert.Equal(t, uint64(1), q.Generation)
	assert.True(t, svc.Pending())
}

func TestRapidChangesCollapseIntoOneEvaluation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(Options{MinLength: 1, MaxSuggestions: 5})
	var cmds []tea.Cmd
	for _, v := range []string{"p", "pa", "par"} {
		cmds = append(cmds, svc.Schedule(v))
	}

	accepted := 0
	for _, cmd := range cmds {
		if fired, ok := deliver(t, cmd); ok && svc.Accept(fired) {
			list, ok := svc.Evaluate("par")
			require.True(t, ok)
			assert.Equal(t, []string{"Paris", "Cyparissi"}, list.Names())
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, svc.Evaluations())
}

func TestCancelledScheduleNeverEvaluates(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(Options{MinLength: 1, MaxSuggestions: 5})
	cmd := svc.Schedule("pa")
	svc.Cancel()

	_, ok := deliver(t, cmd)
	assert.False(t, ok)
	assert.False(t, svc.Pending())
	assert.Zero(t, svc.Evaluations())
}

func TestEvaluateRespectsMinLength(t *testing.T) {
	t.Parallel()

	svc, bus := newTestService(Options{MinLength: 2, MaxSuggestions: 5})
	var skipped []string
	bus.Subscribe(events.TypeOf(SearchSkippedEvent{}), func(e any) tea.Cmd {
		skipped = append(skipped, e.(SearchSkippedEvent).Query)
		return nil
	})

	_, ok := svc.Evaluate(" p ")
	assert.False(t, ok)
	assert.Equal(t, []string{" p "}, skipped)

	list, ok := svc.Evaluate("pr")
	assert.True(t, ok)
	assert.Equal(t, []string{"Prague"}, list.Names())
	assert.Equal(t, 1, svc.Evaluations())
}

func TestEvaluateCapsAtMaxSuggestions(t *testing.T) {
	t.Parallel()

	svc, bus := newTestService(Options{MinLength: 1, MaxSuggestions: 2})
	var completed SearchCompletedEvent
	bus.Subscribe(events.TypeOf(SearchCompletedEvent{}), func(e any) tea.Cmd {
		completed = e.(SearchCompletedEvent)
		return nil
	})

	list, ok := svc.Evaluate("r")
	require.True(t, ok)
	assert.Len(t, list, 2)
	assert.Equal(t, SearchCompletedEvent{Owner: "city", Query: "r", MatchCount: 2}, completed)
}

func TestDefaultsBypassLengthGate(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(Options{MinLength: 3, MaxSuggestions: 3})
	list := svc.Defaults()
	assert.Equal(t, []string{"Cyparissi", "Berlin", "Paris"}, list.Names())
	for _, s := range list {
		assert.Nil(t, s.Span)
	}
}

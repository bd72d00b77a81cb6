package timer

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickFunc schedules fn after d. tea.Tick is the production implementation;
// tests inject one that fires immediately.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FiredMsg is delivered when an armed task's delay elapses
type FiredMsg struct {
	Owner      string
	Name       string
	Generation uint64
}

// Task is a single cancellable deferred action. Every Arm or Cancel moves the
// generation forward, so only the most recent arming can ever fire.
type Task struct {
	owner string
	name  string
	delay time.Duration
	tick  TickFunc

	generation atomic.Uint64
	armed      bool
}

// New creates an idle task. A nil tick uses tea.Tick.
func New(owner, name string, delay time.Duration, tick TickFunc) *Task {
	if tick == nil {
		tick = tea.Tick
	}
	return &Task{owner: owner, name: name, delay: delay, tick: tick}
}

// Arm supersedes any pending firing and schedules a new one
func (t *Task) Arm() tea.Cmd {
	gen := t.generation.Add(1)
	t.armed = true

	return t.tick(t.delay, func(time.Time) tea.Msg {
		// superseded before the timer elapsed: nothing enters the loop
		if t.generation.Load() != gen {
			return nil
		}
		return FiredMsg{Owner: t.owner, Name: t.name, Generation: gen}
	})
}

// Cancel drops the pending firing, if any
func (t *Task) Cancel() {
	t.generation.Add(1)
	t.armed = false
}

// Owns reports whether msg was produced by this task, stale or not
func (t *Task) Owns(msg FiredMsg) bool {
	return msg.Owner == t.owner && msg.Name == t.name
}

// Accept reports whether msg is the live firing of this task and, if so,
// disarms it. Stale and foreign messages are rejected.
func (t *Task) Accept(msg FiredMsg) bool {
	if !t.Owns(msg) || !t.armed || msg.Generation != t.generation.Load() {
		return false
	}
	t.armed = false
	return true
}

// Pending reports whether the task is armed and has not fired yet
func (t *Task) Pending() bool {
	return t.armed
}

// Generation returns the current generation
func (t *Task) Generation() uint64 {
	return t.generation.Load()
}

// Delay returns the configured delay
func (t *Task) Delay() time.Duration {
	return t.delay
}

// Immediate is a TickFunc that runs fn without waiting
func Immediate(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn(time.Now())
	}
}

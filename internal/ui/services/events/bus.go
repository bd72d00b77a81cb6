package events

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener reacts to a published event. It runs synchronously on the UI
// loop and may return a command for the program to execute.
type Listener func(event any) tea.Cmd

type registration struct {
	id       uint64
	listener Listener
}

// Bus is a synchronous event bus for UI components. Unlike the domain bus it
// never spawns goroutines: listeners run inside Update and their commands are
// batched into the result of Publish.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]registration
	nextID    uint64
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]registration),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it again.
func (b *Bus) Subscribe(eventType string, listener Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], registration{id: id, listener: listener})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.listeners[eventType]
		for i, reg := range regs {
			if reg.id == id {
				b.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
		if len(b.listeners[eventType]) == 0 {
			delete(b.listeners, eventType)
		}
	}
}

// Publish delivers event to every listener of its type, in subscription
// order, and batches the commands they return.
func (b *Bus) Publish(event any) tea.Cmd {
	b.mu.RLock()
	regs := append([]registration(nil), b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	cmds := make([]tea.Cmd, 0, len(regs))
	for _, reg := range regs {
		if cmd := reg.listener(event); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Listeners returns how many listeners are registered for eventType
func (b *Bus) Listeners(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// TypeOf returns the key events of the same Go type are published under
func TypeOf(event any) string {
	return fmt.Sprintf("%T", event)
}

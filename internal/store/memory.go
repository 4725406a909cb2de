package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/btree"

	"edm4hep2lcio/lcio"
)

var (
	// ErrAlreadyRegistered is returned when a key already holds an event.
	ErrAlreadyRegistered = errors.New("object already registered")
	// ErrNotFound is returned for unknown keys.
	ErrNotFound = errors.New("object not found")
	// ErrNilEvent is returned when registering a nil event.
	ErrNilEvent = errors.New("nil event")
)

// Memory is an in-process event store ordered by key.
type Memory struct {
	mu     sync.RWMutex
	events btree.Map[string, *lcio.Event]
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// Register stores ev under key.
func (m *Memory) Register(key string, ev *lcio.Event) error {
	if ev == nil {
		return ErrNilEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.events.Get(key); exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}

	m.events.Set(key, ev)

	return nil
}

// Retrieve returns the event registered under key.
func (m *Memory) Retrieve(key string) (*lcio.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ev, ok := m.events.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return ev, nil
}

// Keys returns all registered keys in ascending order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, m.events.Len())
	m.events.Scan(func(key string, _ *lcio.Event) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

package lcio

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCollection is returned when a collection name is reused.
	ErrDuplicateCollection = errors.New("collection name already exists in event")
	// ErrCollectionNotFound is returned for unknown collection names.
	ErrCollectionNotFound = errors.New("collection not found in event")
	// ErrTypeMismatch is returned when a collection holds another element type.
	ErrTypeMismatch = errors.New("collection type mismatch")
)

// Event is a destination event.
type Event struct {
	RunNumber   int32
	EventNumber int32
	// TimeStamp is in nanoseconds since the Unix epoch.
	TimeStamp int64

	names       []string
	collections map[string]Elements
}

// NewEvent creates an empty event.
func NewEvent() *Event {
	return &Event{collections: make(map[string]Elements)}
}

// AddCollection registers a collection under name. The event takes
// ownership of it.
func (e *Event) AddCollection(name string, c Elements) error {
	if e.collections == nil {
		e.collections = make(map[string]Elements)
	}

	if _, exists := e.collections[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCollection, name)
	}

	e.collections[name] = c
	e.names = append(e.names, name)

	return nil
}

// CollectionNames returns collection names in insertion order.
func (e *Event) CollectionNames() []string {
	return append([]string(nil), e.names...)
}

// Collection returns the untyped collection registered under name.
func (e *Event) Collection(name string) (Elements, error) {
	c, ok := e.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	return c, nil
}

// CollectionOf returns the collection registered under name typed as T.
func CollectionOf[T any](e *Event, name string) (*Collection[T], error) {
	c, err := e.Collection(name)
	if err != nil {
		return nil, err
	}

	typed, ok := c.(*Collection[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %s", ErrTypeMismatch, name, c.TypeName())
	}

	return typed, nil
}

// Package arena provides index-addressed storage for objects whose final
// owner is decided later.
//
// Objects are allocated individually, so pointers returned by Get stay
// valid while the arena grows. Callers keep Handles instead of pointers
// until the objects are handed over to their owning container.
package arena

// Handle addresses one object inside an Arena.
type Handle int

// Invalid is the zero-information handle.
const Invalid Handle = -1

// Arena holds objects of type T.
type Arena[T any] struct {
	items []*T
}

// New allocates a zero T and returns its handle and pointer.
func (a *Arena[T]) New() (Handle, *T) {
	obj := new(T)
	a.items = append(a.items, obj)

	return Handle(len(a.items) - 1), obj
}

// Get returns the object addressed by h, or nil for an invalid handle.
func (a *Arena[T]) Get(h Handle) *T {
	if h < 0 || int(h) >= len(a.items) {
		return nil
	}

	return a.items[h]
}

// Len returns the number of allocated objects.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Release drops every object. Handles issued before are invalid afterwards.
func (a *Arena[T]) Release() {
	clear(a.items)
	a.items = a.items[:0]
}

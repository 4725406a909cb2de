package edm4hep

// Collection is a read-only, indexable sequence of records of one kind.
// A nil slot is an unavailable record: it keeps its position but carries
// no data.
type Collection[T any] struct {
	name  string
	items []*T
}

// NewCollection creates a collection holding copies of the given records.
func NewCollection[T any](name string, records ...T) *Collection[T] {
	c := &Collection[T]{name: name, items: make([]*T, 0, len(records))}
	for _, r := range records {
		c.Append(r)
	}

	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Len returns the number of slots, unavailable ones included.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Append adds a record and returns its ObjectID.
func (c *Collection[T]) Append(record T) ObjectID {
	c.items = append(c.items, &record)

	return ObjectID{Collection: c.name, Index: len(c.items) - 1}
}

// AppendUnavailable adds an empty slot and returns its ObjectID.
func (c *Collection[T]) AppendUnavailable() ObjectID {
	c.items = append(c.items, nil)

	return ObjectID{Collection: c.name, Index: len(c.items) - 1}
}

// At returns the record at index i. The boolean is false when i is out of
// range or the slot is unavailable.
func (c *Collection[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.items) || c.items[i] == nil {
		var zero T
		return zero, false
	}

	return *c.items[i], true
}

// ID returns the ObjectID of slot i.
func (c *Collection[T]) ID(i int) ObjectID {
	return ObjectID{Collection: c.name, Index: i}
}

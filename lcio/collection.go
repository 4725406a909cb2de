package lcio

// Collection is an ordered list of destination objects of one type.
type Collection[T any] struct {
	typeName string
	elements []*T
}

// NewCollection creates an empty collection of the given type name.
func NewCollection[T any](typeName string) *Collection[T] {
	return &Collection[T]{typeName: typeName}
}

// TypeName returns the declared element type.
func (c *Collection[T]) TypeName() string {
	return c.typeName
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.elements)
}

// AddElement appends an element; the collection owns it from now on.
func (c *Collection[T]) AddElement(e *T) {
	c.elements = append(c.elements, e)
}

// Element returns the element at index i, or nil when out of range.
func (c *Collection[T]) Element(i int) *T {
	if i < 0 || i >= len(c.elements) {
		return nil
	}

	return c.elements[i]
}

// Elements returns the elements in insertion order.
func (c *Collection[T]) Elements() []*T {
	return c.elements
}

// Elements is implemented by every Collection regardless of element type.
type Elements interface {
	TypeName() string
	Len() int
}

// MarshalYAML encodes the elements as a sequence.
func (c *Collection[T]) MarshalYAML() (any, error) {
	if c.elements == nil {
		return []*T{}, nil
	}

	return c.elements, nil
}

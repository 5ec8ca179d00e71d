// Package optional provides Value, a value that may or may not be present.
// Unlike a pointer, a Value compares by content: two Values of a comparable
// T are == when both are empty or both hold equal values. That makes it safe
// to embed in state structs that are compared structurally.
package optional

import "fmt"

// Value represents a value that may or may not be present.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPointer converts a possibly-nil pointer, as returned by hit tests and
// sensor readers, into a Value.
func FromPointer[T any](ptr *T) Value[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Pointer returns a pointer to a copy of the value, or nil when empty.
func (o Value[T]) Pointer() *T {
	if !o.isSet {
		return nil
	}

	v := o.value

	return &v
}

// String renders "Some(v)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms a present value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// Both returns both values when both are present.
func Both[A any, B any](a Value[A], b Value[B]) (A, B, bool) {
	return a.value, b.value, a.isSet && b.isSet
}

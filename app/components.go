package app

import (
	"errors"
	"reflect"
	"slices"
	"strconv"
)

var (
	// ErrEmptyComponentName is returned when a component is provided without a name.
	ErrEmptyComponentName = errors.New("app: empty component name")

	// ErrNilComponent is returned when a nil component is provided.
	ErrNilComponent = errors.New("app: nil component")
)

// DuplicateComponentError is returned when a component name is provided twice.
type DuplicateComponentError struct{ Name string }

// Error implements the error interface.
func (e DuplicateComponentError) Error() string {
	// Example: app: duplicate component "delivery"
	return "app: duplicate component " + strconv.Quote(e.Name)
}

// MissingComponentError is returned when a component name is not registered.
//
// It lets Resolve distinguish "missing" from "wrong type".
type MissingComponentError struct{ Name string }

// Error implements the error interface.
func (e MissingComponentError) Error() string {
	// Example: app: component "delivery" missing
	return "app: component " + strconv.Quote(e.Name) + " missing"
}

// WrongTypeComponentError is returned when a component exists but is not the
// requested type.
type WrongTypeComponentError struct {
	// Name is the component name requested.
	Name string

	// GotType is reflect.TypeOf(raw).String() for the stored component.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeComponentError) Error() string {
	// Example: app: component "delivery" has wrong type (*policy.Rater)
	return "app: component " + strconv.Quote(e.Name) + " has wrong type (" + e.GotType + ")"
}

// Components is a bag of the services a Runtime wired, keyed by name, for
// introspection and typed retrieval.
//
// The bag is filled during construction; callers may Provide more, but
// nothing is ever replaced or removed. It is not synchronized: wire first,
// share after.
type Components struct {
	items map[string]any
}

// NewComponents returns an empty bag.
func NewComponents() *Components {
	return &Components{items: map[string]any{}}
}

// Provide stores a component under a name.
//
// It fails with ErrEmptyComponentName, ErrNilComponent, or
// DuplicateComponentError; a bag never silently overwrites.
func (c *Components) Provide(name string, v any) error {
	if name == "" {
		return ErrEmptyComponentName
	}
	if v == nil {
		return ErrNilComponent
	}
	if _, exists := c.items[name]; exists {
		return DuplicateComponentError{Name: name}
	}
	c.items[name] = v
	return nil
}

// Has reports whether a component exists for the name (regardless of type).
func (c *Components) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.items[name]
	return ok
}

// Lookup returns the raw stored component without type assertions.
func (c *Components) Lookup(name string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.items[name]
	return v, ok
}

// Names returns the registered component names, sorted.
func (c *Components) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the named component typed as T.
//
// It returns:
//   - MissingComponentError if the name is not registered
//   - WrongTypeComponentError if the component is not a T
func Resolve[T any](c *Components, name string) (T, error) {
	var zero T
	if c == nil {
		return zero, MissingComponentError{Name: name}
	}
	raw, ok := c.items[name]
	if !ok {
		return zero, MissingComponentError{Name: name}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeComponentError{
			Name:    name,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return v, nil
}

// MustResolve returns the named component typed as T or panics.
func MustResolve[T any](c *Components, name string) T {
	v, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}

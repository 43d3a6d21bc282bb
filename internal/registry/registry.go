// Package registry holds the fixed-capacity, ordered lists of pluggable
// factories (widgets, layouts, themes).
//
// Factories register once at process start. Registration order is the
// display order of every picker, and index 0 is the default selection.
// Once Seal has been called the registry is read-only, which makes
// concurrent reads safe without locking.
package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when a registry reached its capacity
	ErrFull = errors.New("registry full")
	// ErrDuplicate is returned when a factory name is already registered
	ErrDuplicate = errors.New("duplicate factory name")
	// ErrSealed is returned when registering after startup
	ErrSealed = errors.New("registry sealed")
	// ErrEmptyName is returned for factories without a name
	ErrEmptyName = errors.New("empty factory name")
)

// Named is implemented by every factory kind.
type Named interface {
	Name() string
}

// Registry is an ordered list of factories of one kind.
type Registry[F Named] struct {
	kind     string
	capacity int
	keyLen   int
	items    []F
	sealed   bool
}

// New creates an empty registry for kind (used in error messages) holding
// at most capacity factories.
func New[F Named](kind string, capacity int) *Registry[F] {
	return &Registry[F]{
		kind:     kind,
		capacity: capacity,
		items:    make([]F, 0, capacity),
	}
}

// WithKeyLength makes names compare on their first n bytes, the way they are
// stored in fixed-size records. Factories sharing that prefix are duplicates.
func (r *Registry[F]) WithKeyLength(n int) *Registry[F] {
	r.keyLen = n
	return r
}

func (r *Registry[F]) key(name string) string {
	if r.keyLen > 0 && len(name) > r.keyLen {
		return name[:r.keyLen]
	}
	return name
}

// Register appends f.
func (r *Registry[F]) Register(f F) error {
	name := f.Name()
	switch {
	case r.sealed:
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrSealed)
	case name == "":
		return fmt.Errorf("register %s: %w", r.kind, ErrEmptyName)
	case r.IndexOf(name) >= 0:
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicate)
	case len(r.items) >= r.capacity:
		return fmt.Errorf("register %s %q (capacity %d): %w", r.kind, name, r.capacity, ErrFull)
	}
	r.items = append(r.items, f)
	return nil
}

// Seal makes the registry read-only.
func (r *Registry[F]) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal was called
func (r *Registry[F]) Sealed() bool {
	return r.sealed
}

// Kind returns the factory kind name
func (r *Registry[F]) Kind() string {
	return r.kind
}

// Capacity returns the maximum number of factories
func (r *Registry[F]) Capacity() int {
	return r.capacity
}

// Len returns the number of registered factories.
func (r *Registry[F]) Len() int {
	return len(r.items)
}

// At returns the factory at index i. It panics when i is out of range.
func (r *Registry[F]) At(i int) F {
	return r.items[i]
}

// IndexOf returns the index of the factory called name, or -1. A name cut
// to the key length matches its factory.
func (r *Registry[F]) IndexOf(name string) int {
	name = r.key(name)
	for i, f := range r.items {
		if r.key(f.Name()) == name {
			return i
		}
	}
	return -1
}

// Lookup returns the factory called name.
func (r *Registry[F]) Lookup(name string) (F, bool) {
	if i := r.IndexOf(name); i >= 0 {
		return r.items[i], true
	}
	var zero F
	return zero, false
}

// All returns a copy of the registered factories in order.
func (r *Registry[F]) All() []F {
	out := make([]F, len(r.items))
	copy(out, r.items)
	return out
}

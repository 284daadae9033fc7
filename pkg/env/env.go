// Package env provides parent-linked scopes used for both type and value
// bindings.
package env

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"
)

// Env is one frame of a scope chain. Frames are shared by reference: every
// closure or thunk created while a frame is active keeps it alive.
type Env[V any] struct {
	parent *Env[V]
	vars   *immutable.SortedMap[string, V]
}

// New returns a root frame.
func New[V any]() *Env[V] {
	return &Env[V]{
		vars: immutable.NewSortedMap[string, V](nil),
	}
}

// Child returns a new empty frame whose parent is e.
func (e *Env[V]) Child() *Env[V] {
	return &Env[V]{
		parent: e,
		vars:   immutable.NewSortedMap[string, V](nil),
	}
}

// IsRoot reports whether e has no parent.
func (e *Env[V]) IsRoot() bool {
	return e.parent == nil
}

// Root returns the outermost frame of the chain.
func (e *Env[V]) Root() *Env[V] {
	for e.parent != nil {
		e = e.parent
	}
	return e
}

// Set binds name in this frame, replacing any binding it already has here.
func (e *Env[V]) Set(name string, v V) {
	e.vars = e.vars.Set(name, v)
}

// Delete removes name from this frame.
func (e *Env[V]) Delete(name string) {
	e.vars = e.vars.Delete(name)
}

// Has reports whether this frame binds name.
func (e *Env[V]) Has(name string) bool {
	_, ok := e.vars.Get(name)
	return ok
}

// Lookup resolves name, nearest frame first.
func (e *Env[V]) Lookup(name string) (V, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars.Get(name); ok {
			return v, nil
		}
	}
	var zero V
	return zero, &NotInScopeError{Name: name}
}

// Len returns the number of bindings in this frame.
func (e *Env[V]) Len() int {
	return e.vars.Len()
}

// Bindings iterates over this frame's bindings in name order.
func (e *Env[V]) Bindings() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		itr := e.vars.Iterator()
		for !itr.Done() {
			k, v, _ := itr.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Frames iterates from e outward to the root.
func (e *Env[V]) Frames() iter.Seq[*Env[V]] {
	return func(yield func(*Env[V]) bool) {
		for frame := e; frame != nil; frame = frame.parent {
			if !yield(frame) {
				return
			}
		}
	}
}

// Update replaces every binding in this frame with fn applied to it.
func (e *Env[V]) Update(fn func(string, V) V) {
	b := immutable.NewSortedMapBuilder[string, V](nil)
	for k, v := range e.Bindings() {
		b.Set(k, fn(k, v))
	}
	e.vars = b.Map()
}

// Snapshot captures the bindings of this frame. Taking one is O(1) since
// frames are persistent maps.
type Snapshot[V any] struct {
	vars *immutable.SortedMap[string, V]
}

// Snapshot records the current bindings of this frame.
func (e *Env[V]) Snapshot() Snapshot[V] {
	return Snapshot[V]{vars: e.vars}
}

// Restore resets this frame to a snapshot taken from it earlier.
func (e *Env[V]) Restore(s Snapshot[V]) {
	e.vars = s.vars
}

// NotInScopeError is returned when no frame binds a name.
type NotInScopeError struct {
	Name string
}

func (e *NotInScopeError) Error() string {
	return fmt.Sprintf("Variable: '%s' not in Scope", e.Name)
}

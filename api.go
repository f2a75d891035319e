package vselect

import (
	"sync"
	"sync/atomic"
)

var (
	defaultAccessor   atomic.Pointer[Accessor]
	defaultAccessorMu sync.Mutex
)

// getDefaultAccessor returns the shared accessor, creating it on first use
// or after it has been closed.
func getDefaultAccessor() *Accessor {
	if a := defaultAccessor.Load(); a != nil && !a.IsClosed() {
		return a
	}

	defaultAccessorMu.Lock()
	defer defaultAccessorMu.Unlock()

	if a := defaultAccessor.Load(); a != nil && !a.IsClosed() {
		return a
	}

	a := NewAccessor()
	defaultAccessor.Store(a)
	return a
}

// SetDefaultAccessor replaces the accessor used by the package-level functions.
// The previous accessor stays open: bindings created from it keep working.
func SetDefaultAccessor(accessor *Accessor) {
	if accessor == nil {
		return
	}

	defaultAccessorMu.Lock()
	defer defaultAccessorMu.Unlock()

	defaultAccessor.Store(accessor)
}

// Get returns the value at path under root, or nil when it is absent.
// path is a dotted string, a []string or a Path.
func Get(path any, root any) (any, error) {
	return getDefaultAccessor().Get(path, root)
}

// Lookup returns the value at path under root together with its Kind
func Lookup(path any, root any) (any, Kind, error) {
	return getDefaultAccessor().Lookup(path, root)
}

// Set stores value at path under root, creating intermediate maps, and returns value
func Set(path any, root any, value any) (any, error) {
	return getDefaultAccessor().Set(path, root, value)
}

// Model pre-parses path and returns a reusable Binding
func Model(path any) (*Binding, error) {
	return getDefaultAccessor().Model(path)
}

// GetTyped returns the value at path converted to T.
// ok is false when the value is absent or has another type.
func GetTyped[T any](path any, root any) (value T, ok bool, err error) {
	raw, kind, err := Lookup(path, root)
	if err != nil || kind == KindMissing {
		return value, false, err
	}
	value, ok = raw.(T)
	return value, ok, nil
}

// GetWithDefault returns the value at path, or defaultValue when it is absent or the path is invalid
func GetWithDefault(path any, root any, defaultValue any) any {
	value, kind, err := Lookup(path, root)
	if err != nil || kind == KindMissing {
		return defaultValue
	}
	return value
}

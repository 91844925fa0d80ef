package drawgl

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gpucontext"
)

// BackendFactory creates a new backend instance.
// Factories are registered via Register and called by NewBackend.
type BackendFactory func() Backend

// registerMu serializes Register and Unregister so the duplicate check and
// the insertion are one step.
var registerMu sync.Mutex

// backends holds the registered factories. DefaultBackend prefers them in
// the listed order.
var backends = gpucontext.NewRegistry[Backend](
	gpucontext.WithPriority("mesh", "raster", "recording"),
)

// Register registers a backend factory under name.
// It is typically called from init() in backend packages, following the
// database/sql driver pattern:
//
//	func init() {
//	    drawgl.Register("raster", func() drawgl.Backend {
//	        return raster.NewBackend(raster.DefaultWidth, raster.DefaultHeight)
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("drawgl: Register factory is nil")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if backends.Has(name) {
		panic("drawgl: Register called twice for " + name)
	}
	backends.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is primarily useful for tests. Unknown names are a no-op.
func Unregister(name string) {
	registerMu.Lock()
	defer registerMu.Unlock()
	backends.Unregister(name)
}

// NewBackend creates a new backend instance by name and hands it the
// current logger if it accepts one.
func NewBackend(name string) (Backend, error) {
	if !backends.Has(name) {
		return nil, fmt.Errorf("drawgl: unknown backend %q (forgotten import?)", name)
	}
	b := backends.Get(name)
	propagateLogger(name, b)
	return b, nil
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// DefaultBackend creates an instance of the preferred registered backend:
// mesh, then raster, then recording, then any other. It returns an error
// when no backend is registered.
func DefaultBackend() (Backend, error) {
	name := backends.BestName()
	if name == "" {
		return nil, errors.New("drawgl: no backend registered (forgotten import?)")
	}
	return NewBackend(name)
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	names := backends.Available()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend named name is registered.
func IsRegistered(name string) bool {
	return backends.Has(name)
}

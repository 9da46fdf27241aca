package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/canvas"
)

// SessionFactory creates a session for a surface of the given size.
// Factories are registered via Register() and called by NewSession().
type SessionFactory func(width, height int) canvas.Session

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]SessionFactory)
)

func init() {
	Register("recording", func(width, height int) canvas.Session {
		return NewRecorder(width, height)
	})
}

// Register registers a session factory with the given name.
// This function is typically called from init() in session packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) canvas.Session {
//	        return New(w, h)
//	    })
//	}
//
// Register panics if the factory is nil or the name is already
// registered, so duplicate registrations are caught during program
// initialization.
func Register(name string, factory SessionFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a session factory from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewSession creates a session by name.
// Returns an error if the name is not registered; the message includes a
// hint about forgotten imports.
func NewSession(name string, width, height int) (canvas.Session, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown session %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// Sessions returns a sorted list of registered session names.
func Sessions() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a session with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

package registry

import (
	"fmt"
	"sync"

	"github.com/dolinaroz/landing/internal/config"
)

// Key is a typed service key, e.g. "moduleName.serviceName".
type Key[T any] string

// Registry lets modules share services registered during startup.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a registry carrying the application's configuration.
func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers value under key, replacing any previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get returns the value registered under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustGet is Get for dependencies a module cannot boot without.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}

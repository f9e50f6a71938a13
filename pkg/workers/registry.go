package workers

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateWorker indicates a register call reused an existing name.
	ErrDuplicateWorker = errors.New("duplicate worker name")

	// ErrEmptyCapabilities indicates a definition with no capabilities.
	ErrEmptyCapabilities = errors.New("worker has no capabilities")
)

// Registry indexes workers by name and by capability.
//
// Names are globally unique within a registry. Each capability maps to
// exactly one worker: the first-registered wins and later registrations of
// the same capability are silently ignored. This is a stable guarantee —
// callers may rely on registration order to pin capability ownership.
//
// Writes happen at startup; reads during execution are lock-free apart from
// the RWMutex read path.
type Registry struct {
	mu           sync.RWMutex
	byName       map[string]*Definition
	byCapability map[string]*Definition
	order        []string
}

// NewRegistry creates an empty worker registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:       make(map[string]*Definition),
		byCapability: make(map[string]*Definition),
	}
}

// Register adds a worker definition. Re-registering an existing name fails
// with ErrDuplicateWorker.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("worker definition: %w", errors.New("name is required"))
	}
	if len(def.Capabilities) == 0 {
		return fmt.Errorf("worker %q: %w", def.Name, ErrEmptyCapabilities)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateWorker, def.Name)
	}

	stored := def
	r.byName[def.Name] = &stored
	r.order = append(r.order, def.Name)

	for _, cap := range def.Capabilities {
		if _, taken := r.byCapability[cap]; taken {
			continue // first-registered wins
		}
		r.byCapability[cap] = &stored
	}
	return nil
}

// Get returns the worker registered under name, or nil.
func (r *Registry) Get(name string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// FindByCapability returns the worker that owns the capability, or nil.
func (r *Registry) FindByCapability(capability string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byCapability[capability]
}

// List returns all registered workers in insertion order.
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

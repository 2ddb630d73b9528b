package plugin

import (
	"errors"
	"fmt"
	"sync"
)

// Registry errors.
var (
	// ErrAlreadyRegistered is returned when a capability name is registered twice.
	ErrAlreadyRegistered = errors.New("plugin already registered")
)

// Registry is the runtime registration target for capability plugins.
// Registration order is preserved; a capability name may be registered at
// most once. The bootstrap phase is single-threaded, but the registry may be
// queried after the event loop starts, so reads are guarded.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	grants map[string][]Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		grants: make(map[string][]Capability),
	}
}

// Apply registers a single descriptor: it records the plugin in registration
// order and invokes its Register entry point with a scoped Registration
// handle. Applying a name twice fails with ErrAlreadyRegistered.
func (r *Registry) Apply(d Descriptor) error {
	r.mu.Lock()
	if _, dup := r.grants[d.Name]; dup {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, d.Name)
	}
	r.order = append(r.order, d.Name)
	r.grants[d.Name] = nil
	r.mu.Unlock()

	if d.Register == nil {
		return fmt.Errorf("plugin %s: %w", d.Name, ErrNilRegister)
	}
	if err := d.Register(&Registration{registry: r, name: d.Name}); err != nil {
		return fmt.Errorf("register plugin %s: %w", d.Name, err)
	}
	return nil
}

// Names returns the registered capability names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Has returns true if the named plugin has been registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.grants[name]
	return ok
}

// Capabilities returns the capabilities granted by the named plugin.
func (r *Registry) Capabilities(name string) []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps := r.grants[name]
	if len(caps) == 0 {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Grants returns true if the named plugin granted the capability.
func (r *Registry) Grants(name string, c Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, granted := range r.grants[name] {
		if granted == c {
			return true
		}
	}
	return false
}

// Registration is the handle a plugin's Register function receives. It is
// scoped to the plugin being registered.
type Registration struct {
	registry *Registry
	name     string
}

// Name returns the capability name of the plugin being registered.
func (reg *Registration) Name() string {
	return reg.name
}

// Grant records capabilities supplied by the plugin.
func (reg *Registration) Grant(caps ...Capability) {
	reg.registry.mu.Lock()
	defer reg.registry.mu.Unlock()

	reg.registry.grants[reg.name] = append(reg.registry.grants[reg.name], caps...)
}

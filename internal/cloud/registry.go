package cloud

import (
	"sort"
	"sync"
)

// Registry resolves a provider tag to its resource factory.
type Registry struct {
	mu        sync.RWMutex
	factories map[Provider]*Factory
}

// NewRegistry returns a registry with every built-in provider registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[Provider]*Factory, len(builtinProviders))}
	for _, p := range builtinProviders {
		factory, err := NewFactory(p)
		if err != nil {
			// built-ins always have catalog entries
			panic(err)
		}
		r.factories[p] = factory
	}
	return r
}

// Register adds or replaces the factory for its provider tag.
func (r *Registry) Register(f *Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[f.Provider()] = f
}

// Resolve returns the factory for tag. The match is exact and
// case-sensitive; unknown tags fail with an UnsupportedProviderError.
// Resolution has no side effects.
func (r *Registry) Resolve(tag string) (*Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[Provider(tag)]
	if !ok {
		return nil, &UnsupportedProviderError{Provider: tag}
	}
	return factory, nil
}

// Providers returns the registered tags in sorted order.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for p := range r.factories {
		tags = append(tags, string(p))
	}
	sort.Strings(tags)
	return tags
}

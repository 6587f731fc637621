package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kiosk404/chronos/internal/engine/service/agents/pkg/errno"
	"github.com/kiosk404/chronos/internal/engine/service/llm/provider/spi"
)

// Registry is a thread-safe registry of chat model providers.
type Registry struct {
	mu       sync.RWMutex
	registry map[string]spi.PluginFactory
}

func NewRegistry() *Registry {
	return &Registry{
		registry: make(map[string]spi.PluginFactory),
	}
}

// Register adds a provider factory. Registering the same name twice is an error.
func (r *Registry) Register(name string, factory spi.PluginFactory) error {
	if name == "" {
		return fmt.Errorf("provider name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("provider %s: factory must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registry[name]; ok {
		return fmt.Errorf("provider %s is already registered", name)
	}

	r.registry[name] = factory
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory spi.PluginFactory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.registry[name]; !ok {
		return fmt.Errorf("provider %s: %w", name, errno.ErrProviderNotRegistered)
	}
	delete(r.registry, name)
	return nil
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (spi.PluginFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.registry[name]
	if !ok {
		return nil, fmt.Errorf("provider %s: %w", name, errno.ErrProviderNotRegistered)
	}
	return factory, nil
}

// List returns all registered provider names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registry)
}

// Range calls fn for every provider in lexical order until fn returns false.
func (r *Registry) Range(fn func(name string, factory spi.PluginFactory) bool) {
	for _, name := range r.List() {
		factory, err := r.Get(name)
		if err != nil {
			continue
		}
		if !fn(name, factory) {
			break
		}
	}
}

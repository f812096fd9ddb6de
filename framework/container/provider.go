package container

import (
	"sort"
	"sync"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related bindings.
//
// Register binds services and must not resolve anything. Boot runs after all
// providers are registered, so resolving there is safe.
//
//	type RepositoryProvider struct{ container.BaseProvider }
//
//	func (p *RepositoryProvider) Register(app *container.Container) {
//	    app.Singleton("users", newUserRepository, container.As(UserRepository))
//	}
type ServiceProvider interface {
	Register(app *Container)
	Boot(app *Container)

	// Provides lists the abstracts a deferred provider registers.
	Provides() []string

	// IsDeferred reports whether registration waits until one of Provides()
	// is first resolved by name.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider supplies no-op Boot, Provides and IsDeferred. Embed it and
// implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)  {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots providers, loading deferred ones on
// first use. It is safe for concurrent use; provider Register and Boot run
// without the registry lock held.
type ProviderRegistry struct {
	app *Container

	mu         sync.Mutex
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // abstract → provider
	loaders    map[ServiceProvider]*sync.Once
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		deferred:   make(map[string]ServiceProvider),
		loaders:    make(map[ServiceProvider]*sync.Once),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider. Eager providers are registered immediately, and
// booted immediately too if the registry has already booted.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	r.mu.Lock()
	if r.registered[provider] {
		r.mu.Unlock()
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, abstract := range provider.Provides() {
			r.deferred[abstract] = provider
		}
		r.loaders[provider] = new(sync.Once)
		r.mu.Unlock()
		r.interceptDeferred(provider)
		return
	}
	r.mu.Unlock()

	provider.Register(r.app)

	r.mu.Lock()
	r.eager = append(r.eager, provider)
	booted := r.booted
	r.mu.Unlock()

	if booted {
		provider.Boot(r.app)
	}
}

// interceptDeferred binds a placeholder for each deferred abstract. The first
// Make of any of them registers the provider for real and resolves again.
// Placeholders carry no type information, so deferred bindings are reachable
// by name only until loaded.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, abstract := range provider.Provides() {
		r.app.Bind(abstract, func(c *Container) any {
			r.load(provider)
			return c.Make(abstract)
		})
	}
}

// load registers (and boots, if due) a deferred provider once. Concurrent
// callers wait until the first one has finished.
func (r *ProviderRegistry) load(provider ServiceProvider) {
	r.mu.Lock()
	once := r.loaders[provider]
	r.mu.Unlock()
	if once == nil {
		return
	}

	once.Do(func() {
		r.mu.Lock()
		for abstract, p := range r.deferred {
			if p == provider {
				delete(r.deferred, abstract)
			}
		}
		booted := r.booted
		r.mu.Unlock()

		provider.Register(r.app)
		if booted {
			provider.Boot(r.app)
		}
	})
}

// Boot boots every eager provider once.
func (r *ProviderRegistry) Boot() {
	r.mu.Lock()
	if r.booted {
		r.mu.Unlock()
		return
	}
	r.booted = true
	eager := append([]ServiceProvider(nil), r.eager...)
	r.mu.Unlock()

	for _, provider := range eager {
		provider.Boot(r.app)
	}
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns the eager providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ServiceProvider(nil), r.eager...)
}

// Deferred returns the abstracts whose providers have not been loaded yet.
func (r *ProviderRegistry) Deferred() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	abstracts := make([]string, 0, len(r.deferred))
	for abstract := range r.deferred {
		abstracts = append(abstracts, abstract)
	}
	sort.Strings(abstracts)
	return abstracts
}

package container

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-inject/framework/generic"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// binding holds a registered factory and the type information used for
// resolution by declared type.
type binding struct {
	abstract  string
	factory   Factory
	singleton bool

	// class is the concrete implementation type, nil if not declared.
	class *generic.Class

	// provides is the advertised (possibly generic) type, nil if not declared.
	provides generic.Type
}

func (b *binding) typed() bool { return b.class != nil || b.provides != nil }

// BindOption attaches type information to a binding.
type BindOption func(b *binding)

// As declares the concrete class the factory produces. The binding then
// satisfies every declared type the class is assignable to.
//
//	c.Singleton("users", newUserRepository, container.As(UserRepository))
func As(class *generic.Class) BindOption {
	return func(b *binding) { b.class = class }
}

// Providing declares the generic type the factory advertises, like the return
// type of a producer method. It is matched structurally against injection
// points.
//
//	c.Bind("orders", newOrderRepository, container.Providing(generic.Parameterize(Repository, Order)))
func Providing(t generic.Type) BindOption {
	return func(b *binding) { b.provides = t }
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container.
//
// Bindings are registered under a string abstract and may carry type
// information (As, Providing). They can then be resolved by name with Make,
// or by declared type with MakeType and Inject, which ask the generic engine
// which bindings qualify.
//
// A factory receives a view of the container scoped to the abstract it is
// building. The view shares every binding with the container it came from;
// it only differs in the owner used for contextual lookup.
type Container struct {
	*state

	// abstract being built by this view, empty for the root container
	building string
}

// state is shared by a container and every view handed to its factories.
type state struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// registration order of abstracts; typed resolution walks it
	order []string

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract
	aliases map[string]string

	// tag → []abstract
	tags map[string][]string

	// contextual: when[owner][needs] = factory
	contextual map[string]map[string]Factory

	afterResolving []func(string, any)

	log zerolog.Logger
}

// Option configures a Container.
type Option func(c *Container)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Container) {
		c.log = log.With().Str("component", "container").Logger()
	}
}

// SetLogger replaces the logger, typically once logging is configured.
func (c *Container) SetLogger(log zerolog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	WithLogger(log)(c)
}

func (c *Container) logger() zerolog.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.log
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{state: &state{
		bindings:   make(map[string]*binding),
		instances:  make(map[string]any),
		aliases:    make(map[string]string),
		tags:       make(map[string][]string),
		contextual: make(map[string]map[string]Factory),
		log:        zerolog.Nop(),
	}}
	for _, opt := range opts {
		opt(c)
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory: every resolution builds a new value.
func (c *Container) Bind(abstract string, factory Factory, opts ...BindOption) {
	c.register(abstract, factory, false, opts)
}

// Singleton registers a factory whose result is cached after the first
// resolution.
func (c *Container) Singleton(abstract string, factory Factory, opts ...BindOption) {
	c.register(abstract, factory, true, opts)
}

// Instance registers a pre-built value.
func (c *Container) Instance(abstract string, instance any, opts ...BindOption) {
	c.register(abstract, func(*Container) any { return instance }, true, opts)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[c.canonical(abstract)] = instance
}

func (c *Container) register(abstract string, factory Factory, singleton bool, opts []BindOption) {
	b := &binding{abstract: abstract, factory: factory, singleton: singleton}
	for _, opt := range opts {
		opt(b)
	}
	if b.class != nil {
		mustValidate(abstract, b.class)
	}
	if b.provides != nil {
		mustValidate(abstract, b.provides)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.canonical(abstract)
	b.abstract = key
	if _, exists := c.bindings[key]; !exists {
		c.order = append(c.order, key)
	}
	// rebuild with the new factory on next resolution
	delete(c.instances, key)
	c.bindings[key] = b

	ev := c.log.Debug().Str("abstract", key).Bool("singleton", singleton)
	if b.class != nil {
		ev = ev.Stringer("class", b.class)
	}
	if b.provides != nil {
		ev = ev.Stringer("provides", b.provides)
	}
	ev.Msg("bound")
}

func mustValidate(abstract string, t generic.Type) {
	if err := generic.Validate(t); err != nil {
		panic(fmt.Sprintf("container: [%s] declares a malformed type: %v", abstract, err))
	}
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag groups abstracts under a name.
func (c *Container) Tag(abstracts []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], abstracts...)
}

// Tagged resolves every abstract registered under tag.
func (c *Container) Tagged(tag string) []any {
	c.mu.RLock()
	abstracts := append([]string(nil), c.tags[tag]...)
	c.mu.RUnlock()

	result := make([]any, 0, len(abstracts))
	for _, abs := range abstracts {
		result = append(result, c.make(abs))
	}
	return result
}

// ── Resolution by name ────────────────────────────────────────────────────────

// Make resolves an abstract by name. It panics if nothing is bound.
func (c *Container) Make(abstract string) any {
	return c.make(abstract)
}

func (c *Container) make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	var override Factory
	if c.building != "" {
		override = c.contextual[c.building][abstract]
	}
	inst, cached := c.instances[key]
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	// contextual overrides win over cached singletons
	if override != nil {
		return c.build(key, override, false)
	}
	if cached {
		return inst
	}
	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}
	return c.build(key, b.factory, b.singleton)
}

// build runs a factory against a view owned by key, optionally caching the
// result.
func (c *Container) build(key string, f Factory, singleton bool) any {
	instance := f(&Container{state: c.state, building: key})

	c.mu.Lock()
	if singleton {
		c.instances[key] = instance
	}
	cbs := c.afterResolving
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(key, instance)
	}
	return instance
}

// owner returns the abstract this view is building, if any.
func (c *Container) owner() string { return c.building }

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved reports whether a singleton abstract has been built.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Forget removes the binding and cached instance of an abstract.
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	delete(c.instances, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
}

// Flush resets the entire container.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.order = nil
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
	c.tags = make(map[string][]string)
	c.contextual = make(map[string]map[string]Factory)
}

// Bindings returns the registered abstracts in registration order.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

// canonical resolves an alias to its abstract. Callers hold mu.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// AfterResolving registers a callback fired after any abstract is built.
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result. It panics on mismatch.
//
//	router := container.Resolve[*routing.Router](c, "router")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

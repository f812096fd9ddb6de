package container

// ContextualBuilder implements the fluent contextual binding API.
//
//	c.When("reportService").Needs("store").Give(func(c *container.Container) any {
//	    return archive.NewStore()
//	})
//
// Needs names either an abstract resolved with Make while the owner is being
// built, or the name of an InjectionPoint whose Owner is the owner.
type ContextualBuilder struct {
	container *Container
	owner     string
	needs     string
}

// When starts a contextual binding chain for owner.
func (c *Container) When(owner string) *ContextualBuilder {
	return &ContextualBuilder{container: c, owner: owner}
}

// Needs specifies the dependency being overridden.
func (b *ContextualBuilder) Needs(dependency string) *ContextualBuilder {
	b.needs = dependency
	return b
}

// Give provides the factory used when the owner asks for the dependency.
func (b *ContextualBuilder) Give(factory Factory) {
	b.container.mu.Lock()
	defer b.container.mu.Unlock()

	if _, ok := b.container.contextual[b.owner]; !ok {
		b.container.contextual[b.owner] = make(map[string]Factory)
	}
	b.container.contextual[b.owner][b.needs] = factory
}

// GiveValue is Give for a pre-built value.
//
//	c.When("uploader").Needs("path").GiveValue("/tmp/uploads")
func (b *ContextualBuilder) GiveValue(value any) {
	b.Give(func(_ *Container) any { return value })
}

// getContextual returns the contextual factory for (owner, dependency), or nil.
func (c *Container) getContextual(owner, dependency string) Factory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.contextual[owner]; ok {
		if f, ok := m[dependency]; ok {
			return f
		}
	}
	return nil
}

// Package container provides an IoC container that resolves dependencies by
// name and by declared generic type, plus a service provider system.
//
// # Lifecycle
//
//  1. Create: c := container.New(container.WithLogger(log))
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()
//  4. Resolve
//
// # Bindings
//
//	// Transient: new value on every resolution
//	c.Bind("mailer", func(c *container.Container) any { return &SMTPMailer{} })
//
//	// Singleton: built once
//	c.Singleton("users", newUserRepository, container.As(UserRepository))
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	c.Alias("users", "userRepository")
//
// # Type information
//
// A binding may describe what it produces so it can be found by type:
//
//   - As(class) names the concrete class. The binding satisfies every declared
//     type the class is assignable to, following the class hierarchy and type
//     arguments (generic.IsAssignable).
//   - Providing(t) names an advertised type, as a producer method's return type
//     would. It is matched structurally against the declared type
//     (generic.TypesMatch).
//
// # Resolving
//
//	raw := c.Make("users")
//	users := container.Resolve[*UserRepository](c, "users")
//
//	// by declared type; errors wrap ErrUnsatisfied or ErrAmbiguous
//	repo, err := c.MakeType(generic.Parameterize(Repository, User))
//	names, err := c.Candidates(generic.Parameterize(Repository, generic.Extends(Entity)))
//
//	// by injection point; contextual overrides win, optional points may be nil
//	v, err := c.Inject(container.InjectionPoint{
//	    Owner: "reportService",
//	    Name:  "orders",
//	    Type:  generic.Parameterize(Repository, Order),
//	})
//
// Declared types the engine cannot interpret surface as errors matching
// generic.ErrUnsupportedTypeKind.
//
// # Contextual binding
//
//	c.When("reportService").
//	    Needs("orders").
//	    Give(func(c *container.Container) any { return &ArchivedOrders{} })
//
// # Tags
//
//	c.Tag([]string{"cpuReport", "memReport"}, "reports")
//	reports := c.Tagged("reports")
//
// # Service providers
//
//	type RepositoryProvider struct{ container.BaseProvider }
//
//	func (p *RepositoryProvider) Register(app *container.Container) {
//	    app.Singleton("users", newUserRepository, container.As(UserRepository))
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&RepositoryProvider{})
//	registry.Boot()
//
// Deferred providers register only when one of Provides() is first resolved
// with Make. Until then their bindings are untyped placeholders.
package container

package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/framework/routing"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Singleton(), app.MakeType() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework providers.
func New(envFiles ...string) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&providers.RoutingServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Log resolves the application logger from the container.
func (a *Application) Log() zerolog.Logger {
	return container.Resolve[zerolog.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// Run boots the application (if needed) and serves HTTP until the server fails.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	log := a.Log()
	addr := ":" + cfg.App.Port

	ev := log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("addr", addr)
	if cfg.Container.Inspect {
		ev = ev.Str("inspect", cfg.Container.InspectPrefix+"/bindings")
	}
	ev.Msg("listening")

	return http.ListenAndServe(addr, a.Router())
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

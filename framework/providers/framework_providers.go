package providers

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/inspect"
	"github.com/km-arc/go-inject/framework/logging"
	"github.com/km-arc/go-inject/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container.
//
// Bound abstracts:
//   - "config" → *config.Config
//   - "configuration" (alias)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the application logger from the "log" section
// of the configuration and hands it to the container once booted.
//
// Bound abstracts:
//   - "log" → zerolog.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Out io.Writer // default: os.Stderr
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	out := p.Out
	if out == nil {
		out = os.Stderr
	}
	app.Singleton("log", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		return logging.New(cfg.Log, out)
	})
}

func (p *LoggingServiceProvider) Boot(app *container.Container) {
	app.SetLogger(container.Resolve[zerolog.Logger](app, "log"))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router and, when enabled, mounts
// the binding inspection routes under the configured prefix.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New(container.Resolve[zerolog.Logger](c, "log"))
	})
}

func (p *RoutingServiceProvider) Boot(app *container.Container) {
	cfg := container.Resolve[*config.Config](app, "config")
	if !cfg.Container.Inspect {
		return
	}
	router := container.Resolve[*routing.Router](app, "router")
	router.Prefix(cfg.Container.InspectPrefix, func(r *routing.Router) {
		inspect.Register(r, app)
	})
}

package leads

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/middleware"
	"github.com/dolinaroz/landing/internal/module"
	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/pubsub"
	"github.com/dolinaroz/landing/internal/registry"
	"github.com/dolinaroz/landing/internal/rendering"
)

// Dependencies are the services the leads module needs.
type Dependencies struct {
	Tracker    *lead.Tracker
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// LeadsModule accepts lead form submissions.
type LeadsModule struct {
	module.BaseModule
	deps   Dependencies
	cancel context.CancelFunc
}

// New creates a new instance of the LeadsModule.
func New(deps Dependencies) *LeadsModule {
	return &LeadsModule{deps: deps}
}

// Name returns the unique name for the module.
func (m *LeadsModule) Name() string {
	return "leads"
}

// Boot starts the event logger and registers the rate-limited submit route.
func (m *LeadsModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	subCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	if err := NewEventLogger(m.deps.Subscriber, slog.Default()).Start(subCtx); err != nil {
		cancel()
		return err
	}

	slog.Info("Booting LeadsModule: Setting up routes...")
	h := NewHandler(m.deps.Tracker, m.deps.Renderer, registry.MustGet(reg, registry.WhatsAppKey))
	g.POST(page.LeadsPath, h.Submit, middleware.RateLimiter(reg.Config().GetRateLimitPerMinute(), h.TooManyRequests))
	return nil
}

// Shutdown stops the event logger.
func (m *LeadsModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

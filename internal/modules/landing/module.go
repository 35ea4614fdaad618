package landing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/module"
	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/registry"
	"github.com/dolinaroz/landing/internal/rendering"
)

// Dependencies are the services the landing module needs.
type Dependencies struct {
	Renderer rendering.Renderer
	Tracker  *lead.Tracker
}

// LandingModule serves the page, the menu fragment and the legal pages.
type LandingModule struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new instance of the LandingModule.
func New(deps Dependencies) *LandingModule {
	return &LandingModule{deps: deps}
}

// Name returns the unique name for the module.
func (m *LandingModule) Name() string {
	return "landing"
}

// Register builds the page metadata once and shares it with other modules.
func (m *LandingModule) Register(reg *registry.Registry) error {
	cfg := reg.Config()
	registry.Set(reg, registry.MetadataKey, page.NewMetadata(cfg.GetAppBaseURL()))
	registry.Set(reg, registry.WhatsAppKey, page.WhatsAppURL(cfg.GetWhatsAppNumber()))
	return nil
}

// Boot registers the HTTP routes for the landing module.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting LandingModule: Setting up routes...")

	h := NewHandler(
		m.deps.Renderer,
		m.deps.Tracker,
		registry.MustGet(reg, registry.MetadataKey),
		registry.MustGet(reg, registry.WhatsAppKey),
	)

	g.GET("/", h.Home)
	g.GET(page.MenuPath, h.Menu)
	for _, doc := range page.LegalDocs {
		g.GET(doc.Path, h.Legal(doc))
	}
	return nil
}

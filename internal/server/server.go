package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/dolinaroz/landing/internal/app"
	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/handlers"
	"github.com/dolinaroz/landing/internal/middleware"
	"github.com/dolinaroz/landing/internal/module"
	"github.com/dolinaroz/landing/internal/pubsub"
	"github.com/dolinaroz/landing/internal/registry"
)

// Server holds the HTTP server and the services behind it.
type Server struct {
	E         *echo.Echo
	Cfg       config.Provider
	container *do.RootScope
	registry  *registry.Registry
	modules   []module.Module
}

// New wires the container, the middleware chain and every module.
func New(cfg config.Provider) (*Server, error) {
	container := app.NewContainer(cfg)
	deps, err := app.ResolveDependencies(container)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	e.Use(session.Middleware(newSessionStore(cfg)))

	s := &Server{
		E:         e,
		Cfg:       cfg,
		container: container,
		registry:  registry.New(cfg),
		modules:   app.NewModules(deps),
	}
	s.registerRoutes()

	if err := s.bootModules(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// Shutdown stops modules in reverse boot order, closes the event bus and
// drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", s.modules[i].Name(), "error", err)
		}
	}
	if bridge, err := do.Invoke[*pubsub.WatermillBridge](s.container); err == nil {
		if err := bridge.Close(); err != nil {
			slog.Error("Failed to close event bus", "error", err)
		}
	}
	return s.E.Shutdown(ctx)
}

// newSessionStore returns the cookie store behind the flash session.
// Cookies are signed with the session secret and, when a block key is
// configured, encrypted with it.
func newSessionStore(cfg config.Provider) *sessions.CookieStore {
	keys := [][]byte{[]byte(cfg.GetSessionSecret())}
	if block := cfg.GetSessionBlockKey(); block != "" {
		keys = append(keys, []byte(block))
	}
	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

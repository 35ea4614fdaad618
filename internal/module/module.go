package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/dolinaroz/landing/internal/registry"
)

// Module is a self-contained feature of the site.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's shared services. All modules register
	// before any of them boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work such as event subscribers.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases what Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Module methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/dolinaroz/landing/internal/metrics"
	"github.com/dolinaroz/landing/web"
)

// registerRoutes sets up the routes that do not belong to a module.
func (s *Server) registerRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	reg := do.MustInvoke[*metrics.Registry](s.container)
	s.E.GET("/metrics", echo.WrapHandler(reg.Handler()))
}

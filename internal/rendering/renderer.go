package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders templ components and gomponents nodes, either into bytes
// (static export) or as an HTTP response.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes one or more components as a single HTML response.
	// Several components are concatenated, which is how htmx receives a
	// fragment together with its out-of-band swaps.
	RenderPage(c echo.Context, status int, components ...any) error
}

// UniversalRenderer dispatches on the component type.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The body is buffered so a
// failing component turns into an error instead of a truncated page.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, components ...any) error {
	var buf bytes.Buffer
	ctx := c.Request().Context()
	for _, component := range components {
		if err := r.render(ctx, component, &buf); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Render implements echo.Renderer so c.Render(status, name, component) works.
// name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.render(c.Request().Context(), data, w)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.POST("/leads", handler, RateLimiter(3, nil))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows requests within the limit", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("192.0.2.1:1234").Code)
	})

	t.Run("blocks requests exceeding the limit", func(t *testing.T) {
		clientIP := "192.0.2.2:1234"
		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, send(clientIP).Code, "request %d should be allowed", i+1)
		}

		rec := send(clientIP)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Слишком много запросов")
	})

	t.Run("limits are per client", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, send("192.0.2.3:1234").Code)
	})
}

func TestRateLimiterCustomDeny(t *testing.T) {
	e := echo.New()
	deny := func(c echo.Context) error {
		c.Response().Header().Set("HX-Reswap", "none")
		return c.HTML(http.StatusTooManyRequests, `<div id="denied"></div>`)
	}
	e.POST("/leads", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(1, deny))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.RemoteAddr = "192.0.2.9:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send().Code)
	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
	assert.Contains(t, rec.Body.String(), `id="denied"`)
}

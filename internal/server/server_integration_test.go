package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/page"
)

var formIDPattern = regexp.MustCompile(`name="form_id" value="([0-9a-f-]{36})"`)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	captureLogs(t)
	cfg := &config.Config{
		Port:               "0",
		AppBaseURL:         "https://dolina-roz.example",
		SessionSecret:      "a-very-secret-key-for-testing-!",
		SessionBlockKey:    "0123456789abcdef0123456789abcdef",
		RelayProvider:      "log",
		RelayAccessKey:     "test-key",
		RelayTimeout:       time.Second,
		WhatsAppNumber:     "79124530205",
		LeadStateTTL:       time.Hour,
		RateLimitPerMinute: 10,
	}
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("landing page", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<link rel="canonical" href="https://dolina-roz.example/">`)
		assert.Contains(t, body, "https://wa.me/79124530205")
		assert.Regexp(t, formIDPattern, body)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("static assets", func(t *testing.T) {
		for _, path := range []string{page.ScriptPath, page.StylePath} {
			rec := serve(s, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("menu fragment", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/ui/menu?open=true", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), page.MenuID)
	})

	t.Run("legal pages", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, page.PolicyPath, nil)).Code)
		assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, page.ConsentPath, nil)).Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, serve(s, httptest.NewRequest(http.MethodGet, "/nope", nil)).Code)
	})
}

func TestServerLeadFlow(t *testing.T) {
	s := newTestServer(t)

	home := serve(s, httptest.NewRequest(http.MethodGet, "/", nil))
	m := formIDPattern.FindStringSubmatch(home.Body.String())
	require.Len(t, m, 2)

	form := url.Values{"form_id": {m[1]}, "name": {"Анна"}, "phone": {"+7 900 000-00-00"}}
	submit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, page.LeadsPath, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		return serve(s, req)
	}

	first := submit()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), page.SentTitle)

	assert.Equal(t, http.StatusNoContent, submit().Code)

	metrics := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `lead_submissions_total{outcome="sent"} 1`)
	assert.Contains(t, metrics.Body.String(), `lead_submissions_total{outcome="already_sent"} 1`)
}

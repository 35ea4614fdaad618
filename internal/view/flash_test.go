package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolinaroz/landing/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Capture the context after the middleware has attached the store.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestLeadFlash(t *testing.T) {
	t.Run("failed outcome names the form instance", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.SetLeadFlash(c, view.LeadFlash{Outcome: view.LeadFailed, FormID: "form-1"}))

		got, ok := view.GetLeadFlash(c)
		require.True(t, ok)
		assert.Equal(t, view.LeadFailed, got.Outcome)
		assert.Equal(t, "form-1", got.FormID)
	})

	t.Run("flash is cleared after being read", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.SetLeadFlash(c, view.LeadFlash{Outcome: view.LeadSent}))
		_, ok := view.GetLeadFlash(c)
		require.True(t, ok)

		_, ok = view.GetLeadFlash(c)
		assert.False(t, ok, "flash should be cleared after being read")
	})

	t.Run("invalid outcome carries missing fields", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.SetLeadFlash(c, view.LeadFlash{Outcome: view.LeadInvalid, Missing: []string{"name"}}))
		got, ok := view.GetLeadFlash(c)
		require.True(t, ok)
		assert.Equal(t, []string{"name"}, got.Missing)
	})

	t.Run("no flash set", func(t *testing.T) {
		c, _ := setupTestContext()

		_, ok := view.GetLeadFlash(c)
		assert.False(t, ok)
	})
}

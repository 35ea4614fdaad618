package landing

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/rendering"
	"github.com/dolinaroz/landing/internal/view"
)

// Handler renders the landing page and its fragments.
type Handler struct {
	renderer rendering.Renderer
	tracker  *lead.Tracker
	meta     page.Metadata
	whatsApp string
}

// NewHandler creates a new Handler. tracker holds the workflows whose
// values are restored after a no-JS submission.
func NewHandler(renderer rendering.Renderer, tracker *lead.Tracker, meta page.Metadata, whatsApp string) *Handler {
	return &Handler{renderer: renderer, tracker: tracker, meta: meta, whatsApp: whatsApp}
}

// Home renders the page with a new form instance. A pending lead flash from
// a no-JS submission decides what the lead card shows.
func (h *Handler) Home(c echo.Context) error {
	form := page.NewServerForm(uuid.NewString(), h.whatsApp)

	if flash, ok := view.GetLeadFlash(c); ok {
		form = h.restore(form, flash)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return h.renderer.RenderPage(c, http.StatusOK, page.Landing(h.meta, form))
}

// restore applies a lead flash to a fresh form. Failed, invalid and pending
// submissions continue the same form instance with the values the workflow
// kept; the notice is shown even when the instance has expired.
func (h *Handler) restore(form page.FormView, flash view.LeadFlash) page.FormView {
	if flash.Outcome == view.LeadSent {
		return form.WithStatus(lead.StatusSent)
	}

	if wf, ok := h.tracker.Lookup(flash.FormID); ok {
		if wf.State() == lead.StatusSent {
			return form.WithStatus(lead.StatusSent)
		}
		form.FormID = flash.FormID
		form = form.WithFields(wf.Fields())
	}

	switch flash.Outcome {
	case view.LeadFailed:
		form.Failed = true
	case view.LeadInvalid:
		form = form.WithFields(form.Fields, flash.Missing...)
	}
	return form
}

// Menu renders the mobile menu in the state given by the open query parameter.
func (h *Handler) Menu(c echo.Context) error {
	open, err := strconv.ParseBool(c.QueryParam("open"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "open must be true or false")
	}
	return h.renderer.RenderPage(c, http.StatusOK, page.MobileMenu(page.Menu{Open: open}, h.whatsApp))
}

// Legal returns a handler that renders doc.
func (h *Handler) Legal(doc page.LegalDoc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.renderer.RenderPage(c, http.StatusOK, page.LegalPage(h.meta, doc))
	}
}

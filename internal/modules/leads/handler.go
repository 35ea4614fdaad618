package leads

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/logging"
	"github.com/dolinaroz/landing/internal/middleware"
	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/rendering"
	"github.com/dolinaroz/landing/internal/view"
)

// redirectTarget is where plain form posts land after the redirect.
const redirectTarget = "/#cta"

// LeadRequest is the form body of POST /leads.
type LeadRequest struct {
	FormID  string `form:"form_id" validate:"required,uuid"`
	Name    string `form:"name"`
	Phone   string `form:"phone"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Fields returns the visitor-entered values.
func (r LeadRequest) Fields() lead.Fields {
	return lead.Fields{Name: r.Name, Phone: r.Phone, Email: r.Email, Message: r.Message}
}

// Handler runs the submission workflow of the posted form instance.
type Handler struct {
	tracker  *lead.Tracker
	renderer rendering.Renderer
	whatsApp string
}

// NewHandler creates a new Handler.
func NewHandler(tracker *lead.Tracker, renderer rendering.Renderer, whatsApp string) *Handler {
	return &Handler{tracker: tracker, renderer: renderer, whatsApp: whatsApp}
}

// Submit handles POST /leads. htmx requests get the lead card back as a
// fragment; plain form posts are redirected to the page with a flash.
func (h *Handler) Submit(c echo.Context) error {
	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form instance").SetInternal(err)
	}

	ctx := c.Request().Context()
	logger := logging.FromContext(ctx).With("form_id", req.FormID)
	wf := h.tracker.Workflow(req.FormID)

	_, err := wf.Submit(ctx, req.Fields())
	if isHTMX(c) {
		return h.fragment(c, req.FormID, wf, err)
	}

	flash, ok := flashFor(req.FormID, err)
	if !ok {
		return err
	}
	if ferr := view.SetLeadFlash(c, flash); ferr != nil {
		logger.Error("Failed to store lead flash", "error", ferr)
	}
	return c.Redirect(http.StatusSeeOther, redirectTarget)
}

// TooManyRequests answers a rate-limited submit. htmx requests get the
// failure notice as an out-of-band append and leave the form untouched.
func (h *Handler) TooManyRequests(c echo.Context) error {
	if !isHTMX(c) {
		return echo.NewHTTPError(http.StatusTooManyRequests, middleware.TooManyRequestsMessage)
	}
	c.Response().Header().Set("HX-Reswap", "none")
	return h.renderer.RenderPage(c, http.StatusTooManyRequests, page.NoticeOOB(h.whatsApp))
}

func (h *Handler) fragment(c echo.Context, formID string, wf *lead.Workflow, err error) error {
	form := page.NewServerForm(formID, h.whatsApp)

	var verr *lead.ValidationError
	var serr *lead.SubmissionError
	switch {
	case err == nil:
		return h.renderer.RenderPage(c, http.StatusOK, page.LeadCard(form.WithStatus(lead.StatusSent)))
	case errors.Is(err, lead.ErrInFlight), errors.Is(err, lead.ErrAlreadySent):
		return c.NoContent(http.StatusNoContent)
	case errors.As(err, &verr):
		return h.renderer.RenderPage(c, http.StatusUnprocessableEntity,
			page.LeadCard(form.WithFields(wf.Fields(), verr.Fields...)))
	case errors.As(err, &serr):
		return h.renderer.RenderPage(c, http.StatusOK,
			page.LeadCard(form.WithFields(wf.Fields())),
			page.NoticeOOB(h.whatsApp))
	default:
		return err
	}
}

// flashFor maps a Submit result onto the flash read by the next page load.
// ok is false for errors the workflow does not produce.
func flashFor(formID string, err error) (view.LeadFlash, bool) {
	var verr *lead.ValidationError
	var serr *lead.SubmissionError
	flash := view.LeadFlash{FormID: formID}
	switch {
	case err == nil, errors.Is(err, lead.ErrAlreadySent):
		flash.Outcome = view.LeadSent
	case errors.Is(err, lead.ErrInFlight):
		flash.Outcome = view.LeadPending
	case errors.As(err, &verr):
		flash.Outcome = view.LeadInvalid
		flash.Missing = verr.Fields
	case errors.As(err, &serr):
		flash.Outcome = view.LeadFailed
	default:
		return view.LeadFlash{}, false
	}
	return flash, true
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

package view

import (
	"encoding/json"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeyLead     = "lead"
)

// Outcomes a no-JS submission can carry across the redirect.
const (
	LeadSent    = "sent"
	LeadFailed  = "failed"
	LeadInvalid = "invalid"
	LeadPending = "pending"
)

// LeadFlash is the result of a plain form POST, read once by the next GET.
// It names the form instance; the entered values stay with the workflow on
// the server so the cookie size does not depend on them.
type LeadFlash struct {
	Outcome string   `json:"outcome"`
	FormID  string   `json:"form_id,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// SetLeadFlash stores f in the flash session.
func SetLeadFlash(c echo.Context, f LeadFlash) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(string(raw), flashKeyLead)
	return sess.Save(c.Request(), c.Response())
}

// GetLeadFlash retrieves and clears the lead flash. ok is false when none
// was set or the stored value is unreadable.
func GetLeadFlash(c echo.Context) (f LeadFlash, ok bool) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return LeadFlash{}, false
	}
	flashes := sess.Flashes(flashKeyLead)
	if len(flashes) == 0 {
		return LeadFlash{}, false
	}
	_ = sess.Save(c.Request(), c.Response())

	raw, isString := flashes[len(flashes)-1].(string)
	if !isString {
		return LeadFlash{}, false
	}
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return LeadFlash{}, false
	}
	return f, true
}

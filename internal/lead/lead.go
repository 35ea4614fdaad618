// Package lead implements the lead submission workflow: a visitor's contact
// details are validated, forwarded once to an external relay and tracked
// through the Idle, Sending and Sent states.
package lead

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Status is the lifecycle of one lead form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	default:
		return "unknown"
	}
}

// Fields is the typed form payload forwarded to the relay.
// Email and Message are optional; no format checks are applied to any field.
type Fields struct {
	AccessKey string `form:"access_key" json:"-" validate:"required"`
	Name      string `form:"name" json:"name" validate:"required"`
	Phone     string `form:"phone" json:"phone" validate:"required"`
	Email     string `form:"email" json:"email,omitempty"`
	Message   string `form:"message" json:"message,omitempty"`
}

// Normalize trims surrounding whitespace and applies NFC normalization so the
// relay receives the same bytes regardless of how the browser composed them.
func (f Fields) Normalize() Fields {
	return Fields{
		AccessKey: strings.TrimSpace(f.AccessKey),
		Name:      clean(f.Name),
		Phone:     clean(f.Phone),
		Email:     clean(f.Email),
		Message:   strings.TrimSpace(norm.NFC.String(f.Message)),
	}
}

// IsZero reports whether no visitor-entered value is present.
func (f Fields) IsZero() bool {
	return f.Name == "" && f.Phone == "" && f.Email == "" && f.Message == ""
}

func clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Ack is returned when the relay accepted the lead.
type Ack struct {
	SentAt time.Time
}

// Relay forwards a lead to the external intake endpoint.
// Any error, transport or HTTP level, counts as a failed delivery.
type Relay interface {
	Deliver(ctx context.Context, fields Fields) error
}

// RelayFunc adapts a function to the Relay interface.
type RelayFunc func(ctx context.Context, fields Fields) error

func (f RelayFunc) Deliver(ctx context.Context, fields Fields) error {
	return f(ctx, fields)
}

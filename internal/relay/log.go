package relay

import (
	"context"
	"unicode/utf8"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/logging"
)

// LogRelay prints leads to the log instead of sending them.
type LogRelay struct{}

// Deliver logs which fields the lead carries and always succeeds. The
// values themselves are not logged.
func (LogRelay) Deliver(ctx context.Context, fields lead.Fields) error {
	logging.FromContext(ctx).Info("--- Lead (Logged) ---",
		"has_name", fields.Name != "",
		"has_phone", fields.Phone != "",
		"has_email", fields.Email != "",
		"has_message", fields.Message != "",
		"message_length", utf8.RuneCountInString(fields.Message),
	)
	return nil
}

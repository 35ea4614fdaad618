package leads

import (
	"context"
	"log/slog"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/pubsub"
)

// EventLogger writes an audit line for every lead that reached the relay.
type EventLogger struct {
	subscriber pubsub.Subscriber
	logger     *slog.Logger
}

// NewEventLogger creates a subscriber that logs lead events to logger.
func NewEventLogger(sub pubsub.Subscriber, logger *slog.Logger) *EventLogger {
	return &EventLogger{subscriber: sub, logger: logger}
}

// Start subscribes to lead events until ctx is canceled.
func (l *EventLogger) Start(ctx context.Context) error {
	if err := pubsub.Subscribe(ctx, l.subscriber, lead.SubmittedEvent, l.handleSubmitted); err != nil {
		return err
	}
	return pubsub.Subscribe(ctx, l.subscriber, lead.FailedEvent, l.handleFailed)
}

func (l *EventLogger) handleSubmitted(ctx context.Context, e lead.AttemptEvent) error {
	l.logger.Info("Lead delivered",
		"form_id", e.FormID,
		"has_email", e.HasEmail,
		"has_message", e.HasMessage,
		"duration", e.Duration,
	)
	return nil
}

func (l *EventLogger) handleFailed(ctx context.Context, e lead.AttemptEvent) error {
	l.logger.Warn("Lead delivery failed",
		"form_id", e.FormID,
		"status_code", e.StatusCode,
		"error", e.Error,
		"duration", e.Duration,
	)
	return nil
}

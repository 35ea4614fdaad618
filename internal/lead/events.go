package lead

import (
	"time"

	"github.com/dolinaroz/landing/internal/pubsub"
)

// Outcome labels one Submit call for events and metrics.
type Outcome string

const (
	OutcomeSent        Outcome = "sent"
	OutcomeFailed      Outcome = "failed"
	OutcomeRejected    Outcome = "rejected"
	OutcomeInFlight    Outcome = "in_flight"
	OutcomeAlreadySent Outcome = "already_sent"
)

// AttemptEvent describes a submission that reached the relay. It carries no
// visitor-entered values.
type AttemptEvent struct {
	FormID     string        `json:"form_id"`
	HasEmail   bool          `json:"has_email"`
	HasMessage bool          `json:"has_message"`
	Outcome    Outcome       `json:"outcome"`
	StatusCode int           `json:"status_code,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
	At         time.Time     `json:"at"`
}

var (
	// SubmittedEvent is published after the relay accepted a lead.
	SubmittedEvent = pubsub.NewEvent[AttemptEvent]("lead.submitted", "A lead was accepted by the relay")
	// FailedEvent is published after a relay delivery failed.
	FailedEvent = pubsub.NewEvent[AttemptEvent]("lead.failed", "A lead could not be delivered to the relay")
)

// Recorder receives the outcome of every Submit call.
type Recorder interface {
	ObserveSubmission(outcome Outcome, relayDuration time.Duration)
}

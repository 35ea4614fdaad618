package lead

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dolinaroz/landing/internal/logging"
	"github.com/dolinaroz/landing/internal/pubsub"
)

// Workflow owns the submission state of a single lead form. The state guard
// is held only around transitions, never across the relay call, so a second
// Submit while one is in flight returns ErrInFlight instead of queueing.
type Workflow struct {
	mu     sync.Mutex
	status Status
	fields Fields

	id        string
	accessKey string
	relay     Relay
	validate  *validator.Validate
	recorder  Recorder
	events    pubsub.Publisher
	now       func() time.Time
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithID tags events with the form instance the workflow belongs to.
func WithID(id string) Option {
	return func(w *Workflow) { w.id = id }
}

// WithAccessKey stamps the relay caller identifier onto every submission.
func WithAccessKey(key string) Option {
	return func(w *Workflow) { w.accessKey = key }
}

// WithRecorder reports outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(w *Workflow) { w.recorder = r }
}

// WithEvents publishes attempt events to p.
func WithEvents(p pubsub.Publisher) Option {
	return func(w *Workflow) { w.events = p }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// NewWorkflow returns an Idle workflow delivering through relay.
func NewWorkflow(relay Relay, opts ...Option) *Workflow {
	w := &Workflow{
		status:   StatusIdle,
		relay:    relay,
		validate: NewValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewValidator returns a validator that reports fields by their form names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})
	return v
}

// State returns the current lifecycle state.
func (w *Workflow) State() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Fields returns the values currently held by the form: what the visitor
// last submitted while Idle, nothing once Sent.
func (w *Workflow) Fields() Fields {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fields
}

// SubmitEnabled reports whether the submit control accepts input.
func (w *Workflow) SubmitEnabled() bool {
	return w.State() == StatusIdle
}

// Submit validates fields and delivers them to the relay once.
//
// Sending and Sent workflows reject the call without side effects. Empty
// required fields yield a *ValidationError and the relay is not called. A
// relay failure returns a *SubmissionError, moves the workflow back to Idle
// and keeps the submitted values; success moves it to Sent and clears them.
func (w *Workflow) Submit(ctx context.Context, fields Fields) (Ack, error) {
	fields = fields.Normalize()
	if w.accessKey != "" {
		fields.AccessKey = w.accessKey
	}

	w.mu.Lock()
	switch w.status {
	case StatusSending:
		w.mu.Unlock()
		w.record(OutcomeInFlight, 0)
		return Ack{}, ErrInFlight
	case StatusSent:
		w.mu.Unlock()
		w.record(OutcomeAlreadySent, 0)
		return Ack{}, ErrAlreadySent
	}
	w.fields = fields
	if err := w.check(fields); err != nil {
		w.mu.Unlock()
		w.record(OutcomeRejected, 0)
		return Ack{}, err
	}
	w.status = StatusSending
	w.mu.Unlock()

	start := w.now()
	err := w.relay.Deliver(ctx, fields)
	elapsed := w.now().Sub(start)

	event := AttemptEvent{
		FormID:     w.id,
		HasEmail:   fields.Email != "",
		HasMessage: fields.Message != "",
		Duration:   elapsed,
		At:         w.now(),
	}

	if err != nil {
		subErr := asSubmissionError(err)

		w.mu.Lock()
		w.status = StatusIdle
		w.mu.Unlock()

		logging.FromContext(ctx).Error("Lead submission failed",
			"form_id", w.id, "status_code", subErr.StatusCode, "error", subErr)

		event.Outcome = OutcomeFailed
		event.StatusCode = subErr.StatusCode
		event.Error = subErr.Error()
		w.record(OutcomeFailed, elapsed)
		w.publish(ctx, FailedEvent, event)
		return Ack{}, subErr
	}

	w.mu.Lock()
	w.status = StatusSent
	w.fields = Fields{}
	w.mu.Unlock()

	event.Outcome = OutcomeSent
	w.record(OutcomeSent, elapsed)
	w.publish(ctx, SubmittedEvent, event)
	return Ack{SentAt: event.At}, nil
}

func (w *Workflow) check(fields Fields) error {
	err := w.validate.Struct(fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &ValidationError{Fields: missing}
}

func (w *Workflow) record(outcome Outcome, d time.Duration) {
	if w.recorder != nil {
		w.recorder.ObserveSubmission(outcome, d)
	}
}

func (w *Workflow) publish(ctx context.Context, event pubsub.Event[AttemptEvent], payload AttemptEvent) {
	if w.events == nil {
		return
	}
	if err := pubsub.Publish(ctx, w.events, event, payload); err != nil {
		logging.FromContext(ctx).Warn("Failed to publish lead event", "topic", event.Name(), "error", err)
	}
}

package lead

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_ReturnsSameWorkflowPerForm(t *testing.T) {
	tracker := NewTracker(time.Hour, func(formID string) *Workflow {
		return NewWorkflow(&recordingRelay{}, WithID(formID), WithAccessKey(testAccessKey))
	})

	a := tracker.Workflow("form-a")
	b := tracker.Workflow("form-b")

	assert.Same(t, a, tracker.Workflow("form-a"))
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, tracker.Len())
	assert.Equal(t, StatusIdle, b.State(), "an unseen form starts idle")
}

func TestTracker_SweepsExpiredEntries(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(time.Minute, func(formID string) *Workflow {
		return NewWorkflow(&recordingRelay{}, WithAccessKey(testAccessKey))
	})
	tracker.now = func() time.Time { return now }

	sent := tracker.Workflow("sent-form")
	_, err := sent.Submit(context.Background(), ivan())
	require.NoError(t, err)
	tracker.Workflow("idle-form")

	now = now.Add(2 * time.Minute)
	fresh := tracker.Workflow("new-form")

	assert.Equal(t, 1, tracker.Len(), "expired entries should be dropped")
	assert.Same(t, fresh, tracker.Workflow("new-form"))

	again := tracker.Workflow("sent-form")
	assert.Equal(t, StatusIdle, again.State(), "an expired form starts over")
}

func TestTracker_KeepsInFlightWorkflows(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	release := make(chan struct{})
	entered := make(chan struct{})

	tracker := NewTracker(time.Minute, func(formID string) *Workflow {
		return NewWorkflow(RelayFunc(func(ctx context.Context, f Fields) error {
			close(entered)
			<-release
			return nil
		}), WithAccessKey(testAccessKey))
	})
	tracker.now = func() time.Time { return now }

	wf := tracker.Workflow("slow-form")
	done := make(chan error, 1)
	go func() {
		_, err := wf.Submit(context.Background(), ivan())
		done <- err
	}()
	<-entered

	now = now.Add(5 * time.Minute)
	assert.Same(t, wf, tracker.Workflow("slow-form"))

	close(release)
	require.NoError(t, <-done)
}

func TestTracker_Lookup(t *testing.T) {
	tracker := NewTracker(time.Hour, func(formID string) *Workflow {
		return NewWorkflow(&recordingRelay{}, WithID(formID), WithAccessKey(testAccessKey))
	})

	_, ok := tracker.Lookup("unknown")
	assert.False(t, ok)
	assert.Zero(t, tracker.Len(), "lookup must not create workflows")

	wf := tracker.Workflow("form-a")
	got, ok := tracker.Lookup("form-a")
	require.True(t, ok)
	assert.Same(t, wf, got)
}

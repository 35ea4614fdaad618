package lead

import (
	"sync"
	"time"
)

// Tracker keeps one Workflow per rendered form instance so the submission
// lifecycle is enforced on the server as well as in the browser.
type Tracker struct {
	mu        sync.Mutex
	entries   map[string]*trackedWorkflow
	ttl       time.Duration
	factory   func(formID string) *Workflow
	now       func() time.Time
	lastSweep time.Time
}

type trackedWorkflow struct {
	workflow *Workflow
	seen     time.Time
}

// NewTracker creates a tracker whose idle entries expire after ttl.
// factory builds the Idle workflow for a form instance seen for the first time.
func NewTracker(ttl time.Duration, factory func(formID string) *Workflow) *Tracker {
	return &Tracker{
		entries: make(map[string]*trackedWorkflow),
		ttl:     ttl,
		factory: factory,
		now:     time.Now,
	}
}

// Workflow returns the workflow of formID, creating an Idle one if needed.
func (t *Tracker) Workflow(formID string) *Workflow {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.lastSweep) >= t.ttl {
		t.sweep(now)
	}

	entry, ok := t.entries[formID]
	if !ok {
		entry = &trackedWorkflow{workflow: t.factory(formID)}
		t.entries[formID] = entry
	}
	entry.seen = now
	return entry.workflow
}

// Lookup returns the workflow of formID without creating one. ok is false
// for unknown or expired form instances.
func (t *Tracker) Lookup(formID string) (wf *Workflow, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[formID]
	if !ok {
		return nil, false
	}
	entry.seen = t.now()
	return entry.workflow, true
}

// Len returns the number of tracked form instances.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// sweep drops entries not seen within ttl. In-flight workflows are kept.
func (t *Tracker) sweep(now time.Time) {
	for id, entry := range t.entries {
		if now.Sub(entry.seen) < t.ttl {
			continue
		}
		if entry.workflow.State() == StatusSending {
			continue
		}
		delete(t.entries, id)
	}
	t.lastSweep = now
}

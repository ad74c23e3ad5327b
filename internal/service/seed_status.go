package service

import (
	"sync"
	"time"
)

// SeedState is the lifecycle state of the seeding routine.
type SeedState string

const (
	SeedStateIdle      SeedState = "idle"      // No seed attempted by this process
	SeedStateRunning   SeedState = "running"   // Inserts in progress
	SeedStateCompleted SeedState = "completed" // All three groups inserted
	SeedStateSkipped   SeedState = "skipped"   // Store already held a complete seed
	SeedStateFailed    SeedState = "failed"    // Nothing was left behind
	SeedStatePartial   SeedState = "partial"   // Some groups are in the store, others are not
)

// SeedStep names one insert group of the seed.
type SeedStep string

const (
	SeedStepMesocycles      SeedStep = "mesociclos"
	SeedStepWeeklyTrainings SeedStep = "sesiones_semanales"
	SeedStepPlan            SeedStep = "planificacion"
)

var seedSteps = []SeedStep{SeedStepMesocycles, SeedStepWeeklyTrainings, SeedStepPlan}

// SeedStatus is a snapshot of seed progress, exposed for diagnostics.
type SeedStatus struct {
	State          SeedState  `json:"state"`
	CompletedSteps []SeedStep `json:"completed_steps"`
	LastError      string     `json:"last_error,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

type seedTracker struct {
	mu     sync.Mutex
	status SeedStatus
	now    func() time.Time
}

func newSeedTracker() *seedTracker {
	return &seedTracker{
		status: SeedStatus{State: SeedStateIdle, CompletedSteps: []SeedStep{}},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (t *seedTracker) begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	started := t.now()
	t.status = SeedStatus{State: SeedStateRunning, CompletedSteps: []SeedStep{}, StartedAt: &started}
}

// stepDone is idempotent: a retried transaction reports the same step twice.
func (t *seedTracker) stepDone(step SeedStep) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.status.CompletedSteps {
		if s == step {
			return
		}
	}
	t.status.CompletedSteps = append(t.status.CompletedSteps, step)
}

func (t *seedTracker) complete() {
	t.finish(SeedStateCompleted, "")
}

// fail records err. With rolledBack the store holds nothing from this run.
func (t *seedTracker) fail(err error, rolledBack bool) {
	t.mu.Lock()
	if rolledBack {
		t.status.CompletedSteps = []SeedStep{}
	}
	state := SeedStateFailed
	if len(t.status.CompletedSteps) > 0 {
		state = SeedStatePartial
	}
	t.mu.Unlock()
	t.finish(state, err.Error())
}

// observe records a run that found existing data. present lists the groups found in
// the store.
func (t *seedTracker) observe(present []SeedStep) {
	state := SeedStateSkipped
	if len(present) < len(seedSteps) {
		state = SeedStatePartial
	}
	t.mu.Lock()
	started := t.now()
	t.status = SeedStatus{State: state, CompletedSteps: append([]SeedStep{}, present...), StartedAt: &started}
	t.mu.Unlock()
	t.finish(state, "")
}

func (t *seedTracker) finish(state SeedState, lastError string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	finished := t.now()
	t.status.State = state
	t.status.LastError = lastError
	t.status.FinishedAt = &finished
}

func (t *seedTracker) snapshot() SeedStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.status
	out.CompletedSteps = append([]SeedStep{}, t.status.CompletedSteps...)
	if out.StartedAt != nil {
		started := *out.StartedAt
		out.StartedAt = &started
	}
	if out.FinishedAt != nil {
		finished := *out.FinishedAt
		out.FinishedAt = &finished
	}
	return out
}

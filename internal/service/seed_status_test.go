package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newFixedTracker() *seedTracker {
	tr := newSeedTracker()
	tr.now = func() time.Time { return time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC) }
	return tr
}

func TestSeedTracker_StartsIdle(t *testing.T) {
	status := newSeedTracker().snapshot()
	assert.Equal(t, SeedStateIdle, status.State)
	assert.Empty(t, status.CompletedSteps)
	assert.Nil(t, status.StartedAt)
}

func TestSeedTracker_StepDoneIsIdempotent(t *testing.T) {
	tr := newFixedTracker()
	tr.begin()
	tr.stepDone(SeedStepMesocycles)
	tr.stepDone(SeedStepMesocycles)

	assert.Equal(t, []SeedStep{SeedStepMesocycles}, tr.snapshot().CompletedSteps)
	assert.Equal(t, SeedStateRunning, tr.snapshot().State)
}

func TestSeedTracker_Fail(t *testing.T) {
	cases := []struct {
		name       string
		steps      []SeedStep
		rolledBack bool
		want       SeedState
		wantSteps  int
	}{
		{"nothing inserted", nil, false, SeedStateFailed, 0},
		{"rolled back", []SeedStep{SeedStepMesocycles}, true, SeedStateFailed, 0},
		{"left behind", []SeedStep{SeedStepMesocycles, SeedStepWeeklyTrainings}, false, SeedStatePartial, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := newFixedTracker()
			tr.begin()
			for _, s := range c.steps {
				tr.stepDone(s)
			}
			tr.fail(errors.New("boom"), c.rolledBack)

			status := tr.snapshot()
			assert.Equal(t, c.want, status.State)
			assert.Len(t, status.CompletedSteps, c.wantSteps)
			assert.Equal(t, "boom", status.LastError)
			assert.NotNil(t, status.FinishedAt)
		})
	}
}

func TestSeedTracker_Observe(t *testing.T) {
	tr := newFixedTracker()
	tr.observe(seedSteps)
	assert.Equal(t, SeedStateSkipped, tr.snapshot().State)

	tr.observe([]SeedStep{SeedStepMesocycles, SeedStepPlan})
	status := tr.snapshot()
	assert.Equal(t, SeedStatePartial, status.State)
	assert.Equal(t, []SeedStep{SeedStepMesocycles, SeedStepPlan}, status.CompletedSteps)
}

func TestSeedTracker_SnapshotIsDetached(t *testing.T) {
	tr := newFixedTracker()
	tr.begin()
	tr.stepDone(SeedStepMesocycles)

	snap := tr.snapshot()
	snap.CompletedSteps[0] = SeedStepPlan
	*snap.StartedAt = time.Time{}

	again := tr.snapshot()
	assert.Equal(t, SeedStepMesocycles, again.CompletedSteps[0])
	assert.False(t, again.StartedAt.IsZero())
}

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/service"
	"github.com/alexanderramin/fitloop/internal/teatest"
	"github.com/alexanderramin/fitloop/internal/testutil"
	"github.com/alexanderramin/fitloop/internal/timer"
)

// TestDriver wraps teatest.Driver with workout-specific inspection methods.
// Ticks are fed by hand; the real one-second clock is disabled.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver starts plan on a fresh engine with the given lead-in and
// drains Init.
func NewTestDriver(t *testing.T, plan domain.WorkoutPlan, leadIn int, workouts service.WorkoutService) *TestDriver {
	t.Helper()
	m, err := newWorkoutModel(context.Background(), timer.New(timer.WithLeadIn(leadIn)), plan, workouts,
		withManualTicks(), withClock(func() time.Time { return testutil.FixedNow }))
	if err != nil {
		t.Fatalf("starting workout model: %v", err)
	}
	return newWorkoutDriverFor(t, m)
}

// newWorkoutDriverFor drives an already started model. Recording a run hits
// SQLite, so Cmds get a generous timeout.
func newWorkoutDriverFor(t *testing.T, m *workoutModel) *TestDriver {
	t.Helper()
	withManualTicks()(m)
	d := teatest.New(t, m, teatest.WithSize(80, 24), teatest.WithCmdTimeout(2*time.Second))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Tick advances the workout by n seconds.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	d.SendN(tickMsg{}, n)
}

// TickUntilDone ticks until the model quits, failing after limit ticks.
func (d *TestDriver) TickUntilDone(limit int) {
	d.T.Helper()
	for i := 0; i < limit && !d.Quitting; i++ {
		d.Send(tickMsg{})
	}
	if !d.Quitting {
		d.T.Fatalf("workout still running after %d ticks", limit)
	}
}

// ── Workout-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) workout() *workoutModel {
	return d.Model.(*workoutModel)
}

// Snapshot returns the last engine snapshot the model rendered.
func (d *TestDriver) Snapshot() timer.Snapshot {
	return d.workout().snap
}

// Confirming reports whether the quit prompt is open.
func (d *TestDriver) Confirming() bool {
	return d.workout().confirming
}

// Result returns the recorded run, if any.
func (d *TestDriver) Result() *service.RecordResult {
	return d.workout().result
}

// Err returns the error from recording the run, if any.
func (d *TestDriver) Err() error {
	return d.workout().err
}

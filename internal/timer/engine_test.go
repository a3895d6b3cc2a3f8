package timer

import (
	"testing"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timed(name string, d int) domain.Exercise {
	return domain.Exercise{Name: name, Kind: domain.ExerciseTimed, Duration: d}
}

func setsReps(name string, sets, work, rest int) domain.Exercise {
	return domain.Exercise{Name: name, Kind: domain.ExerciseSetsReps, Sets: sets, Reps: 10, WorkSeconds: work, RestSeconds: rest}
}

func plan(exercises ...domain.Exercise) domain.WorkoutPlan {
	return domain.WorkoutPlan{Key: "test", Name: "Test", Exercises: exercises}
}

// phaseStep is a phase as observed from outside: its label and full length.
type phaseStep struct {
	label   string
	seconds int
}

// runToCompletion ticks until the engine completes and returns every
// distinct phase it passed through plus the number of ticks used.
func runToCompletion(t *testing.T, e *Engine) ([]phaseStep, int) {
	t.Helper()
	s := e.Snapshot()
	steps := []phaseStep{{s.PhaseLabel, s.PhaseSeconds}}
	ticks := 0
	for !s.Terminal() {
		prev := s
		s = e.Tick()
		ticks++
		require.Less(t, ticks, 100000, "engine did not terminate")
		if s.Phase != prev.Phase || s.ExerciseIndex != prev.ExerciseIndex || s.CurrentSet != prev.CurrentSet {
			steps = append(steps, phaseStep{s.PhaseLabel, s.PhaseSeconds})
		}
	}
	return steps, ticks
}

func TestStart_EmptyPlan(t *testing.T) {
	e := New()
	_, err := e.Start(plan())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.Equal(t, OutcomeIdle, e.Outcome())
}

func TestStart_MalformedPlan(t *testing.T) {
	e := New()
	_, err := e.Start(plan(setsReps("Squats", 3, 0, 10)))
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestStart_InitialState(t *testing.T) {
	e := New()
	s, err := e.Start(plan(timed("Warm-up", 60)))
	require.NoError(t, err)

	assert.Equal(t, PhaseCountdown, s.Phase)
	assert.Equal(t, DefaultLeadIn, s.SecondsRemaining)
	assert.Equal(t, 0, s.ExerciseIndex)
	assert.Equal(t, 1, s.CurrentSet)
	assert.Equal(t, 0.0, s.ProgressFraction)
	assert.False(t, s.Paused)
	assert.Equal(t, "Next: Warm-up", s.NextUp)
	assert.Equal(t, OutcomeRunning, e.Outcome())
}

func TestScenario_TimedThenTwoSets(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 5), setsReps("Squats", 2, 3, 2)))
	require.NoError(t, err)

	steps, ticks := runToCompletion(t, e)
	assert.Equal(t, []phaseStep{
		{"Timed", 5},
		{"Work", 3},
		{"Rest", 2},
		{"Work", 3},
		{"Complete", 0},
	}, steps)
	assert.Equal(t, 13, ticks)

	s := e.Snapshot()
	assert.Equal(t, PhaseComplete, s.Phase)
	assert.Equal(t, 1.0, s.ProgressFraction)
	assert.Equal(t, 2, s.ExerciseIndex)
	assert.Equal(t, 13, s.Elapsed)
	assert.Equal(t, OutcomeCompleted, e.Outcome())
}

func TestScenario_WithLeadIn(t *testing.T) {
	e := New()
	_, err := e.Start(plan(timed("Warm-up", 5), setsReps("Squats", 2, 3, 2)))
	require.NoError(t, err)

	steps, ticks := runToCompletion(t, e)
	assert.Equal(t, phaseStep{"Get Ready", DefaultLeadIn}, steps[0])
	assert.Equal(t, phaseStep{"Timed", 5}, steps[1])
	assert.Equal(t, 13+DefaultLeadIn, ticks)
}

func TestSingleSet_NoRest(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(setsReps("Plank", 1, 10, 30), timed("Cool-down", 2)))
	require.NoError(t, err)

	steps, ticks := runToCompletion(t, e)
	assert.Equal(t, []phaseStep{
		{"Work", 10},
		{"Timed", 2},
		{"Complete", 0},
	}, steps)
	assert.Equal(t, 12, ticks)
}

func TestSingleSet_LastExerciseCompletes(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(setsReps("Plank", 1, 10, 30)))
	require.NoError(t, err)

	for i := 0; i < 9; i++ {
		e.Tick()
	}
	assert.Equal(t, PhaseWork, e.Snapshot().Phase)
	s := e.Tick()
	assert.Equal(t, PhaseComplete, s.Phase)
}

func TestSetExhaustion(t *testing.T) {
	for _, sets := range []int{1, 2, 3, 5} {
		e := New(WithLeadIn(0))
		_, err := e.Start(plan(setsReps("Squats", sets, 2, 1)))
		require.NoError(t, err)

		steps, _ := runToCompletion(t, e)
		var work, rest int
		for _, st := range steps {
			switch st.label {
			case "Work":
				work++
			case "Rest":
				rest++
			}
		}
		assert.Equal(t, sets, work, "sets=%d", sets)
		assert.Equal(t, sets-1, rest, "sets=%d", sets)
	}
}

func TestCurrentSetResetsOnAdvance(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(setsReps("Squats", 2, 1, 1), setsReps("Lunges", 3, 1, 1)))
	require.NoError(t, err)

	e.Tick() // work 1 -> rest
	s := e.Tick()
	assert.Equal(t, 2, s.CurrentSet)
	s = e.Tick() // final work -> next exercise
	assert.Equal(t, 1, s.ExerciseIndex)
	assert.Equal(t, 1, s.CurrentSet)
	assert.Equal(t, "Lunges", s.ExerciseName)
	assert.Equal(t, 3, s.TotalSets)
}

func TestPause_Idempotent(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 10)))
	require.NoError(t, err)

	e.Tick()
	once := e.Pause()
	twice := e.Pause()
	assert.Equal(t, once, twice)
	assert.True(t, twice.Paused)

	for i := 0; i < 5; i++ {
		s := e.Tick()
		assert.Equal(t, 9, s.SecondsRemaining)
	}
	assert.Equal(t, 1, e.Snapshot().Elapsed)

	s := e.Resume()
	assert.False(t, s.Paused)
	s = e.Tick()
	assert.Equal(t, 8, s.SecondsRemaining)
}

func TestResume_WhenRunningIsNoop(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 10)))
	require.NoError(t, err)

	before := e.Snapshot()
	assert.Equal(t, before, e.Resume())
}

func TestTogglePause(t *testing.T) {
	e := New()
	_, err := e.Start(plan(timed("Warm-up", 10)))
	require.NoError(t, err)

	assert.True(t, e.TogglePause().Paused)
	assert.False(t, e.TogglePause().Paused)
}

func TestSkip_EquivalentToTicks(t *testing.T) {
	build := func() *Engine {
		e := New(WithLeadIn(3))
		_, err := e.Start(plan(timed("Warm-up", 4), setsReps("Squats", 3, 5, 2), timed("Cool-down", 3)))
		require.NoError(t, err)
		return e
	}

	// Compare at every phase boundary of the run.
	for step := 0; ; step++ {
		skipper := build()
		ticker := build()
		for i := 0; i < step; i++ {
			skipper.Skip()
			ticker.Skip()
		}
		if skipper.Snapshot().Terminal() {
			break
		}
		remaining := ticker.Snapshot().SecondsRemaining
		for i := 0; i < remaining; i++ {
			ticker.Tick()
		}
		got := skipper.Skip()
		want := ticker.Snapshot()

		assert.Equal(t, want.Phase, got.Phase, "step %d", step)
		assert.Equal(t, want.ExerciseIndex, got.ExerciseIndex, "step %d", step)
		assert.Equal(t, want.CurrentSet, got.CurrentSet, "step %d", step)
		assert.Equal(t, want.SecondsRemaining, got.SecondsRemaining, "step %d", step)
		assert.Equal(t, want.ProgressFraction, got.ProgressFraction, "step %d", step)
	}
}

func TestSkip_WhilePaused(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 10), timed("Stretch", 5)))
	require.NoError(t, err)

	e.Pause()
	s := e.Skip()
	assert.Equal(t, "Stretch", s.ExerciseName)
	assert.True(t, s.Paused)
}

func TestCountdownSkipEntersFirstExercise(t *testing.T) {
	e := New()
	_, err := e.Start(plan(setsReps("Squats", 3, 45, 60)))
	require.NoError(t, err)

	s := e.Skip()
	assert.Equal(t, PhaseWork, s.Phase)
	assert.Equal(t, 45, s.SecondsRemaining)
	assert.Equal(t, "Work", s.PhaseLabel)
	assert.Equal(t, 0, s.ExerciseIndex)
}

func TestRestNextUpText(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(setsReps("Squats", 3, 1, 5), timed("Cool-down", 5)))
	require.NoError(t, err)

	assert.Empty(t, e.Snapshot().NextUp)
	s := e.Tick()
	assert.Equal(t, PhaseRest, s.Phase)
	assert.Equal(t, "Next: Squats - Set 2", s.NextUp)

	e.Skip()
	e.Skip()
	s = e.Skip() // final set of squats
	assert.Equal(t, 3, s.CurrentSet)
	assert.Equal(t, "Next: Cool-down", s.NextUp)

	s = e.Skip()
	assert.Equal(t, "Last exercise", s.NextUp)
}

func TestClose_StopsRun(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 10), timed("Stretch", 5)))
	require.NoError(t, err)

	e.Tick()
	closed := e.Close()
	assert.True(t, closed.Closed)
	assert.Equal(t, OutcomeAbandoned, e.Outcome())

	assert.Equal(t, closed, e.Tick())
	assert.Equal(t, closed, e.Skip())
	assert.Equal(t, closed, e.Pause())
	assert.Equal(t, closed, e.Resume())
	assert.Equal(t, closed, e.Close())
}

func TestComplete_IsTerminal(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 1)))
	require.NoError(t, err)

	done := e.Tick()
	require.Equal(t, PhaseComplete, done.Phase)

	assert.Equal(t, done, e.Tick())
	assert.Equal(t, done, e.Skip())
	assert.Equal(t, done, e.Pause())
	assert.Equal(t, done, e.Close())
	assert.Equal(t, OutcomeCompleted, e.Outcome())
}

func TestIdleEngineIgnoresCommands(t *testing.T) {
	e := New()
	assert.Equal(t, "Idle", e.Tick().PhaseLabel)
	assert.Equal(t, "Idle", e.Skip().PhaseLabel)
	e.Pause()
	e.Close()
	assert.Equal(t, OutcomeIdle, e.Outcome())
}

func TestRestartDiscardsPreviousRun(t *testing.T) {
	e := New(WithLeadIn(0))
	_, err := e.Start(plan(timed("Warm-up", 3)))
	require.NoError(t, err)
	e.Close()

	s, err := e.Start(plan(timed("Stretch", 7)))
	require.NoError(t, err)
	assert.False(t, s.Closed)
	assert.Equal(t, 7, s.SecondsRemaining)
	assert.Equal(t, 0, s.Elapsed)
	assert.Equal(t, OutcomeRunning, e.Outcome())
}

func TestStart_CopiesExercises(t *testing.T) {
	p := plan(timed("Warm-up", 3))
	e := New(WithLeadIn(0))
	_, err := e.Start(p)
	require.NoError(t, err)

	p.Exercises[0].Duration = 100
	p.Exercises[0].Name = "Changed"
	assert.Equal(t, "Warm-up", e.Snapshot().ExerciseName)
	assert.Equal(t, 3, e.Plan().Exercises[0].Duration)
}

func TestWithLeadIn_NegativeIgnored(t *testing.T) {
	e := New(WithLeadIn(-3))
	s, err := e.Start(plan(timed("Warm-up", 3)))
	require.NoError(t, err)
	assert.Equal(t, DefaultLeadIn, s.SecondsRemaining)
}

func TestPhaseFraction(t *testing.T) {
	s := Snapshot{PhaseSeconds: 10, SecondsRemaining: 4}
	assert.InDelta(t, 0.6, s.PhaseFraction(), 1e-9)
	assert.Equal(t, 1.0, Snapshot{}.PhaseFraction())
}

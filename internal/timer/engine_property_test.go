package timer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPlan(rng *rand.Rand) domain.WorkoutPlan {
	n := rng.Intn(6) + 1
	exercises := make([]domain.Exercise, n)
	for i := range exercises {
		name := fmt.Sprintf("ex-%d", i)
		if rng.Intn(2) == 0 {
			exercises[i] = timed(name, rng.Intn(20)+1)
		} else {
			exercises[i] = setsReps(name, rng.Intn(4)+1, rng.Intn(10)+1, rng.Intn(10)+1)
		}
	}
	return plan(exercises...)
}

// TestEngine_Invariants_RandomCommands drives random plans with a random mix
// of ticks, skips and pause toggles and checks the run invariants after every
// call.
func TestEngine_Invariants_RandomCommands(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		p := randomPlan(rng)
		e := New(WithLeadIn(rng.Intn(6)))
		s, err := e.Start(p)
		require.NoError(t, err)

		prevIndex := s.ExerciseIndex
		prevProgress := s.ProgressFraction
		calls := 0
		for !s.Terminal() {
			switch r := rng.Intn(10); {
			case r < 7:
				s = e.Tick()
			case r < 9:
				s = e.Skip()
			default:
				s = e.TogglePause()
			}
			calls++
			require.Less(t, calls, 100000, "trial %d did not terminate", trial)

			assert.GreaterOrEqual(t, s.ExerciseIndex, prevIndex, "trial %d: index regressed", trial)
			assert.LessOrEqual(t, s.ExerciseIndex, len(p.Exercises), "trial %d: index past end", trial)
			assert.GreaterOrEqual(t, s.SecondsRemaining, 0, "trial %d: negative remaining", trial)
			assert.GreaterOrEqual(t, s.ProgressFraction, prevProgress, "trial %d: progress regressed", trial)
			assert.LessOrEqual(t, s.ProgressFraction, 1.0, "trial %d: progress above 1", trial)
			if s.Phase != PhaseComplete {
				assert.Less(t, s.ProgressFraction, 1.0, "trial %d: progress 1 before completion", trial)
				assert.GreaterOrEqual(t, s.CurrentSet, 1, "trial %d", trial)
				assert.LessOrEqual(t, s.CurrentSet, s.TotalSets, "trial %d", trial)
			}
			if s.ExerciseIndex > prevIndex && s.Phase != PhaseComplete {
				assert.Equal(t, 1, s.CurrentSet, "trial %d: set not reset on advance", trial)
			}
			prevIndex = s.ExerciseIndex
			prevProgress = s.ProgressFraction
		}

		assert.Equal(t, PhaseComplete, s.Phase, "trial %d", trial)
		assert.Equal(t, 1.0, s.ProgressFraction, "trial %d", trial)
	}
}

// TestEngine_TotalTicks_MatchesEstimate checks that an unpaused run with no
// skips takes exactly lead-in plus the plan's estimated seconds.
func TestEngine_TotalTicks_MatchesEstimate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		p := randomPlan(rng)
		leadIn := rng.Intn(6)
		e := New(WithLeadIn(leadIn))
		_, err := e.Start(p)
		require.NoError(t, err)

		_, ticks := runToCompletion(t, e)
		assert.Equal(t, leadIn+p.EstimatedSeconds(), ticks, "trial %d", trial)
		assert.Equal(t, ticks, e.Snapshot().Elapsed, "trial %d", trial)
	}
}

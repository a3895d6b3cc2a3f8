package timer

import "fmt"

// Snapshot is the display state returned after every engine call.
type Snapshot struct {
	ExerciseName     string
	Description      string
	PhaseLabel       string
	Phase            Phase
	SecondsRemaining int
	PhaseSeconds     int
	CurrentSet       int
	TotalSets        int
	Reps             int
	ExerciseIndex    int
	ExerciseCount    int
	ProgressFraction float64
	Paused           bool
	Closed           bool
	Elapsed          int
	NextUp           string
}

// PhaseFraction is the share of the current phase already elapsed.
func (s Snapshot) PhaseFraction() float64 {
	if s.PhaseSeconds <= 0 {
		return 1
	}
	return float64(s.PhaseSeconds-s.SecondsRemaining) / float64(s.PhaseSeconds)
}

// Terminal reports whether the run has ended either way.
func (s Snapshot) Terminal() bool {
	return s.Closed || s.Phase == PhaseComplete
}

// Snapshot returns the current display state.
func (e *Engine) Snapshot() Snapshot {
	if !e.started {
		return Snapshot{PhaseLabel: "Idle"}
	}

	count := len(e.plan.Exercises)
	s := Snapshot{
		Phase:            e.phase,
		SecondsRemaining: e.secondsRemaining,
		PhaseSeconds:     e.phaseSeconds,
		CurrentSet:       e.currentSet,
		ExerciseIndex:    e.exerciseIndex,
		ExerciseCount:    count,
		ProgressFraction: float64(e.exerciseIndex) / float64(count),
		Paused:           e.paused,
		Closed:           e.closed,
		Elapsed:          e.elapsed,
	}

	switch e.phase {
	case PhaseCountdown:
		s.ExerciseName = "Get Ready!"
		s.PhaseLabel = "Get Ready"
		s.NextUp = "Next: " + e.plan.Exercises[0].Name
		s.TotalSets = e.plan.Exercises[0].TotalSets()
	case PhaseComplete:
		s.ExerciseName = "Workout Completed!"
		s.PhaseLabel = "Complete"
		s.ProgressFraction = 1
		s.CurrentSet = 0
	default:
		ex := e.plan.Exercises[e.exerciseIndex]
		s.ExerciseName = ex.Name
		s.Description = ex.Description
		s.TotalSets = ex.TotalSets()
		s.Reps = ex.Reps
		s.PhaseLabel = e.phaseLabel(ex.IsTimed())
		s.NextUp = e.nextUp()
	}
	return s
}

func (e *Engine) phaseLabel(timed bool) string {
	switch {
	case e.phase == PhaseRest:
		return "Rest"
	case timed:
		return "Timed"
	default:
		return "Work"
	}
}

// nextUp describes what follows the current phase.
func (e *Engine) nextUp() string {
	ex := e.plan.Exercises[e.exerciseIndex]
	if e.phase == PhaseRest {
		return fmt.Sprintf("Next: %s - Set %d", ex.Name, e.currentSet+1)
	}
	if !ex.IsTimed() && e.currentSet < ex.Sets {
		return ""
	}
	if next := e.exerciseIndex + 1; next < len(e.plan.Exercises) {
		return "Next: " + e.plan.Exercises[next].Name
	}
	return "Last exercise"
}

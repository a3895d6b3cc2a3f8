// Package timer drives a workout plan through its lead-in, work and rest
// intervals one second at a time. The engine performs no I/O and no
// rendering: callers feed it ticks and commands and render the returned
// Snapshot.
package timer

import (
	"github.com/alexanderramin/fitloop/internal/domain"
)

// DefaultLeadIn is the countdown before the first exercise, in seconds.
const DefaultLeadIn = 5

// ErrInvalidPlan is returned by Start for empty or malformed plans.
var ErrInvalidPlan = domain.ErrInvalidPlan

// Phase is the engine's current activity.
type Phase string

const (
	PhaseCountdown Phase = "countdown"
	PhaseWork      Phase = "work"
	PhaseRest      Phase = "rest"
	PhaseComplete  Phase = "complete"
)

// Outcome summarises the run lifecycle for the host.
type Outcome string

const (
	OutcomeIdle      Outcome = "idle"
	OutcomeRunning   Outcome = "running"
	OutcomeCompleted Outcome = "completed"
	OutcomeAbandoned Outcome = "abandoned"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLeadIn sets the countdown length before the first exercise.
// Zero starts the first exercise immediately. Negative values are ignored.
func WithLeadIn(seconds int) Option {
	return func(e *Engine) {
		if seconds >= 0 {
			e.leadIn = seconds
		}
	}
}

// Engine owns the run-time state of one workout. It is not safe for
// concurrent use; one host goroutine drives it.
type Engine struct {
	leadIn int

	plan    domain.WorkoutPlan
	started bool

	exerciseIndex    int
	currentSet       int
	phase            Phase
	secondsRemaining int
	phaseSeconds     int
	paused           bool
	closed           bool
	elapsed          int
}

// New creates an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{leadIn: DefaultLeadIn}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start validates plan and begins a new run, discarding any previous one.
func (e *Engine) Start(plan domain.WorkoutPlan) (Snapshot, error) {
	if err := plan.Validate(); err != nil {
		return e.Snapshot(), err
	}

	plan.Exercises = append([]domain.Exercise(nil), plan.Exercises...)
	e.plan = plan
	e.started = true
	e.exerciseIndex = 0
	e.currentSet = 1
	e.paused = false
	e.closed = false
	e.elapsed = 0

	if e.leadIn > 0 {
		e.setPhase(PhaseCountdown, e.leadIn)
	} else {
		e.enterExercise(0)
	}
	return e.Snapshot(), nil
}

// Tick advances the clock by one second.
func (e *Engine) Tick() Snapshot {
	if !e.active() || e.paused {
		return e.Snapshot()
	}
	e.elapsed++
	if e.secondsRemaining > 0 {
		e.secondsRemaining--
	}
	if e.secondsRemaining == 0 {
		e.advance()
	}
	return e.Snapshot()
}

// Pause stops ticks from counting down until Resume.
func (e *Engine) Pause() Snapshot {
	if e.active() {
		e.paused = true
	}
	return e.Snapshot()
}

// Resume re-enables ticking after Pause.
func (e *Engine) Resume() Snapshot {
	if e.active() {
		e.paused = false
	}
	return e.Snapshot()
}

// TogglePause flips between paused and running.
func (e *Engine) TogglePause() Snapshot {
	if e.paused {
		return e.Resume()
	}
	return e.Pause()
}

// Skip ends the current phase immediately.
func (e *Engine) Skip() Snapshot {
	if !e.active() {
		return e.Snapshot()
	}
	e.secondsRemaining = 0
	e.advance()
	return e.Snapshot()
}

// Close abandons the run. Later commands are ignored.
func (e *Engine) Close() Snapshot {
	if e.active() {
		e.closed = true
		e.paused = false
	}
	return e.Snapshot()
}

// Outcome reports where the run is in its lifecycle.
func (e *Engine) Outcome() Outcome {
	switch {
	case !e.started:
		return OutcomeIdle
	case e.closed:
		return OutcomeAbandoned
	case e.phase == PhaseComplete:
		return OutcomeCompleted
	default:
		return OutcomeRunning
	}
}

// Plan returns the plan of the current run.
func (e *Engine) Plan() domain.WorkoutPlan {
	return e.plan
}

func (e *Engine) active() bool {
	return e.started && !e.closed && e.phase != PhaseComplete
}

// advance runs the phase transition for a phase that has reached zero.
func (e *Engine) advance() {
	switch e.phase {
	case PhaseCountdown:
		e.enterExercise(0)
	case PhaseWork:
		ex := e.plan.Exercises[e.exerciseIndex]
		if !ex.IsTimed() && e.currentSet < ex.Sets {
			e.setPhase(PhaseRest, ex.RestSeconds)
			return
		}
		e.enterExercise(e.exerciseIndex + 1)
	case PhaseRest:
		ex := e.plan.Exercises[e.exerciseIndex]
		if e.currentSet < ex.Sets {
			e.currentSet++
			e.setPhase(PhaseWork, ex.WorkSeconds)
			return
		}
		e.enterExercise(e.exerciseIndex + 1)
	}
}

// enterExercise moves to exercise i, or completes the run past the end.
func (e *Engine) enterExercise(i int) {
	e.exerciseIndex = i
	e.currentSet = 1
	if i >= len(e.plan.Exercises) {
		e.exerciseIndex = len(e.plan.Exercises)
		e.setPhase(PhaseComplete, 0)
		e.paused = false
		return
	}
	ex := e.plan.Exercises[i]
	if ex.IsTimed() {
		e.setPhase(PhaseWork, ex.Duration)
		return
	}
	e.setPhase(PhaseWork, ex.WorkSeconds)
}

func (e *Engine) setPhase(p Phase, seconds int) {
	e.phase = p
	e.secondsRemaining = seconds
	e.phaseSeconds = seconds
}

package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan is returned when a workout plan cannot be run.
var ErrInvalidPlan = errors.New("invalid workout plan")

// Exercise is one step of a workout plan. Timed exercises use Duration;
// sets/reps exercises alternate WorkSeconds and RestSeconds for Sets rounds.
type Exercise struct {
	Name        string
	Kind        ExerciseKind
	Category    string
	Description string
	Steps       []string // how to perform it, in order
	Tips        []string

	// Timed
	Duration int

	// Sets/reps
	Sets        int
	Reps        int // display only
	WorkSeconds int
	RestSeconds int
}

// IsTimed reports whether the exercise is a flat timed block.
func (e Exercise) IsTimed() bool {
	return e.Kind == ExerciseTimed
}

// TotalSets returns the number of work intervals the exercise contains.
func (e Exercise) TotalSets() int {
	if e.IsTimed() {
		return 1
	}
	return e.Sets
}

// EstimatedSeconds returns the running time of the exercise, excluding any
// rest after its final set.
func (e Exercise) EstimatedSeconds() int {
	if e.IsTimed() {
		return e.Duration
	}
	return e.Sets*e.WorkSeconds + (e.Sets-1)*e.RestSeconds
}

func (e Exercise) validate() []error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	switch e.Kind {
	case ExerciseTimed:
		if e.Duration < 1 {
			errs = append(errs, fmt.Errorf("duration must be at least 1 second, got %d", e.Duration))
		}
	case ExerciseSetsReps:
		if e.Sets < 1 {
			errs = append(errs, fmt.Errorf("sets must be at least 1, got %d", e.Sets))
		}
		if e.Reps < 1 {
			errs = append(errs, fmt.Errorf("reps must be at least 1, got %d", e.Reps))
		}
		if e.WorkSeconds < 1 {
			errs = append(errs, fmt.Errorf("work_seconds must be at least 1, got %d", e.WorkSeconds))
		}
		if e.RestSeconds < 1 {
			errs = append(errs, fmt.Errorf("rest_seconds must be at least 1, got %d", e.RestSeconds))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown kind %q", e.Kind))
	}
	return errs
}

// WorkoutPlan is an ordered list of exercises identified by Key.
type WorkoutPlan struct {
	Key               string
	Name              string
	Difficulty        string
	Description       string
	EstimatedCalories int
	Exercises         []Exercise
}

// Validate reports every problem with the plan. The returned error wraps
// ErrInvalidPlan.
func (p *WorkoutPlan) Validate() error {
	if p == nil || len(p.Exercises) == 0 {
		return fmt.Errorf("%w: plan has no exercises", ErrInvalidPlan)
	}
	var errs []error
	for i, ex := range p.Exercises {
		for _, err := range ex.validate() {
			errs = append(errs, fmt.Errorf("exercise[%d] %q: %w", i, ex.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, errors.Join(errs...))
	}
	return nil
}

// EstimatedSeconds is the total running time of the plan without lead-in.
func (p *WorkoutPlan) EstimatedSeconds() int {
	total := 0
	for _, ex := range p.Exercises {
		total += ex.EstimatedSeconds()
	}
	return total
}

// DisplayName prefers Name and falls back to Key.
func (p *WorkoutPlan) DisplayName() string {
	return CoalesceStr(p.Name, p.Key)
}

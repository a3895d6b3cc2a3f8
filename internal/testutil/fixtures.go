package testutil

import (
	"time"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used across service and CLI tests.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Plan options
type PlanOption func(*domain.WorkoutPlan)

func WithPlanCalories(c int) PlanOption {
	return func(p *domain.WorkoutPlan) {
		p.EstimatedCalories = c
	}
}

func WithExercises(ex ...domain.Exercise) PlanOption {
	return func(p *domain.WorkoutPlan) {
		p.Exercises = ex
	}
}

// NewTestPlan returns a short valid plan: one timed exercise of 3s and one
// sets/reps exercise of 2 sets, 2s work, 1s rest.
func NewTestPlan(key string, opts ...PlanOption) domain.WorkoutPlan {
	p := domain.WorkoutPlan{
		Key:               key,
		Name:              "Plan " + key,
		Difficulty:        "Beginner",
		EstimatedCalories: 100,
		Exercises: []domain.Exercise{
			{Name: "Jog", Kind: domain.ExerciseTimed, Duration: 3},
			{Name: "Squats", Kind: domain.ExerciseSetsReps, Sets: 2, Reps: 10, WorkSeconds: 2, RestSeconds: 1},
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Workout log options
type WorkoutOption func(*domain.WorkoutLog)

func WithStatus(s domain.WorkoutStatus) WorkoutOption {
	return func(w *domain.WorkoutLog) {
		w.Status = s
	}
}

func WithStartedAt(t time.Time) WorkoutOption {
	return func(w *domain.WorkoutLog) {
		w.StartedAt = t
		w.EndedAt = t.Add(time.Duration(w.ActiveSeconds) * time.Second)
	}
}

func WithCalories(c int) WorkoutOption {
	return func(w *domain.WorkoutLog) {
		w.Calories = c
	}
}

func WithExercisesDone(done, total int) WorkoutOption {
	return func(w *domain.WorkoutLog) {
		w.ExercisesDone = done
		w.ExercisesTotal = total
	}
}

func NewTestWorkoutLog(planKey string, opts ...WorkoutOption) *domain.WorkoutLog {
	started := FixedNow.Add(-time.Hour)
	w := &domain.WorkoutLog{
		ID:             uuid.New().String(),
		PlanKey:        planKey,
		PlanName:       "Plan " + planKey,
		Status:         domain.WorkoutCompleted,
		StartedAt:      started,
		EndedAt:        started.Add(20 * time.Minute),
		ActiveSeconds:  1200,
		ExercisesDone:  5,
		ExercisesTotal: 5,
		Calories:       250,
		CreatedAt:      started.Add(20 * time.Minute),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Progress entry options
type EntryOption func(*domain.ProgressEntry)

func WithWeight(w float64) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.Weight = w
	}
}

func WithWorkoutMin(m int) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.WorkoutMin = m
	}
}

func WithCaloriesBurned(c int) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.CaloriesBurned = c
	}
}

func WithMood(m int) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.Mood = m
	}
}

func WithNote(n string) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.Note = n
	}
}

func NewTestEntry(date time.Time, opts ...EntryOption) *domain.ProgressEntry {
	e := &domain.ProgressEntry{
		Date:       domain.Day(date),
		Weight:     180,
		SleepHours: 7.5,
		Mood:       4,
		Steps:      8000,
		UpdatedAt:  date,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Goal options
type GoalOption func(*domain.Goal)

func WithDeadline(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.Deadline = &d
	}
}

func WithCurrent(c float64) GoalOption {
	return func(g *domain.Goal) {
		g.Current = c
	}
}

func WithGoalType(gt domain.GoalType) GoalOption {
	return func(g *domain.Goal) {
		g.Type = gt
	}
}

func NewTestGoal(title string, target float64, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.GoalCustom,
		Target:    target,
		Unit:      "units",
		StartDate: domain.Day(FixedNow.AddDate(0, 0, -10)),
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

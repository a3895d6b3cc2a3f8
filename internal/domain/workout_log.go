package domain

import "time"

// WorkoutLog records one finished or abandoned run of a plan.
type WorkoutLog struct {
	ID             string
	PlanKey        string
	PlanName       string
	Status         WorkoutStatus
	StartedAt      time.Time
	EndedAt        time.Time
	ActiveSeconds  int
	ExercisesDone  int
	ExercisesTotal int
	Calories       int
	CreatedAt      time.Time
}

// IsCompleted reports whether the run reached the end of its plan.
func (w *WorkoutLog) IsCompleted() bool {
	return w.Status == WorkoutCompleted
}

// ScaledCalories scales a plan's calorie estimate by the share of exercises
// finished.
func ScaledCalories(estimate, done, total int) int {
	if total <= 0 || done <= 0 || estimate <= 0 {
		return 0
	}
	if done >= total {
		return estimate
	}
	return estimate * done / total
}

package domain

import (
	"errors"
	"fmt"
)

// Targets are the personal aims shown on the dashboard. A zero field means
// the target is not set.
type Targets struct {
	WeeklyWorkouts int
	DailyCalories  int
	TargetWeight   float64
}

const (
	MaxWeeklyWorkouts = 14
	MaxDailyCalories  = 10000
)

// Validate reports every out-of-range target.
func (t Targets) Validate() error {
	var errs []error
	if t.WeeklyWorkouts < 0 || t.WeeklyWorkouts > MaxWeeklyWorkouts {
		errs = append(errs, fmt.Errorf("weekly_workouts must be between 0 and %d, got %d", MaxWeeklyWorkouts, t.WeeklyWorkouts))
	}
	if t.DailyCalories < 0 || t.DailyCalories > MaxDailyCalories {
		errs = append(errs, fmt.Errorf("daily_calories must be between 0 and %d, got %d", MaxDailyCalories, t.DailyCalories))
	}
	if t.TargetWeight < 0 {
		errs = append(errs, fmt.Errorf("target_weight must not be negative, got %g", t.TargetWeight))
	}
	return errors.Join(errs...)
}

// WeeklyProgress is the share of the weekly workout target reached, in
// [0, 1]. It is 0 when no target is set.
func (t Targets) WeeklyProgress(workouts int) float64 {
	if t.WeeklyWorkouts <= 0 {
		return 0
	}
	return min(float64(workouts)/float64(t.WeeklyWorkouts), 1)
}

// WeightToGo is the absolute distance from current to the target weight.
// ok is false when either value is unknown.
func (t Targets) WeightToGo(current float64) (diff float64, ok bool) {
	if t.TargetWeight <= 0 || current <= 0 {
		return 0, false
	}
	diff = current - t.TargetWeight
	if diff < 0 {
		diff = -diff
	}
	return diff, true
}

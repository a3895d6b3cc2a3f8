package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and CLI format for calendar days.
const DateLayout = "2006-01-02"

// ProgressEntry holds one day's tracked body and activity metrics.
// Zero values mean "not recorded" except for Mood, where 0 is unset and
// 1..5 are valid.
type ProgressEntry struct {
	Date           time.Time
	Weight         float64
	WorkoutMin     int
	CaloriesBurned int
	SleepHours     float64
	Mood           int
	Steps          int
	WaterIntake    int
	Note           string
	UpdatedAt      time.Time
}

// Validate checks value ranges.
func (e *ProgressEntry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if e.Weight < 0 {
		return fmt.Errorf("weight must not be negative")
	}
	if e.WorkoutMin < 0 || e.CaloriesBurned < 0 || e.Steps < 0 || e.WaterIntake < 0 {
		return fmt.Errorf("workout minutes, calories, steps and water must not be negative")
	}
	if e.SleepHours < 0 || e.SleepHours > 24 {
		return fmt.Errorf("sleep hours must be between 0 and 24")
	}
	if e.Mood < 0 || e.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5")
	}
	return nil
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ProgressSummary aggregates entries over a period.
type ProgressSummary struct {
	Period         Period
	From           time.Time
	To             time.Time
	Entries        int
	AvgWeight      float64
	WeightChange   float64
	TotalWorkout   int
	TotalCalories  int
	AvgSleep       float64
	AvgMood        float64
	AvgSteps       float64
	ActiveDays     int
	ConsistencyPct float64
}

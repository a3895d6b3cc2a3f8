package domain

import (
	"fmt"
	"time"
)

// behindThreshold is how far progress may trail elapsed time before a goal
// is reported as behind.
const behindThreshold = 0.15

type Goal struct {
	ID        string
	Title     string
	Type      GoalType
	Target    float64
	Current   float64
	Unit      string
	StartDate time.Time
	Deadline  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks required fields.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if !ValidGoalTypes[string(g.Type)] {
		return fmt.Errorf("goal type %q must be one of weight, consistency, distance, custom", g.Type)
	}
	if g.Target <= 0 {
		return fmt.Errorf("goal target must be positive")
	}
	if g.Current < 0 {
		return fmt.Errorf("goal current value must not be negative")
	}
	if g.Deadline != nil && g.Deadline.Before(g.StartDate) {
		return fmt.Errorf("goal deadline is before its start date")
	}
	return nil
}

// ProgressPct returns Current/Target clamped to [0,1].
func (g *Goal) ProgressPct() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Current / g.Target
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// TimeElapsedPct returns the share of the start..deadline window that has
// passed at now. Goals without a deadline report 0.
func (g *Goal) TimeElapsedPct(now time.Time) float64 {
	if g.Deadline == nil {
		return 0
	}
	total := g.Deadline.Sub(g.StartDate)
	if total <= 0 {
		return 1
	}
	pct := float64(now.Sub(g.StartDate)) / float64(total)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// Status classifies the goal at now.
func (g *Goal) Status(now time.Time) GoalStatus {
	progress := g.ProgressPct()
	if progress >= 1 {
		return GoalAchieved
	}
	if g.TimeElapsedPct(now)-progress > behindThreshold {
		return GoalBehind
	}
	return GoalOnTrack
}

// ApplyProgress sets the current value and touches UpdatedAt.
func (g *Goal) ApplyProgress(current float64, now time.Time) error {
	if current < 0 {
		return fmt.Errorf("goal current value must not be negative")
	}
	g.Current = current
	g.UpdatedAt = now
	return nil
}

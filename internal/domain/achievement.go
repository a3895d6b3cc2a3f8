package domain

import "time"

// Achievement is a static badge definition.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Points      int
	Target      float64
	Unit        string
}

// AchievementStatus is an achievement evaluated against the user's history.
type AchievementStatus struct {
	Achievement
	Progress   float64
	Unlocked   bool
	UnlockedAt *time.Time
}

// ProgressPct returns Progress/Target clamped to [0,1].
func (s AchievementStatus) ProgressPct() float64 {
	if s.Unlocked {
		return 1
	}
	if s.Target <= 0 {
		return 0
	}
	pct := s.Progress / s.Target
	if pct > 1 {
		return 1
	}
	if pct < 0 {
		return 0
	}
	return pct
}

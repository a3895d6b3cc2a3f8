package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fitloop/internal/domain"
)

// RunRecord describes a timer run that has reached a terminal state.
type RunRecord struct {
	Plan          domain.WorkoutPlan
	Completed     bool
	StartedAt     time.Time
	EndedAt       time.Time
	ActiveSeconds int
	ExercisesDone int
}

// RecordResult reports what RecordRun persisted.
type RecordResult struct {
	Log      *domain.WorkoutLog // nil when the run was not recorded
	Unlocked []domain.Achievement
}

type WorkoutService interface {
	RecordRun(ctx context.Context, run RunRecord) (*RecordResult, error)
	History(ctx context.Context, days int) ([]*domain.WorkoutLog, error)
	Remove(ctx context.Context, idPrefix string) (*domain.WorkoutLog, error)
}

// ProgressPatch updates a day's entry. Nil fields keep their stored value.
type ProgressPatch struct {
	Weight         *float64
	WorkoutMin     *int
	CaloriesBurned *int
	SleepHours     *float64
	Mood           *int
	Steps          *int
	WaterIntake    *int
	Note           *string
}

type ProgressService interface {
	Log(ctx context.Context, date time.Time, patch ProgressPatch) (*domain.ProgressEntry, []domain.Achievement, error)
	List(ctx context.Context, days int) ([]*domain.ProgressEntry, error)
	Summary(ctx context.Context, period domain.Period) (*domain.ProgressSummary, error)
	Seed(ctx context.Context, days int, seed int64) (int, error)
}

// GoalView is a goal with its status evaluated at request time.
type GoalView struct {
	Goal     *domain.Goal
	Status   domain.GoalStatus
	Progress float64
	TimeUsed float64
	DaysLeft *int
}

type GoalService interface {
	Add(ctx context.Context, g *domain.Goal) error
	List(ctx context.Context) ([]GoalView, error)
	UpdateProgress(ctx context.Context, idPrefix string, current float64) (*GoalView, error)
	Remove(ctx context.Context, idPrefix string) (*domain.Goal, error)
}

type AchievementService interface {
	List(ctx context.Context) ([]domain.AchievementStatus, error)
	TotalPoints(ctx context.Context) (int, error)
}

// Dashboard is the at-a-glance overview.
type Dashboard struct {
	WorkoutsThisWeek int
	MinutesThisWeek  int
	CurrentStreak    int
	TotalPoints      int
	Goals            []GoalView
	Recent           []*domain.WorkoutLog

	Targets           domain.Targets
	CaloriesToday     int
	LatestWeight      float64 // 0 when no weight was ever logged
	ActiveDays        int     // days with a progress entry
	WorkoutsCompleted int
}

type DashboardService interface {
	Build(ctx context.Context) (*Dashboard, error)
}

package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/fitloop/internal/domain"
)

type WorkoutLogRepo interface {
	Create(ctx context.Context, w *domain.WorkoutLog) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutLog, error)
	// ResolveID expands a unique id prefix to the full id.
	ResolveID(ctx context.Context, prefix string) (string, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.WorkoutLog, error)
	ListCompleted(ctx context.Context) ([]*domain.WorkoutLog, error)
	Delete(ctx context.Context, id string) error
}

type ProgressRepo interface {
	Upsert(ctx context.Context, e *domain.ProgressEntry) error
	GetByDate(ctx context.Context, date time.Time) (*domain.ProgressEntry, error)
	// ListRange returns entries with from <= date <= to, oldest first.
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.ProgressEntry, error)
	ListAll(ctx context.Context) ([]*domain.ProgressEntry, error)
	Delete(ctx context.Context, date time.Time) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ResolveID(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type AchievementRepo interface {
	// Unlock records the unlock time. It reports false if the id was
	// already unlocked, leaving the original time in place.
	Unlock(ctx context.Context, id string, at time.Time) (bool, error)
	ListUnlocked(ctx context.Context) (map[string]time.Time, error)
}

var (
	_ WorkoutLogRepo  = (*SQLiteWorkoutLogRepo)(nil)
	_ ProgressRepo    = (*SQLiteProgressRepo)(nil)
	_ GoalRepo        = (*SQLiteGoalRepo)(nil)
	_ AchievementRepo = (*SQLiteAchievementRepo)(nil)
)

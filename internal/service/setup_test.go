package service

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/alexanderramin/fitloop/internal/repository"
	"github.com/alexanderramin/fitloop/internal/testutil"
)

type testEnv struct {
	db           *sql.DB
	uow          db.UnitOfWork
	now          time.Time
	logs         *bytes.Buffer
	workoutRepo  *repository.SQLiteWorkoutLogRepo
	progressRepo *repository.SQLiteProgressRepo
	goalRepo     *repository.SQLiteGoalRepo
	achRepo      *repository.SQLiteAchievementRepo
	workouts     WorkoutService
	progress     ProgressService
	goals        GoalService
	achievements AchievementService
	dashboard    DashboardService
	targets      domain.Targets
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:      database,
		uow:     testutil.NewTestUoW(database),
		now:     testutil.FixedNow,
		logs:    &bytes.Buffer{},
		targets: domain.Targets{WeeklyWorkouts: 4, DailyCalories: 2000, TargetWeight: 170},
	}
	env.workoutRepo = repository.NewSQLiteWorkoutLogRepo(database)
	env.progressRepo = repository.NewSQLiteProgressRepo(database)
	env.goalRepo = repository.NewSQLiteGoalRepo(database)
	env.achRepo = repository.NewSQLiteAchievementRepo(database)

	opts := []Option{
		WithClock(func() time.Time { return env.now }),
		WithObserver(NewLogUseCaseObserver(env.logs)),
	}
	env.workouts = NewWorkoutService(env.workoutRepo, env.uow, opts...)
	env.progress = NewProgressService(env.progressRepo, env.uow, opts...)
	env.goals = NewGoalService(env.goalRepo, env.uow, opts...)
	env.achievements = NewAchievementService(env.workoutRepo, env.progressRepo, env.achRepo, opts...)
	env.dashboard = NewDashboardService(env.workouts, env.workoutRepo, env.progressRepo, env.goals, env.achievements, env.targets, opts...)
	return env
}

func ptr[T any](v T) *T { return &v }

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/fitloop/internal/catalog"
	"github.com/alexanderramin/fitloop/internal/cli"
	"github.com/alexanderramin/fitloop/internal/config"
	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/repository"
	"github.com/alexanderramin/fitloop/internal/service"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	plans, err := catalog.Load(cfg.PlansDir)
	if err != nil {
		return err
	}

	// Wire repositories
	workoutRepo := repository.NewSQLiteWorkoutLogRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	achievementRepo := repository.NewSQLiteAchievementRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		w := useCaseLogWriter(cfg)
		defer w.Close()
		observer = service.NewLogUseCaseObserver(w)
	}
	opts := []service.Option{service.WithObserver(observer)}

	// Wire services
	workouts := service.NewWorkoutService(workoutRepo, uow, opts...)
	goals := service.NewGoalService(goalRepo, uow, opts...)
	achievements := service.NewAchievementService(workoutRepo, progressRepo, achievementRepo, opts...)

	app := &cli.App{
		Plans:        plans,
		Workouts:     workouts,
		Progress:     service.NewProgressService(progressRepo, uow, opts...),
		Goals:        goals,
		Achievements: achievements,
		Dashboard:    service.NewDashboardService(workouts, workoutRepo, progressRepo, goals, achievements, cfg.Profile.Targets(), opts...),
		LeadIn:       cfg.LeadIn,
		WeightUnit:   cfg.WeightUnit,
		ProfileName:  cfg.Profile.Name,
	}

	// huh prompts only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// useCaseLogWriter returns stderr, or a size-rotated file when log_file is set.
func useCaseLogWriter(cfg config.Config) io.WriteCloser {
	if cfg.LogFile == "" {
		return nopCloser{os.Stderr}
	}
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

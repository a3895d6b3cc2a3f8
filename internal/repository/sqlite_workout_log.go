package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
	"github.com/alexanderramin/fitloop/internal/domain"
)

const workoutLogColumns = `id, plan_key, plan_name, status, started_at, ended_at,
	active_seconds, exercises_done, exercises_total, calories, created_at`

// SQLiteWorkoutLogRepo implements WorkoutLogRepo using a SQLite database.
type SQLiteWorkoutLogRepo struct {
	db db.DBTX
}

func NewSQLiteWorkoutLogRepo(conn db.DBTX) *SQLiteWorkoutLogRepo {
	return &SQLiteWorkoutLogRepo{db: conn}
}

func (r *SQLiteWorkoutLogRepo) Create(ctx context.Context, w *domain.WorkoutLog) error {
	query := `INSERT INTO workout_logs (` + workoutLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.PlanKey,
		w.PlanName,
		string(w.Status),
		formatTime(w.StartedAt),
		formatTime(w.EndedAt),
		w.ActiveSeconds,
		w.ExercisesDone,
		w.ExercisesTotal,
		w.Calories,
		formatTime(w.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting workout log: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutLogRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutLog, error) {
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs WHERE id = ?`
	w, err := scanWorkoutLog(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout log: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning workout log: %w", err)
	}
	return w, nil
}

func (r *SQLiteWorkoutLogRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	return resolvePrefix(ctx, r.db, "workout_logs", "workout log", prefix)
}

func (r *SQLiteWorkoutLogRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error) {
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs
		WHERE started_at >= ? ORDER BY started_at DESC`
	return r.list(ctx, query, formatTime(since))
}

func (r *SQLiteWorkoutLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.WorkoutLog, error) {
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs
		ORDER BY started_at DESC LIMIT ?`
	return r.list(ctx, query, limit)
}

func (r *SQLiteWorkoutLogRepo) ListCompleted(ctx context.Context) ([]*domain.WorkoutLog, error) {
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs
		WHERE status = ? ORDER BY started_at`
	return r.list(ctx, query, string(domain.WorkoutCompleted))
}

func (r *SQLiteWorkoutLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout log: %w", err)
	}
	return requireAffected(res, "workout log")
}

func (r *SQLiteWorkoutLogRepo) list(ctx context.Context, query string, args ...any) ([]*domain.WorkoutLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing workout logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.WorkoutLog
	for rows.Next() {
		w, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout log row: %w", err)
		}
		logs = append(logs, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout logs: %w", err)
	}
	return logs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkoutLog(row rowScanner) (*domain.WorkoutLog, error) {
	var w domain.WorkoutLog
	var status, startedAt, endedAt, createdAt string
	if err := row.Scan(
		&w.ID, &w.PlanKey, &w.PlanName, &status, &startedAt, &endedAt,
		&w.ActiveSeconds, &w.ExercisesDone, &w.ExercisesTotal, &w.Calories, &createdAt,
	); err != nil {
		return nil, err
	}
	w.Status = domain.WorkoutStatus(status)

	var err error
	if w.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if w.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
		return nil, fmt.Errorf("parsing ended_at: %w", err)
	}
	if w.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &w, nil
}

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

const progressColumns = `date, weight, workout_min, calories_burned, sleep_hours,
	mood, steps, water_intake, note, updated_at`

// SQLiteProgressRepo stores one progress entry per calendar day.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// Upsert replaces the entry for e.Date.
func (r *SQLiteProgressRepo) Upsert(ctx context.Context, e *domain.ProgressEntry) error {
	query := `INSERT INTO progress_entries (` + progressColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			weight = excluded.weight,
			workout_min = excluded.workout_min,
			calories_burned = excluded.calories_burned,
			sleep_hours = excluded.sleep_hours,
			mood = excluded.mood,
			steps = excluded.steps,
			water_intake = excluded.water_intake,
			note = excluded.note,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.Date.Format(domain.DateLayout),
		e.Weight,
		e.WorkoutMin,
		e.CaloriesBurned,
		e.SleepHours,
		e.Mood,
		e.Steps,
		e.WaterIntake,
		e.Note,
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting progress entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) GetByDate(ctx context.Context, date time.Time) (*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries WHERE date = ?`
	e, err := scanProgressEntry(r.db.QueryRowContext(ctx, query, date.Format(domain.DateLayout)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress entry: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning progress entry: %w", err)
	}
	return e, nil
}

func (r *SQLiteProgressRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries
		WHERE date >= ? AND date <= ? ORDER BY date`
	return r.list(ctx, query, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
}

func (r *SQLiteProgressRepo) ListAll(ctx context.Context) ([]*domain.ProgressEntry, error) {
	return r.list(ctx, `SELECT `+progressColumns+` FROM progress_entries ORDER BY date`)
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, date time.Time) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_entries WHERE date = ?`, date.Format(domain.DateLayout))
	if err != nil {
		return fmt.Errorf("deleting progress entry: %w", err)
	}
	return requireAffected(res, "progress entry")
}

func (r *SQLiteProgressRepo) list(ctx context.Context, query string, args ...any) ([]*domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing progress entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ProgressEntry
	for rows.Next() {
		e, err := scanProgressEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress entries: %w", err)
	}
	return entries, nil
}

func scanProgressEntry(row rowScanner) (*domain.ProgressEntry, error) {
	var e domain.ProgressEntry
	var date, updatedAt string
	if err := row.Scan(
		&date, &e.Weight, &e.WorkoutMin, &e.CaloriesBurned, &e.SleepHours,
		&e.Mood, &e.Steps, &e.WaterIntake, &e.Note, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if e.Date, err = time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}

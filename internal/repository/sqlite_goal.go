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

const goalColumns = `id, title, type, target, current, unit, start_date, deadline, created_at, updated_at`

type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		string(g.Type),
		g.Target,
		g.Current,
		g.Unit,
		g.StartDate.Format(domain.DateLayout),
		nullableTimeToString(g.Deadline, domain.DateLayout),
		formatTime(g.CreatedAt),
		formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	g, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	return resolvePrefix(ctx, r.db, "goals", "goal", prefix)
}

// List orders goals by deadline, open-ended goals last.
func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals
		ORDER BY deadline IS NULL, deadline, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, type = ?, target = ?, current = ?, unit = ?,
		start_date = ?, deadline = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		string(g.Type),
		g.Target,
		g.Current,
		g.Unit,
		g.StartDate.Format(domain.DateLayout),
		nullableTimeToString(g.Deadline, domain.DateLayout),
		formatTime(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var goalType, startDate, createdAt, updatedAt string
	var deadline sql.NullString
	if err := row.Scan(
		&g.ID, &g.Title, &goalType, &g.Target, &g.Current, &g.Unit,
		&startDate, &deadline, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	g.Type = domain.GoalType(goalType)
	g.Deadline = parseNullableTime(deadline, domain.DateLayout)

	var err error
	if g.StartDate, err = time.Parse(domain.DateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}

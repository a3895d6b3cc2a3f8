package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/fitloop/internal/db"
)

// SQLiteAchievementRepo stores unlock times. Achievement definitions live in
// the service layer.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

func (r *SQLiteAchievementRepo) Unlock(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO achievements (id, unlocked_at) VALUES (?, ?)`, id, formatTime(at))
	if err != nil {
		return false, fmt.Errorf("unlocking achievement %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking achievement unlock: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteAchievementRepo) ListUnlocked(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, unlocked_at FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var id, at string
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scanning achievement row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing unlocked_at: %w", err)
		}
		unlocked[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return unlocked, nil
}

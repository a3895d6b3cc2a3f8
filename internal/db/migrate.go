package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillPlanNames(db); err != nil {
		return fmt.Errorf("backfilling workout plan names: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workout_logs (
		id              TEXT PRIMARY KEY,
		plan_key        TEXT NOT NULL,
		status          TEXT NOT NULL
		                CHECK(status IN ('completed','abandoned')),
		started_at      TEXT NOT NULL,
		ended_at        TEXT NOT NULL,
		active_seconds  INTEGER NOT NULL DEFAULT 0 CHECK(active_seconds >= 0),
		exercises_done  INTEGER NOT NULL DEFAULT 0,
		exercises_total INTEGER NOT NULL DEFAULT 0,
		calories        INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workout_logs_started ON workout_logs(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_logs_status ON workout_logs(status)`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		date            TEXT PRIMARY KEY,
		weight          REAL NOT NULL DEFAULT 0,
		workout_min     INTEGER NOT NULL DEFAULT 0,
		calories_burned INTEGER NOT NULL DEFAULT 0,
		sleep_hours     REAL NOT NULL DEFAULT 0,
		mood            INTEGER NOT NULL DEFAULT 0 CHECK(mood BETWEEN 0 AND 5),
		steps           INTEGER NOT NULL DEFAULT 0,
		water_intake    INTEGER NOT NULL DEFAULT 0,
		note            TEXT NOT NULL DEFAULT '',
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		type       TEXT NOT NULL
		           CHECK(type IN ('weight','consistency','distance','custom')),
		target     REAL NOT NULL CHECK(target > 0),
		current    REAL NOT NULL DEFAULT 0,
		unit       TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		deadline   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id          TEXT PRIMARY KEY,
		unlocked_at TEXT NOT NULL
	)`,

	// plan_name was added after the first release; older rows get it backfilled.
	`ALTER TABLE workout_logs ADD COLUMN plan_name TEXT NOT NULL DEFAULT ''`,
}

// migrateBackfillPlanNames copies plan_key into plan_name for rows written
// before the column existed. Idempotent.
func migrateBackfillPlanNames(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx,
		`UPDATE workout_logs SET plan_name = plan_key WHERE plan_name = ''`); err != nil {
		return fmt.Errorf("updating plan_name: %w", err)
	}
	return nil
}

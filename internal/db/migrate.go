package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is safe to re-run.
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
	return nil
}

// exercises.workout_id carries no foreign key: exercises are persisted as soon
// as they are added, while the workout row may only be written on finish.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		finished_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_finished ON workouts(finished_at, created_at)`,

	`CREATE TABLE IF NOT EXISTS exercises (
		id         TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id)`,

	`CREATE TABLE IF NOT EXISTS exercise_sets (
		id          TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		reps        INTEGER,
		weight      REAL,
		one_rm      REAL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercise_sets_exercise ON exercise_sets(exercise_id)`,
}

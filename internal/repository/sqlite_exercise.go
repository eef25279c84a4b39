package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
)

// SQLiteExerciseRepo implements ExerciseRepo using a SQLite database.
type SQLiteExerciseRepo struct {
	db db.DBTX
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo.
func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) Save(ctx context.Context, e *domain.Exercise) error {
	query := `INSERT INTO exercises (id, workout_id, name, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			workout_id = excluded.workout_id,
			name = excluded.name`
	if _, err := r.db.ExecContext(ctx, query, e.ID, e.WorkoutID, e.Name, nowUTC()); err != nil {
		return fmt.Errorf("saving exercise: %w", err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var e domain.Exercise
	err := r.db.QueryRowContext(ctx,
		`SELECT id, workout_id, name FROM exercises WHERE id = ?`, id,
	).Scan(&e.ID, &e.WorkoutID, &e.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("exercise: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exercise: %w", err)
	}
	return &e, nil
}

func (r *SQLiteExerciseRepo) ListByWorkout(ctx context.Context, workoutID string) ([]*domain.Exercise, error) {
	query := `SELECT id, workout_id, name FROM exercises
		WHERE workout_id = ?
		ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing exercises by workout: %w", err)
	}
	defer rows.Close()

	var exercises []*domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		exercises = append(exercises, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}

func (r *SQLiteExerciseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	return nil
}

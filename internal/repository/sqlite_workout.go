package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

const workoutColumns = `id, created_at, finished_at`

func (r *SQLiteWorkoutRepo) Save(ctx context.Context, w *domain.Workout) error {
	query := `INSERT INTO workouts (id, created_at, finished_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			finished_at = excluded.finished_at`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		formatTime(w.CreatedAt),
		nullableTimeToString(w.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("saving workout: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`
	return r.scanWorkout(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkoutRepo) GetCurrent(ctx context.Context) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts
		WHERE finished_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`
	return r.scanWorkout(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteWorkoutRepo) ListFinished(ctx context.Context) ([]*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts
		WHERE finished_at IS NOT NULL
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing finished workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*domain.Workout
	for rows.Next() {
		w, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return workouts, nil
}

func (r *SQLiteWorkoutRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutRepo) scanWorkout(row *sql.Row) (*domain.Workout, error) {
	w, err := r.scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout: %w", ErrNotFound)
	}
	return w, err
}

func (r *SQLiteWorkoutRepo) scanRow(row interface{ Scan(dest ...any) error }) (*domain.Workout, error) {
	var w domain.Workout
	var createdAt string
	var finishedAt sql.NullString

	if err := row.Scan(&w.ID, &createdAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning workout: %w", err)
	}

	var err error
	w.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	w.FinishedAt = parseNullableTime(finishedAt)
	return &w, nil
}

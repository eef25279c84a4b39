package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// Every Save is an upsert keyed by ID: saving an existing entity overwrites
// its mutable columns and keeps its original insertion position.

type WorkoutRepo interface {
	Save(ctx context.Context, w *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	// GetCurrent returns the most recently created unfinished workout, or
	// ErrNotFound.
	GetCurrent(ctx context.Context) (*domain.Workout, error)
	// ListFinished returns finished workouts, newest first.
	ListFinished(ctx context.Context) ([]*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

type ExerciseRepo interface {
	Save(ctx context.Context, e *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	ListByWorkout(ctx context.Context, workoutID string) ([]*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

type SetRepo interface {
	Save(ctx context.Context, s *domain.ExerciseSet) error
	GetByID(ctx context.Context, id string) (*domain.ExerciseSet, error)
	ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ExerciseSet, error)
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/writeback"
)

// Services never return persistence errors to the caller. Writes are logged
// and counted by the Writer; reads degrade to an empty result.

type SetService interface {
	Create(ctx context.Context, exerciseID string) domain.ExerciseSet
	Update(ctx context.Context, set domain.ExerciseSet, u domain.SetUpdate) domain.ExerciseSet
	// FilterComplete returns the complete sets and deletes the rest.
	FilterComplete(ctx context.Context, sets []domain.ExerciseSet) []domain.ExerciseSet
	Delete(ctx context.Context, setID string)
}

type ExerciseService interface {
	Create(ctx context.Context, name, workoutID string) domain.ExerciseWithSets
	Delete(ctx context.Context, exerciseID string)
}

type WorkoutService interface {
	Start(ctx context.Context) domain.WorkoutWithExercises
	Finish(ctx context.Context, w domain.WorkoutWithExercises) domain.WorkoutWithExercises
	// LoadCurrent returns the in-progress workout, or nil when there is none.
	LoadCurrent(ctx context.Context) *domain.WorkoutWithExercises
	// LoadAll returns finished workouts, newest first.
	LoadAll(ctx context.Context) []domain.WorkoutWithExercises
}

// Writer schedules persistence effects. *writeback.Queue implements it.
type Writer interface {
	Submit(ctx context.Context, name string, op writeback.Op)
	Do(ctx context.Context, name string, op writeback.Op) error
}

var _ Writer = (*writeback.Queue)(nil)

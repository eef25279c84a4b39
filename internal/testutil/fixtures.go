package testutil

import (
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/google/uuid"
)

// Workout options
type WorkoutOption func(*domain.Workout)

func WithCreatedAt(t time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.CreatedAt = t
	}
}

func WithFinishedAt(t time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.FinishedAt = &t
	}
}

func NewTestWorkout(opts ...WorkoutOption) *domain.Workout {
	w := &domain.Workout{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func NewTestExercise(workoutID, name string) *domain.Exercise {
	return &domain.Exercise{
		ID:        uuid.New().String(),
		Name:      name,
		WorkoutID: workoutID,
	}
}

// Set options
type SetOption func(*domain.ExerciseSet)

func WithReps(n int) SetOption {
	return func(s *domain.ExerciseSet) {
		s.Reps = &n
	}
}

func WithWeight(w float64) SetOption {
	return func(s *domain.ExerciseSet) {
		s.Weight = &w
	}
}

// NewTestSet builds a set and derives OneRM the same way the set service does.
func NewTestSet(exerciseID string, opts ...SetOption) *domain.ExerciseSet {
	s := domain.ExerciseSet{
		ID:         uuid.New().String(),
		ExerciseID: exerciseID,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s = domain.ApplySetUpdate(s, domain.SetUpdate{})
	return &s
}

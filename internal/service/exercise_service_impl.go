package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

type exerciseService struct {
	exercises repository.ExerciseRepo
	writer    Writer
	ids       IDGenerator
	observer  UseCaseObserver
}

func NewExerciseService(exercises repository.ExerciseRepo, writer Writer, ids IDGenerator, observers ...UseCaseObserver) ExerciseService {
	return &exerciseService{
		exercises: exercises,
		writer:    writer,
		ids:       idGeneratorOrDefault(ids),
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Create persists the exercise before returning it with an empty set list.
// A failed write is reported but the exercise is still returned.
func (s *exerciseService) Create(ctx context.Context, name, workoutID string) domain.ExerciseWithSets {
	startedAt := time.Now()
	ex := domain.Exercise{
		ID:        s.ids.Next(),
		Name:      strings.TrimSpace(name),
		WorkoutID: workoutID,
	}
	row := ex

	err := s.writer.Do(ctx, "save_exercise", func(ctx context.Context) error {
		return s.exercises.Save(ctx, &row)
	})
	observeUseCase(ctx, s.observer, "add-exercise", startedAt, map[string]any{
		"exercise_id": ex.ID,
		"workout_id":  workoutID,
		"name":        ex.Name,
	}, err)

	return domain.ExerciseWithSets{Exercise: ex, Sets: []domain.ExerciseSet{}}
}

func (s *exerciseService) Delete(ctx context.Context, exerciseID string) {
	s.writer.Submit(ctx, "delete_exercise", func(ctx context.Context) error {
		return s.exercises.Delete(ctx, exerciseID)
	})
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
)

type setService struct {
	sets     repository.SetRepo
	writer   Writer
	ids      IDGenerator
	observer UseCaseObserver
}

func NewSetService(sets repository.SetRepo, writer Writer, ids IDGenerator, observers ...UseCaseObserver) SetService {
	return &setService{
		sets:     sets,
		writer:   writer,
		ids:      idGeneratorOrDefault(ids),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create returns an empty set and queues its insert without waiting.
func (s *setService) Create(ctx context.Context, exerciseID string) domain.ExerciseSet {
	set := domain.ExerciseSet{
		ID:         s.ids.Next(),
		ExerciseID: exerciseID,
	}
	row := set.Clone()
	s.writer.Submit(ctx, "save_set", func(ctx context.Context) error {
		return s.sets.Save(ctx, &row)
	})
	return set
}

func (s *setService) Update(ctx context.Context, set domain.ExerciseSet, u domain.SetUpdate) domain.ExerciseSet {
	startedAt := time.Now()
	updated := domain.ApplySetUpdate(set, u)
	row := updated.Clone()

	err := s.writer.Do(ctx, "save_set", func(ctx context.Context) error {
		return s.sets.Save(ctx, &row)
	})
	observeUseCase(ctx, s.observer, "update-set", startedAt, map[string]any{
		"set_id":      updated.ID,
		"exercise_id": updated.ExerciseID,
	}, err)
	return updated
}

func (s *setService) FilterComplete(ctx context.Context, sets []domain.ExerciseSet) []domain.ExerciseSet {
	complete, incomplete := domain.PartitionSets(sets)
	for _, set := range incomplete {
		s.Delete(ctx, set.ID)
	}
	return complete
}

func (s *setService) Delete(ctx context.Context, setID string) {
	s.writer.Submit(ctx, "delete_set", func(ctx context.Context) error {
		return s.sets.Delete(ctx, setID)
	})
}

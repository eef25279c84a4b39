package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/metrics"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/jonboulle/clockwork"
)

// WorkoutOptions configures the workout service.
type WorkoutOptions struct {
	Clock clockwork.Clock
	// PersistOnStart saves the workout row when it is started, so an
	// in-progress workout survives a restart. Otherwise the row is first
	// written on finish.
	PersistOnStart bool
	Logger         *slog.Logger
}

type workoutService struct {
	workouts       repository.WorkoutRepo
	exercises      ExerciseService
	sets           SetService
	uow            db.UnitOfWork
	writer         Writer
	ids            IDGenerator
	clock          clockwork.Clock
	persistOnStart bool
	logger         *slog.Logger
	observer       UseCaseObserver
}

func NewWorkoutService(
	workouts repository.WorkoutRepo,
	exercises ExerciseService,
	sets SetService,
	uow db.UnitOfWork,
	writer Writer,
	ids IDGenerator,
	opts WorkoutOptions,
	observers ...UseCaseObserver,
) WorkoutService {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &workoutService{
		workouts:       workouts,
		exercises:      exercises,
		sets:           sets,
		uow:            uow,
		writer:         writer,
		ids:            idGeneratorOrDefault(ids),
		clock:          clock,
		persistOnStart: opts.PersistOnStart,
		logger:         logger,
		observer:       useCaseObserverOrNoop(observers),
	}
}

func (s *workoutService) Start(ctx context.Context) domain.WorkoutWithExercises {
	w := domain.WorkoutWithExercises{
		Workout: domain.Workout{
			ID:        s.ids.Next(),
			CreatedAt: s.clock.Now().UTC(),
		},
		Exercises: []domain.ExerciseWithSets{},
	}
	if s.persistOnStart {
		row := w.Workout
		s.writer.Submit(ctx, "save_workout", func(ctx context.Context) error {
			return s.workouts.Save(ctx, &row)
		})
	}
	return w
}

// Finish drops incomplete sets and the exercises they leave empty, stamps the
// finish time and persists the workout row.
func (s *workoutService) Finish(ctx context.Context, w domain.WorkoutWithExercises) domain.WorkoutWithExercises {
	startedAt := time.Now()
	out := w.Clone()

	kept := make([]domain.ExerciseWithSets, 0, len(out.Exercises))
	for _, ex := range out.Exercises {
		ex.Sets = s.sets.FilterComplete(ctx, ex.Sets)
		if len(ex.Sets) == 0 {
			s.exercises.Delete(ctx, ex.ID)
			continue
		}
		kept = append(kept, ex)
	}
	out.Exercises = kept

	finishedAt := s.clock.Now().UTC()
	if finishedAt.Before(out.CreatedAt) {
		finishedAt = out.CreatedAt
	}
	out.FinishedAt = &finishedAt

	row := domain.Workout{
		ID:         out.ID,
		CreatedAt:  out.CreatedAt,
		FinishedAt: domain.ClonePtr(out.FinishedAt),
	}
	err := s.writer.Do(ctx, "save_workout", func(ctx context.Context) error {
		return s.workouts.Save(ctx, &row)
	})
	observeUseCase(ctx, s.observer, "finish-workout", startedAt, map[string]any{
		"workout_id":     out.ID,
		"exercise_count": len(out.Exercises),
		"set_count":      domain.WorkoutSetCount(out),
	}, err)
	return out
}

func (s *workoutService) LoadCurrent(ctx context.Context) *domain.WorkoutWithExercises {
	var current *domain.WorkoutWithExercises
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		w, err := repository.NewSQLiteWorkoutRepo(tx).GetCurrent(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		agg, err := loadAggregate(ctx, tx, w)
		if err != nil {
			return err
		}
		current = &agg
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "loading current workout", "error", err)
		metrics.LoadFailuresTotal.WithLabelValues("current").Inc()
		return nil
	}
	return current
}

func (s *workoutService) LoadAll(ctx context.Context) []domain.WorkoutWithExercises {
	var all []domain.WorkoutWithExercises
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		workouts, err := repository.NewSQLiteWorkoutRepo(tx).ListFinished(ctx)
		if err != nil {
			return err
		}
		all = make([]domain.WorkoutWithExercises, 0, len(workouts))
		for _, w := range workouts {
			agg, err := loadAggregate(ctx, tx, w)
			if err != nil {
				return err
			}
			all = append(all, agg)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "loading workout history", "error", err)
		metrics.LoadFailuresTotal.WithLabelValues("history").Inc()
		return []domain.WorkoutWithExercises{}
	}
	return all
}

// loadAggregate joins a workout with its exercises and their sets. Exercises
// without sets are left out of finished workouts.
func loadAggregate(ctx context.Context, tx db.DBTX, w *domain.Workout) (domain.WorkoutWithExercises, error) {
	exercises, err := repository.NewSQLiteExerciseRepo(tx).ListByWorkout(ctx, w.ID)
	if err != nil {
		return domain.WorkoutWithExercises{}, err
	}
	setRepo := repository.NewSQLiteSetRepo(tx)

	agg := domain.WorkoutWithExercises{
		Workout:   *w,
		Exercises: make([]domain.ExerciseWithSets, 0, len(exercises)),
	}
	for _, ex := range exercises {
		sets, err := setRepo.ListByExercise(ctx, ex.ID)
		if err != nil {
			return domain.WorkoutWithExercises{}, err
		}
		if w.IsFinished() && len(sets) == 0 {
			continue
		}
		item := domain.ExerciseWithSets{Exercise: *ex, Sets: make([]domain.ExerciseSet, 0, len(sets))}
		for _, set := range sets {
			item.Sets = append(item.Sets, *set)
		}
		agg.Exercises = append(agg.Exercises, item)
	}
	return agg, nil
}

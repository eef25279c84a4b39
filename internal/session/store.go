package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/metrics"
	"github.com/alexanderramin/liftlog/internal/service"
	"golang.org/x/sync/errgroup"
)

// Observer receives a deep copy of the state after every applied transition.
// Observers run synchronously, in transition order, and must not call back
// into the store's transitions.
type Observer func(State)

// Store owns the session state. Transitions are serialised: each one runs its
// service calls, commits the next state and notifies observers before the
// next transition starts.
type Store struct {
	workouts  service.WorkoutService
	exercises service.ExerciseService
	sets      service.SetService
	logger    *slog.Logger

	mu        sync.Mutex
	state     State
	observers []subscription
	nextObsID int
}

type subscription struct {
	id int
	fn Observer
}

// NewStore returns a store with no current workout and an empty history.
// Call Load to populate it from persistence.
func NewStore(
	workouts service.WorkoutService,
	exercises service.ExerciseService,
	sets service.SetService,
	logger *slog.Logger,
) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		workouts:  workouts,
		exercises: exercises,
		sets:      sets,
		logger:    logger,
		state:     State{Workouts: []domain.WorkoutWithExercises{}},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn and returns a function that removes it. Observers
// are notified in subscription order.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Load replaces the state with the current workout and the history read from
// persistence. Both reads run concurrently and are committed together.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		current *domain.WorkoutWithExercises
		history []domain.WorkoutWithExercises
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		current = s.workouts.LoadCurrent(gctx)
		return nil
	})
	g.Go(func() error {
		history = s.workouts.LoadAll(gctx)
		return nil
	})
	_ = g.Wait()

	s.commit("load", withLoaded(current, history))
}

// StartWorkout makes a new workout current unless one is already in progress.
func (s *Store) StartWorkout(ctx context.Context) StartOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWorkout != nil {
		s.logger.Warn("workout already in progress", "workout_id", s.state.CurrentWorkout.ID)
		metrics.ObserveTransition("start_workout", false)
		return StartAlreadyInProgress
	}
	w := s.workouts.Start(ctx)
	s.commit("start_workout", withStarted(s.state, w))
	return StartStarted
}

// FinishWorkout prunes and finishes the current workout and moves it to the
// front of the history. It returns false when no workout is in progress.
func (s *Store) FinishWorkout(ctx context.Context) (*domain.WorkoutWithExercises, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWorkout == nil {
		metrics.ObserveTransition("finish_workout", false)
		return nil, false
	}
	finished := s.workouts.Finish(ctx, *s.state.CurrentWorkout)
	s.commit("finish_workout", withFinished(s.state, finished))

	out := finished.Clone()
	return &out, true
}

// AddExercise appends a new exercise to the current workout.
func (s *Store) AddExercise(ctx context.Context, name string) (*domain.ExerciseWithSets, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWorkout == nil {
		metrics.ObserveTransition("add_exercise", false)
		return nil, false
	}
	ex := s.exercises.Create(ctx, name, s.state.CurrentWorkout.ID)
	s.commit("add_exercise", withExerciseAdded(s.state, ex))

	out := ex.Clone()
	return &out, true
}

// AddSet appends an empty set to an exercise of the current workout. Nothing
// is created when the exercise is not part of the current workout.
func (s *Store) AddSet(ctx context.Context, exerciseID string) (*domain.ExerciseSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWorkout == nil {
		metrics.ObserveTransition("add_set", false)
		return nil, false
	}
	idx := s.state.CurrentWorkout.FindExercise(exerciseID)
	if idx < 0 {
		metrics.ObserveTransition("add_set", false)
		return nil, false
	}
	set := s.sets.Create(ctx, exerciseID)
	s.commit("add_set", withSetAdded(s.state, idx, set))

	out := set.Clone()
	return &out, true
}

// UpdateSet merges u into a set of the current workout and recomputes its
// one-rep max.
func (s *Store) UpdateSet(ctx context.Context, setID string, u domain.SetUpdate) (*domain.ExerciseSet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentWorkout == nil {
		metrics.ObserveTransition("update_set", false)
		return nil, false
	}
	ei, si := s.state.CurrentWorkout.FindSet(setID)
	if ei < 0 {
		metrics.ObserveTransition("update_set", false)
		return nil, false
	}
	prev := s.state.CurrentWorkout.Exercises[ei].Sets[si]
	updated := s.sets.Update(ctx, prev, u)
	s.commit("update_set", withSetReplaced(s.state, ei, si, updated))

	out := updated.Clone()
	return &out, true
}

// DeleteSet queues the persistent delete, then removes the set from the
// current workout. An exercise left without sets is removed and deleted as
// well. It returns false when no set of the current workout has setID.
func (s *Store) DeleteSet(ctx context.Context, setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets.Delete(ctx, setID)

	if s.state.CurrentWorkout == nil {
		metrics.ObserveTransition("delete_set", false)
		return false
	}
	ei, si := s.state.CurrentWorkout.FindSet(setID)
	if ei < 0 {
		metrics.ObserveTransition("delete_set", false)
		return false
	}
	exerciseID := s.state.CurrentWorkout.Exercises[ei].ID
	next, exerciseRemoved := withSetRemoved(s.state, ei, si)
	if exerciseRemoved {
		s.exercises.Delete(ctx, exerciseID)
	}
	s.commit("delete_set", next)
	return true
}

// commit installs next and notifies observers. Callers hold s.mu.
func (s *Store) commit(transition string, next State) {
	s.state = next
	metrics.ObserveTransition(transition, true)
	for _, sub := range s.observers {
		s.notify(transition, sub)
	}
}

func (s *Store) notify(transition string, sub subscription) {
	defer func() {
		if r := recover(); r != nil {
			metrics.StoreObserverPanics.Inc()
			s.logger.Error("session observer panicked",
				"transition", transition,
				"observer", sub.id,
				"panic", fmt.Sprint(r),
			)
		}
	}()
	sub.fn(s.state.Clone())
}

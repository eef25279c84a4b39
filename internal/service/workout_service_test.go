package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/metrics"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/testutil"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutService_StartDefersPersistence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := env.workouts.Start(ctx)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, testStart, w.CreatedAt)
	assert.Nil(t, w.FinishedAt)
	assert.NotNil(t, w.Exercises)
	assert.Empty(t, w.Exercises)

	env.flush(t)
	_, err := env.workoutRepo.GetByID(ctx, w.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkoutService_StartPersistsWhenConfigured(t *testing.T) {
	env := newTestEnv(t, withPersistOnStart())
	ctx := context.Background()

	w := env.workouts.Start(ctx)
	env.flush(t)

	stored, err := env.workoutRepo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.FinishedAt)

	current := env.workouts.LoadCurrent(ctx)
	require.NotNil(t, current)
	assert.Equal(t, w.ID, current.ID)
}

func TestWorkoutService_FinishBenchScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := env.workouts.Start(ctx)
	bench := env.exercises.Create(ctx, "Bench", w.ID)
	bench.Sets = append(bench.Sets, env.sets.Create(ctx, bench.ID))
	w.Exercises = append(w.Exercises, bench)

	env.clock.Advance(45 * time.Minute)
	finished := env.workouts.Finish(ctx, w)

	assert.Empty(t, finished.Exercises)
	require.NotNil(t, finished.FinishedAt)
	assert.Equal(t, testStart.Add(45*time.Minute), *finished.FinishedAt)
	assert.Len(t, w.Exercises, 1, "input aggregate must not be mutated")

	env.flush(t)
	_, err := env.exerciseRepo.GetByID(ctx, bench.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	sets, err := env.setRepo.ListByExercise(ctx, bench.ID)
	require.NoError(t, err)
	assert.Empty(t, sets)

	stored, err := env.workoutRepo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsFinished())
}

func TestWorkoutService_FinishKeepsOnlyCompleteSets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := env.workouts.Start(ctx)
	squat := env.exercises.Create(ctx, "Squat", w.ID)
	done := env.sets.Update(ctx, env.sets.Create(ctx, squat.ID), domain.SetUpdate{Reps: domain.Ptr(5), Weight: domain.Ptr(100.0)})
	pending := env.sets.Create(ctx, squat.ID)
	squat.Sets = []domain.ExerciseSet{done, pending}
	w.Exercises = []domain.ExerciseWithSets{squat}

	finished := env.workouts.Finish(ctx, w)

	require.Len(t, finished.Exercises, 1)
	for _, ex := range finished.Exercises {
		assert.NotEmpty(t, ex.Sets)
		for _, s := range ex.Sets {
			require.NotNil(t, s.Reps)
			assert.Greater(t, *s.Reps, 0)
		}
	}
	require.NotNil(t, finished.Exercises[0].Sets[0].OneRM)
	assert.InDelta(t, 112.5, *finished.Exercises[0].Sets[0].OneRM, 1e-9)

	env.flush(t)
	history := env.workouts.LoadAll(ctx)
	require.Len(t, history, 1)
	require.Len(t, history[0].Exercises, 1)
	require.Len(t, history[0].Exercises[0].Sets, 1)
	assert.Equal(t, done.ID, history[0].Exercises[0].Sets[0].ID)
	assert.Contains(t, env.observer.names(), "finish-workout")
}

func TestWorkoutService_FinishNeverBeforeCreated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := domain.WorkoutWithExercises{
		Workout: domain.Workout{ID: "future", CreatedAt: testStart.Add(time.Hour)},
	}
	finished := env.workouts.Finish(ctx, w)

	require.NotNil(t, finished.FinishedAt)
	assert.Equal(t, w.CreatedAt, *finished.FinishedAt)
}

func TestWorkoutService_FinishWriteFailureStillFinishes(t *testing.T) {
	env := newTestEnv(t, withWorkoutRepo(testutil.FailingWorkoutRepo{Err: errors.New("readonly database")}))

	w := env.workouts.Start(context.Background())
	finished := env.workouts.Finish(context.Background(), w)

	assert.True(t, finished.IsFinished())
	assert.Contains(t, env.logs.String(), "readonly database")
}

func TestWorkoutService_LoadCurrentNone(t *testing.T) {
	env := newTestEnv(t)
	assert.Nil(t, env.workouts.LoadCurrent(context.Background()))
}

func TestWorkoutService_LoadCurrentJoinsExercisesAndSets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := testutil.NewTestWorkout()
	require.NoError(t, env.workoutRepo.Save(ctx, w))
	ex := testutil.NewTestExercise(w.ID, "Deadlift")
	require.NoError(t, env.exerciseRepo.Save(ctx, ex))
	empty := testutil.NewTestExercise(w.ID, "Curl")
	require.NoError(t, env.exerciseRepo.Save(ctx, empty))
	s1 := testutil.NewTestSet(ex.ID, testutil.WithReps(3), testutil.WithWeight(140))
	s2 := testutil.NewTestSet(ex.ID)
	require.NoError(t, env.setRepo.Save(ctx, s1))
	require.NoError(t, env.setRepo.Save(ctx, s2))

	current := env.workouts.LoadCurrent(ctx)
	require.NotNil(t, current)
	assert.Equal(t, w.ID, current.ID)
	require.Len(t, current.Exercises, 2, "in-progress workouts keep empty exercises")
	assert.Equal(t, "Deadlift", current.Exercises[0].Name)
	require.Len(t, current.Exercises[0].Sets, 2)
	assert.Equal(t, s1.ID, current.Exercises[0].Sets[0].ID)
	assert.Equal(t, s2.ID, current.Exercises[0].Sets[1].ID)
}

func TestWorkoutService_LoadAllNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	older := testutil.NewTestWorkout(
		testutil.WithCreatedAt(testStart.Add(-48*time.Hour)),
		testutil.WithFinishedAt(testStart.Add(-47*time.Hour)),
	)
	newer := testutil.NewTestWorkout(
		testutil.WithCreatedAt(testStart.Add(-24*time.Hour)),
		testutil.WithFinishedAt(testStart.Add(-23*time.Hour)),
	)
	inProgress := testutil.NewTestWorkout(testutil.WithCreatedAt(testStart))
	for _, w := range []*domain.Workout{older, newer, inProgress} {
		require.NoError(t, env.workoutRepo.Save(ctx, w))
	}
	ex := testutil.NewTestExercise(older.ID, "Press")
	require.NoError(t, env.exerciseRepo.Save(ctx, ex))
	require.NoError(t, env.exerciseRepo.Save(ctx, testutil.NewTestExercise(older.ID, "Empty")))
	require.NoError(t, env.setRepo.Save(ctx, testutil.NewTestSet(ex.ID, testutil.WithReps(8), testutil.WithWeight(40))))

	all := env.workouts.LoadAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
	require.Len(t, all[1].Exercises, 1, "finished workouts omit empty exercises")
	assert.Equal(t, "Press", all[1].Exercises[0].Name)
}

func TestWorkoutService_LoadFailuresDegrade(t *testing.T) {
	database := testutil.NewTestDB(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	svc := NewWorkoutService(
		repository.NewSQLiteWorkoutRepo(database), nil, nil,
		testutil.FailingUoW{Err: errors.New("database is locked")}, nil, nil,
		WorkoutOptions{Logger: logger},
	)
	ctx := context.Background()

	currentBefore := promtest.ToFloat64(metrics.LoadFailuresTotal.WithLabelValues("current"))
	historyBefore := promtest.ToFloat64(metrics.LoadFailuresTotal.WithLabelValues("history"))

	assert.Nil(t, svc.LoadCurrent(ctx))
	all := svc.LoadAll(ctx)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	assert.Contains(t, logs.String(), "database is locked")
	assert.Equal(t, currentBefore+1, promtest.ToFloat64(metrics.LoadFailuresTotal.WithLabelValues("current")))
	assert.Equal(t, historyBefore+1, promtest.ToFloat64(metrics.LoadFailuresTotal.WithLabelValues("history")))
}

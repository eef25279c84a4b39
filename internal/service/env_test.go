package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/alexanderramin/liftlog/internal/writeback"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

type testEnv struct {
	db           *sql.DB
	queue        *writeback.Queue
	logs         *bytes.Buffer
	clock        *clockwork.FakeClock
	observer     *recordingObserver
	workoutRepo  repository.WorkoutRepo
	exerciseRepo repository.ExerciseRepo
	setRepo      repository.SetRepo
	sets         SetService
	exercises    ExerciseService
	workouts     WorkoutService
}

type envOption func(*envConfig)

type envConfig struct {
	persistOnStart bool
	setRepo        repository.SetRepo
	workoutRepo    repository.WorkoutRepo
}

func withPersistOnStart() envOption {
	return func(c *envConfig) { c.persistOnStart = true }
}

func withSetRepo(r repository.SetRepo) envOption {
	return func(c *envConfig) { c.setRepo = r }
}

func withWorkoutRepo(r repository.WorkoutRepo) envOption {
	return func(c *envConfig) { c.workoutRepo = r }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	queue := writeback.New(logger, 16)
	t.Cleanup(queue.Close)

	env := &testEnv{
		db:           database,
		queue:        queue,
		logs:         logs,
		clock:        clockwork.NewFakeClockAt(testStart),
		observer:     &recordingObserver{},
		workoutRepo:  repository.NewSQLiteWorkoutRepo(database),
		exerciseRepo: repository.NewSQLiteExerciseRepo(database),
		setRepo:      repository.NewSQLiteSetRepo(database),
	}

	cfg := envConfig{setRepo: env.setRepo, workoutRepo: env.workoutRepo}
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := &seqIDs{}
	env.sets = NewSetService(cfg.setRepo, queue, ids, env.observer)
	env.exercises = NewExerciseService(env.exerciseRepo, queue, ids, env.observer)
	env.workouts = NewWorkoutService(
		cfg.workoutRepo, env.exercises, env.sets,
		testutil.NewTestUoW(database), queue, ids,
		WorkoutOptions{Clock: env.clock, PersistOnStart: cfg.persistOnStart, Logger: logger},
		env.observer,
	)
	return env
}

func (e *testEnv) flush(t *testing.T) {
	t.Helper()
	require.NoError(t, e.queue.Flush(context.Background()))
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/liftlog/internal/cli"
	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/logging"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/session"
	"github.com/alexanderramin/liftlog/internal/writeback"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Closed before the database so pending writes drain first.
	queue := writeback.New(logger, cfg.Writeback.Buffer)
	defer queue.Close()

	// Wire repositories
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	setRepo := repository.NewSQLiteSetRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.Logging.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	clock := clockwork.NewRealClock()
	ids := service.UUIDGenerator{}
	sets := service.NewSetService(setRepo, queue, ids, observers...)
	exercises := service.NewExerciseService(exerciseRepo, queue, ids, observers...)
	workouts := service.NewWorkoutService(workoutRepo, exercises, sets, uow, queue, ids,
		service.WorkoutOptions{
			Clock:          clock,
			PersistOnStart: cfg.Workouts.PersistOnStart,
			Logger:         logger,
		},
		observers...,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := session.NewStore(workouts, exercises, sets, logger)
	store.Load(ctx)

	app := &cli.App{
		Store: store,
		Clock: clock,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

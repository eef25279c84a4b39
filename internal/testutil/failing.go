package testutil

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
)

// FailingUoW never opens a transaction; WithinTx returns Err.
type FailingUoW struct {
	Err error
}

func (u FailingUoW) WithinTx(context.Context, func(ctx context.Context, tx db.DBTX) error) error {
	return u.Err
}

// FailingSetRepo fails every call with Err. Embed a real repo and override
// selectively when only some calls should fail.
type FailingSetRepo struct {
	Err error
}

func (r FailingSetRepo) Save(context.Context, *domain.ExerciseSet) error { return r.Err }
func (r FailingSetRepo) GetByID(context.Context, string) (*domain.ExerciseSet, error) {
	return nil, r.Err
}
func (r FailingSetRepo) ListByExercise(context.Context, string) ([]*domain.ExerciseSet, error) {
	return nil, r.Err
}
func (r FailingSetRepo) Delete(context.Context, string) error { return r.Err }

// FailingWorkoutRepo fails every call with Err.
type FailingWorkoutRepo struct {
	Err error
}

func (r FailingWorkoutRepo) Save(context.Context, *domain.Workout) error { return r.Err }
func (r FailingWorkoutRepo) GetByID(context.Context, string) (*domain.Workout, error) {
	return nil, r.Err
}
func (r FailingWorkoutRepo) GetCurrent(context.Context) (*domain.Workout, error) {
	return nil, r.Err
}
func (r FailingWorkoutRepo) ListFinished(context.Context) ([]*domain.Workout, error) {
	return nil, r.Err
}
func (r FailingWorkoutRepo) Delete(context.Context, string) error { return r.Err }

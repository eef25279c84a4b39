package cli

import (
	"testing"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFixture() *domain.WorkoutWithExercises {
	return &domain.WorkoutWithExercises{
		Exercises: []domain.ExerciseWithSets{
			{
				Exercise: domain.Exercise{ID: "abc111", Name: "Squat"},
				Sets:     []domain.ExerciseSet{{ID: "s-100"}, {ID: "s-101"}},
			},
			{
				Exercise: domain.Exercise{ID: "abc222", Name: "Bench"},
				Sets:     []domain.ExerciseSet{{ID: "s-200"}},
			},
		},
	}
}

func TestResolveExerciseID(t *testing.T) {
	w := resolveFixture()

	id, err := resolveExerciseID(w, "abc1")
	require.NoError(t, err)
	assert.Equal(t, "abc111", id)

	id, err = resolveExerciseID(w, "bench")
	require.NoError(t, err)
	assert.Equal(t, "abc222", id)

	_, err = resolveExerciseID(w, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveExerciseID(w, "deadlift")
	assert.Contains(t, err.Error(), "not found")

	_, err = resolveExerciseID(nil, "abc1")
	assert.ErrorIs(t, err, errNoWorkout)
}

func TestResolveExerciseID_DuplicateNames(t *testing.T) {
	w := resolveFixture()
	w.Exercises[1].Name = "squat"

	_, err := resolveExerciseID(w, "Squat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matches 2 exercises")
}

func TestResolveSetID(t *testing.T) {
	w := resolveFixture()

	id, err := resolveSetID(w, "s-2")
	require.NoError(t, err)
	assert.Equal(t, "s-200", id)

	id, err = resolveSetID(w, "s-100")
	require.NoError(t, err)
	assert.Equal(t, "s-100", id)

	_, err = resolveSetID(w, "s-1")
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveSetID(w, " ")
	assert.Error(t, err)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setWith(id string, reps int, weight float64) ExerciseSet {
	return ApplySetUpdate(ExerciseSet{ID: id}, SetUpdate{Reps: Ptr(reps), Weight: Ptr(weight)})
}

func TestSummarizeExercises(t *testing.T) {
	workouts := []WorkoutWithExercises{
		{
			Workout: Workout{ID: "w2"},
			Exercises: []ExerciseWithSets{
				{Exercise: Exercise{Name: "Squat"}, Sets: []ExerciseSet{setWith("a", 5, 100), setWith("b", 5, 110)}},
				{Exercise: Exercise{Name: "bench"}, Sets: []ExerciseSet{setWith("c", 8, 60)}},
			},
		},
		{
			Workout: Workout{ID: "w1"},
			Exercises: []ExerciseWithSets{
				{Exercise: Exercise{Name: "squat "}, Sets: []ExerciseSet{setWith("d", 3, 120)}},
				{Exercise: Exercise{Name: "Squat"}, Sets: []ExerciseSet{setWith("e", 1, 90)}},
			},
		},
	}

	got := SummarizeExercises(workouts)
	require.Len(t, got, 2)

	assert.Equal(t, "bench", got[0].Name)
	assert.Equal(t, 1, got[0].Workouts)
	assert.Equal(t, 480.0, got[0].Volume)

	squat := got[1]
	assert.Equal(t, "Squat", squat.Name)
	assert.Equal(t, 2, squat.Workouts)
	assert.Equal(t, 4, squat.Sets)
	assert.InDelta(t, 500+550+360+90, squat.Volume, 1e-9)
	require.NotNil(t, squat.Best)
	assert.Equal(t, "d", squat.Best.ID)
}

func TestSummarizeExercises_Empty(t *testing.T) {
	assert.Empty(t, SummarizeExercises(nil))
}

func TestSummarizeExercises_NoOneRM(t *testing.T) {
	got := SummarizeExercises([]WorkoutWithExercises{{
		Exercises: []ExerciseWithSets{{Exercise: Exercise{Name: "Plank"}, Sets: []ExerciseSet{{ID: "x", Reps: Ptr(1)}}}},
	}})
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Best)
	assert.Equal(t, 1, got[0].Sets)
}

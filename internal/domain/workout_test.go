package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func sampleWorkout() WorkoutWithExercises {
	finished := testNow.Add(time.Hour)
	return WorkoutWithExercises{
		Workout: Workout{ID: "w1", CreatedAt: testNow, FinishedAt: &finished},
		Exercises: []ExerciseWithSets{
			{
				Exercise: Exercise{ID: "e1", Name: "Bench", WorkoutID: "w1"},
				Sets: []ExerciseSet{
					{ID: "s1", ExerciseID: "e1", Reps: Ptr(5), Weight: Ptr(80.0)},
					{ID: "s2", ExerciseID: "e1"},
				},
			},
			{
				Exercise: Exercise{ID: "e2", Name: "Row", WorkoutID: "w1"},
				Sets:     []ExerciseSet{{ID: "s3", ExerciseID: "e2"}},
			},
		},
	}
}

func TestWorkout_Duration(t *testing.T) {
	w := sampleWorkout()
	assert.True(t, w.IsFinished())
	assert.Equal(t, time.Hour, w.Duration())

	w.FinishedAt = nil
	assert.False(t, w.IsFinished())
	assert.Equal(t, time.Duration(0), w.Duration())
}

func TestWorkoutWithExercises_FindSet(t *testing.T) {
	w := sampleWorkout()

	ei, si := w.FindSet("s3")
	assert.Equal(t, 1, ei)
	assert.Equal(t, 0, si)

	ei, si = w.FindSet("missing")
	assert.Equal(t, -1, ei)
	assert.Equal(t, -1, si)

	assert.Equal(t, 1, w.FindExercise("e2"))
	assert.Equal(t, -1, w.FindExercise("nope"))
}

func TestWorkoutWithExercises_CloneIsDeep(t *testing.T) {
	w := sampleWorkout()
	c := w.Clone()
	require.Equal(t, w, c)

	*c.Exercises[0].Sets[0].Reps = 99
	c.Exercises[0].Sets = append(c.Exercises[0].Sets, ExerciseSet{ID: "x"})
	*c.FinishedAt = testNow
	c.Exercises[1].Name = "Changed"

	assert.Equal(t, 5, *w.Exercises[0].Sets[0].Reps)
	assert.Len(t, w.Exercises[0].Sets, 2)
	assert.Equal(t, testNow.Add(time.Hour), *w.FinishedAt)
	assert.Equal(t, "Row", w.Exercises[1].Name)
}

func TestSetUpdate_IsEmpty(t *testing.T) {
	assert.True(t, SetUpdate{}.IsEmpty())
	assert.False(t, SetUpdate{Reps: Ptr(1)}.IsEmpty())
}

func TestCoalescePtr(t *testing.T) {
	a, b := Ptr(1), Ptr(2)
	assert.Equal(t, a, CoalescePtr[int](nil, a, b))
	assert.Nil(t, CoalescePtr[int](nil, nil))
	assert.Equal(t, 7, ValueOr[int](nil, 7))
	assert.Equal(t, 2, ValueOr(b, 7))
}

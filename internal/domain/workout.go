package domain

import "time"

// Workout is one training session. FinishedAt stays nil while the workout is
// in progress.
type Workout struct {
	ID         string
	CreatedAt  time.Time
	FinishedAt *time.Time
}

// IsFinished reports whether the workout has a finish time.
func (w *Workout) IsFinished() bool {
	return w.FinishedAt != nil
}

// Duration returns the elapsed time between creation and finish, or zero for
// a workout still in progress.
func (w *Workout) Duration() time.Duration {
	if w.FinishedAt == nil {
		return 0
	}
	return w.FinishedAt.Sub(w.CreatedAt)
}

type Exercise struct {
	ID        string
	Name      string
	WorkoutID string
}

// ExerciseSet is a single set performed for an exercise. OneRM is derived from
// Reps and Weight by ApplySetUpdate and is never set by callers.
type ExerciseSet struct {
	ID         string
	ExerciseID string
	Reps       *int
	Weight     *float64
	OneRM      *float64
}

// SetUpdate carries the caller-editable fields of a set. Nil fields keep the
// previous value.
type SetUpdate struct {
	Reps   *int
	Weight *float64
}

// IsEmpty reports whether the update changes nothing.
func (u SetUpdate) IsEmpty() bool {
	return u.Reps == nil && u.Weight == nil
}

// ExerciseWithSets is an exercise together with its ordered sets.
type ExerciseWithSets struct {
	Exercise
	Sets []ExerciseSet
}

// WorkoutWithExercises is the aggregate view of a workout: the workout row
// joined with its exercises and their sets, in insertion order.
type WorkoutWithExercises struct {
	Workout
	Exercises []ExerciseWithSets
}

// FindExercise returns the index of the exercise with the given ID, or -1.
func (w *WorkoutWithExercises) FindExercise(exerciseID string) int {
	for i := range w.Exercises {
		if w.Exercises[i].ID == exerciseID {
			return i
		}
	}
	return -1
}

// FindSet returns the exercise and set indexes of the set with the given ID,
// or (-1, -1) when no exercise owns it.
func (w *WorkoutWithExercises) FindSet(setID string) (int, int) {
	for i := range w.Exercises {
		for j := range w.Exercises[i].Sets {
			if w.Exercises[i].Sets[j].ID == setID {
				return i, j
			}
		}
	}
	return -1, -1
}

// Clone returns a deep copy that shares no slices or pointers with w.
func (w WorkoutWithExercises) Clone() WorkoutWithExercises {
	out := WorkoutWithExercises{Workout: w.Workout}
	if w.FinishedAt != nil {
		f := *w.FinishedAt
		out.FinishedAt = &f
	}
	if w.Exercises != nil {
		out.Exercises = make([]ExerciseWithSets, len(w.Exercises))
		for i, ex := range w.Exercises {
			out.Exercises[i] = ex.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the exercise and its sets.
func (e ExerciseWithSets) Clone() ExerciseWithSets {
	out := ExerciseWithSets{Exercise: e.Exercise}
	if e.Sets != nil {
		out.Sets = make([]ExerciseSet, len(e.Sets))
		for i, s := range e.Sets {
			out.Sets[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a copy of the set with its own pointer fields.
func (s ExerciseSet) Clone() ExerciseSet {
	return ExerciseSet{
		ID:         s.ID,
		ExerciseID: s.ExerciseID,
		Reps:       ClonePtr(s.Reps),
		Weight:     ClonePtr(s.Weight),
		OneRM:      ClonePtr(s.OneRM),
	}
}

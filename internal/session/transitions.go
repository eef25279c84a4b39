package session

import "github.com/alexanderramin/liftlog/internal/domain"

// The functions below compute the next State from the previous one. They do
// no I/O and never modify prev; the returned State may share unchanged
// workouts with prev.

func withLoaded(current *domain.WorkoutWithExercises, history []domain.WorkoutWithExercises) State {
	if history == nil {
		history = []domain.WorkoutWithExercises{}
	}
	return State{CurrentWorkout: current, Workouts: history}
}

func withStarted(prev State, w domain.WorkoutWithExercises) State {
	return State{CurrentWorkout: &w, Workouts: prev.Workouts}
}

// withFinished clears the current workout and prepends the finished one to
// the history.
func withFinished(prev State, finished domain.WorkoutWithExercises) State {
	history := make([]domain.WorkoutWithExercises, 0, len(prev.Workouts)+1)
	history = append(history, finished)
	history = append(history, prev.Workouts...)
	return State{Workouts: history}
}

func withExerciseAdded(prev State, ex domain.ExerciseWithSets) State {
	current := prev.CurrentWorkout.Clone()
	current.Exercises = append(current.Exercises, ex)
	return State{CurrentWorkout: &current, Workouts: prev.Workouts}
}

func withSetAdded(prev State, exerciseIdx int, set domain.ExerciseSet) State {
	current := prev.CurrentWorkout.Clone()
	ex := &current.Exercises[exerciseIdx]
	ex.Sets = append(ex.Sets, set)
	return State{CurrentWorkout: &current, Workouts: prev.Workouts}
}

func withSetReplaced(prev State, exerciseIdx, setIdx int, set domain.ExerciseSet) State {
	current := prev.CurrentWorkout.Clone()
	current.Exercises[exerciseIdx].Sets[setIdx] = set
	return State{CurrentWorkout: &current, Workouts: prev.Workouts}
}

// withSetRemoved drops the set and, when that empties its exercise, the
// exercise too. The second result reports whether the exercise was removed.
func withSetRemoved(prev State, exerciseIdx, setIdx int) (State, bool) {
	current := prev.CurrentWorkout.Clone()
	ex := &current.Exercises[exerciseIdx]
	ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)

	exerciseRemoved := len(ex.Sets) == 0
	if exerciseRemoved {
		current.Exercises = append(current.Exercises[:exerciseIdx], current.Exercises[exerciseIdx+1:]...)
	}
	return State{CurrentWorkout: &current, Workouts: prev.Workouts}, exerciseRemoved
}

// Package session holds the in-memory view of the current workout and the
// workout history, and applies every mutation to it.
package session

import "github.com/alexanderramin/liftlog/internal/domain"

// State is one snapshot of the session. CurrentWorkout is nil when no
// workout is in progress; Workouts holds finished workouts, newest first.
type State struct {
	CurrentWorkout *domain.WorkoutWithExercises
	Workouts       []domain.WorkoutWithExercises
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	var out State
	if s.CurrentWorkout != nil {
		c := s.CurrentWorkout.Clone()
		out.CurrentWorkout = &c
	}
	out.Workouts = make([]domain.WorkoutWithExercises, len(s.Workouts))
	for i, w := range s.Workouts {
		out.Workouts[i] = w.Clone()
	}
	return out
}

// HasCurrentWorkout reports whether a workout is in progress.
func (s State) HasCurrentWorkout() bool {
	return s.CurrentWorkout != nil
}

// StartOutcome reports what StartWorkout did.
type StartOutcome int

const (
	// StartStarted means a new workout became current.
	StartStarted StartOutcome = iota
	// StartAlreadyInProgress means a workout was already current and the
	// state was left untouched.
	StartAlreadyInProgress
)

func (o StartOutcome) String() string {
	switch o {
	case StartStarted:
		return "started"
	case StartAlreadyInProgress:
		return "already_in_progress"
	default:
		return "unknown"
	}
}

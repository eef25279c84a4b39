package domain

// MaxOneRMReps is the largest rep count for which the one-rep max estimate is
// defined. The formula divides by (37 - reps).
const MaxOneRMReps = 36

// OneRepMax estimates the one-rep max from a set's weight and reps using
// weight * 36 / (37 - reps). Callers must check OneRepMaxDefined first.
func OneRepMax(weight float64, reps int) float64 {
	return weight * (36.0 / (37.0 - float64(reps)))
}

// OneRepMaxDefined reports whether OneRepMax yields a finite, positive-scaled
// estimate for reps.
func OneRepMaxDefined(reps int) bool {
	return reps >= 0 && reps <= MaxOneRMReps
}

// TotalWeight returns weight * reps, treating missing values as zero.
func TotalWeight(s ExerciseSet) float64 {
	return ValueOr(s.Weight, 0) * float64(ValueOr(s.Reps, 0))
}

// IsComplete reports whether the set has a positive rep count.
func IsComplete(s ExerciseSet) bool {
	return s.Reps != nil && *s.Reps > 0
}

// BestSet returns the set with the highest one-rep max. A missing OneRM counts
// as zero and a set only displaces the current best when strictly greater, so
// ties go to the earliest set and an all-zero list yields nil.
func BestSet(sets []ExerciseSet) *ExerciseSet {
	var best *ExerciseSet
	bestRM := 0.0
	for i := range sets {
		rm := ValueOr(sets[i].OneRM, 0)
		if rm > bestRM {
			best = &sets[i]
			bestRM = rm
		}
	}
	return best
}

// ApplySetUpdate merges u onto s and recomputes OneRM. It returns a new value
// and leaves s untouched. OneRM is cleared when reps fall outside the range
// where the estimate is defined.
func ApplySetUpdate(s ExerciseSet, u SetUpdate) ExerciseSet {
	out := s.Clone()
	out.Reps = ClonePtr(CoalescePtr(u.Reps, s.Reps))
	out.Weight = ClonePtr(CoalescePtr(u.Weight, s.Weight))

	if out.Reps != nil && out.Weight != nil {
		if OneRepMaxDefined(*out.Reps) {
			out.OneRM = Ptr(OneRepMax(*out.Weight, *out.Reps))
		} else {
			out.OneRM = nil
		}
	}
	return out
}

// PartitionSets splits sets into complete and incomplete, preserving order.
func PartitionSets(sets []ExerciseSet) (complete, incomplete []ExerciseSet) {
	for _, s := range sets {
		if IsComplete(s) {
			complete = append(complete, s)
		} else {
			incomplete = append(incomplete, s)
		}
	}
	return complete, incomplete
}

// ExerciseVolume sums TotalWeight over the exercise's sets.
func ExerciseVolume(e ExerciseWithSets) float64 {
	var total float64
	for _, s := range e.Sets {
		total += TotalWeight(s)
	}
	return total
}

// WorkoutVolume sums TotalWeight over every set in the workout.
func WorkoutVolume(w WorkoutWithExercises) float64 {
	var total float64
	for _, e := range w.Exercises {
		total += ExerciseVolume(e)
	}
	return total
}

// WorkoutSetCount counts every set in the workout.
func WorkoutSetCount(w WorkoutWithExercises) int {
	n := 0
	for _, e := range w.Exercises {
		n += len(e.Sets)
	}
	return n
}

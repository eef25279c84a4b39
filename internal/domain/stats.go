package domain

import (
	"sort"
	"strings"
)

// ExerciseSummary aggregates every performance of one exercise name.
type ExerciseSummary struct {
	Name     string
	Workouts int
	Sets     int
	Volume   float64
	Best     *ExerciseSet
}

// SummarizeExercises groups the exercises of workouts by name (case
// insensitive) and returns one summary per name, sorted by name. Best is a
// copy of the set with the highest one-rep max across all workouts.
func SummarizeExercises(workouts []WorkoutWithExercises) []ExerciseSummary {
	byKey := make(map[string]*ExerciseSummary)
	for _, w := range workouts {
		seen := make(map[string]bool)
		for _, ex := range w.Exercises {
			key := strings.ToLower(strings.TrimSpace(ex.Name))
			sum, ok := byKey[key]
			if !ok {
				sum = &ExerciseSummary{Name: strings.TrimSpace(ex.Name)}
				byKey[key] = sum
			}
			if !seen[key] {
				sum.Workouts++
				seen[key] = true
			}
			sum.Sets += len(ex.Sets)
			sum.Volume += ExerciseVolume(ex)

			if best := BestSet(ex.Sets); best != nil {
				if sum.Best == nil || ValueOr(best.OneRM, 0) > ValueOr(sum.Best.OneRM, 0) {
					c := best.Clone()
					sum.Best = &c
				}
			}
		}
	}

	out := make([]ExerciseSummary, 0, len(byKey))
	for _, sum := range byKey {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

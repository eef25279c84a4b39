package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
)

var errNoWorkout = errors.New("no workout in progress (start one with 'liftlog workout start')")

// resolveExerciseID finds an exercise of the current workout by full ID, ID
// prefix or case-insensitive name.
func resolveExerciseID(w *domain.WorkoutWithExercises, input string) (string, error) {
	if w == nil {
		return "", errNoWorkout
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("exercise ID or name is required")
	}

	ids := make([]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		ids = append(ids, ex.ID)
	}
	id, err := matchPrefix("exercise", ids, input)
	if err == nil {
		return id, nil
	}

	var byName []string
	for _, ex := range w.Exercises {
		if strings.EqualFold(ex.Name, input) {
			byName = append(byName, ex.ID)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
		return "", err
	default:
		return "", fmt.Errorf("exercise name %q matches %d exercises; use an ID prefix", input, len(byName))
	}
}

// resolveSetID finds a set of the current workout by full ID or ID prefix.
func resolveSetID(w *domain.WorkoutWithExercises, input string) (string, error) {
	if w == nil {
		return "", errNoWorkout
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("set ID is required")
	}
	var ids []string
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			ids = append(ids, s.ID)
		}
	}
	return matchPrefix("set", ids, input)
}

// matchPrefix returns the single ID equal to or starting with prefix.
func matchPrefix(kind string, ids []string, prefix string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q not found in the current workout", kind, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s prefix %q is ambiguous (%d matches)", kind, prefix, len(matches))
	}
}

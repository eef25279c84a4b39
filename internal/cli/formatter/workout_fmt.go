package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// FormatWorkout renders a workout with one table per exercise.
func FormatWorkout(w domain.WorkoutWithExercises, now time.Time) string {
	var b strings.Builder

	b.WriteString(WorkoutStatusPill(w.Workout))
	b.WriteString("  ")
	b.WriteString(Dim("started " + HumanTimestampFrom(w.CreatedAt, now)))
	b.WriteString("  ")
	b.WriteString(TruncID(w.ID))
	b.WriteString("\n")
	if w.IsFinished() {
		fmt.Fprintf(&b, "%s %s\n", Dim("Duration"), FormatDuration(w.Duration()))
	}

	if len(w.Exercises) == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("No exercises yet."))
		b.WriteString("\n")
		return b.String()
	}

	for _, ex := range w.Exercises {
		b.WriteString("\n")
		b.WriteString(FormatExercise(ex))
	}

	fmt.Fprintf(&b, "\n%s %d  %s %s\n",
		Dim("Sets"), domain.WorkoutSetCount(w),
		Dim("Volume"), FormatVolume(domain.WorkoutVolume(w)),
	)
	return b.String()
}

// FormatExercise renders an exercise heading followed by its sets.
func FormatExercise(ex domain.ExerciseWithSets) string {
	var b strings.Builder
	name := ex.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&b, "%s  %s\n", Bold(name), TruncID(ex.ID))

	if len(ex.Sets) == 0 {
		b.WriteString(Dim("  no sets"))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "SET", "REPS", "WEIGHT", "1RM", ""}
	align := []Align{AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft}
	rows := make([][]string, 0, len(ex.Sets))
	for i, s := range ex.Sets {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			TruncID(s.ID),
			FormatReps(s.Reps),
			FormatWeight(s.Weight),
			FormatOneRM(s.OneRM),
			SetStatusMark(s),
		})
	}
	b.WriteString(RenderAlignedTable(headers, align, rows))

	if best := domain.BestSet(ex.Sets); best != nil {
		fmt.Fprintf(&b, "%s %s  ", Dim("best 1RM"), FormatOneRM(best.OneRM))
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("volume"), FormatVolume(domain.ExerciseVolume(ex)))
	return b.String()
}

// FormatHistory renders finished workouts as a table, newest first.
func FormatHistory(workouts []domain.WorkoutWithExercises, now time.Time) string {
	headers := []string{"ID", "DATE", "DURATION", "EXERCISES", "SETS", "VOLUME"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, []string{
			TruncID(w.ID),
			HumanDateFrom(w.CreatedAt, now),
			FormatDuration(w.Duration()),
			strconv.Itoa(len(w.Exercises)),
			strconv.Itoa(domain.WorkoutSetCount(w)),
			FormatVolume(domain.WorkoutVolume(w)),
		})
	}
	return RenderAlignedTable(headers, align, rows)
}

// FormatStats renders per-exercise totals across workouts.
func FormatStats(summaries []domain.ExerciseSummary) string {
	headers := []string{"EXERCISE", "WORKOUTS", "SETS", "VOLUME", "BEST SET", "1RM"}
	align := []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		best, oneRM := Placeholder, Placeholder
		if s.Best != nil {
			best = fmt.Sprintf("%s × %s", FormatWeight(s.Best.Weight), FormatReps(s.Best.Reps))
			oneRM = FormatOneRM(s.Best.OneRM)
		}
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Workouts),
			strconv.Itoa(s.Sets),
			FormatVolume(s.Volume),
			best,
			oneRM,
		})
	}
	return RenderAlignedTable(headers, align, rows)
}

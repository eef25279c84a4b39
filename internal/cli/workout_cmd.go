package cli

import (
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/session"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Start, finish and inspect workouts",
	}

	cmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutFinishCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutHistoryCmd(app),
	)

	return cmd
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := app.Store.StartWorkout(cmd.Context())
			current := app.Store.Snapshot().CurrentWorkout

			if outcome == session.StartAlreadyInProgress {
				return fmt.Errorf("workout %s is already in progress; finish it first", current.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started workout %s\n", current.ID)
			return nil
		},
	}
}

func newWorkoutFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish the current workout, dropping sets without reps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finished, ok := app.Store.FinishWorkout(cmd.Context())
			if !ok {
				return errNoWorkout
			}
			app.render(cmd.OutOrStdout(), "Workout finished", formatter.FormatWorkout(*finished, app.now()))
			return nil
		},
	}
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := app.Store.Snapshot().CurrentWorkout
			if current == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No workout in progress.")
				return nil
			}
			app.render(cmd.OutOrStdout(), "Current workout", formatter.FormatWorkout(*current, app.now()))
			return nil
		},
	}
}

func newWorkoutHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished workouts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			workouts := app.Store.Snapshot().Workouts
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No finished workouts yet.")
				return nil
			}
			if limit > 0 && len(workouts) > limit {
				workouts = workouts[:limit]
			}
			app.render(cmd.OutOrStdout(), "History", formatter.FormatHistory(workouts, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of workouts to list (0 for all)")

	return cmd
}

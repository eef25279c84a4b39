package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Aliases: []string{"ex"},
		Short:   "Manage exercises of the current workout",
	}

	cmd.AddCommand(newExerciseAddCmd(app))

	return cmd
}

func newExerciseAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add an exercise to the current workout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("exercise name must not be empty")
			}
			ex, ok := app.Store.AddExercise(cmd.Context(), name)
			if !ok {
				return errNoWorkout
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise %s (%s)\n", ex.Name, ex.ID)
			return nil
		},
	}
}

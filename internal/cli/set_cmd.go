package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add, update and remove sets",
	}

	cmd.AddCommand(
		newSetAddCmd(app),
		newSetUpdateCmd(app),
		newSetRemoveCmd(app),
	)

	return cmd
}

func newSetAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add EXERCISE",
		Short: "Add an empty set to an exercise (ID prefix or name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exerciseID, err := resolveExerciseID(app.Store.Snapshot().CurrentWorkout, args[0])
			if err != nil {
				return err
			}
			set, ok := app.Store.AddSet(cmd.Context(), exerciseID)
			if !ok {
				return fmt.Errorf("exercise %s is no longer part of the current workout", exerciseID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added set %s\n", set.ID)
			return nil
		},
	}
}

func newSetUpdateCmd(app *App) *cobra.Command {
	var reps int
	var weight float64

	cmd := &cobra.Command{
		Use:   "update SET",
		Short: "Record reps and/or weight for a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := setUpdateFromFlags(cmd.Flags(), reps, weight)
			if err != nil {
				return err
			}

			setID, err := resolveSetID(app.Store.Snapshot().CurrentWorkout, args[0])
			if err != nil {
				return err
			}
			set, ok := app.Store.UpdateSet(cmd.Context(), setID, u)
			if !ok {
				return fmt.Errorf("set %s is no longer part of the current workout", setID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated set %s: %s reps @ %s (1RM %s)\n",
				set.ID,
				formatter.FormatReps(set.Reps),
				formatter.FormatWeight(set.Weight),
				formatter.FormatOneRM(set.OneRM),
			)
			if set.Reps != nil && !domain.OneRepMaxDefined(*set.Reps) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					formatter.Dim(fmt.Sprintf("1RM is only estimated up to %d reps", domain.MaxOneRMReps)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "Repetitions performed")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight lifted")

	return cmd
}

// setUpdateFromFlags builds an update from the flags the user actually
// passed, so "--reps 0" is distinct from leaving reps unchanged.
func setUpdateFromFlags(flags *pflag.FlagSet, reps int, weight float64) (domain.SetUpdate, error) {
	var u domain.SetUpdate
	if flags.Changed("reps") {
		if reps < 0 {
			return u, errors.New("--reps must not be negative")
		}
		u.Reps = domain.Ptr(reps)
	}
	if flags.Changed("weight") {
		if weight < 0 {
			return u, errors.New("--weight must not be negative")
		}
		u.Weight = domain.Ptr(weight)
	}
	if u.IsEmpty() {
		return u, errors.New("nothing to update: pass --reps and/or --weight")
	}
	return u, nil
}

func newSetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SET",
		Aliases: []string{"rm"},
		Short:   "Remove a set; an exercise left without sets is removed too",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := resolveSetID(app.Store.Snapshot().CurrentWorkout, args[0])
			if err != nil {
				return err
			}
			if !app.Store.DeleteSet(cmd.Context(), setID) {
				return fmt.Errorf("set %s is no longer part of the current workout", setID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed set %s\n", setID)
			return nil
		},
	}
}

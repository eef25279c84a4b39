package cli

import (
	"fmt"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show volume, set count and best set per exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts := app.Store.Snapshot().Workouts
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No finished workouts yet.")
				return nil
			}
			summaries := domain.SummarizeExercises(workouts)

			total := 0.0
			sets := 0
			for _, w := range workouts {
				total += domain.WorkoutVolume(w)
				sets += domain.WorkoutSetCount(w)
			}
			body := formatter.FormatStats(summaries) +
				fmt.Sprintf("\n%s %d  %s %d  %s %s\n",
					formatter.Dim("Workouts"), len(workouts),
					formatter.Dim("Sets"), sets,
					formatter.Dim("Volume"), formatter.FormatVolume(total),
				)
			app.render(cmd.OutOrStdout(), "Stats", body)
			return nil
		},
	}
}

package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/session"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands operate on.
type App struct {
	Store *session.Store
	Clock clockwork.Clock

	// IsInteractive reports whether output goes to a terminal. Boxed output
	// is only used when it returns true.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

func (a *App) render(w io.Writer, title, body string) {
	if a.IsInteractive != nil && a.IsInteractive() {
		_, _ = io.WriteString(w, formatter.RenderBox(title, body)+"\n")
		return
	}
	_, _ = io.WriteString(w, formatter.RenderSection(title, body))
}

// NewRootCmd creates the top-level "liftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "liftlog",
		Short:         "Track workouts, exercises and sets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newExerciseCmd(app),
		newSetCmd(app),
		newStatsCmd(app),
	)

	return root
}

package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/babylog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles service.ProfileService
	Records  service.RecordService
	Stats    service.StatsService
	Seed     service.SeedService

	// Serve runs the REST API until ctx is cancelled.
	Serve func(ctx context.Context, addr string) error
	Addr  string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for defaults and relative dates. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// errNotInteractive is returned when a form is requested without a terminal.
var errNotInteractive = errors.New("--interactive needs a terminal; pass the values as flags instead")

func (a *App) requireTerminal() error {
	if !a.interactive() {
		return errNotInteractive
	}
	return nil
}

// NewRootCmd creates the top-level "babylog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "babylog",
		Short:         "Baby care log: pumping, feeding and sleep",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProfileCmd(app),
		newLogCmd(app),
		newRecordsCmd(app),
		newTimelineCmd(app),
		newStatsCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
	)

	return root
}

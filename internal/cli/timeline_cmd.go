package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var (
		limit int
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Recent activity grouped by day",
		Long:  "Recent activity grouped by day. On a terminal this opens a browser where d then y deletes the selected record.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if app.interactive() && !plain {
				p := tea.NewProgram(newTimelineModel(ctx, app, limit),
					tea.WithContext(ctx),
					tea.WithOutput(cmd.OutOrStdout()))
				_, err := p.Run()
				return err
			}

			recs, err := app.Records.ListRecords(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(recs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records to show")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print instead of opening the browser")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Daily and weekly statistics",
	}

	cmd.AddCommand(
		newStatsDailyCmd(app),
		newStatsWeeklyCmd(app),
	)

	return cmd
}

func newStatsDailyCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Totals for one calendar day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := date
			if day == "" {
				day = domain.DayKey(app.now())
			}
			s, err := app.Stats.DailyStats(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDailyStats(s, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to summarise (YYYY-MM-DD, default today)")

	return cmd
}

func newStatsWeeklyCmd(app *App) *cobra.Command {
	var anchor string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Pumping chart for the seven days ending at --anchor, with that day's details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			end := anchor
			if end == "" {
				end = domain.DayKey(app.now())
			}
			points, err := app.Stats.WeeklyPumpingSeries(ctx, end)
			if err != nil {
				return err
			}
			day, err := app.Stats.DailyStats(ctx, end)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatWeeklyChart(points, end))
			fmt.Fprint(out, formatter.FormatDailyStats(day, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "Last day of the week (YYYY-MM-DD, default today)")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add demo records for the last few days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Seed == nil {
				return fmt.Errorf("seed is not configured")
			}
			n, err := app.Seed.SeedDemo(cmd.Context(), days, app.now())
			if err != nil {
				return err
			}
			total, err := app.Records.CountRecords(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d demo records over %d days (%d in the log)\n", n, days, total)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", service.DefaultSeedDays, "Number of days to generate")

	return cmd
}

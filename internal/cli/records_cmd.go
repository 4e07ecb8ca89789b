package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/service"
	"github.com/spf13/cobra"
)

func newRecordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"rec"},
		Short:   "Inspect or remove logged records",
	}

	cmd.AddCommand(
		newRecordsListCmd(app),
		newRecordsShowCmd(app),
		newRecordsRemoveCmd(app),
	)

	return cmd
}

func newRecordsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, most recently added first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Records.ListRecords(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList(recs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", service.DefaultListLimit, "Maximum records to show")

	return cmd
}

func newRecordsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Records.GetRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordDetail(rec))
			return nil
		},
	}
}

func newRecordsRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a record by ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm(fmt.Sprintf("Remove record %s?", id), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Records.DeleteRecord(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed record %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

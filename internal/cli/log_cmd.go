package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a pumping, feeding or sleep event",
	}

	cmd.AddCommand(
		newLogPumpingCmd(app),
		newLogFeedingCmd(app),
		newLogSleepCmd(app),
	)

	return cmd
}

func newLogPumpingCmd(app *App) *cobra.Command {
	var (
		v           recordFormValues
		volume      int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "pumping",
		Short: "Log a pumping session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Amount = strconv.Itoa(volume)
			if interactive {
				if err := app.requireTerminal(); err != nil {
					return err
				}
				if !cmd.Flags().Changed("volume") {
					v.Amount = ""
				}
				if err := pumpingForm(&v).Run(); err != nil {
					return err
				}
			}
			rec, err := v.toPumping(app.now())
			if err != nil {
				return err
			}
			return addAndPrint(cmd, app, rec)
		},
	}

	cmd.Flags().StringVar(&v.Side, "side", string(domain.SideBoth), "left, right or both")
	cmd.Flags().IntVar(&volume, "volume", 0, "Total volume in ml")
	cmd.Flags().StringVar(&v.At, "at", "", "When it happened (default now)")
	cmd.Flags().StringVar(&v.Note, "note", "", "Free-text note")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in a form")

	return cmd
}

func newLogFeedingCmd(app *App) *cobra.Command {
	var (
		v           recordFormValues
		amount      int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "feeding",
		Short: "Log a feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Amount = strconv.Itoa(amount)
			if interactive {
				if err := app.requireTerminal(); err != nil {
					return err
				}
				if !cmd.Flags().Changed("amount") {
					v.Amount = ""
				}
				if err := feedingForm(&v).Run(); err != nil {
					return err
				}
			}
			rec, err := v.toFeeding(app.now())
			if err != nil {
				return err
			}
			return addAndPrint(cmd, app, rec)
		},
	}

	cmd.Flags().StringVar(&v.FeedType, "type", string(domain.FeedFormula), "formula or breast")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount in ml")
	cmd.Flags().StringVar(&v.At, "at", "", "When it happened (default now)")
	cmd.Flags().StringVar(&v.Note, "note", "", "Free-text note")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in a form")

	return cmd
}

func newLogSleepCmd(app *App) *cobra.Command {
	var (
		v           recordFormValues
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Log a sleep",
		Long: "Log a sleep. Without --minutes the duration is computed from --start and --end.\n" +
			"The record is timestamped at --end, or at --at when given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := app.requireTerminal(); err != nil {
					return err
				}
				if err := sleepForm(&v).Run(); err != nil {
					return err
				}
			}
			rec, err := v.toSleep(app.now())
			if err != nil {
				return err
			}
			return addAndPrint(cmd, app, rec)
		},
	}

	cmd.Flags().StringVar(&v.Start, "start", "", "When the baby fell asleep")
	cmd.Flags().StringVar(&v.End, "end", "", "When the baby woke up (optional)")
	cmd.Flags().StringVar(&v.Minutes, "minutes", "", "Duration in minutes")
	cmd.Flags().StringVar(&v.At, "at", "", "Record timestamp (default --end, else now)")
	cmd.Flags().StringVar(&v.Note, "note", "", "Free-text note")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in a form")

	return cmd
}

func addAndPrint(cmd *cobra.Command, app *App, rec *domain.ActivityRecord) error {
	created, err := app.Records.AddRecord(cmd.Context(), rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		formatter.StyleGreen.Render("Logged"),
		created.Title(),
		formatter.Dim(fmt.Sprintf("at %s (%s)", created.CreatedAt.Format("2006-01-02 15:04"), created.ID)))
	return nil
}

func parseMillilitres(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.ValidationError{Field: field, Msg: "must be a whole number of ml"}
	}
	return n, nil
}

func (v recordFormValues) toPumping(now time.Time) (*domain.ActivityRecord, error) {
	at, err := parseWhen("created_at", v.At, now)
	if err != nil {
		return nil, err
	}
	vol, err := parseMillilitres("volume_total", v.Amount)
	if err != nil {
		return nil, err
	}
	return domain.NewPumpingRecord("", at, domain.PumpSide(strings.ToLower(v.Side)), vol, strings.TrimSpace(v.Note)), nil
}

func (v recordFormValues) toFeeding(now time.Time) (*domain.ActivityRecord, error) {
	at, err := parseWhen("created_at", v.At, now)
	if err != nil {
		return nil, err
	}
	amount, err := parseMillilitres("amount_ml", v.Amount)
	if err != nil {
		return nil, err
	}
	return domain.NewFeedingRecord("", at, domain.FeedType(strings.ToLower(v.FeedType)), amount, strings.TrimSpace(v.Note)), nil
}

func (v recordFormValues) toSleep(now time.Time) (*domain.ActivityRecord, error) {
	if strings.TrimSpace(v.Start) == "" {
		return nil, &domain.ValidationError{Field: "start_time", Msg: "is required (--start)"}
	}
	start, err := parseWhen("start_time", v.Start, now)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if strings.TrimSpace(v.End) != "" {
		e, err := parseWhen("end_time", v.End, now)
		if err != nil {
			return nil, err
		}
		end = &e
	}

	var minutes int
	switch {
	case strings.TrimSpace(v.Minutes) != "":
		minutes, err = strconv.Atoi(strings.TrimSpace(v.Minutes))
		if err != nil {
			return nil, &domain.ValidationError{Field: "duration_minutes", Msg: "must be a whole number"}
		}
	case end != nil:
		minutes = domain.SleepDurationMinutes(start, *end)
	default:
		return nil, &domain.ValidationError{Field: "duration_minutes", Msg: "give --minutes or --end"}
	}

	at := now
	switch {
	case strings.TrimSpace(v.At) != "":
		if at, err = parseWhen("created_at", v.At, now); err != nil {
			return nil, err
		}
	case end != nil:
		at = *end
	}
	return domain.NewSleepRecord("", at, start, end, minutes, strings.TrimSpace(v.Note)), nil
}

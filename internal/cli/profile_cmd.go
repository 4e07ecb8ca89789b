package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the baby profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileEditCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the baby profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p, app.now()))
			return nil
		},
	}
}

func newProfileEditCmd(app *App) *cobra.Command {
	var (
		v           profileFormValues
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace the baby profile",
		Long:  "Replace the baby profile. Fields not given keep their current value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := app.Profiles.GetProfile(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			merged := profileFormValues{
				Name:   pick(flags.Changed("name"), v.Name, current.Name),
				DOB:    pick(flags.Changed("dob"), v.DOB, domain.DayKey(current.DateOfBirth)),
				Height: pick(flags.Changed("height"), v.Height, current.HeightCm.String()),
				Weight: pick(flags.Changed("weight"), v.Weight, current.WeightKg.String()),
				Gender: pick(flags.Changed("gender"), v.Gender, string(current.Gender)),
			}

			if interactive {
				if err := app.requireTerminal(); err != nil {
					return err
				}
				if err := profileForm(&merged).Run(); err != nil {
					return err
				}
			}

			p, err := merged.toProfile(current.ID)
			if err != nil {
				return err
			}
			stored, err := app.Profiles.UpdateProfile(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(stored, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Name, "name", "", "Baby's name")
	cmd.Flags().StringVar(&v.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&v.Height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&v.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&v.Gender, "gender", "", "male or female")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit in a form")

	return cmd
}

func pick(changed bool, flagValue, current string) string {
	if changed {
		return flagValue
	}
	return current
}

func (v profileFormValues) toProfile(id string) (*domain.BabyProfile, error) {
	dob, err := time.Parse(domain.DateLayout, strings.TrimSpace(v.DOB))
	if err != nil {
		return nil, &domain.ValidationError{Field: "dob", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", v.DOB)}
	}
	height, err := decimal.NewFromString(strings.TrimSpace(v.Height))
	if err != nil {
		return nil, &domain.ValidationError{Field: "height", Msg: "must be a number"}
	}
	weight, err := decimal.NewFromString(strings.TrimSpace(v.Weight))
	if err != nil {
		return nil, &domain.ValidationError{Field: "weight", Msg: "must be a number"}
	}
	return &domain.BabyProfile{
		ID:          id,
		Name:        strings.TrimSpace(v.Name),
		DateOfBirth: dob,
		HeightCm:    height,
		WeightKg:    weight,
		Gender:      domain.Gender(strings.ToLower(strings.TrimSpace(v.Gender))),
	}, nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/huh"
)

// recordFormValues collects the raw strings entered in the log forms.
type recordFormValues struct {
	Side     string
	FeedType string
	Amount   string
	At       string
	Start    string
	End      string
	Minutes  string
	Note     string
}

func noteInput(value *string) *huh.Text {
	return huh.NewText().
		Title("Note (optional)").
		CharLimit(280).
		Value(value)
}

// whenLayouts are accepted by --at, --start and --end, in order.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// parseWhen parses a timestamp entered for field. Values without an offset
// are read in now's location; a bare "15:04" means that time today.
func parseWhen(field, s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domain.ValidationError{
		Field: field,
		Msg:   fmt.Sprintf("cannot parse %q: use \"YYYY-MM-DD HH:MM\", \"HH:MM\" or RFC3339", s),
	}
}

func validateWhen(s string) error {
	_, err := parseWhen("time", s, time.Now())
	return err
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}

func validateRequiredNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return validateNonNegativeInt(s)
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validatePositiveDecimal(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func whenInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("blank for now, or 2024-01-05 08:30").
		Value(value).
		Validate(validateWhen)
}

func pumpingForm(v *recordFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Side").
				Options(
					huh.NewOption("Both sides", string(domain.SideBoth)),
					huh.NewOption("Left", string(domain.SideLeft)),
					huh.NewOption("Right", string(domain.SideRight)),
				).
				Value(&v.Side),
			huh.NewInput().
				Title("Total volume (ml)").
				Placeholder("120").
				Value(&v.Amount).
				Validate(validateRequiredNonNegativeInt),
			whenInput("When", &v.At),
			noteInput(&v.Note),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

func feedingForm(v *recordFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Feed type").
				Options(
					huh.NewOption("Formula", string(domain.FeedFormula)),
					huh.NewOption("Breast milk", string(domain.FeedBreast)),
				).
				Value(&v.FeedType),
			huh.NewInput().
				Title("Amount (ml)").
				Placeholder("150").
				Value(&v.Amount).
				Validate(validateRequiredNonNegativeInt),
			whenInput("When", &v.At),
			noteInput(&v.Note),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

func sleepForm(v *recordFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			whenInput("Fell asleep", &v.Start),
			whenInput("Woke up", &v.End),
			huh.NewInput().
				Title("Duration in minutes (blank to compute)").
				Value(&v.Minutes).
				Validate(validateNonNegativeInt),
			noteInput(&v.Note),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

// profileFormValues holds the editable profile fields as strings.
type profileFormValues struct {
	Name   string
	DOB    string
	Height string
	Weight string
	Gender string
}

func profileForm(v *profileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name).Validate(huh.ValidateNotEmpty()),
			huh.NewInput().Title("Date of birth (YYYY-MM-DD)").Value(&v.DOB).Validate(validateDate),
			huh.NewInput().Title("Height (cm)").Value(&v.Height).Validate(validatePositiveDecimal),
			huh.NewInput().Title("Weight (kg)").Value(&v.Weight).Validate(validatePositiveDecimal),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Boy", string(domain.GenderMale)),
					huh.NewOption("Girl", string(domain.GenderFemale)),
				).
				Value(&v.Gender),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(babylogHuhTheme()).WithShowHelp(false)
}

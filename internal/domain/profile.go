package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProfileID identifies the single profile a store is created with.
const DefaultProfileID = "baby_01"

type BabyProfile struct {
	ID          string
	Name        string
	DateOfBirth time.Time
	HeightCm    decimal.Decimal
	WeightKg    decimal.Decimal
	Gender      Gender
}

// DefaultProfile returns the profile seeded when a store is initialised.
func DefaultProfile() BabyProfile {
	return BabyProfile{
		ID:          DefaultProfileID,
		Name:        "Tít",
		DateOfBirth: time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC),
		HeightCm:    decimal.NewFromInt(65),
		WeightKg:    decimal.RequireFromString("7.2"),
		Gender:      GenderMale,
	}
}

func (p *BabyProfile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return invalid("id", "is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	if p.DateOfBirth.IsZero() {
		return invalid("dob", "is required")
	}
	if p.HeightCm.IsNegative() || p.HeightCm.IsZero() {
		return invalid("height", "must be positive")
	}
	if p.WeightKg.IsNegative() || p.WeightKg.IsZero() {
		return invalid("weight", "must be positive")
	}
	if !ValidGenders[p.Gender] {
		return invalid("gender", fmt.Sprintf("must be male or female, got %q", p.Gender))
	}
	return nil
}

// Equal reports whether two profiles hold the same values. Decimal fields
// are compared numerically so 7.2 and 7.20 are equal.
func (p BabyProfile) Equal(o BabyProfile) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		DayKey(p.DateOfBirth) == DayKey(o.DateOfBirth) &&
		p.HeightCm.Equal(o.HeightCm) &&
		p.WeightKg.Equal(o.WeightKg) &&
		p.Gender == o.Gender
}

// AgeLabel renders the age shown under the baby's name: whole days for the
// first month, then 30-day months.
func AgeLabel(dob, now time.Time) string {
	birth := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	diff := now.Sub(birth)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 30 {
		return fmt.Sprintf("%d days", days)
	}
	return fmt.Sprintf("%d months", days/30)
}

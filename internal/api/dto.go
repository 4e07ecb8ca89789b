package api

import (
	"encoding/json"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/shopspring/decimal"
)

type profileJSON struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	DOB    string      `json:"dob"`
	Height json.Number `json:"height"`
	Weight json.Number `json:"weight"`
	Gender string      `json:"gender"`
}

func toProfileJSON(p *domain.BabyProfile) profileJSON {
	return profileJSON{
		ID:     p.ID,
		Name:   p.Name,
		DOB:    domain.DayKey(p.DateOfBirth),
		Height: json.Number(p.HeightCm.String()),
		Weight: json.Number(p.WeightKg.String()),
		Gender: string(p.Gender),
	}
}

func (j profileJSON) toDomain() (*domain.BabyProfile, error) {
	dob, err := time.Parse(domain.DateLayout, j.DOB)
	if err != nil {
		return nil, &domain.ValidationError{Field: "dob", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", j.DOB)}
	}
	height, err := decimal.NewFromString(j.Height.String())
	if err != nil {
		return nil, &domain.ValidationError{Field: "height", Msg: "must be a number"}
	}
	weight, err := decimal.NewFromString(j.Weight.String())
	if err != nil {
		return nil, &domain.ValidationError{Field: "weight", Msg: "must be a number"}
	}
	return &domain.BabyProfile{
		ID:          j.ID,
		Name:        j.Name,
		DateOfBirth: dob,
		HeightCm:    height,
		WeightKg:    weight,
		Gender:      domain.Gender(j.Gender),
	}, nil
}

// recordJSON is the wire shape of an activity record. Variant fields are
// flattened next to the common ones, keyed by type.
type recordJSON struct {
	ID              string     `json:"id,omitempty"`
	BabyID          string     `json:"baby_id,omitempty"`
	Type            string     `json:"type"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	Note            string     `json:"note,omitempty"`
	Side            *string    `json:"side,omitempty"`
	VolumeTotal     *int       `json:"volume_total,omitempty"`
	FeedType        *string    `json:"feed_type,omitempty"`
	AmountML        *int       `json:"amount_ml,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`

	// TZ is an IANA zone name. When set, submitted instants are moved into
	// it before storage so a UTC timestamp lands in the caller's local day.
	TZ string `json:"tz,omitempty"`
}

func toRecordJSON(r *domain.ActivityRecord) recordJSON {
	created := r.CreatedAt
	out := recordJSON{
		ID:        r.ID,
		BabyID:    r.BabyID,
		Type:      string(r.Type),
		CreatedAt: &created,
		Note:      r.Note,
	}
	switch {
	case r.Pumping != nil:
		side := string(r.Pumping.Side)
		vol := r.Pumping.VolumeTotal
		out.Side, out.VolumeTotal = &side, &vol
	case r.Feeding != nil:
		ft := string(r.Feeding.FeedType)
		amt := r.Feeding.AmountML
		out.FeedType, out.AmountML = &ft, &amt
	case r.Sleep != nil:
		start := r.Sleep.StartTime
		dur := r.Sleep.DurationMinutes
		out.StartTime, out.DurationMinutes = &start, &dur
		out.EndTime = r.Sleep.EndTime
	}
	return out
}

func toRecordsJSON(recs []*domain.ActivityRecord) []recordJSON {
	out := make([]recordJSON, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecordJSON(r))
	}
	return out
}

// toDomain converts a submitted record. created_at defaults to the sleep
// end time for sleep records, otherwise to now. A sleep record without
// duration_minutes takes it from start_time and end_time.
func (j recordJSON) toDomain(now time.Time) (*domain.ActivityRecord, error) {
	t := domain.RecordType(j.Type)
	if err := j.checkForeignFields(t); err != nil {
		return nil, err
	}
	if j.TZ != "" {
		loc, err := time.LoadLocation(j.TZ)
		if err != nil {
			return nil, &domain.ValidationError{Field: "tz", Msg: fmt.Sprintf("unknown time zone %q", j.TZ)}
		}
		j = j.in(loc)
		now = now.In(loc)
	}

	at := now
	if j.CreatedAt != nil {
		at = *j.CreatedAt
	} else if t == domain.RecordSleep && j.EndTime != nil {
		at = *j.EndTime
	}

	switch t {
	case domain.RecordPumping:
		if j.Side == nil || j.VolumeTotal == nil {
			return nil, &domain.ValidationError{Field: "volume_total", Msg: "side and volume_total are required"}
		}
		return domain.NewPumpingRecord(j.BabyID, at, domain.PumpSide(*j.Side), *j.VolumeTotal, j.Note), nil
	case domain.RecordFeeding:
		if j.FeedType == nil || j.AmountML == nil {
			return nil, &domain.ValidationError{Field: "amount_ml", Msg: "feed_type and amount_ml are required"}
		}
		return domain.NewFeedingRecord(j.BabyID, at, domain.FeedType(*j.FeedType), *j.AmountML, j.Note), nil
	case domain.RecordSleep:
		if j.StartTime == nil {
			return nil, &domain.ValidationError{Field: "start_time", Msg: "is required"}
		}
		var minutes int
		switch {
		case j.DurationMinutes != nil:
			minutes = *j.DurationMinutes
		case j.EndTime != nil:
			minutes = domain.SleepDurationMinutes(*j.StartTime, *j.EndTime)
		default:
			return nil, &domain.ValidationError{Field: "duration_minutes", Msg: "is required without end_time"}
		}
		return domain.NewSleepRecord(j.BabyID, at, *j.StartTime, j.EndTime, minutes, j.Note), nil
	default:
		return nil, &domain.ValidationError{Field: "type", Msg: fmt.Sprintf("must be pumping, feeding or sleep, got %q", j.Type)}
	}
}

func (j recordJSON) in(loc *time.Location) recordJSON {
	move := func(t *time.Time) *time.Time {
		if t == nil {
			return nil
		}
		v := t.In(loc)
		return &v
	}
	j.CreatedAt = move(j.CreatedAt)
	j.StartTime = move(j.StartTime)
	j.EndTime = move(j.EndTime)
	return j
}

func (j recordJSON) checkForeignFields(t domain.RecordType) error {
	pumping := j.Side != nil || j.VolumeTotal != nil
	feeding := j.FeedType != nil || j.AmountML != nil
	sleep := j.StartTime != nil || j.EndTime != nil || j.DurationMinutes != nil

	var foreign bool
	switch t {
	case domain.RecordPumping:
		foreign = feeding || sleep
	case domain.RecordFeeding:
		foreign = pumping || sleep
	case domain.RecordSleep:
		foreign = pumping || feeding
	}
	if foreign {
		return &domain.ValidationError{Field: "type", Msg: fmt.Sprintf("%s record carries fields of another type", t)}
	}
	return nil
}

type dailyStatsJSON struct {
	Date            string  `json:"date"`
	TotalPumpingML  int     `json:"total_pumping_ml"`
	TotalFeedingML  int     `json:"total_feeding_ml"`
	TotalSleepHours float64 `json:"total_sleep_hours"`
	AvgPumpML       int     `json:"avg_pump_ml"`
	PumpCount       int     `json:"pump_count"`
}

func toDailyStatsJSON(s domain.DailyStats) dailyStatsJSON {
	return dailyStatsJSON(s)
}

type weeklyPointJSON struct {
	Name     string `json:"name"`
	FullDate string `json:"fullDate"`
	Volume   int    `json:"volume"`
}

func toWeeklyJSON(points []domain.WeeklyPoint) []weeklyPointJSON {
	out := make([]weeklyPointJSON, 0, len(points))
	for _, p := range points {
		out = append(out, weeklyPointJSON{Name: p.Label, FullDate: p.FullDate, Volume: p.Volume})
	}
	return out
}

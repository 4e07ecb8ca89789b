package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/babylog/internal/db"
	"github.com/alexanderramin/babylog/internal/domain"
)

const recordColumns = `id, baby_id, type, created_at, note,
	side, volume_total, feed_type, amount_ml, start_time, end_time, duration_minutes`

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.ActivityRecord) error {
	var (
		side, feedType           interface{}
		volume, amount, duration interface{}
		startTime, endTime       interface{}
	)
	switch {
	case rec.Pumping != nil:
		side, volume = string(rec.Pumping.Side), rec.Pumping.VolumeTotal
	case rec.Feeding != nil:
		feedType, amount = string(rec.Feeding.FeedType), rec.Feeding.AmountML
	case rec.Sleep != nil:
		startTime = rec.Sleep.StartTime.Format(timeLayout)
		endTime = nullableTimeToString(rec.Sleep.EndTime)
		duration = rec.Sleep.DurationMinutes
	}

	query := `INSERT INTO activity_records (id, baby_id, type, created_at, created_day, note,
		side, volume_total, feed_type, amount_ml, start_time, end_time, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.BabyID,
		string(rec.Type),
		rec.CreatedAt.Format(timeLayout),
		domain.DayKey(rec.CreatedAt),
		rec.Note,
		side, volume, feedType, amount, startTime, endTime, duration,
	)
	if err != nil {
		return fmt.Errorf("inserting activity record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM activity_records WHERE id = ?`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity record %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM activity_records ORDER BY seq DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *SQLiteRecordRepo) ListByDayRange(ctx context.Context, fromDay, toDay string) ([]*domain.ActivityRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM activity_records
		WHERE created_day BETWEEN ? AND ?
		ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("listing records by day: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *SQLiteRecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity_records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting activity record: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecords(rows *sql.Rows) ([]*domain.ActivityRecord, error) {
	var out []*domain.ActivityRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity records: %w", err)
	}
	return out, nil
}

func scanRecord(s rowScanner) (*domain.ActivityRecord, error) {
	var (
		rec                      domain.ActivityRecord
		recType, createdAt       string
		side, feedType           sql.NullString
		startTime, endTime       sql.NullString
		volume, amount, duration sql.NullInt64
	)
	err := s.Scan(&rec.ID, &rec.BabyID, &recType, &createdAt, &rec.Note,
		&side, &volume, &feedType, &amount, &startTime, &endTime, &duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity record: %w", err)
	}

	rec.Type = domain.RecordType(recType)
	if rec.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}

	switch rec.Type {
	case domain.RecordPumping:
		rec.Pumping = &domain.PumpingDetails{
			Side:        domain.PumpSide(side.String),
			VolumeTotal: int(volume.Int64),
		}
	case domain.RecordFeeding:
		rec.Feeding = &domain.FeedingDetails{
			FeedType: domain.FeedType(feedType.String),
			AmountML: int(amount.Int64),
		}
	case domain.RecordSleep:
		start, err := parseTime("start_time", startTime.String)
		if err != nil {
			return nil, err
		}
		rec.Sleep = &domain.SleepDetails{
			StartTime:       start,
			EndTime:         parseNullableTime(endTime),
			DurationMinutes: int(duration.Int64),
		}
	default:
		return nil, fmt.Errorf("activity record %s has unknown type %q", rec.ID, recType)
	}
	return &rec, nil
}

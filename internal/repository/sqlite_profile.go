package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/db"
	"github.com/alexanderramin/babylog/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.BabyProfile, error) {
	query := `SELECT id, name, dob, height_cm, weight_kg, gender
		FROM baby_profile WHERE slot = 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.BabyProfile
	var dob, height, weight, gender string
	if err := row.Scan(&p.ID, &p.Name, &dob, &height, &weight, &gender); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("baby profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning baby profile: %w", err)
	}

	var err error
	if p.DateOfBirth, err = time.Parse(domain.DateLayout, dob); err != nil {
		return nil, fmt.Errorf("parsing dob %q: %w", dob, err)
	}
	if p.HeightCm, err = parseDecimal("height_cm", height); err != nil {
		return nil, err
	}
	if p.WeightKg, err = parseDecimal("weight_kg", weight); err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	return &p, nil
}

func (r *SQLiteProfileRepo) Replace(ctx context.Context, p *domain.BabyProfile) error {
	query := `UPDATE baby_profile
		SET id = ?, name = ?, dob = ?, height_cm = ?, weight_kg = ?, gender = ?, updated_at = ?
		WHERE slot = 1`
	res, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		domain.DayKey(p.DateOfBirth),
		p.HeightCm.String(),
		p.WeightKg.String(),
		string(p.Gender),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("replacing baby profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replacing baby profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("baby profile: %w", ErrNotFound)
	}
	return nil
}

// SQLiteProfileTx binds profile repos to transactions of a UnitOfWork.
type SQLiteProfileTx struct {
	uow db.UnitOfWork
}

func NewSQLiteProfileTx(uow db.UnitOfWork) *SQLiteProfileTx {
	return &SQLiteProfileTx{uow: uow}
}

func (t *SQLiteProfileTx) WithinProfileTx(ctx context.Context, fn func(ctx context.Context, profiles ProfileRepo) error) error {
	return t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewSQLiteProfileRepo(tx))
	})
}

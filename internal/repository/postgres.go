package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/config"
	"github.com/alexanderramin/babylog/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB connects to PostgreSQL, migrates the schema and seeds the
// default profile when none exists.
func NewPostgresDB(cfg config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := MigrateGorm(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// MigrateGorm creates the tables and seeds the default profile.
func MigrateGorm(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&profileModel{}, &recordModel{}); err != nil {
		return fmt.Errorf("migrating postgres schema: %w", err)
	}

	var existing profileModel
	err := gdb.First(&existing, "slot = ?", profileSlot).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking baby profile: %w", err)
	}
	def := domain.DefaultProfile()
	seed := toProfileModel(&def)
	seed.UpdatedAt = time.Now().UTC()
	if err := gdb.Create(&seed).Error; err != nil {
		return fmt.Errorf("seeding baby profile: %w", err)
	}
	return nil
}

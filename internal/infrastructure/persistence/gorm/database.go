package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platewise/v1/internal/infrastructure/config"
)

// Open connects to postgres, applies pool settings and optionally
// auto-migrates the schema
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// ActivePlanIndexDDL enforces at most one active plan per owner at the
// database level. AutoMigrate cannot express a partial unique index, so it
// is created with raw DDL.
const ActivePlanIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_owner_active ON plans (owner_id) WHERE state = 'active'`

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&RecipeModel{},
		&RecipeSlotModel{},
		&PlanModel{},
		&PlanDayModel{},
		&SlotTargetModel{},
		&MealModel{},
	)
	if err != nil {
		return err
	}
	return db.Exec(ActivePlanIndexDDL).Error
}

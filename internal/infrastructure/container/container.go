// Package container wires the application graph with Uber Fx.
// The plan core is a library; this composition root exists for the
// binaries and for embedding hosts that want the default wiring.
package container

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	applan "github.com/platewise/v1/internal/application/plan"
	"github.com/platewise/v1/internal/infrastructure/config"
	gormpersistence "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"
)

// Module provides every dependency of the plan core
var Module = fx.Options(
	fx.Provide(
		newConfig,
		newLogger,
		newDatabase,
		gormpersistence.NewPlanRepository,
		gormpersistence.NewRecipeRepository,
		newRecipeSelector,
		applan.NewPlanAssembler,
		applan.NewPlanService,
	),
)

func newConfig() (*config.Config, error) {
	return config.Load("")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Debug,
	})
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := gormpersistence.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func newRecipeSelector(recipes outbound.RecipeRepository) *applan.RecipeSelector {
	// nil random source means time-seeded; tests inject their own
	return applan.NewRecipeSelector(recipes, nil)
}

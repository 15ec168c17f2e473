// Package postgres stores users, listings and purchases in PostgreSQL through GORM.
package postgres

import (
	"context"
	"log/slog"

	"chaintrace/config"
	"chaintrace/internal/domain/lifecycle"
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params are the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the GORM handle through go-lib's pool helper. The connection is
// checked, and the schema migrated when migration.autoMigrate is set, once the
// fx app starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-row writes (purchase + listing payment) go through TransactionManager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB); err != nil {
			return nil, err
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if !params.Config.Migration.AutoMigrate {
				return nil
			}
			if err := Migrate(db.WithContext(ctx)); err != nil {
				return err
			}
			params.Logger.Info("Postgres schema migrated")

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

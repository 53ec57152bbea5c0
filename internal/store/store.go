// Package store opens the relational database backing the user service.
package store

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Gobd/ruleset/internal/config"
)

// Open connects to the SQLite database at dsn and migrates models.
// Driver errors are translated, so a unique index violation is reported as
// gorm.ErrDuplicatedKey.
func Open(dsn string, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

type params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Log       *zap.Logger
	Models    []any `group:"models"`
}

func provide(p params) (*gorm.DB, error) {
	db, err := Open(p.Config.DatabaseDSN, p.Models...)
	if err != nil {
		return nil, err
	}
	p.Log.Info("database ready", zap.Int("models", len(p.Models)))

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			p.Log.Info("closing database")
			return Close(db)
		},
	})
	return db, nil
}

// AsModel registers a model for migration on startup.
func AsModel(newModel func() any) any {
	return fx.Annotate(newModel, fx.ResultTags(`group:"models"`))
}

// Module provides *gorm.DB to the application.
var Module = fx.Module("store",
	fx.Provide(provide),
)

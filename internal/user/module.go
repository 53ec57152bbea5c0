package user

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Gobd/ruleset/internal/config"
	"github.com/Gobd/ruleset/internal/store"
)

func provideService(repo *Repository, log *zap.Logger, cfg config.Config) (*Service, error) {
	return NewService(repo, log.Named("user"), cfg.LookupTimeout)
}

// Module provides the user Repository and Service and registers the User
// model for migration.
var Module = fx.Module("user",
	fx.Provide(
		store.AsModel(func() any { return &User{} }),
		NewRepository,
		provideService,
	),
)

// Command server runs the user service.
package main

import (
	"go.uber.org/fx"

	"github.com/Gobd/ruleset/internal/config"
	"github.com/Gobd/ruleset/internal/httpapi"
	"github.com/Gobd/ruleset/internal/logger"
	"github.com/Gobd/ruleset/internal/store"
	"github.com/Gobd/ruleset/internal/user"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		store.Module,
		user.Module,
		httpapi.Module,
		fx.WithLogger(logger.FxLogger),
	).Run()
}

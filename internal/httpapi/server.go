package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Gobd/ruleset/internal/config"
	"github.com/Gobd/ruleset/internal/user"
	"github.com/Gobd/ruleset/openapi"
)

func newServer(lc fx.Lifecycle, cfg config.Config, svc *user.Service, log *zap.Logger) (*http.Server, error) {
	docs, err := openapi.Handler(NewDoc(svc.RegistrationRules()))
	if err != nil {
		return nil, err
	}

	log = log.Named("http")
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(NewHandler(svc, log), docs, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			log.Info("shutting down")
			return srv.Shutdown(ctx)
		},
	})
	return srv, nil
}

// Module provides the HTTP server and starts it with the application.
var Module = fx.Module("httpapi",
	fx.Provide(newServer),
	fx.Invoke(func(*http.Server) {}),
)

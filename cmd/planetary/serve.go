package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/planetary/planetary-api/internal/api"
	"github.com/planetary/planetary-api/internal/api/handler"
	"github.com/planetary/planetary-api/internal/core/ports"
	"github.com/planetary/planetary-api/internal/core/service"
	"github.com/planetary/planetary-api/internal/infrastructure/db/redis"
	"github.com/planetary/planetary-api/internal/infrastructure/db/sqlstore"
	"github.com/planetary/planetary-api/internal/infrastructure/mail"
	"github.com/planetary/planetary-api/internal/infrastructure/token"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := openApp(c.Context(), true)
			if err != nil {
				return err
			}
			defer a.closeAndLog()

			if a.cfg.Auth.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set to serve")
			}
			return a.serve(c.Context())
		},
	}
}

// routerDependencies wires the domain services onto the open resources.
func (a *app) routerDependencies() api.Dependencies {
	jwt := token.NewJWT(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	mailer := mail.NewSMTPMailer(mail.Config{
		Server:   a.cfg.Mail.Server,
		Port:     a.cfg.Mail.Port,
		Username: a.cfg.Mail.Username,
		Password: a.cfg.Mail.Password,
		Sender:   a.cfg.Mail.Sender,
	}, a.log.With().Str("component", "mail").Logger())

	checks := map[string]handler.Check{"database": a.db.PingContext}

	var throttle ports.RecoveryThrottle
	if a.rdb != nil {
		throttle = redis.NewRecoveryThrottle(a.rdb, a.cfg.Redis.RecoveryCooldown)
		checks["redis"] = func(ctx context.Context) error { return a.rdb.Ping(ctx).Err() }
	}

	users := sqlstore.NewUserRepository(a.db)
	planets := sqlstore.NewPlanetRepository(a.db)

	return api.Dependencies{
		Auth:    service.NewAuthService(users, jwt, mailer, throttle, a.log),
		Planets: service.NewPlanetService(planets, a.log),
		Tokens:  jwt,
		Checks:  checks,
		Log:     a.log,
	}
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most SHUTDOWN_TIMEOUT.
func (a *app) serve(ctx context.Context) error {
	e := api.NewRouter(a.routerDependencies())

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("port", a.cfg.Port).Msg("http server listening")
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Dur("timeout", a.cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

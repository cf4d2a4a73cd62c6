// @title           Planetary API
// @version         1.0
// @description     Planet catalog with token authentication and password recovery.
// @host            localhost:8080
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planetary/planetary-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "planetary",
		Short:         "Planetary REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		// Init returns the configured logger, or a default one if
		// configuration never got that far.
		l := logger.Init(logger.Options{})
		l.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	httpctrl "github.com/secmon-lab/hl7risk/pkg/controller/http"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(version string) *cli.Command {
	var addr string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("HL7RISK_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the factor, tier, register and vendor catalog as a read-only JSON API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			handler, err := httpctrl.New(usecase.New(catalog), httpctrl.WithVersion(version))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
				BaseContext: func(_ net.Listener) context.Context {
					return ctx
				},
			}

			return runServer(ctx, server)
		},
	}
}

// runServer serves until the context is cancelled or SIGINT/SIGTERM arrives,
// then shuts the server down gracefully
func runServer(ctx context.Context, server *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.From(ctx)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to start server", goerr.V("addr", server.Addr))
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
		return nil
	})

	return eg.Wait()
}

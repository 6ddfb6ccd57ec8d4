package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/cli/config"
	controller "github.com/secmon-lab/treeboard/pkg/controller/http"
	"github.com/secmon-lab/treeboard/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		censusCfg    config.Census
		dashboardCfg config.Dashboard
	)

	flags := joinFlags(
		serverCfg.Flags(),
		censusCfg.Flags(),
		dashboardCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting treeboard server",
				slog.Any("server", serverCfg),
				slog.Any("census", censusCfg),
				slog.Any("dashboard", dashboardCfg),
			)

			dashboardConfig, err := dashboardCfg.Configure()
			if err != nil {
				return err
			}

			census := censusCfg.Configure()
			dashboardUC := usecase.NewDashboard(census, dashboardConfig)

			// The species list is fetched once; the dropdown cannot be built without it
			if err := dashboardUC.LoadSpecies(ctx); err != nil {
				return goerr.Wrap(err, "failed to load species list", goerr.V("endpoint", census.Endpoint()))
			}

			server, err := controller.NewServer(ctx,
				controller.NewConfig(serverCfg.Addr, dashboardConfig),
				dashboardUC,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			return runServer(ctx, server, serverCfg.Addr)
		},
	}
}

func runServer(ctx context.Context, server *controller.Server, addr string) error {
	logger := ctxlog.From(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("HTTP server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "HTTP server error", goerr.V("addr", addr))
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server gracefully")
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}

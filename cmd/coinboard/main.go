package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/coinboard"
	"github.com/rickgao/coinboard/internal/api"
	"github.com/rickgao/coinboard/internal/config"
	"github.com/rickgao/coinboard/internal/logging"
	"github.com/rickgao/coinboard/internal/metrics"
	"github.com/rickgao/coinboard/internal/orchestrator"
	"github.com/rickgao/coinboard/internal/state"
	"github.com/rickgao/coinboard/internal/version"
	"github.com/rickgao/coinboard/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/coinboard.yaml", "path to config file")
	envPath := flag.String("env", ".env", "optional dotenv file loaded before the config")
	flag.Parse()

	if err := config.LoadEnv(*envPath); err != nil {
		slog.Error("failed to load env file", "path", *envPath, "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting coinboard",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("coinboard exited with error", "error", err)
		closer.Close()
		os.Exit(1)
	}

	logger.Info("coinboard stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Server.Mode)

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.UserAgent),
	)

	store := state.New(coinboard.AppSource())
	tracker := metrics.NewTracker()

	orch := orchestrator.New(orchestrator.Config{
		FetchTimeout: cfg.Dashboard.FetchTimeout,
		OnError:      cfg.ErrorPolicy(),
	}, client, store, logger, tracker)

	srv, err := web.NewServer(store, orch, tracker, version.Short(), logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := orch.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("dashboard listening",
			"addr", cfg.Server.Addr,
			"api_url", client.BaseURL(),
		)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", "error", err)
		}
		return orch.Stop(shutdownCtx)
	})

	return g.Wait()
}

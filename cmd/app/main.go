package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GemClicker_Go/internal/bootstrap"
	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/handler"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/persistence"
	"github.com/osse101/GemClicker_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gemclicker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	if cfg.Version == config.DefaultVersion {
		cfg.Version = handler.ResolveVersion()
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, warning := range warnings {
		logger.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := bootstrap.OpenSaveStore(ctx, cfg)
	if err != nil {
		return err
	}
	saves := persistence.NewManager(store, cfg.SaveSlot, cfg.StorageBackend, cat)

	events := bootstrap.InitializeEventSystem(cfg)

	engine := game.NewEngine(saves.Load(ctx), cat,
		game.WithBus(events.Bus),
		game.WithSaver(saves),
	)

	pool, sched := bootstrap.StartGameLoop(ctx, cfg, engine)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
	}, server.Deps{
		Game:          engine,
		Notifications: events.Feed,
		Store:         saves,
		Hub:           events.Hub,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server listening", "addr", srv.Addr())
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:     srv,
			Hub:        events.Hub,
			Scheduler:  sched,
			Pool:       pool,
			Game:       engine,
			CloseStore: closeStore,
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

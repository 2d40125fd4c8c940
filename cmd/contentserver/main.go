package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/slopworks/cultivator/internal/auth"
	"github.com/slopworks/cultivator/internal/config"
	"github.com/slopworks/cultivator/internal/data"
	"github.com/slopworks/cultivator/internal/db"
	"github.com/slopworks/cultivator/internal/editor"
	"github.com/slopworks/cultivator/internal/store"
)

const ConfigPath = "config/contentserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("cultivator content server starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("CULTIVATOR_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadContentServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.TokenSigningKey == "" {
		return fmt.Errorf("token signing key is not set (config token_signing_key or CULTIVATOR_TOKEN_KEY)")
	}
	slog.Info("config loaded", "bind", cfg.BindAddress, "port", cfg.Port, "auto_create", cfg.AutoCreateAccounts)

	// Validate built-in content before touching the network
	if err := data.LoadContent(); err != nil {
		return fmt.Errorf("loading built-in content: %w", err)
	}

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	pool := database.Pool()
	speciesRepo := db.NewSpeciesRepository(pool)
	daoRepo := db.NewDaoRepository(pool)
	titleRepo := db.NewTitleRepository(pool)
	personTypeRepo := db.NewPersonTypeRepository(pool)
	assetRepo := db.NewAssetRepository(pool)

	cache := store.NewMemoryCache()
	contentStore := store.New(speciesRepo, daoRepo, titleRepo, personTypeRepo, cache, cfg.ContentCacheTTL())

	sessions := auth.NewSessionManager()
	authenticator := auth.NewAuthenticator(database, sessions,
		[]byte(cfg.TokenSigningKey), cfg.SessionTTL(), cfg.AccessTokenTTL(), cfg.AutoCreateAccounts)

	server := editor.NewServer(authenticator, speciesRepo, daoRepo, titleRepo, personTypeRepo, assetRepo, contentStore)

	addr := net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting editor backend", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("editor backend: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Expired-session sweeper
	g.Go(func() error {
		ticker := time.NewTicker(cfg.SessionSweep())
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				sessions.CleanExpired(cfg.SessionTTL())
			}
		}
	})

	// Content cache sweeper
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ContentCacheSweep())
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := cache.CleanExpired(); n > 0 {
					slog.Debug("cleaned expired cache entries", "count", n)
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

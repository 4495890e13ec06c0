package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/portfolio-tracker/internal/api"
	"github.com/ndewijer/portfolio-tracker/internal/config"
	"github.com/ndewijer/portfolio-tracker/internal/database"
	"github.com/ndewijer/portfolio-tracker/internal/logger"
	"github.com/ndewijer/portfolio-tracker/internal/model"
	"github.com/ndewijer/portfolio-tracker/internal/repository"
	"github.com/ndewijer/portfolio-tracker/internal/service"
	"github.com/ndewijer/portfolio-tracker/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Log.Level)
	log.Info().Str("version", version.Version).Msg("Starting portfolio tracker")

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o750); err != nil {
		log.Fatal().Err(err).Msg("Failed to create database directory")
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("Connected to database")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load portfolio state
	stateRepo := repository.NewStateRepository(db)
	initial, err := service.LoadInitialState(ctx, stateRepo, cfg.Import.SeedMockData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load portfolio state")
	}

	store := service.NewStore(initial)
	store.Subscribe(func(s model.PersistedState) {
		log.Debug().
			Int("transactions", len(s.Transactions)).
			Int("holdings", len(s.Holdings)).
			Msg("Portfolio state committed")
	})

	log.Info().
		Int("transactions", len(initial.Transactions)).
		Int("holdings", len(initial.Holdings)).
		Msg("Portfolio state loaded")

	// Create services
	systemService := service.NewSystemService(db)
	priceService := service.NewPriceService(service.SeedPrices())
	portfolioService := service.NewPortfolioService(
		store,
		stateRepo,
		priceService,
	)

	// Create router
	router := api.NewRouter(systemService, portfolioService, priceService, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown with timeout once a signal arrives or the server fails
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}

	log.Info().Msg("Server exited")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashu-wallet-service/config"
	engineAdapter "cashu-wallet-service/internal/adapter/engine/gonuts"
	httpHandler "cashu-wallet-service/internal/adapter/http/handler"
	redisStorage "cashu-wallet-service/internal/adapter/storage/redis"
	sqliteStorage "cashu-wallet-service/internal/adapter/storage/sqlite"
	"cashu-wallet-service/internal/core/domain"
	"cashu-wallet-service/internal/core/ports"
	"cashu-wallet-service/internal/platform/metrics"
	"cashu-wallet-service/internal/service"
	"cashu-wallet-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("name", cfg.Server.Name).
		Str("version", cfg.Server.Version).
		Int("port", cfg.Server.Port).
		Msg("Starting Cashu wallet service")

	// Resolve the wallet seed phrase, generating and persisting one if absent.
	if err := config.ResolveMnemonic(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve wallet mnemonic")
	}
	if cfg.Wallet.DefaultMint == "" {
		log.Fatal().Msg("No default mint configured (CWS_WALLET_DEFAULT_MINT)")
	}

	ctx := context.Background()

	// Open the wallet database
	db, err := sqliteStorage.Open(ctx, cfg.Wallet.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open wallet database")
	}
	store := sqliteStorage.NewWalletStore(db)

	// Key provider and wallet engine
	keys := service.NewBip39KeyProvider(cfg.Wallet.Mnemonic)
	engine := engineAdapter.New(engineAdapter.Config{
		WalletPath:     cfg.Wallet.WalletDir,
		CurrentMintURL: cfg.Wallet.DefaultMint,
		Unit:           cfg.Wallet.Unit,
		PollInterval:   cfg.Wallet.PollInterval,
	}, store, keys, log)

	// Core services
	registry := service.NewMintRegistry(engine, store, log)
	quoteSvc := service.NewQuoteService(store, registry, log)
	walletSvc := service.NewWalletService(engine, store, keys, registry, log)

	if err := walletSvc.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet")
	}
	defer func() {
		if err := walletSvc.Cleanup(); err != nil {
			log.Error().Err(err).Msg("Wallet cleanup failed")
		}
	}()

	// Metrics and event observer
	m := metrics.New()
	observer := service.NewEventObserver(log)
	observerCtx, stopObserver := context.WithCancel(ctx)
	defer stopObserver()
	go observer.Run(observerCtx, engine.Events())
	for _, kind := range domain.AllEventKinds() {
		kind := kind
		observer.Subscribe(kind, func(_ domain.Event) {
			m.WalletEvents.WithLabelValues(string(kind)).Inc()
		})
	}

	// Optional Redis-backed rate limiting; a nil client means disabled.
	var rateLimitStore *redisStorage.RateLimitStore
	healthCheckers := []ports.HealthChecker{sqliteStorage.NewHealthCheck(db)}
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		MintRegistry:   registry,
		QuoteSvc:       quoteSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Metrics:        m,
		AllowedPubkeys: cfg.Nostr.PubkeyList(),
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

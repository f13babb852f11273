package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/config"
	"github.com/battlepoint/arena/internal/handlers"
	"github.com/battlepoint/arena/internal/logic"
	"github.com/battlepoint/arena/internal/wallet"
	"github.com/battlepoint/arena/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Arena service failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres
	pg, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	// Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	// Wallet providers
	var providers []wallet.Provider
	for _, ep := range cfg.WalletProviders {
		p, err := wallet.Dial(ctx, ep.Name, ep.URL)
		if err != nil {
			log.Warnw("Skipping wallet provider", "name", ep.Name, "url", ep.URL, "error", err)
			continue
		}
		defer p.Close()
		providers = append(providers, p)
	}
	if len(providers) == 0 {
		log.Warn("No wallet provider reachable; connect requests will ask for a wallet install")
	}

	connector := wallet.NewConnector(wallet.ConnectorConfig{
		Providers:        providers,
		Preferred:        cfg.WalletPreferred,
		RequirePreferred: cfg.WalletRequirePreferred,
		Guard:            wallet.NewChainGuard(big.NewInt(cfg.ChainID), cfg.ChainName),
		Logger:           logger,
	})

	handlesCfg := logic.HandlesConfig{
		Address:      cfg.ContractAddress,
		PollInterval: cfg.ReceiptPollInterval,
		Logger:       logger,
	}
	if cfg.RPCURL != "" {
		client, err := ethclient.DialContext(ctx, cfg.RPCURL)
		if err != nil {
			return fmt.Errorf("dial rpc: %w", err)
		}
		defer client.Close()
		handlesCfg.Backend = client
	}

	// Leaderboard writes go through the buffered recorder
	recorder := worker.NewRecorder(worker.RecorderConfig{
		Store:         logic.NewLeaderboardStore(rdb),
		QueueSize:     cfg.LeaderboardQueueSize,
		BatchSize:     cfg.LeaderboardBatchSize,
		FlushInterval: cfg.LeaderboardFlushInterval,
		Logger:        logger,
	})
	recorder.Start(ctx)

	hub := handlers.NewHub(cfg.AllowedOrigins, logger)

	arena := logic.NewArena(logic.ArenaConfig{
		Connector:    connector,
		Handles:      logic.ContractHandles(handlesCfg),
		Leaderboard:  recorder,
		Publisher:    hub,
		TokenAddress: cfg.ContractAddress,
		ChainName:    cfg.ChainName,
		TxTimeout:    cfg.TxWaitTimeout,
		Logger:       logger,
	})

	watcher := worker.NewWatcher(worker.WatcherConfig{
		Target:   arena,
		Interval: cfg.WatchInterval,
		Logger:   logger,
	})
	watcher.Start(ctx)

	h := handlers.New(handlers.Config{
		Postgres:        pg,
		Redis:           rdb,
		Hub:             hub,
		Logger:          logger,
		Arena:           arena,
		Leaderboard:     recorder,
		Skins:           logic.NewSkinCatalog(pg),
		LeaderboardSize: cfg.LeaderboardSize,
		AdminToken:      cfg.AdminToken,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Arena API listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"chain", cfg.ChainName,
			"contract", cfg.ContractAddress.Hex(),
			"providers", len(providers),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP shutdown failed", "error", err)
	}
	watcher.Stop()
	recorder.Stop()
	log.Info("Shutdown complete")
	return nil
}

package worker

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/wallet"
)

var (
	watchPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_wallet_watch_polls_total",
		Help: "Wallet polls by outcome",
	}, []string{"result"})

	watchChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_wallet_changes_total",
		Help: "Account and chain switches observed in the wallet",
	}, []string{"kind"})
)

// SessionTarget receives the wallet's account and chain switches.
type SessionTarget interface {
	Connection() *wallet.Connection
	HandleAccountsChanged(ctx context.Context, accounts []common.Address)
	HandleChainChanged(ctx context.Context, chainID *big.Int)
}

type WatcherConfig struct {
	Target   SessionTarget
	Interval time.Duration
	Logger   *zap.Logger
}

// Watcher polls the connected wallet for the events a browser wallet would
// push: accountsChanged and chainChanged.
type Watcher struct {
	target   SessionTarget
	interval time.Duration
	logger   *zap.SugaredLogger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Watcher{
		target:   cfg.Target,
		interval: cfg.Interval,
		logger:   cfg.Logger.Sugar(),
	}
}

func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Poll(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	w.logger.Infow("Wallet watcher started", "interval", w.interval)
}

func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("Wallet watcher stopped")
}

// Poll checks the connected wallet once. A chain switch takes precedence
// over an account switch since it resets the whole session.
func (w *Watcher) Poll(ctx context.Context) {
	conn := w.target.Connection()
	if conn == nil {
		return
	}

	chainID, err := wallet.CurrentChainID(ctx, conn.Provider)
	if err != nil {
		watchPolls.WithLabelValues("error").Inc()
		w.logger.Warnw("Failed to read wallet chain", "provider", conn.Provider.Name(), "error", err)
		return
	}
	if conn.ChainID != nil && chainID.Cmp(conn.ChainID) != 0 {
		watchPolls.WithLabelValues("ok").Inc()
		watchChanges.WithLabelValues("chain").Inc()
		w.target.HandleChainChanged(ctx, chainID)
		return
	}

	accounts, err := wallet.Accounts(ctx, conn.Provider)
	if err != nil {
		watchPolls.WithLabelValues("error").Inc()
		w.logger.Warnw("Failed to read wallet accounts", "provider", conn.Provider.Name(), "error", err)
		return
	}
	watchPolls.WithLabelValues("ok").Inc()

	if len(accounts) == 0 || accounts[0] != conn.Account {
		watchChanges.WithLabelValues("accounts").Inc()
		w.target.HandleAccountsChanged(ctx, accounts)
	}
}

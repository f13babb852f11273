// Package worker runs the background jobs of the arena service:
// - a buffered recorder that moves leaderboard writes off the action path
// - a watcher that follows account and network switches in the wallet

package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/battlepoint/arena/internal/models"
)

// Prometheus metrics
var (
	recordsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_leaderboard_records_queued_total",
		Help: "Leaderboard records accepted by the recorder",
	})

	recordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_leaderboard_records_written_total",
		Help: "Leaderboard records written to the store",
	})

	recordsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_leaderboard_records_failed_total",
		Help: "Leaderboard records the store rejected",
	})

	recordsShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_leaderboard_records_shed_total",
		Help: "Leaderboard records dropped because the queue was full",
	})

	recorderQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_leaderboard_queue_depth",
		Help: "Current depth of the leaderboard record queue",
	})

	flushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arena_leaderboard_flush_duration_seconds",
		Help:    "Duration of leaderboard batch flushes",
		Buckets: prometheus.DefBuckets,
	})
)

// ErrQueueFull is returned by Record when the queue cannot take more work.
var ErrQueueFull = errors.New("leaderboard queue full")

// ErrRecorderStopped is returned by Record after Stop.
var ErrRecorderStopped = errors.New("leaderboard recorder stopped")

// LeaderboardStore is the synchronous store the recorder writes through.
type LeaderboardStore interface {
	Record(ctx context.Context, player models.PlayerState) error
	Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error)
}

// RecorderConfig configures the recorder
type RecorderConfig struct {
	Store         LeaderboardStore
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Logger        *zap.Logger
}

// Recorder batches leaderboard writes. Within a batch only the latest state
// per address is written. It satisfies logic.LeaderboardService.
type Recorder struct {
	config RecorderConfig
	queue  chan models.PlayerState
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
}

func NewRecorder(cfg RecorderConfig) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Recorder{
		config: cfg,
		queue:  make(chan models.PlayerState, cfg.QueueSize),
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the flush loop. The loop runs until Stop closes the queue,
// so records accepted after ctx is canceled are still written.
func (r *Recorder) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.run()

	r.logger.Infow("Leaderboard recorder started",
		"queueSize", r.config.QueueSize,
		"batchSize", r.config.BatchSize,
		"flushInterval", r.config.FlushInterval,
	)
}

// Stop flushes what is queued and waits for the loop to exit.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
	if r.cancel != nil {
		r.cancel()
	}
	r.logger.Info("Leaderboard recorder stopped")
}

// Record queues the player state without blocking.
func (r *Recorder) Record(ctx context.Context, player models.PlayerState) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stopped {
		return ErrRecorderStopped
	}

	select {
	case r.queue <- player:
		recordsQueued.Inc()
		recorderQueueDepth.Set(float64(len(r.queue)))
		return nil
	default:
		recordsShed.Inc()
		return ErrQueueFull
	}
}

// Top reads straight from the store.
func (r *Recorder) Top(ctx context.Context, limit int, current string) ([]models.LeaderboardEntry, error) {
	return r.config.Store.Top(ctx, limit, current)
}

// QueueDepth returns current queue size
func (r *Recorder) QueueDepth() int {
	return len(r.queue)
}

func (r *Recorder) run() {
	defer r.wg.Done()

	batch := make(map[string]models.PlayerState, r.config.BatchSize)
	order := make([]string, 0, r.config.BatchSize)
	ticker := time.NewTicker(r.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(order) == 0 {
			return
		}
		start := time.Now()
		// The parent context may already be canceled during shutdown.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.ctx), 5*time.Second)
		defer cancel()

		for _, key := range order {
			if err := r.config.Store.Record(ctx, batch[key]); err != nil {
				recordsFailed.Inc()
				r.logger.Warnw("Failed to record leaderboard entry", "player", key, "error", err)
				continue
			}
			recordsWritten.Inc()
		}
		flushDuration.Observe(time.Since(start).Seconds())
		recorderQueueDepth.Set(float64(len(r.queue)))

		clear(batch)
		order = order[:0]
	}

	for {
		select {
		case player, ok := <-r.queue:
			if !ok {
				flush()
				return
			}
			key := strings.ToLower(player.Address)
			if _, seen := batch[key]; !seen {
				order = append(order, key)
			}
			batch[key] = player
			if len(order) >= r.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

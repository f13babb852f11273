package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_actions_total",
		Help: "Player actions by kind and outcome",
	}, []string{"action", "result"})

	confirmationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arena_tx_confirmation_seconds",
		Help:    "Time from submission to confirmation of action transactions",
		Buckets: []float64{1, 2, 5, 10, 15, 30, 60, 120, 300},
	}, []string{"action"})

	reloadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_state_reload_failures_total",
		Help: "Batched player reads that failed",
	})

	connectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arena_wallet_connects_total",
		Help: "Wallet connection attempts by outcome",
	}, []string{"result"})

	processingGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_action_processing",
		Help: "1 while an action transaction is in flight",
	})
)

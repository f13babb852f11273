package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// actionTimeout bounds the whole submit, confirm and reload chain of a request.
const actionTimeout = 10 * time.Minute

// Router builds the HTTP API under /api/v1.
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)
		r.Handle("/metrics", promhttp.Handler())
		r.Get("/ws", h.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Get("/wallet", h.GetWallet)
			r.Post("/wallet/disconnect", h.DisconnectWallet)
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/activity", h.GetActivity)
			r.Get("/leaderboard", h.GetLeaderboard)
			r.Get("/skins", h.GetSkins)
			r.Get("/skins/market", h.GetMarket)
			r.With(h.AdminAuthMiddleware).Post("/system/install", h.InstallDatabase)
		})

		// Wallet prompts and mined receipts can take minutes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(actionTimeout))

			r.Post("/wallet/connect", h.ConnectWallet)
			r.Post("/wallet/watch-asset", h.WatchAsset)

			r.Route("/actions", func(r chi.Router) {
				r.Post("/win", h.WinMatch)
				r.Post("/energy-boost", h.EnergyBoost)
				r.Post("/transfer", h.Transfer)
				r.Post("/burn", h.Burn)
				r.Post("/upgrade", h.UpgradeWeapon)
				r.Post("/stake", h.Stake)
				r.Post("/unstake", h.Unstake)
				r.Post("/claim", h.ClaimRewards)
			})
		})
	})

	return r
}

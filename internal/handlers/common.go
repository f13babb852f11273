package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/battlepoint/arena/internal/logic"
	"github.com/battlepoint/arena/internal/wallet"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"postgres": h.pg != nil && h.pg.Ping(ctx) == nil,
		"redis":    h.redis != nil && h.redis.Ping(ctx).Err() == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":       allHealthy,
		"checks":      checks,
		"subscribers": h.hub.Subscribers(),
	})
}

// AdminAuthMiddleware validates the admin token on /system endpoints.
// Without a configured ADMIN_TOKEN the endpoints are refused outright.
func (h *Handler) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminToken == "" {
			h.errorResponse(w, http.StatusForbidden, "System endpoints are disabled")
			return
		}

		token := r.Header.Get("X-Admin-Token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if token == "" {
			h.errorResponse(w, http.StatusUnauthorized, "Missing admin token")
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			h.logger.Warnw("Rejected admin request", "path", r.URL.Path, "remote", r.RemoteAddr)
			h.errorResponse(w, http.StatusUnauthorized, "Invalid admin token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// arenaError maps service errors to HTTP statuses. The body always carries
// the user-facing message.
func (h *Handler) arenaError(w http.ResponseWriter, err error) {
	var actionErr *logic.ActionError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, logic.ErrBusy), errors.Is(err, wallet.ErrRequestPending):
		status = http.StatusConflict
	case errors.Is(err, logic.ErrNotConnected):
		status = http.StatusPreconditionFailed
	case errors.Is(err, logic.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, wallet.ErrUserRejected), errors.Is(err, wallet.ErrNoAccounts):
		status = http.StatusForbidden
	case errors.Is(err, wallet.ErrNoProvider), errors.Is(err, wallet.ErrNotPreferred):
		status = http.StatusServiceUnavailable
	case errors.Is(err, wallet.ErrWrongChain), errors.Is(err, wallet.ErrUnknownChain):
		status = http.StatusPreconditionFailed
	case errors.As(err, &actionErr):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Errorw("Request failed", "error", err)
	}
	h.errorResponse(w, status, err.Error())
}

package handlers

import (
	"net/http"

	"github.com/battlepoint/arena/internal/models"
)

// ConnectWallet handles POST /api/v1/wallet/connect
// @Summary Connect Wallet
// @Description Selects the wallet provider, requests account access and ensures the wallet is on the configured network
// @Tags Wallet
// @Produce json
// @Success 200 {object} models.WalletStatus
// @Failure 403 {object} map[string]string "Rejected"
// @Failure 409 {object} map[string]string "Request pending"
// @Failure 412 {object} map[string]string "Wrong network"
// @Failure 503 {object} map[string]string "No wallet"
// @Router /wallet/connect [post]
func (h *Handler) ConnectWallet(w http.ResponseWriter, r *http.Request) {
	status, err := h.arena.Connect(r.Context())
	if err != nil {
		h.arenaError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, status)
}

// DisconnectWallet handles POST /api/v1/wallet/disconnect
// @Summary Disconnect Wallet
// @Tags Wallet
// @Produce json
// @Success 200 {object} models.WalletStatus
// @Router /wallet/disconnect [post]
func (h *Handler) DisconnectWallet(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.arena.Disconnect())
}

// GetWallet handles GET /api/v1/wallet
// @Summary Wallet Status
// @Tags Wallet
// @Produce json
// @Success 200 {object} models.WalletStatus
// @Router /wallet [get]
func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.arena.Wallet())
}

// WatchAsset handles POST /api/v1/wallet/watch-asset
// @Summary Add BPT To Wallet
// @Tags Wallet
// @Produce json
// @Success 200 {object} models.WatchAssetResponse
// @Failure 412 {object} map[string]string "Not connected"
// @Router /wallet/watch-asset [post]
func (h *Handler) WatchAsset(w http.ResponseWriter, r *http.Request) {
	added, err := h.arena.WatchAsset(r.Context())
	if err != nil {
		h.arenaError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, models.WatchAssetResponse{Added: added})
}

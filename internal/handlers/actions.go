package handlers

import (
	"net/http"

	"github.com/battlepoint/arena/internal/models"
)

// ============================================================================
// ACTION ENDPOINTS
// ============================================================================
// Every action submits one contract transaction, waits for it to be mined
// and reloads the player. A second action while one is in flight gets 409.

func (h *Handler) respondAction(w http.ResponseWriter, resp *models.ActionResponse, err error) {
	if err != nil {
		h.arenaError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// WinMatch handles POST /api/v1/actions/win
// @Summary Win Match
// @Description Mints the victory reward to the connected player
// @Tags Actions
// @Produce json
// @Success 200 {object} models.ActionResponse
// @Failure 409 {object} map[string]string "Busy"
// @Failure 412 {object} map[string]string "Not connected"
// @Failure 502 {object} map[string]string "Transaction failed"
// @Router /actions/win [post]
func (h *Handler) WinMatch(w http.ResponseWriter, r *http.Request) {
	resp, err := h.arena.WinMatch(r.Context())
	h.respondAction(w, resp, err)
}

// EnergyBoost handles POST /api/v1/actions/energy-boost
// @Summary Energy Boost
// @Tags Actions
// @Produce json
// @Success 200 {object} models.ActionResponse
// @Failure 409 {object} map[string]string "Busy"
// @Failure 502 {object} map[string]string "Transaction failed"
// @Router /actions/energy-boost [post]
func (h *Handler) EnergyBoost(w http.ResponseWriter, r *http.Request) {
	resp, err := h.arena.EnergyBoost(r.Context())
	h.respondAction(w, resp, err)
}

// Transfer handles POST /api/v1/actions/transfer
// @Summary Transfer BPT
// @Tags Actions
// @Accept json
// @Produce json
// @Param body body models.TransferRequest true "Recipient and amount"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Transaction failed"
// @Router /actions/transfer [post]
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.arena.Transfer(r.Context(), req.To, req.Amount)
	h.respondAction(w, resp, err)
}

// Burn handles POST /api/v1/actions/burn
// @Summary Burn BPT
// @Tags Actions
// @Accept json
// @Produce json
// @Param body body models.AmountRequest true "Amount"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /actions/burn [post]
func (h *Handler) Burn(w http.ResponseWriter, r *http.Request) {
	var req models.AmountRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.arena.Burn(r.Context(), req.Amount)
	h.respondAction(w, resp, err)
}

// UpgradeWeapon handles POST /api/v1/actions/upgrade
// @Summary Upgrade Weapon Stat
// @Tags Actions
// @Accept json
// @Produce json
// @Param body body models.UpgradeRequest true "Weapon 0-2 and stat 0-3"
// @Success 200 {object} models.ActionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /actions/upgrade [post]
func (h *Handler) UpgradeWeapon(w http.ResponseWriter, r *http.Request) {
	var req models.UpgradeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.arena.UpgradeWeapon(r.Context(), *req.WeaponID, *req.StatID)
	h.respondAction(w, resp, err)
}

// Stake handles POST /api/v1/actions/stake
// @Summary Stake BPT
// @Tags Actions
// @Accept json
// @Produce json
// @Param body body models.AmountRequest true "Amount"
// @Success 200 {object} models.ActionResponse
// @Router /actions/stake [post]
func (h *Handler) Stake(w http.ResponseWriter, r *http.Request) {
	var req models.AmountRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.arena.Stake(r.Context(), req.Amount)
	h.respondAction(w, resp, err)
}

// Unstake handles POST /api/v1/actions/unstake
// @Summary Unstake BPT
// @Tags Actions
// @Accept json
// @Produce json
// @Param body body models.AmountRequest true "Amount"
// @Success 200 {object} models.ActionResponse
// @Router /actions/unstake [post]
func (h *Handler) Unstake(w http.ResponseWriter, r *http.Request) {
	var req models.AmountRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.arena.Unstake(r.Context(), req.Amount)
	h.respondAction(w, resp, err)
}

// ClaimRewards handles POST /api/v1/actions/claim
// @Summary Claim Staking Rewards
// @Tags Actions
// @Produce json
// @Success 200 {object} models.ActionResponse
// @Router /actions/claim [post]
func (h *Handler) ClaimRewards(w http.ResponseWriter, r *http.Request) {
	resp, err := h.arena.ClaimRewards(r.Context())
	h.respondAction(w, resp, err)
}

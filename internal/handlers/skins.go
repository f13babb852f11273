package handlers

import "net/http"

// GetSkins handles GET /api/v1/skins
// @Summary Player Skins
// @Description Weapon skin NFTs owned by the connected player
// @Tags Skins
// @Produce json
// @Success 200 {array} models.NFTSkin
// @Failure 412 {object} map[string]string "Not connected"
// @Router /skins [get]
func (h *Handler) GetSkins(w http.ResponseWriter, r *http.Request) {
	owner := h.arena.CurrentAddress()
	if owner == "" {
		h.errorResponse(w, http.StatusPreconditionFailed, "Connect your wallet to view skins")
		return
	}

	skins, err := h.skins.OwnedBy(r.Context(), owner)
	if err != nil {
		h.logger.Errorw("Failed to get skins", "owner", owner, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get skins")
		return
	}
	h.jsonResponse(w, http.StatusOK, skins)
}

// GetMarket handles GET /api/v1/skins/market
// @Summary Skin Marketplace
// @Description Listed skins not owned by the connected player
// @Tags Skins
// @Produce json
// @Success 200 {array} models.NFTSkin
// @Router /skins/market [get]
func (h *Handler) GetMarket(w http.ResponseWriter, r *http.Request) {
	skins, err := h.skins.Market(r.Context(), h.arena.CurrentAddress())
	if err != nil {
		h.logger.Errorw("Failed to get market listings", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get market listings")
		return
	}
	h.jsonResponse(w, http.StatusOK, skins)
}

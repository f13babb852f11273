package handlers

import "net/http"

// GetDashboard handles GET /api/v1/dashboard
// @Summary Player Dashboard
// @Description Balance, wins, energy, staking figures, weapon stats, recent activity and the processing flag
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Router /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.arena.Dashboard())
}

// GetActivity handles GET /api/v1/activity
// @Summary Recent Activity
// @Description The five most recent activity entries, newest first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.Activity
// @Router /activity [get]
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.arena.Activity())
}

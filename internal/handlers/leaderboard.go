package handlers

import (
	"net/http"
	"strconv"
)

// GetLeaderboard returns players ranked by BPT balance
// @Summary Leaderboard
// @Description Top players by balance; the connected player's row is flagged is_current
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := h.leaderboardSize
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := h.leaderboard.Top(r.Context(), limit, h.arena.CurrentAddress())
	if err != nil {
		h.logger.Errorw("Failed to get leaderboard", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, entries)
}

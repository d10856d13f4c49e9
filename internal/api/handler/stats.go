package handler

import (
	"net/http"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles dashboard summary endpoints.
type StatsHandler struct {
	planner *service.PlannerService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(planner *service.PlannerService) *StatsHandler {
	return &StatsHandler{planner: planner}
}

// Stats handles GET /api/v1/stats: projected revenue against target.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.planner.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Reps handles GET /api/v1/reps: the sales representative roster.
func (h *StatsHandler) Reps(c *gin.Context) {
	reps := h.planner.Reps()
	c.JSON(http.StatusOK, gin.H{"reps": reps})
}

package handler

import (
	"net/http"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
	"github.com/gin-gonic/gin"
)

// MachineHandler handles machine catalog and load endpoints.
type MachineHandler struct {
	planner *service.PlannerService
}

// NewMachineHandler creates a new machine handler.
func NewMachineHandler(planner *service.PlannerService) *MachineHandler {
	return &MachineHandler{planner: planner}
}

// List handles GET /api/v1/machines: the process catalog.
func (h *MachineHandler) List(c *gin.Context) {
	machines := h.planner.Machines()
	c.JSON(http.StatusOK, gin.H{"machines": machines, "total": len(machines)})
}

// Load handles GET /api/v1/machines/:name/load: one machine's booked steps
// and its earliest free instant.
func (h *MachineHandler) Load(c *gin.Context) {
	load, err := h.planner.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}

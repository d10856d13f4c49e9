package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/schedule"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JobHandler handles job planning and lifecycle endpoints.
type JobHandler struct {
	planner *service.PlannerService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(planner *service.PlannerService) *JobHandler {
	return &JobHandler{planner: planner}
}

// Plan handles POST /api/v1/jobs: schedules and persists a new job.
func (h *JobHandler) Plan(c *gin.Context) {
	var req service.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.planner.PlanJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// List handles GET /api/v1/jobs.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.planner.ListJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// Get handles GET /api/v1/jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.planner.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/v1/jobs/:id: removes the job and its steps.
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.planner.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateValueRequest is the body for PATCH /api/v1/jobs/:id/value.
type UpdateValueRequest struct {
	ContractValue float64 `json:"contract_value"`
}

// UpdateValue handles PATCH /api/v1/jobs/:id/value: edits the contract value
// and re-splits it across the job's steps.
func (h *JobHandler) UpdateValue(c *gin.Context) {
	var req UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.planner.UpdateJobValue(c.Request.Context(), c.Param("id"), req.ContractValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// RescheduleRequest is the body for POST /api/v1/jobs/:id/reschedule.
type RescheduleRequest struct {
	Seq     int       `json:"seq"`
	StartAt time.Time `json:"start_at" binding:"required"`
}

// Reschedule handles POST /api/v1/jobs/:id/reschedule: moves one step's
// start and ripples the change through all later steps of the job.
func (h *JobHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.planner.RescheduleFrom(c.Request.Context(), c.Param("id"), req.Seq, req.StartAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// respondError maps the planner's error taxonomy onto HTTP status codes:
// rejected input is 400, a scheduling runaway 422, a missing record 404.
func respondError(c *gin.Context, err error) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, schedule.ErrAdvanceRunaway):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

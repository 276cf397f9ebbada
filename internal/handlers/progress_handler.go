package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/services"
	"github.com/path-finder-in/roadmap-service/internal/utils"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
	}
}

// UpdateProgress toggles one step's completion for the caller
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req services.ProgressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating progress", "user_id", userID, "career_id", req.CareerID, "step_id", req.StepID)

	percentage, err := h.progressService.UpsertStep(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Progress updated successfully",
		"progress_percentage": percentage,
	})
}

// ListProgress returns every stored progress record for the caller
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	records, err := h.progressService.GetAll(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if records == nil {
		records = []*models.Progress{}
	}
	c.JSON(http.StatusOK, records)
}

// GetProgress returns the caller's progress for one roadmap
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	record, err := h.progressService.GetOne(c.Request.Context(), userID, c.Param("career_id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

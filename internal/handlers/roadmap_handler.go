package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/services"
	"github.com/path-finder-in/roadmap-service/internal/utils"
)

type RoadmapHandler struct {
	BaseHandler
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService, logger utils.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		BaseHandler:    NewBaseHandler(logger),
		roadmapService: roadmapService,
	}
}

// ListRoadmaps returns the catalog, optionally filtered by ?stream=
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	var stream *models.Stream
	if raw := c.Query("stream"); raw != "" {
		s := models.Stream(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid stream filter",
			})
			return
		}
		stream = &s
	}

	roadmaps, err := h.roadmapService.List(c.Request.Context(), stream)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if roadmaps == nil {
		roadmaps = []*models.Roadmap{}
	}
	c.JSON(http.StatusOK, roadmaps)
}

// GetRoadmap returns one roadmap by id
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	id := c.Param("id")

	roadmap, err := h.roadmapService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

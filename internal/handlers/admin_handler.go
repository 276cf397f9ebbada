package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/path-finder-in/roadmap-service/internal/services"
	"github.com/path-finder-in/roadmap-service/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	roadmapService services.RoadmapService
}

func NewAdminHandler(roadmapService services.RoadmapService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		roadmapService: roadmapService,
	}
}

// InitRoadmaps loads the built-in catalog if the database is empty
func (h *AdminHandler) InitRoadmaps(c *gin.Context) {
	h.LogRequest(c, "Initializing roadmap catalog")

	result, err := h.roadmapService.Seed(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if result.AlreadyInitialized {
		c.JSON(http.StatusOK, gin.H{
			"message": "Roadmaps already initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Initialized %d career roadmaps successfully", result.Inserted),
	})
}

// ExportRoadmaps streams the catalog as an xlsx attachment
func (h *AdminHandler) ExportRoadmaps(c *gin.Context) {
	h.LogRequest(c, "Exporting roadmap catalog")

	f, err := h.roadmapService.ExportCatalog(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="roadmaps.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		h.LogError(c, err, "Failed to stream export")
	}
}

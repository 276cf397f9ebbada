package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/path-finder-in/roadmap-service/internal/auth"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
	"github.com/path-finder-in/roadmap-service/internal/services"
	"github.com/path-finder-in/roadmap-service/internal/utils"
)

type HandlerManager struct {
	authHandler     *AuthHandler
	userHandler     *UserHandler
	roadmapHandler  *RoadmapHandler
	progressHandler *ProgressHandler
	adminHandler    *AdminHandler
	authMiddleware  *JWTAuthMiddleware
	serviceManager  services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:     NewAuthHandler(serviceManager.Auth(), logger),
		userHandler:     NewUserHandler(serviceManager.User(), logger),
		roadmapHandler:  NewRoadmapHandler(serviceManager.Roadmap(), logger),
		progressHandler: NewProgressHandler(serviceManager.Progress(), logger),
		adminHandler:    NewAdminHandler(serviceManager.Roadmap(), logger),
		authMiddleware:  NewJWTAuthMiddleware(tokens, userRepo),
		serviceManager:  serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/auth/register", hm.authHandler.Register)
		api.POST("/auth/login", hm.authHandler.Login)

		api.GET("/roadmaps", hm.roadmapHandler.ListRoadmaps)
		api.GET("/roadmaps/:id", hm.roadmapHandler.GetRoadmap)

		// Catalog seeding is idempotent, so exposing it without auth
		// only allows re-running a no-op.
		api.POST("/admin/init-roadmaps", hm.adminHandler.InitRoadmaps)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(hm.authMiddleware.AuthMiddleware())
		{
			authed.GET("/auth/me", hm.authHandler.Me)
			authed.PUT("/user/stream", hm.userHandler.UpdateStream)

			authed.POST("/progress", hm.progressHandler.UpdateProgress)
			authed.GET("/progress", hm.progressHandler.ListProgress)
			authed.GET("/progress/:career_id", hm.progressHandler.GetProgress)

			authed.GET("/admin/roadmaps/export", hm.adminHandler.ExportRoadmaps)
		}
	}
}

// HealthCheck reports service and dependency health
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "roadmap-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

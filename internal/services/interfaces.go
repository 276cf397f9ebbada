package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request shapes live with their validation rules.
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type UpdateStreamRequest = validator.UpdateStreamRequest
type ProgressUpdateRequest = validator.ProgressUpdateRequest

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// SeedResult reports the outcome of catalog initialization.
type SeedResult struct {
	Inserted           int
	AlreadyInitialized bool
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	// Register creates a user and issues a bearer token. A duplicate
	// email fails with ErrEmailTaken.
	Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error)

	// Login verifies credentials and issues a bearer token. Unknown
	// email and password mismatch are indistinguishable to the caller.
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
}

type UserService interface {
	// UpdateStream sets the caller's selected stream.
	UpdateStream(ctx context.Context, userID string, req *UpdateStreamRequest) (models.Stream, error)
}

type RoadmapService interface {
	// List returns the catalog in insertion order, optionally filtered
	// by stream.
	List(ctx context.Context, stream *models.Stream) ([]*models.Roadmap, error)

	GetByID(ctx context.Context, id string) (*models.Roadmap, error)

	// Seed idempotently loads the built-in catalog.
	Seed(ctx context.Context) (*SeedResult, error)

	// ExportCatalog renders the catalog as a spreadsheet, one row per step.
	ExportCatalog(ctx context.Context) (*excelize.File, error)
}

type ProgressService interface {
	// UpsertStep toggles one step's completion and returns the derived
	// percentage. Step ids are not validated against the roadmap.
	UpsertStep(ctx context.Context, userID string, req *ProgressUpdateRequest) (float64, error)

	// GetAll returns every stored progress record for the user.
	GetAll(ctx context.Context, userID string) ([]*models.Progress, error)

	// GetOne returns the stored record, or a synthesized zero record
	// that is never persisted.
	GetOne(ctx context.Context, userID, roadmapID string) (*models.Progress, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Auth() AuthService
	User() UserService
	Roadmap() RoadmapService
	Progress() ProgressService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a record does not exist,
// regardless of the backing store.
var ErrNotFound = errors.New("record not found")

// Repository aggregates all store access behind one handle. It is
// constructed once at startup and passed into services explicitly.
type Repository interface {
	User() UserRepository
	Roadmap() RoadmapRepository
	Progress() ProgressRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

package repositories

import (
	"context"

	"github.com/path-finder-in/roadmap-service/internal/models"
)

// ProgressRepository stores per-(user, roadmap) completion records.
// Writes replace the whole record; there is no optimistic concurrency
// check, so concurrent updates for the same pair are last-write-wins.
type ProgressRepository interface {
	// GetByUserAndRoadmap returns ErrNotFound when no record exists yet.
	GetByUserAndRoadmap(ctx context.Context, userID, roadmapID string) (*models.Progress, error)

	ListByUser(ctx context.Context, userID string) ([]*models.Progress, error)

	// Upsert inserts or replaces the record for (record.UserID, record.RoadmapID).
	Upsert(ctx context.Context, record *models.Progress) error
}

package repositories

import (
	"context"

	"github.com/path-finder-in/roadmap-service/internal/models"
)

// RoadmapRepository stores the static career roadmap catalog. Roadmaps
// are written once by the seed operation and read-only afterwards.
type RoadmapRepository interface {
	// CreateBatch bulk-inserts the seed catalog.
	CreateBatch(ctx context.Context, roadmaps []*models.Roadmap) error

	GetByID(ctx context.Context, id string) (*models.Roadmap, error)

	// List returns roadmaps in catalog insertion order, optionally
	// restricted to one stream.
	List(ctx context.Context, stream *models.Stream) ([]*models.Roadmap, error)

	Count(ctx context.Context) (int64, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/path-finder-in/roadmap-service/internal/cache"
	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
)

type RoadmapPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewRoadmapPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.RoadmapRepository {
	return &RoadmapPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// CreateBatch bulk-inserts the seed catalog and invalidates cached listings.
func (r *RoadmapPostgreSQL) CreateBatch(ctx context.Context, roadmaps []*models.Roadmap) error {
	if err := r.db.WithContext(ctx).Create(roadmaps).Error; err != nil {
		return fmt.Errorf("failed to create roadmaps: %w", err)
	}
	r.cacheManager.InvalidateRoadmaps(ctx)

	return nil
}

// GetByID retrieves one roadmap with caching.
func (r *RoadmapPostgreSQL) GetByID(ctx context.Context, id string) (*models.Roadmap, error) {
	cacheKey := fmt.Sprintf("id:%s", id)
	var roadmap models.Roadmap

	err := r.cacheManager.Roadmap.CacheOrExecute(ctx, cacheKey, &roadmap, cache.RoadmapCacheConfig.TTL, func() (interface{}, error) {
		var dbRoadmap models.Roadmap
		err := r.db.WithContext(ctx).First(&dbRoadmap, "id = ?", id).Error
		if err != nil {
			return nil, err
		}
		return &dbRoadmap, nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	return &roadmap, nil
}

// List returns the catalog in insertion order, optionally filtered by
// stream, with caching per filter value.
func (r *RoadmapPostgreSQL) List(ctx context.Context, stream *models.Stream) ([]*models.Roadmap, error) {
	cacheKey := "list:all"
	if stream != nil {
		cacheKey = fmt.Sprintf("list:%s", *stream)
	}

	var roadmaps []*models.Roadmap
	err := r.cacheManager.Roadmap.CacheOrExecute(ctx, cacheKey, &roadmaps, cache.RoadmapCacheConfig.TTL, func() (interface{}, error) {
		query := r.db.WithContext(ctx).Order("position ASC")
		if stream != nil {
			query = query.Where("stream = ?", *stream)
		}

		var dbRoadmaps []*models.Roadmap
		if err := query.Find(&dbRoadmaps).Error; err != nil {
			return nil, err
		}
		return dbRoadmaps, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}

	return roadmaps, nil
}

func (r *RoadmapPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Roadmap{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count roadmaps: %w", err)
	}
	return count, nil
}

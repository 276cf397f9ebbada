package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (r *ProgressPostgreSQL) GetByUserAndRoadmap(ctx context.Context, userID, roadmapID string) (*models.Progress, error) {
	var record models.Progress
	err := r.db.WithContext(ctx).
		First(&record, "user_id = ? AND roadmap_id = ?", userID, roadmapID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}
	return &record, nil
}

func (r *ProgressPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.Progress, error) {
	var records []*models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_updated DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list progress records: %w", err)
	}
	return records, nil
}

// Upsert replaces the whole record for the (user, roadmap) pair. The
// later of two concurrent writes wins.
func (r *ProgressPostgreSQL) Upsert(ctx context.Context, record *models.Progress) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "roadmap_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed_steps", "progress_percentage", "last_updated"}),
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/path-finder-in/roadmap-service/internal/events"
	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
	"github.com/path-finder-in/roadmap-service/internal/validator"
)

type progressService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewProgressService(repo repositories.Repository, eventPublisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ProgressService {
	return &progressService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
	}
}

// UpsertStep is a read-modify-write of the whole record: no locking, so
// concurrent updates for the same (user, roadmap) pair are last-write-wins.
func (s *progressService) UpsertStep(ctx context.Context, userID string, req *ProgressUpdateRequest) (float64, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return 0, validationError(errs)
	}

	record, err := s.repo.Progress().GetByUserAndRoadmap(ctx, userID, req.CareerID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return 0, fmt.Errorf("failed to load progress record: %w", err)
		}
		record = &models.Progress{
			UserID:    userID,
			RoadmapID: req.CareerID,
		}
	}

	if req.Completed {
		if !record.HasStep(req.StepID) {
			record.CompletedSteps = append(record.CompletedSteps, req.StepID)
		}
	} else {
		record.CompletedSteps = removeStep(record.CompletedSteps, req.StepID)
	}

	record.ProgressPercentage = s.percentage(ctx, req.CareerID, len(record.CompletedSteps))
	record.LastUpdated = time.Now().UTC()

	if err := s.repo.Progress().Upsert(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to store progress record: %w", err)
	}

	s.logger.Info("progress updated",
		"user_id", userID,
		"career_id", req.CareerID,
		"step_id", req.StepID,
		"completed", req.Completed,
		"percentage", record.ProgressPercentage)

	if err := s.eventPublisher.Publish(ctx, events.EventProgressUpdated, events.ProgressUpdatedEvent{
		UserID:     userID,
		RoadmapID:  req.CareerID,
		StepID:     req.StepID,
		Completed:  req.Completed,
		Percentage: record.ProgressPercentage,
	}); err != nil {
		s.logger.Error("failed to publish progress.updated event", "error", err, "user_id", userID)
	}

	return record.ProgressPercentage, nil
}

func (s *progressService) GetAll(ctx context.Context, userID string) ([]*models.Progress, error) {
	records, err := s.repo.Progress().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress records: %w", err)
	}
	return records, nil
}

// GetOne synthesizes a zero-valued record when none is stored; the
// synthesized record must not be persisted as a side effect of reading.
func (s *progressService) GetOne(ctx context.Context, userID, roadmapID string) (*models.Progress, error) {
	record, err := s.repo.Progress().GetByUserAndRoadmap(ctx, userID, roadmapID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.Progress{
				UserID:             userID,
				RoadmapID:          roadmapID,
				CompletedSteps:     []string{},
				ProgressPercentage: 0,
				LastUpdated:        time.Now().UTC(),
			}, nil
		}
		return nil, fmt.Errorf("failed to load progress record: %w", err)
	}
	return record, nil
}

// percentage derives completion from the roadmap's step count. A missing
// roadmap counts as zero steps, which yields 0%.
func (s *progressService) percentage(ctx context.Context, roadmapID string, completed int) float64 {
	totalSteps := 0
	roadmap, err := s.repo.Roadmap().GetByID(ctx, roadmapID)
	if err == nil {
		totalSteps = roadmap.TotalSteps()
	} else if !errors.Is(err, repositories.ErrNotFound) {
		s.logger.Warn("failed to load roadmap for percentage", "error", err, "career_id", roadmapID)
	}

	if totalSteps == 0 {
		return 0
	}
	return float64(completed) / float64(totalSteps) * 100
}

func removeStep(steps []string, stepID string) []string {
	out := steps[:0]
	for _, id := range steps {
		if id != stepID {
			out = append(out, id)
		}
	}
	return out
}

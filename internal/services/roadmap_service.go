package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
)

type roadmapService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewRoadmapService(repo repositories.Repository, logger *slog.Logger) RoadmapService {
	return &roadmapService{
		repo:   repo,
		logger: logger,
	}
}

func (s *roadmapService) List(ctx context.Context, stream *models.Stream) ([]*models.Roadmap, error) {
	roadmaps, err := s.repo.Roadmap().List(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	return roadmaps, nil
}

func (s *roadmapService) GetByID(ctx context.Context, id string) (*models.Roadmap, error) {
	roadmap, err := s.repo.Roadmap().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return roadmap, nil
}

// Seed loads the built-in catalog exactly once. A non-empty catalog makes
// it a no-op, so the operation is safe to call repeatedly.
func (s *roadmapService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.repo.Roadmap().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count roadmaps: %w", err)
	}
	if count > 0 {
		return &SeedResult{AlreadyInitialized: true}, nil
	}

	catalog := builtinCatalog()
	if err := s.repo.Roadmap().CreateBatch(ctx, catalog); err != nil {
		return nil, fmt.Errorf("failed to seed roadmaps: %w", err)
	}

	s.logger.Info("roadmap catalog seeded", "count", len(catalog))

	return &SeedResult{Inserted: len(catalog)}, nil
}

// ExportCatalog renders the full catalog as an xlsx workbook, one row
// per step.
func (s *roadmapService) ExportCatalog(ctx context.Context) (*excelize.File, error) {
	roadmaps, err := s.repo.Roadmap().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Roadmaps"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []interface{}{"Roadmap", "Stream", "Difficulty", "Estimated Duration", "Step #", "Step Title", "Step Description", "Step Duration", "Resources"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	row := 2
	for _, roadmap := range roadmaps {
		for i, step := range roadmap.Steps {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell name: %w", err)
			}
			values := []interface{}{
				roadmap.Title,
				string(roadmap.Stream),
				string(roadmap.DifficultyLevel),
				roadmap.EstimatedDuration,
				i + 1,
				step.Title,
				step.Description,
				step.Duration,
				strings.Join(step.Resources, ", "),
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
			row++
		}
	}

	return f, nil
}

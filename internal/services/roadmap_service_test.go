package services

import (
	"context"
	"errors"
	"testing"

	"github.com/path-finder-in/roadmap-service/internal/models"
)

func TestRoadmapService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the built-in catalog", func(t *testing.T) {
		repo := newFakeRepository()
		service := NewRoadmapService(repo, testLogger())

		result, err := service.Seed(ctx)
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		if result.AlreadyInitialized {
			t.Error("first seed should not report already initialized")
		}
		if result.Inserted != 15 {
			t.Errorf("expected 15 roadmaps, got %d", result.Inserted)
		}

		roadmaps, err := service.List(ctx, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(roadmaps) != 15 {
			t.Fatalf("expected 15 roadmaps, got %d", len(roadmaps))
		}
		for _, roadmap := range roadmaps {
			if roadmap.ID == "" {
				t.Error("roadmap without id")
			}
			if roadmap.TotalSteps() != 6 {
				t.Errorf("roadmap %q has %d steps, expected 6", roadmap.Title, roadmap.TotalSteps())
			}
			if !roadmap.Stream.IsValid() {
				t.Errorf("roadmap %q has invalid stream %q", roadmap.Title, roadmap.Stream)
			}
		}
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		repo := newFakeRepository()
		service := NewRoadmapService(repo, testLogger())

		if _, err := service.Seed(ctx); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}

		result, err := service.Seed(ctx)
		if err != nil {
			t.Fatalf("second Seed failed: %v", err)
		}
		if !result.AlreadyInitialized {
			t.Error("second seed should report already initialized")
		}
		if result.Inserted != 0 {
			t.Errorf("second seed inserted %d roadmaps", result.Inserted)
		}

		count, err := repo.Roadmap().Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 15 {
			t.Errorf("expected 15 roadmaps after reseed, got %d", count)
		}
	})
}

func TestRoadmapService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	service := NewRoadmapService(repo, testLogger())

	if _, err := service.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	t.Run("filters by stream", func(t *testing.T) {
		stream := models.StreamCommerce
		roadmaps, err := service.List(ctx, &stream)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(roadmaps) != 5 {
			t.Fatalf("expected 5 Commerce roadmaps, got %d", len(roadmaps))
		}
		for _, roadmap := range roadmaps {
			if roadmap.Stream != models.StreamCommerce {
				t.Errorf("roadmap %q has stream %q", roadmap.Title, roadmap.Stream)
			}
		}
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		roadmaps, err := service.List(ctx, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if roadmaps[0].Title != "Full Stack Developer" {
			t.Errorf("expected Full Stack Developer first, got %q", roadmaps[0].Title)
		}
		if roadmaps[len(roadmaps)-1].Title != "Writer" {
			t.Errorf("expected Writer last, got %q", roadmaps[len(roadmaps)-1].Title)
		}
	})
}

func TestRoadmapService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	service := NewRoadmapService(repo, testLogger())

	if _, err := service.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	roadmaps, err := service.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		roadmap, err := service.GetByID(ctx, roadmaps[0].ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if roadmap.Title != roadmaps[0].Title {
			t.Errorf("expected %q, got %q", roadmaps[0].Title, roadmap.Title)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetByID(ctx, "does-not-exist")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRoadmapService_ExportCatalog(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	service := NewRoadmapService(repo, testLogger())

	if _, err := service.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	f, err := service.ExportCatalog(ctx)
	if err != nil {
		t.Fatalf("ExportCatalog failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Roadmaps")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	// Header plus one row per step across the catalog.
	if len(rows) != 1+15*6 {
		t.Errorf("expected %d rows, got %d", 1+15*6, len(rows))
	}
	if rows[0][0] != "Roadmap" {
		t.Errorf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "Full Stack Developer" {
		t.Errorf("expected first data row for Full Stack Developer, got %v", rows[1])
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
	"github.com/path-finder-in/roadmap-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) UpdateStream(ctx context.Context, userID string, req *UpdateStreamRequest) (models.Stream, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return "", validationError(errs)
	}

	stream := models.Stream(req.Stream)

	if err := s.repo.User().UpdateStream(ctx, userID, stream); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to update stream: %w", err)
	}

	s.logger.Info("stream updated", "user_id", userID, "stream", stream)

	return stream, nil
}

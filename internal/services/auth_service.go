package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/path-finder-in/roadmap-service/internal/auth"
	"github.com/path-finder-in/roadmap-service/internal/events"
	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
	"github.com/path-finder-in/roadmap-service/internal/validator"
)

type authService struct {
	repo           repositories.Repository
	tokens         *auth.TokenManager
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewAuthService(repo repositories.Repository, tokens *auth.TokenManager, eventPublisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:           repo,
		tokens:         tokens,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// Check-then-insert: a concurrent registration with the same email
	// can pass this check, in which case the unique index rejects the
	// later insert.
	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	if err := s.eventPublisher.Publish(ctx, events.EventUserRegistered, events.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
	}); err != nil {
		s.logger.Error("failed to publish user.registered event", "error", err, "user_id", user.ID)
	}

	return s.tokenResponse(user)
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return s.tokenResponse(user)
}

func (s *authService) tokenResponse(user *models.User) (*TokenResponse, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

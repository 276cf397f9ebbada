package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/path-finder-in/roadmap-service/internal/auth"
	"github.com/path-finder-in/roadmap-service/internal/events"
	"github.com/path-finder-in/roadmap-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(repo *fakeRepository, publisher events.EventPublisher) AuthService {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewAuthService(repo, tokens, publisher, testLogger(), validator.New())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and issues token", func(t *testing.T) {
		repo := newFakeRepository()
		publisher := events.NewMockEventPublisher(testLogger())
		service := newTestAuthService(repo, publisher)

		resp, err := service.Register(ctx, &RegisterRequest{
			Name:     "Asha Verma",
			Email:    "asha@example.com",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if resp.AccessToken == "" {
			t.Error("expected non-empty access token")
		}
		if resp.TokenType != "bearer" {
			t.Errorf("expected token type bearer, got %q", resp.TokenType)
		}
		if resp.User == nil || resp.User.ID == "" {
			t.Fatal("expected user with id in response")
		}
		if resp.User.Email != "asha@example.com" {
			t.Errorf("unexpected email %q", resp.User.Email)
		}

		stored, err := repo.User().GetByID(ctx, resp.User.ID)
		if err != nil {
			t.Fatalf("stored user not found: %v", err)
		}
		if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
			t.Error("password must be stored hashed")
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventUserRegistered {
			t.Errorf("expected %s event, got %s", events.EventUserRegistered, published[0].Type)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestAuthService(repo, events.NewMockEventPublisher(testLogger()))

		req := &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret123"}
		if _, err := service.Register(ctx, req); err != nil {
			t.Fatalf("first Register failed: %v", err)
		}

		_, err := service.Register(ctx, &RegisterRequest{Name: "Other", Email: "asha@example.com", Password: "different1"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		repo := newFakeRepository()
		service := newTestAuthService(repo, events.NewMockEventPublisher(testLogger()))

		_, err := service.Register(ctx, &RegisterRequest{Name: "Asha", Email: "not-an-email", Password: "secret123"})
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}

		_, err = service.Register(ctx, &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "short"})
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed for short password, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	service := newTestAuthService(repo, events.NewMockEventPublisher(testLogger()))

	registered, err := service.Register(ctx, &RegisterRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := service.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.User.ID != registered.User.ID {
			t.Errorf("expected user %s, got %s", registered.User.ID, resp.User.ID)
		}
		if resp.AccessToken == "" {
			t.Error("expected non-empty access token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "wrongpass"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token carries the user id", func(t *testing.T) {
		tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
		subject, err := tokens.Parse(registered.AccessToken)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if subject != registered.User.ID {
			t.Errorf("expected subject %s, got %s", registered.User.ID, subject)
		}
	})
}

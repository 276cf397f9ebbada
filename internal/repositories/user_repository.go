package repositories

import (
	"context"

	"github.com/path-finder-in/roadmap-service/internal/models"
)

// UserRepository persists user credentials and profile data.
//
// Email uniqueness is checked before insert at registration time; two
// concurrent registrations with the same email can both pass the check,
// in which case the database unique index rejects the later insert.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateStream sets the user's selected stream. ErrNotFound when the
	// user does not exist.
	UpdateStream(ctx context.Context, id string, stream models.Stream) error
}

package repository

import (
	"context"

	"github.com/dayfold/learnings-api/internal/domain/entity"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create inserts a new user. Returns ErrDuplicate when the username is taken.
	Create(ctx context.Context, u *entity.User) error
	// GetByID returns ErrNotFound for zero matches and ErrAmbiguous for
	// more than one, since id is expected unique.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername behaves like GetByID keyed on the username column.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

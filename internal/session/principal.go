package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
)

// Resolver maps authenticated users into session records and back.
// Serialize keeps only the user id in the session; Deserialize re-reads the
// current user row on every request, so a deleted account invalidates its
// sessions immediately.
type Resolver struct {
	users repository.UserRepository
}

func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

func (r *Resolver) Serialize(u *entity.User) Record {
	return Record{UserID: u.ID}
}

// Deserialize resolves the stored principal reference. A gone principal is
// reported as ErrNoSession so callers treat the session as unauthenticated;
// an ambiguous id lookup is a data integrity fault and propagates as-is.
func (r *Resolver) Deserialize(ctx context.Context, rec *Record) (*entity.User, error) {
	u, err := r.users.GetByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("resolve principal: %w", err)
	}
	return u, nil
}

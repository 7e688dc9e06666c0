package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
)

type fakeUserRepo struct {
	byID   map[string]*entity.User
	getErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func TestResolver_Serialize_KeepsOnlyTheUserID(t *testing.T) {
	r := NewResolver(&fakeUserRepo{})

	rec := r.Serialize(&entity.User{ID: "u1", Username: "a@b.com", Password: "$2a$12$hash"})
	assert.Equal(t, Record{UserID: "u1"}, rec)
}

func TestResolver_Deserialize(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a live principal", func(t *testing.T) {
		repo := &fakeUserRepo{byID: map[string]*entity.User{
			"u1": {ID: "u1", Username: "a@b.com"},
		}}
		r := NewResolver(repo)

		u, err := r.Deserialize(ctx, &Record{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", u.Username)
	})

	t.Run("gone principal reads as no session", func(t *testing.T) {
		r := NewResolver(&fakeUserRepo{byID: map[string]*entity.User{}})

		_, err := r.Deserialize(ctx, &Record{UserID: "deleted"})
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("ambiguous id lookup propagates as-is", func(t *testing.T) {
		r := NewResolver(&fakeUserRepo{getErr: repository.ErrAmbiguous})

		_, err := r.Deserialize(ctx, &Record{UserID: "u1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoSession)
		assert.ErrorIs(t, err, repository.ErrAmbiguous)
	})

	t.Run("infrastructure failure is not no-session", func(t *testing.T) {
		r := NewResolver(&fakeUserRepo{getErr: errors.New("connection refused")})

		_, err := r.Deserialize(ctx, &Record{UserID: "u1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoSession)
	})
}

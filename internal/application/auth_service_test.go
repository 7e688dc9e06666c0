package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
	"github.com/dayfold/learnings-api/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeUserRepo struct {
	users     map[string]*entity.User // keyed by username
	getErr    error
	createErr error
	created   []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Username]; ok {
		return repository.ErrDuplicate
	}
	f.users[u.Username] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	hash, err := helpers.HashPassword("correct horse")
	require.NoError(t, err)

	repo := newFakeUserRepo()
	repo.users["a@b.com"] = &entity.User{ID: "u1", Username: "a@b.com", Password: hash}
	svc := NewAuthService(repo, testLogger(), nil, false)

	t.Run("matching credentials return the user", func(t *testing.T) {
		u, err := svc.Verify(ctx, "a@b.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("unknown username is invalid credentials", func(t *testing.T) {
		_, err := svc.Verify(ctx, "nobody@b.com", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		_, err := svc.Verify(ctx, "a@b.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("ambiguous username match is not invalid credentials", func(t *testing.T) {
		broken := newFakeUserRepo()
		broken.getErr = repository.ErrAmbiguous
		svc := NewAuthService(broken, testLogger(), nil, false)

		_, err := svc.Verify(ctx, "a@b.com", "correct horse")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, repository.ErrAmbiguous)
	})

	t.Run("store failure propagates as infrastructure error", func(t *testing.T) {
		broken := newFakeUserRepo()
		broken.getErr = errors.New("connection refused")
		svc := NewAuthService(broken, testLogger(), nil, false)

		_, err := svc.Verify(ctx, "a@b.com", "correct horse")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, testLogger(), nil, false)

		u, err := svc.Signup(ctx, "new@b.com", "pw12345")
		require.NoError(t, err)
		require.Len(t, repo.created, 1)

		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "new@b.com", u.Username)
		assert.NotEqual(t, "pw12345", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw12345")))
	})

	t.Run("taken username surfaces as duplicate", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.users["taken@b.com"] = &entity.User{ID: "u1", Username: "taken@b.com"}
		svc := NewAuthService(repo, testLogger(), nil, false)

		_, err := svc.Signup(ctx, "taken@b.com", "pw12345")
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.createErr = errors.New("connection refused")
		svc := NewAuthService(repo, testLogger(), nil, false)

		_, err := svc.Signup(ctx, "new@b.com", "pw12345")
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("passwords past the bcrypt input cap still work", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo, testLogger(), nil, false)
		long := strings.Repeat("p", 100)

		_, err := svc.Signup(ctx, "long@b.com", long)
		require.NoError(t, err)

		u, err := svc.Verify(ctx, "long@b.com", long)
		require.NoError(t, err)
		assert.Equal(t, "long@b.com", u.Username)
	})
}

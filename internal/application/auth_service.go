package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
	"github.com/dayfold/learnings-api/pkg/helpers"
	"github.com/dayfold/learnings-api/pkg/mailer"
)

// AuthService verifies credentials and creates accounts. It never touches
// session state; issuing and destroying sessions is the handler's job so the
// service stays a plain read/write path against the user store.
type AuthService struct {
	Users       repository.UserRepository
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

// Verify checks a username/password pair against the stored bcrypt hash.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials; an ambiguous username match (unique column broken)
// and store failures propagate as infrastructure errors.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Signup creates a new account with a freshly hashed password. A taken
// username surfaces as repository.ErrDuplicate. The welcome email is
// fire-and-forget: a dead broker never fails the signup.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Pub != nil && s.MailEnabled {
		if err := s.Pub.PublishJSON(ctx, mailer.WelcomeEmail(u.Username)); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
		}
	}

	return u, nil
}

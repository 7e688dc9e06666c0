package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dayfold/learnings-api/pkg/helpers"
)

// ErrNoSession means the token matched no live session record: never issued,
// expired, or destroyed by logout.
var ErrNoSession = errors.New("no session")

// Record is the server-side session blob keyed by the opaque token.
// The client only ever holds the token; the principal reference stays here.
type Record struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the session lifecycle contract consumed by handlers and the
// authentication gate.
type Store interface {
	Create(ctx context.Context, rec Record) (token string, err error)
	Get(ctx context.Context, token string) (*Record, error)
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps one Redis key per session with the configured TTL.
// Redis owns expiry; nothing is cached in-process.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *RedisStore) Create(ctx context.Context, rec Record) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(token), rec, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Record, error) {
	var rec Record
	ok, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(token), &rec)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	return &rec, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(token))
}

var _ Store = (*RedisStore)(nil)

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, u.ID, u.Username, u.Password)

	if err := row.Scan(&u.CreatedAt); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, password, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, password, created_at
		FROM users
		WHERE username = $1
	`, username)
}

// getOne runs a by-unique-column query and insists on exactly one row.
// Zero rows is ErrNotFound; several rows means the uniqueness guarantee
// is broken and is reported as ErrAmbiguous rather than silently picking one.
func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var found []*entity.User
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, repository.ErrNotFound
	case 1:
		return found[0], nil
	default:
		return nil, repository.ErrAmbiguous
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

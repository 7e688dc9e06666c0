package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
)

type LearningRepository struct {
	pool *pgxpool.Pool
}

func NewLearningRepository(pool *pgxpool.Pool) *LearningRepository {
	return &LearningRepository{pool: pool}
}

// Create relies on the composite unique constraint over (user_id, learning_date)
// as the sole serialization point: no prior existence check, the insert itself
// either lands or reports the duplicate.
func (r *LearningRepository) Create(ctx context.Context, l *entity.Learning) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO learnings (id, user_id, learning, learning_date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, l.ID, l.UserID, l.Learning, l.Date)

	if err := row.Scan(&l.CreatedAt); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			// Owner vanished between authentication and the write.
			return repository.ErrNotFound
		}
		return fmt.Errorf("insert learning: %w", err)
	}
	return nil
}

func (r *LearningRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Learning, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, learning, learning_date, created_at
		FROM learnings
		WHERE user_id = $1
		ORDER BY learning_date DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query learnings: %w", err)
	}
	defer rows.Close()

	learnings := make([]entity.Learning, 0, limit)
	for rows.Next() {
		var l entity.Learning
		if err := rows.Scan(&l.ID, &l.UserID, &l.Learning, &l.Date, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan learning: %w", err)
		}
		learnings = append(learnings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read learnings: %w", err)
	}
	return learnings, nil
}

var _ repository.LearningRepository = (*LearningRepository)(nil)

package repository

import (
	"context"

	"github.com/dayfold/learnings-api/internal/domain/entity"
)

// LearningRepository defines the interface for journal entry persistence.
type LearningRepository interface {
	// Create inserts a new learning. Returns ErrDuplicate when an entry
	// for the same (user, date) pair already exists.
	Create(ctx context.Context, l *entity.Learning) error
	// ListByUser returns up to limit entries owned by userID, ordered by
	// entry date descending, skipping offset rows. A window past the end
	// of the data yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Learning, error)
}

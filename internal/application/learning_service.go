package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dayfold/learnings-api/internal/domain/entity"
	"github.com/dayfold/learnings-api/internal/domain/repository"
)

// PageSize is the fixed window for learning listings.
const PageSize = 10

// LearningService writes and reads journal entries for one principal.
type LearningService struct {
	Learnings repository.LearningRepository
	Logger    *logrus.Logger
}

func NewLearningService(learnings repository.LearningRepository, logger *logrus.Logger) *LearningService {
	return &LearningService{Learnings: learnings, Logger: logger}
}

// Create persists one entry for the given day. The date is truncated to a
// calendar date; a second entry for the same (user, day) pair surfaces as
// repository.ErrDuplicate straight from the store's unique constraint.
func (s *LearningService) Create(ctx context.Context, userID, text string, date time.Time) (*entity.Learning, error) {
	l := &entity.Learning{
		ID:       uuid.NewString(),
		UserID:   userID,
		Learning: text,
		Date:     date.UTC().Truncate(24 * time.Hour),
	}
	if err := s.Learnings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns page (1-based, defaulting to 1) of the principal's entries,
// newest entry date first. Pages past the end come back empty.
func (s *LearningService) List(ctx context.Context, userID string, page int) ([]entity.Learning, error) {
	if page < 1 {
		page = 1
	}
	// A page large enough to overflow the offset is past the end of any
	// journal; answer it without handing the store a wrapped-around offset.
	if page-1 > math.MaxInt/PageSize {
		return []entity.Learning{}, nil
	}
	offset := (page - 1) * PageSize
	learnings, err := s.Learnings.ListByUser(ctx, userID, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list learnings: %w", err)
	}
	return learnings, nil
}

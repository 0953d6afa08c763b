package contract

import (
	"context"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	Update(ctx context.Context, story *entity.Story) error
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	UpdateLastQuestions(ctx context.Context, id uuid.UUID, questions []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByStorybookId(ctx context.Context, storybookId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Story, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

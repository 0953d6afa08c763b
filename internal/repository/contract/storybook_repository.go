package contract

import (
	"context"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StorybookRepository interface {
	Create(ctx context.Context, storybook *entity.Storybook) error
	Update(ctx context.Context, storybook *entity.Storybook) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Storybook, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Storybook, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

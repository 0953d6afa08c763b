package implementation

import (
	"context"
	"errors"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/mapper"
	"journeyai-be/internal/model"
	"journeyai-be/internal/repository/contract"
	"journeyai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StorybookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StorybookMapper
}

func NewStorybookRepository(db *gorm.DB) contract.StorybookRepository {
	return &StorybookRepositoryImpl{
		db:     db,
		mapper: mapper.NewStorybookMapper(),
	}
}

func (r *StorybookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StorybookRepositoryImpl) Create(ctx context.Context, storybook *entity.Storybook) error {
	m := r.mapper.ToModel(storybook)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*storybook = *r.mapper.ToEntity(m)
	return nil
}

func (r *StorybookRepositoryImpl) Update(ctx context.Context, storybook *entity.Storybook) error {
	m := r.mapper.ToModel(storybook)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*storybook = *r.mapper.ToEntity(m)
	return nil
}

func (r *StorybookRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Storybook{}, id).Error
}

func (r *StorybookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Storybook, error) {
	var m model.Storybook
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StorybookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Storybook, error) {
	var models []*model.Storybook
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StorybookRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Storybook{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

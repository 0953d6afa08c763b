package mapper

import (
	"time"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/model"

	"gorm.io/gorm"
)

type StorybookMapper struct{}

func NewStorybookMapper() *StorybookMapper {
	return &StorybookMapper{}
}

func (m *StorybookMapper) ToEntity(s *model.Storybook) *entity.Storybook {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Storybook{
		Id:             s.Id,
		Title:          s.Title,
		TargetAudience: s.TargetAudience,
		StoryCount:     s.StoryCount,
		UserId:         s.UserId,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      s.DeletedAt.Valid,
	}
}

func (m *StorybookMapper) ToModel(s *entity.Storybook) *model.Storybook {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Storybook{
		Id:             s.Id,
		Title:          s.Title,
		TargetAudience: s.TargetAudience,
		StoryCount:     s.StoryCount,
		UserId:         s.UserId,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *StorybookMapper) ToEntities(storybooks []*model.Storybook) []*entity.Storybook {
	entities := make([]*entity.Storybook, len(storybooks))
	for i, s := range storybooks {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *StorybookMapper) ToModels(storybooks []*entity.Storybook) []*model.Storybook {
	models := make([]*model.Storybook, len(storybooks))
	for i, s := range storybooks {
		models[i] = m.ToModel(s)
	}
	return models
}

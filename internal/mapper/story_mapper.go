package mapper

import (
	"time"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StoryMapper struct{}

func NewStoryMapper() *StoryMapper {
	return &StoryMapper{}
}

func (m *StoryMapper) ToEntity(s *model.Story) *entity.Story {
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

	return &entity.Story{
		Id:            s.Id,
		Title:         s.Title,
		Content:       s.Content,
		StorybookId:   s.StorybookId,
		UserId:        s.UserId,
		Position:      s.Position,
		LastQuestions: []byte(s.LastQuestions),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     s.DeletedAt.Valid,
	}
}

func (m *StoryMapper) ToModel(s *entity.Story) *model.Story {
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

	return &model.Story{
		Id:            s.Id,
		Title:         s.Title,
		Content:       s.Content,
		StorybookId:   s.StorybookId,
		UserId:        s.UserId,
		Position:      s.Position,
		LastQuestions: datatypes.JSON(s.LastQuestions),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *StoryMapper) ToEntities(stories []*model.Story) []*entity.Story {
	entities := make([]*entity.Story, len(stories))
	for i, s := range stories {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *StoryMapper) ToModels(stories []*entity.Story) []*model.Story {
	models := make([]*model.Story, len(stories))
	for i, s := range stories {
		models[i] = m.ToModel(s)
	}
	return models
}

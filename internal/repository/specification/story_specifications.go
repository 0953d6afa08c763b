package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStorybookID filters stories belonging to a storybook
type ByStorybookID struct {
	StorybookID uuid.UUID
}

func (s ByStorybookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("storybook_id = ?", s.StorybookID)
}

// ByStoryID filters notes attached to a story
type ByStoryID struct {
	StoryID uuid.UUID
}

func (s ByStoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("story_id = ?", s.StoryID)
}

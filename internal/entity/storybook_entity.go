package entity

import (
	"time"

	"github.com/google/uuid"
)

type Storybook struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string
	TargetAudience string
	StoryCount     int
	UserId         uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Storybook struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string         `gorm:"type:varchar(255);not null"`
	TargetAudience string         `gorm:"type:varchar(255)"`
	StoryCount     int            `gorm:"not null;default:0"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Storybook) TableName() string {
	return "storybooks"
}

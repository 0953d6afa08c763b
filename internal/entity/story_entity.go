package entity

import (
	"time"

	"github.com/google/uuid"
)

type Story struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string
	Content       string
	StorybookId   uuid.UUID `gorm:"type:uuid;index"`
	UserId        uuid.UUID `gorm:"type:uuid;index"`
	Position      int
	LastQuestions []byte
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

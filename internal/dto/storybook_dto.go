package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStorybookRequest struct {
	Title          string `json:"title" validate:"required"`
	TargetAudience string `json:"target_audience"`
}

type CreateStorybookResponse struct {
	Id uuid.UUID `json:"id"`
}

type StorybookResponse struct {
	Id             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	TargetAudience string     `json:"target_audience"`
	StoryCount     int        `json:"story_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type ShowStorybookResponse struct {
	Id             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	TargetAudience string           `json:"target_audience"`
	StoryCount     int              `json:"story_count"`
	Stories        []*StoryResponse `json:"stories"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at"`
}

type UpdateStorybookRequest struct {
	Id             uuid.UUID
	Title          string `json:"title" validate:"required"`
	TargetAudience string `json:"target_audience"`
}

type UpdateStorybookResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReorderStoriesRequest struct {
	StorybookId uuid.UUID
	StoryIds    []uuid.UUID `json:"story_ids" validate:"required,min=1"`
}

type ReorderStoriesResponse struct {
	Id uuid.UUID `json:"id"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStoryRequest struct {
	Title       string    `json:"title" validate:"required"`
	Content     string    `json:"content"`
	StorybookId uuid.UUID `json:"storybook_id" validate:"required"`
}

type CreateStoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type StoryResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	StorybookId uuid.UUID  `json:"storybook_id"`
	Position    int        `json:"position"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateStoryRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateStoryResponse struct {
	Id uuid.UUID `json:"id"`
}

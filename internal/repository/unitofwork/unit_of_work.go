package unitofwork

import (
	"context"

	"journeyai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StorybookRepository() contract.StorybookRepository
	StoryRepository() contract.StoryRepository
	NoteRepository() contract.NoteRepository
}

package service

import (
	"context"
	"fmt"
	"time"

	"journeyai-be/internal/dto"
	"journeyai-be/internal/entity"
	"journeyai-be/internal/pkg/logger"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/events"

	"github.com/google/uuid"
)

type IStorybookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.StorybookResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStorybookRequest) (*dto.CreateStorybookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowStorybookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStorybookRequest) (*dto.UpdateStorybookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ReorderStories(ctx context.Context, userId uuid.UUID, req *dto.ReorderStoriesRequest) (*dto.ReorderStoriesResponse, error)
}

type storybookService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
	log            logger.ILogger
}

func NewStorybookService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IStorybookService {
	return &storybookService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (c *storybookService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.StorybookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	storybooks, err := uow.StorybookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StorybookResponse, 0, len(storybooks))
	for _, storybook := range storybooks {
		result = append(result, &dto.StorybookResponse{
			Id:             storybook.Id,
			Title:          storybook.Title,
			TargetAudience: storybook.TargetAudience,
			StoryCount:     storybook.StoryCount,
			CreatedAt:      storybook.CreatedAt,
			UpdatedAt:      storybook.UpdatedAt,
		})
	}

	return result, nil
}

func (c *storybookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStorybookRequest) (*dto.CreateStorybookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	storybook := entity.Storybook{
		Id:             uuid.New(),
		Title:          req.Title,
		TargetAudience: req.TargetAudience,
		UserId:         userId,
		CreatedAt:      time.Now(),
	}

	if err := uow.StorybookRepository().Create(ctx, &storybook); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.TypeStorybookCreated, map[string]interface{}{
		"storybook_id": storybook.Id.String(),
		"user_id":      userId.String(),
	})

	return &dto.CreateStorybookResponse{
		Id: storybook.Id,
	}, nil
}

func (c *storybookService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, event); err != nil {
		c.log.Warn("StorybookService", "Failed to publish domain event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func (c *storybookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowStorybookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	storybook, err := uow.StorybookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if storybook == nil {
		return nil, nil
	}

	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.ByStorybookID{StorybookID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	storyItems := make([]*dto.StoryResponse, 0, len(stories))
	for _, story := range stories {
		storyItems = append(storyItems, &dto.StoryResponse{
			Id:          story.Id,
			Title:       story.Title,
			Content:     story.Content,
			StorybookId: story.StorybookId,
			Position:    story.Position,
			CreatedAt:   story.CreatedAt,
			UpdatedAt:   story.UpdatedAt,
		})
	}

	return &dto.ShowStorybookResponse{
		Id:             storybook.Id,
		Title:          storybook.Title,
		TargetAudience: storybook.TargetAudience,
		StoryCount:     storybook.StoryCount,
		Stories:        storyItems,
		CreatedAt:      storybook.CreatedAt,
		UpdatedAt:      storybook.UpdatedAt,
	}, nil
}

func (c *storybookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStorybookRequest) (*dto.UpdateStorybookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	storybook, err := uow.StorybookRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if storybook == nil {
		return nil, nil
	}

	now := time.Now()
	storybook.Title = req.Title
	storybook.TargetAudience = req.TargetAudience
	storybook.UpdatedAt = &now

	if err := uow.StorybookRepository().Update(ctx, storybook); err != nil {
		return nil, err
	}

	return &dto.UpdateStorybookResponse{
		Id: storybook.Id,
	}, nil
}

func (c *storybookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	storybook, err := uow.StorybookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if storybook == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StorybookRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.StoryRepository().DeleteAllByStorybookId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (c *storybookService) ReorderStories(ctx context.Context, userId uuid.UUID, req *dto.ReorderStoriesRequest) (*dto.ReorderStoriesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	storybook, err := uow.StorybookRepository().FindOne(ctx,
		specification.ByID{ID: req.StorybookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if storybook == nil {
		return nil, nil
	}

	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.ByStorybookID{StorybookID: req.StorybookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	// Every supplied id must belong to this storybook
	known := make(map[uuid.UUID]bool, len(stories))
	for _, story := range stories {
		known[story.Id] = true
	}
	for _, id := range req.StoryIds {
		if !known[id] {
			return nil, fmt.Errorf("story %s does not belong to storybook %s", id, req.StorybookId)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Positions follow the order of the supplied list
	for i, id := range req.StoryIds {
		if err := uow.StoryRepository().UpdatePosition(ctx, id, i); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ReorderStoriesResponse{
		Id: req.StorybookId,
	}, nil
}

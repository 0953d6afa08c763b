package service

import (
	"context"
	"encoding/json"
	"time"

	"journeyai-be/internal/dto"
	"journeyai-be/internal/entity"
	"journeyai-be/internal/pkg/logger"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/events"

	"github.com/google/uuid"
)

// AnalyzeStoryMessage is the internal queue payload that triggers
// background question generation for a story.
type AnalyzeStoryMessage struct {
	StoryId uuid.UUID `json:"story_id"`
}

type IStoryService interface {
	GetAllByStorybook(ctx context.Context, userId uuid.UUID, storybookId uuid.UUID) ([]*dto.StoryResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoryRequest) (*dto.UpdateStoryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type storyService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   IEventPublisher
	log              logger.ILogger
}

func NewStoryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IStoryService {
	return &storyService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (c *storyService) GetAllByStorybook(ctx context.Context, userId uuid.UUID, storybookId uuid.UUID) ([]*dto.StoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	stories, err := uow.StoryRepository().FindAll(ctx,
		specification.ByStorybookID{StorybookID: storybookId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StoryResponse, 0, len(stories))
	for _, story := range stories {
		result = append(result, &dto.StoryResponse{
			Id:          story.Id,
			Title:       story.Title,
			Content:     story.Content,
			StorybookId: story.StorybookId,
			Position:    story.Position,
			CreatedAt:   story.CreatedAt,
			UpdatedAt:   story.UpdatedAt,
		})
	}

	return result, nil
}

func (c *storyService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.CreateStoryResponse, error) {
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

	count, err := uow.StoryRepository().Count(ctx,
		specification.ByStorybookID{StorybookID: req.StorybookId},
	)
	if err != nil {
		return nil, err
	}

	story := entity.Story{
		Id:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		StorybookId: req.StorybookId,
		UserId:      userId,
		Position:    int(count), // New stories go to the end
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.StoryRepository().Create(ctx, &story); err != nil {
		return nil, err
	}

	storybook.StoryCount++
	if err := uow.StorybookRepository().Update(ctx, storybook); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishAnalyze(ctx, story.Id)
	c.publishEvent(ctx, events.TypeStoryCreated, map[string]interface{}{
		"story_id":     story.Id.String(),
		"storybook_id": story.StorybookId.String(),
		"user_id":      userId.String(),
	})

	return &dto.CreateStoryResponse{
		Id: story.Id,
	}, nil
}

func (c *storyService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, nil
	}

	return &dto.StoryResponse{
		Id:          story.Id,
		Title:       story.Title,
		Content:     story.Content,
		StorybookId: story.StorybookId,
		Position:    story.Position,
		CreatedAt:   story.CreatedAt,
		UpdatedAt:   story.UpdatedAt,
	}, nil
}

func (c *storyService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStoryRequest) (*dto.UpdateStoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, nil
	}

	now := time.Now()
	story.Title = req.Title
	story.Content = req.Content
	story.UpdatedAt = &now

	if err := uow.StoryRepository().Update(ctx, story); err != nil {
		return nil, err
	}

	// Re-generate reflective questions off the request path
	c.publishAnalyze(ctx, story.Id)

	return &dto.UpdateStoryResponse{
		Id: story.Id,
	}, nil
}

func (c *storyService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if story == nil {
		return nil
	}

	storybook, err := uow.StorybookRepository().FindOne(ctx,
		specification.ByID{ID: story.StorybookId},
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	if storybook != nil && storybook.StoryCount > 0 {
		storybook.StoryCount--
		if err := uow.StorybookRepository().Update(ctx, storybook); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (c *storyService) publishAnalyze(ctx context.Context, storyId uuid.UUID) {
	msg := AnalyzeStoryMessage{StoryId: storyId}
	msgJson, _ := json.Marshal(msg)
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		c.log.Warn("StoryService", "Failed to queue story analysis", map[string]interface{}{
			"story_id": storyId.String(),
			"error":    err.Error(),
		})
	}
}

func (c *storyService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.eventPublisher.Publish(ctx, event); err != nil {
		c.log.Warn("StoryService", "Failed to publish domain event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

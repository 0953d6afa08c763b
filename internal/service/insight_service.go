package service

import (
	"context"
	"encoding/json"
	"strings"

	"journeyai-be/internal/dto"
	"journeyai-be/internal/pkg/logger"
	"journeyai-be/internal/repository/memory"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/insight"
	"journeyai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightService interface {
	GenerateQuestions(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
	GetStoryQuestions(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.StoryQuestionsResponse, error)
}

type insightService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	state       *memory.InsightStateRepository
	log         logger.ILogger
	schema      map[string]interface{}
}

func NewInsightService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	state *memory.InsightStateRepository,
	log logger.ILogger,
) IInsightService {
	return &insightService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		state:       state,
		log:         log,
		schema:      llm.GenerateSchema[insight.QuestionList](),
	}
}

func (c *insightService) GenerateQuestions(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	window, balance, err := c.resolveWindow(req)
	if err != nil {
		return nil, err
	}

	// Sequences are tracked per story when the client names one, per
	// writer otherwise.
	seqKey := userId.String()
	if req.StoryId != nil {
		seqKey = req.StoryId.String()
	}
	seq := c.state.NextSequence(seqKey)

	list, usedFallback := c.generate(ctx, window, balance)

	// A newer request against the same key started while this one was in
	// flight: the caller should prefer the newer response.
	stale := !c.state.IsCurrent(seqKey, seq)

	if req.StoryId != nil && !usedFallback && !stale {
		c.persistQuestions(ctx, userId, *req.StoryId, list)
	}

	return &dto.GenerateQuestionsResponse{
		Questions: toQuestionItems(list),
		Sequence:  seq,
		Stale:     stale,
		Fallback:  usedFallback,
	}, nil
}

func (c *insightService) GetStoryQuestions(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.StoryQuestionsResponse, error) {
	// Ownership check comes before the cache: the cache is keyed by story
	// id alone and must not leak across users.
	uow := c.uowFactory.NewUnitOfWork(ctx)
	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: storyId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, nil
	}

	if cached, found := c.state.GetQuestions(storyId); found {
		return &dto.StoryQuestionsResponse{
			StoryId:   storyId,
			Questions: toQuestionItems(cached),
			Cached:    true,
		}, nil
	}

	if len(story.LastQuestions) > 0 {
		var list insight.QuestionList
		if err := json.Unmarshal(story.LastQuestions, &list); err == nil && len(list.Questions) > 0 {
			c.state.SaveQuestions(storyId, &list)
			return &dto.StoryQuestionsResponse{
				StoryId:   storyId,
				Questions: toQuestionItems(&list),
			}, nil
		}
	}

	// A story without content has nothing to ask about
	if insight.WordCount(story.Content) == 0 {
		return &dto.StoryQuestionsResponse{
			StoryId:   storyId,
			Questions: toQuestionItems(&insight.QuestionList{Questions: insight.FallbackQuestions()}),
		}, nil
	}

	// Nothing persisted yet: generate now from the story content
	window := insight.SplitWindow(story.Content, insight.BalanceDefault)
	list, usedFallback := c.generate(ctx, window, insight.BalanceDefault)
	if !usedFallback {
		c.persistQuestions(ctx, userId, storyId, list)
	}

	return &dto.StoryQuestionsResponse{
		StoryId:   storyId,
		Questions: toQuestionItems(list),
	}, nil
}

// resolveWindow turns the request body into a text window. The split
// new_content/existing_content pair bypasses word counting: the client has
// already decided what is recent.
func (c *insightService) resolveWindow(req *dto.GenerateQuestionsRequest) (insight.TextWindow, int, error) {
	balance := insight.BalanceDefault
	if req.ContextBalance != nil {
		balance = insight.ClampBalance(*req.ContextBalance)
	}

	if strings.TrimSpace(req.NewContent) != "" {
		return insight.TextWindow{
			Recent:   req.NewContent,
			Previous: req.ExistingContent,
		}, balance, nil
	}

	if strings.TrimSpace(req.Content) == "" {
		return insight.TextWindow{}, 0, fiber.NewError(fiber.StatusBadRequest, "content is required")
	}

	return insight.SplitWindow(req.Content, balance), balance, nil
}

// generate runs the model and parses the reply. Any failure along the way
// degrades to the static fallback set; the writer always gets questions.
func (c *insightService) generate(ctx context.Context, window insight.TextWindow, balance int) (*insight.QuestionList, bool) {
	prompt := insight.NewPromptBuilder(window, balance).Build()

	raw, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7),
		llm.WithJSONSchema("reflective_questions", c.schema),
	)
	if err != nil {
		c.log.Error("InsightService", "Question generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &insight.QuestionList{Questions: insight.FallbackQuestions()}, true
	}

	list, err := insight.ParseQuestions(raw)
	if err != nil {
		c.log.Error("InsightService", "Failed to parse model reply", map[string]interface{}{
			"error": err.Error(),
		})
		return &insight.QuestionList{Questions: insight.FallbackQuestions()}, true
	}

	return list, false
}

func (c *insightService) persistQuestions(ctx context.Context, userId uuid.UUID, storyId uuid.UUID, list *insight.QuestionList) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx,
		specification.ByID{ID: storyId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil || story == nil {
		return
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return
	}

	if err := uow.StoryRepository().UpdateLastQuestions(ctx, storyId, payload); err != nil {
		c.log.Warn("InsightService", "Failed to persist questions", map[string]interface{}{
			"story_id": storyId.String(),
			"error":    err.Error(),
		})
		return
	}

	c.state.SaveQuestions(storyId, list)
}

func toQuestionItems(list *insight.QuestionList) []dto.QuestionItem {
	items := make([]dto.QuestionItem, 0, len(list.Questions))
	for _, q := range list.Questions {
		items = append(items, dto.QuestionItem{
			Question: q.Question,
			Category: q.Category,
		})
	}
	return items
}

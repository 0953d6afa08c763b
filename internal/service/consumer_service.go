package service

import (
	"context"
	"encoding/json"

	"journeyai-be/internal/pkg/logger"
	"journeyai-be/internal/repository/memory"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/insight"
	"journeyai-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService pre-generates reflective questions in the background so
// they are ready when the writer opens a story.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	state       *memory.InsightStateRepository
	log         logger.ILogger
	schema      map[string]interface{}
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	state *memory.InsightStateRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		state:       state,
		log:         log,
		schema:      llm.GenerateSchema[insight.QuestionList](),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload AnalyzeStoryMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	story, err := uow.StoryRepository().FindOne(ctx, specification.ByID{ID: payload.StoryId})
	if err != nil {
		cs.log.Error("ConsumerService", "Failed to fetch story", map[string]interface{}{
			"story_id": payload.StoryId.String(),
			"error":    err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if story == nil {
		// Story deleted before we got to it
		msg.Ack()
		return
	}

	if insight.WordCount(story.Content) == 0 {
		msg.Ack()
		return
	}

	prompt := insight.BuildQuestionPrompt(story.Content, insight.BalanceDefault)
	raw, err := cs.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7),
		llm.WithJSONSchema("reflective_questions", cs.schema),
	)
	if err != nil {
		cs.log.Error("ConsumerService", "Question generation failed", map[string]interface{}{
			"story_id": payload.StoryId.String(),
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	list, err := insight.ParseQuestions(raw)
	if err != nil {
		// A parse failure will not fix itself on retry; drop the message
		cs.log.Error("ConsumerService", "Failed to parse model reply", map[string]interface{}{
			"story_id": payload.StoryId.String(),
			"error":    err.Error(),
		})
		msg.Ack()
		return
	}

	questionsJson, err := json.Marshal(list)
	if err != nil {
		msg.Ack()
		return
	}

	if err := uow.StoryRepository().UpdateLastQuestions(ctx, story.Id, questionsJson); err != nil {
		cs.log.Error("ConsumerService", "Failed to persist questions", map[string]interface{}{
			"story_id": payload.StoryId.String(),
			"error":    err.Error(),
		})
		msg.Nack()
		return
	}

	cs.state.SaveQuestions(story.Id, list)

	cs.log.Info("ConsumerService", "Questions pre-generated", map[string]interface{}{
		"story_id": payload.StoryId.String(),
		"count":    len(list.Questions),
	})
	msg.Ack()
}

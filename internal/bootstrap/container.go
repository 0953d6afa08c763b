package bootstrap

import (
	"log"

	"journeyai-be/internal/config"
	"journeyai-be/internal/controller"
	"journeyai-be/internal/pkg/logger"
	"journeyai-be/internal/repository/memory"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/internal/service"
	"journeyai-be/pkg/llm/factory"
	"journeyai-be/pkg/speech"

	pktNats "journeyai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	StorybookController     controller.IStorybookController
	StoryController         controller.IStoryController
	NoteController          controller.INoteController
	InsightController       controller.IInsightController
	TranscriptionController controller.ITranscriptionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. AI Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	transcriber := speech.NewOpenAITranscriber(cfg.Keys.OpenAI, cfg.Ai.TranscribeModel)

	// In-memory generation state (sequences + cached question sets)
	insightState := memory.NewInsightStateRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Ai.AnalyzeTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.AnalyzeTopic,
		uowFactory,
		llmProvider,
		insightState,
		sysLogger,
	)

	var eventPublisher service.IEventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	storybookService := service.NewStorybookService(uowFactory, eventPublisher, sysLogger)
	storyService := service.NewStoryService(uowFactory, publisherService, eventPublisher, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	insightService := service.NewInsightService(uowFactory, llmProvider, insightState, sysLogger)
	transcriptionService := service.NewTranscriptionService(transcriber, eventPublisher, sysLogger)

	// 5. Controllers
	return &Container{
		StorybookController:     controller.NewStorybookController(storybookService, storyService),
		StoryController:         controller.NewStoryController(storyService),
		NoteController:          controller.NewNoteController(noteService),
		InsightController:       controller.NewInsightController(insightService),
		TranscriptionController: controller.NewTranscriptionController(transcriptionService),

		ConsumerService: consumerService,
	}
}

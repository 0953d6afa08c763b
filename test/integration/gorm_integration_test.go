package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"journeyai-be/internal/entity"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.StorybookRepository())
	assert.NotNil(t, uow.StoryRepository())
	assert.NotNil(t, uow.NoteRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Storybook Repository", func(t *testing.T) {
		count, err := uow.StorybookRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Storybook count: %d", count)
	})

	t.Run("Check Transactional Story Creation", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()

		storybook := &entity.Storybook{
			Id:             uuid.New(),
			Title:          "Integration Storybook",
			TargetAudience: "future self",
			UserId:         userId,
		}

		err := uow.StorybookRepository().Create(ctx, storybook)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		story := &entity.Story{
			Id:          uuid.New(),
			Title:       "Integration Story",
			Content:     "A short entry written by the integration test.",
			StorybookId: storybook.Id,
			UserId:      userId,
			Position:    0,
		}

		err = uow.StoryRepository().Create(ctx, story)
		assert.NoError(t, err)

		storybook.StoryCount++
		err = uow.StorybookRepository().Update(ctx, storybook)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.StoryRepository().FindOne(ctx,
			specification.ByID{ID: story.Id},
			specification.UserOwnedBy{UserID: userId},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, story.Title, found.Title)
		}

		t.Log("Successfully created Story inside a Transaction")
	})
}

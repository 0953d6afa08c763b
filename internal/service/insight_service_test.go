package service

import (
	"context"
	"errors"
	"testing"

	"journeyai-be/internal/dto"
	"journeyai-be/internal/entity"
	"journeyai-be/internal/repository/contract"
	"journeyai-be/internal/repository/memory"
	"journeyai-be/internal/repository/specification"
	"journeyai-be/internal/repository/unitofwork"
	"journeyai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLMProvider struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
	onGenerate func()
}

func (s *stubLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		s.lastPrompt = history[len(history)-1].Content
	}
	s.calls++
	if s.onGenerate != nil {
		s.onGenerate()
	}
	return s.reply, s.err
}

func (s *stubLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	s.calls++
	if s.onGenerate != nil {
		s.onGenerate()
	}
	return s.reply, s.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

const validReply = `{"questions":[
	{"question":"What surprised you most?","category":"information"},
	{"question":"Who else was involved?","category":"information"},
	{"question":"When did you first notice this?","category":"information"},
	{"question":"How did that moment feel?","category":"emotion"},
	{"question":"What did this teach you?","category":"growth"},
	{"question":"What will you do next?","category":"action"}
]}`

func newTestInsightService(provider *stubLLMProvider) (IInsightService, *memory.InsightStateRepository) {
	state := memory.NewInsightStateRepository()
	svc := NewInsightService(nil, provider, state, nopLogger{})
	return svc, state
}

func TestGenerateQuestionsSuccess(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	res, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		Content: "Today I finally shipped the project I had been dreading for months.",
	})
	require.NoError(t, err)

	assert.Len(t, res.Questions, 6)
	assert.False(t, res.Fallback)
	assert.False(t, res.Stale)
	assert.Equal(t, int64(1), res.Sequence)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateQuestionsProviderErrorFallsBack(t *testing.T) {
	provider := &stubLLMProvider{err: errors.New("upstream unavailable")}
	svc, _ := newTestInsightService(provider)

	res, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		Content: "A short entry about my day.",
	})
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Len(t, res.Questions, 4)
}

func TestGenerateQuestionsMalformedReplyFallsBack(t *testing.T) {
	provider := &stubLLMProvider{reply: "I'm sorry, I can't produce JSON right now."}
	svc, _ := newTestInsightService(provider)

	res, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		Content: "A short entry about my day.",
	})
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Len(t, res.Questions, 4)
}

type stubStoryRepository struct {
	contract.StoryRepository
	story *entity.Story
}

func (s *stubStoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Story, error) {
	return s.story, nil
}

type stubUnitOfWork struct {
	stories contract.StoryRepository
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error                   { return nil }
func (u *stubUnitOfWork) Commit() error                                     { return nil }
func (u *stubUnitOfWork) Rollback() error                                   { return nil }
func (u *stubUnitOfWork) StorybookRepository() contract.StorybookRepository { return nil }
func (u *stubUnitOfWork) StoryRepository() contract.StoryRepository         { return u.stories }
func (u *stubUnitOfWork) NoteRepository() contract.NoteRepository           { return nil }

type stubRepositoryFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestGenerateQuestionsEmptyContentRejected(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	_, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{})
	require.Error(t, err)

	var fErr *fiber.Error
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, fiber.StatusBadRequest, fErr.Code)
	assert.Equal(t, 0, provider.calls, "model must not be called for empty content")
}

func TestGenerateQuestionsWhitespaceContentRejected(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	_, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		Content: "   \n\t  ",
	})
	require.Error(t, err)

	var fErr *fiber.Error
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, fiber.StatusBadRequest, fErr.Code)
	assert.Equal(t, 0, provider.calls, "model must not be called for whitespace-only content")

	// The split pair shape gets the same treatment
	_, err = svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		NewContent: " \n ",
	})
	require.Error(t, err)
	assert.Equal(t, 0, provider.calls)
}

func TestGenerateQuestionsStaleWhenNewerRequestStarts(t *testing.T) {
	userId := uuid.New()
	provider := &stubLLMProvider{reply: validReply}
	svc, state := newTestInsightService(provider)

	// A newer request from the same writer begins while the model runs
	provider.onGenerate = func() {
		state.NextSequence(userId.String())
	}

	res, err := svc.GenerateQuestions(context.Background(), userId, &dto.GenerateQuestionsRequest{
		Content: "Typing quickly, thoughts racing ahead of the generator.",
	})
	require.NoError(t, err)

	assert.True(t, res.Stale)
	assert.False(t, res.Fallback)
}

func TestGenerateQuestionsSplitPairDrivesPrompt(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	balance := 0
	_, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		NewContent:      "Just now I realized what the argument was really about.",
		ExistingContent: "Earlier today we fought over something trivial.",
		ContextBalance:  &balance,
	})
	require.NoError(t, err)

	assert.Contains(t, provider.lastPrompt, "Primary content")
	assert.Contains(t, provider.lastPrompt, "Just now I realized")
	assert.Contains(t, provider.lastPrompt, "Supporting context")
	assert.Contains(t, provider.lastPrompt, "Focus only on the primary content")
}

func TestGenerateQuestionsBalanceClamped(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	balance := 250
	res, err := svc.GenerateQuestions(context.Background(), uuid.New(), &dto.GenerateQuestionsRequest{
		Content:        "An entry long enough to be windowed would go here.",
		ContextBalance: &balance,
	})
	require.NoError(t, err)
	require.False(t, res.Fallback)

	// Clamped to 100: the whole entry is presented as one block
	assert.Contains(t, provider.lastPrompt, "the entire entry, to be considered equally")
}

func TestGenerateQuestionsSequenceIncrementsPerWriter(t *testing.T) {
	provider := &stubLLMProvider{reply: validReply}
	svc, _ := newTestInsightService(provider)

	userA := uuid.New()
	userB := uuid.New()

	res1, err := svc.GenerateQuestions(context.Background(), userA, &dto.GenerateQuestionsRequest{Content: "first"})
	require.NoError(t, err)
	res2, err := svc.GenerateQuestions(context.Background(), userA, &dto.GenerateQuestionsRequest{Content: "second"})
	require.NoError(t, err)
	res3, err := svc.GenerateQuestions(context.Background(), userB, &dto.GenerateQuestionsRequest{Content: "other writer"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res1.Sequence)
	assert.Equal(t, int64(2), res2.Sequence)
	assert.Equal(t, int64(1), res3.Sequence)
}

func TestGetStoryQuestionsEmptyStorySkipsModel(t *testing.T) {
	userId := uuid.New()
	storyId := uuid.New()

	provider := &stubLLMProvider{reply: validReply}
	state := memory.NewInsightStateRepository()
	factory := &stubRepositoryFactory{
		uow: &stubUnitOfWork{
			stories: &stubStoryRepository{
				story: &entity.Story{Id: storyId, UserId: userId, Content: "  \n "},
			},
		},
	}
	svc := NewInsightService(factory, provider, state, nopLogger{})

	res, err := svc.GetStoryQuestions(context.Background(), userId, storyId)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 0, provider.calls, "model must not be called for a story without content")
	assert.Len(t, res.Questions, 4)
	assert.False(t, res.Cached)
}

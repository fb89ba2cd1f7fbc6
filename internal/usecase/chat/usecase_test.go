package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBotRepo struct {
	bot *entity.Bot
	err error
}

func (r *stubBotRepo) Create(_ context.Context, _ entity.Bot) (*entity.Bot, error) {
	return nil, errors.New("not implemented")
}

func (r *stubBotRepo) Get(_ context.Context, _ string) (*entity.Bot, error) {
	return r.bot, r.err
}

func (r *stubBotRepo) List(_ context.Context, _, _ int) ([]*entity.Bot, error) {
	return nil, errors.New("not implemented")
}

func (r *stubBotRepo) Update(_ context.Context, _ entity.Bot) (*entity.Bot, error) {
	return nil, errors.New("not implemented")
}

func (r *stubBotRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

type stubEngine struct {
	results []search.Result
	err     error

	contentType string
	query       string
	maxResults  int
}

func (e *stubEngine) IntelligentSearch(_ context.Context, contentType, query string, maxResults int) ([]search.Result, error) {
	e.contentType = contentType
	e.query = query
	e.maxResults = maxResults
	return e.results, e.err
}

type stubLLM struct {
	answer string
	err    error
	last   *entity.LLMChatRequest
}

func (l *stubLLM) Complete(_ context.Context, req *entity.LLMChatRequest) (string, error) {
	l.last = req
	return l.answer, l.err
}

func newTestUsecase(repo *stubBotRepo, engine *stubEngine, llm *stubLLM) *ChatUsecase {
	history := NewHistoryStore(time.Minute, 20)
	return NewUsecase(repo, engine, llm, history, zap.NewNop())
}

func testBot() *entity.Bot {
	return &entity.Bot{
		ID:          "2f0b9f76-9a1d-4f4e-8a37-7e1f4ce6a3b1",
		Name:        "Travel Guide",
		ContentType: "tour",
		Model:       "gpt-4o-mini",
	}
}

func TestAskReturnsAnswerWithSources(t *testing.T) {
	engine := &stubEngine{results: []search.Result{
		{Entry: search.Entry{"title": "Paris Getaway", "description": "romantic trip"}, Score: 22, Relevance: 5.5},
	}}
	llm := &stubLLM{answer: "Paris Getaway is a great fit."}
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, engine, llm)

	resp, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "any paris tours?"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ConversationID)
	assert.Equal(t, "Paris Getaway is a great fit.", resp.Answer)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "Paris Getaway", resp.Sources[0].Title)
	assert.Equal(t, 22, resp.Sources[0].Score)

	assert.Equal(t, "tour", engine.contentType)
	assert.Equal(t, "any paris tours?", engine.query)
	assert.Equal(t, contextResults, engine.maxResults)
}

func TestAskInjectsContextIntoSystemPrompt(t *testing.T) {
	engine := &stubEngine{results: []search.Result{
		{Entry: search.Entry{"title": "Paris Getaway", "description": "romantic trip"}},
	}}
	llm := &stubLLM{answer: "ok"}
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, engine, llm)

	_, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "paris?"})
	require.NoError(t, err)

	require.NotNil(t, llm.last)
	assert.Contains(t, llm.last.System, "Title: Paris Getaway")
	assert.Contains(t, llm.last.System, "Description: romantic trip")
	assert.Equal(t, "gpt-4o-mini", llm.last.Model)
}

func TestAskAnswersWithoutContextWhenRetrievalFails(t *testing.T) {
	engine := &stubEngine{err: errors.New("store down")}
	llm := &stubLLM{answer: "I can still help."}
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, engine, llm)

	resp, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "I can still help.", resp.Answer)
	assert.Empty(t, resp.Sources)
	assert.NotContains(t, llm.last.System, "Title:")
}

func TestAskKeepsConversationHistory(t *testing.T) {
	engine := &stubEngine{}
	llm := &stubLLM{answer: "first answer"}
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, engine, llm)

	resp, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "first question"})
	require.NoError(t, err)

	llm.answer = "second answer"
	_, err = uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{
		Message:        "second question",
		ConversationID: resp.ConversationID,
	})
	require.NoError(t, err)

	// Second call should carry both earlier turns plus the new question.
	require.Len(t, llm.last.Messages, 3)
	assert.Equal(t, "first question", llm.last.Messages[0].Content)
	assert.Equal(t, "first answer", llm.last.Messages[1].Content)
	assert.Equal(t, string(entity.RoleAssistant), llm.last.Messages[1].Role)
	assert.Equal(t, "second question", llm.last.Messages[2].Content)
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, &stubEngine{}, &stubLLM{})

	_, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestAskPropagatesUnknownBot(t *testing.T) {
	uc := newTestUsecase(&stubBotRepo{err: entity.ErrBotNotFound}, &stubEngine{}, &stubLLM{})

	_, err := uc.Ask(context.Background(), "missing", &entity.ChatRequest{Message: "hi"})
	assert.ErrorIs(t, err, entity.ErrBotNotFound)
}

func TestTranscript(t *testing.T) {
	engine := &stubEngine{}
	llm := &stubLLM{answer: "the answer"}
	uc := newTestUsecase(&stubBotRepo{bot: testBot()}, engine, llm)

	_, err := uc.Transcript(context.Background(), "unknown")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)

	resp, err := uc.Ask(context.Background(), testBot().ID, &entity.ChatRequest{Message: "the question"})
	require.NoError(t, err)

	text, err := uc.Transcript(context.Background(), resp.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "[user] the question\n\n[assistant] the answer", text)
}

func TestHistoryStoreTrimsToMaxMessages(t *testing.T) {
	store := NewHistoryStore(time.Minute, 4)

	for i := 0; i < 6; i++ {
		store.Append("conv", entity.ChatMessage{Role: entity.RoleUser, Content: string(rune('a' + i))})
	}

	history := store.Get("conv")
	require.Len(t, history, 4)
	assert.Equal(t, "c", history[0].Content)
	assert.Equal(t, "f", history[3].Content)
}

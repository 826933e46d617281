package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/trivia-lambda/internal/agent"
	"github.com/saulo-duarte/trivia-lambda/internal/judge"
	"github.com/saulo-duarte/trivia-lambda/internal/oracle"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

type emptyRepo struct{}

func (emptyRepo) FindRandom(context.Context, trivia.QuestionFilter) (*trivia.Question, error) {
	return nil, nil
}
func (emptyRepo) FindByID(context.Context, uint) (*trivia.Question, error)    { return nil, nil }
func (emptyRepo) CreateBatch(context.Context, []*trivia.Question, int) error { return nil }
func (emptyRepo) Count(context.Context) (int64, error)                       { return 0, nil }
func (emptyRepo) AutoMigrate(context.Context) error                          { return nil }

func newTestHandler() http.Handler {
	provider := oracle.NewMockProvider()
	j := judge.New(provider)
	triviaService := trivia.NewService(emptyRepo{}, j)
	agents := agent.NewAgentContainer(triviaService, provider, j)

	return New(RouterConfig{
		TriviaHandler: trivia.NewHandler(triviaService),
		AgentHandler:  agents.Handler,
		CORSOrigins:   []string{"*"},
	})
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Trivia API","status":"running"}`, rec.Body.String())
}

func TestRouter_APIRoutes(t *testing.T) {
	h := newTestHandler()

	cases := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/api/v1/question/", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/question", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/question/12", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/question/abc", "", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/verify-answer/", `{"question_id":1,"user_answer":"x"}`, http.StatusNotFound},
		{http.MethodPost, "/api/v1/verify-answer", `{"user_answer":"x"}`, http.StatusNotFound},
		{http.MethodGet, "/api/v1/agents/", "", http.StatusOK},
		{http.MethodGet, "/api/v1/agents", "", http.StatusOK},
		{http.MethodPost, "/api/v1/agent-play/", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestRouter_CorsPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/verify-answer/", nil)
	req.Header.Set("Origin", "https://trivia.app")
	rec := httptest.NewRecorder()

	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://trivia.app", rec.Header().Get("Access-Control-Allow-Origin"))
}

package trivia

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/trivia-lambda/internal/judge"
	"github.com/saulo-duarte/trivia-lambda/internal/oracle"
)

type fakeRepo struct {
	questions  map[uint]*Question
	lastFilter QuestionFilter
	err        error
}

func newFakeRepo(questions ...*Question) *fakeRepo {
	r := &fakeRepo{questions: map[uint]*Question{}}
	for _, q := range questions {
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeRepo) FindRandom(_ context.Context, filter QuestionFilter) (*Question, error) {
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	for _, q := range r.questions {
		if filter.Round != nil && q.RoundText() != *filter.Round {
			continue
		}
		if filter.Value != nil && (q.Value == nil || *q.Value != *filter.Value) {
			continue
		}
		return q, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.questions[id], nil
}

func (r *fakeRepo) CreateBatch(context.Context, []*Question, int) error { return nil }
func (r *fakeRepo) Count(context.Context) (int64, error)               { return int64(len(r.questions)), nil }
func (r *fakeRepo) AutoMigrate(context.Context) error                  { return nil }

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func galileoQuestion() *Question {
	return &Question{
		ID:         3,
		ShowNumber: 4680,
		Round:      strPtr("Jeopardy!"),
		Category:   strPtr("HISTORY"),
		Value:      intPtr(200),
		Question:   strPtr("For the last 8 years of his life, Galileo was under house arrest for espousing this man's theory"),
		Answer:     strPtr("Copernicus"),
	}
}

func TestBuildFilter(t *testing.T) {
	f := BuildFilter("Jeopardy!", "$1,000")
	require.NotNil(t, f.Round)
	require.NotNil(t, f.Value)
	assert.Equal(t, "Jeopardy!", *f.Round)
	assert.Equal(t, 1000, *f.Value)

	f = BuildFilter("  ", "lots")
	assert.Nil(t, f.Round)
	assert.Nil(t, f.Value)

	f = BuildFilter("", "$0")
	assert.Nil(t, f.Value)
}

func TestService_GetRandomQuestion(t *testing.T) {
	repo := newFakeRepo(galileoQuestion())
	svc := NewService(repo, judge.New(oracle.NewMockProvider()))

	t.Run("Match", func(t *testing.T) {
		q, err := svc.GetRandomQuestion(context.Background(), "Jeopardy!", "$200")
		require.NoError(t, err)
		assert.Equal(t, uint(3), q.ID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, err := svc.GetRandomQuestion(context.Background(), "Final Jeopardy!", "")
		assert.ErrorIs(t, err, ErrNoQuestions)
	})

	t.Run("RepoError", func(t *testing.T) {
		broken := newFakeRepo()
		broken.err = errors.New("connection refused")

		_, err := NewService(broken, nil).GetRandomQuestion(context.Background(), "", "")
		assert.EqualError(t, err, "connection refused")
	})
}

func TestService_VerifyAnswer(t *testing.T) {
	t.Run("OracleVerdict", func(t *testing.T) {
		mock := oracle.NewMockProvider(oracle.MockResponse{Text: "VERDICT: CORRECT\nEXPLANATION: Copernicus proposed heliocentrism."})
		svc := NewService(newFakeRepo(galileoQuestion()), judge.New(mock))

		resp, err := svc.VerifyAnswer(context.Background(), VerifyAnswerRequest{QuestionID: 3, UserAnswer: "Copernics"})
		require.NoError(t, err)
		assert.True(t, resp.IsCorrect)
		assert.Equal(t, "Copernicus proposed heliocentrism.", resp.AIResponse)
		assert.Contains(t, mock.Calls[0].User, "Correct Answer: Copernicus")
	})

	t.Run("OracleDown", func(t *testing.T) {
		svc := NewService(newFakeRepo(galileoQuestion()), judge.New(oracle.NewMockProvider()))

		resp, err := svc.VerifyAnswer(context.Background(), VerifyAnswerRequest{QuestionID: 3, UserAnswer: "copernicus theory"})
		require.NoError(t, err)
		assert.True(t, resp.IsCorrect)
		assert.Contains(t, resp.AIResponse, "API error")
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		mock := oracle.NewMockProvider()
		svc := NewService(newFakeRepo(), judge.New(mock))

		_, err := svc.VerifyAnswer(context.Background(), VerifyAnswerRequest{QuestionID: 99, UserAnswer: "x"})
		assert.ErrorIs(t, err, ErrQuestionNotFound)
		assert.Zero(t, mock.CallCount())
	})
}

func TestToQuestionDetailResponse_NullsBecomeEmpty(t *testing.T) {
	resp := ToQuestionDetailResponse(&Question{ID: 8, ShowNumber: 1})

	assert.Equal(t, uint(8), resp.QuestionID)
	assert.Equal(t, "", resp.Round)
	assert.Equal(t, "", resp.Category)
	assert.Equal(t, "", resp.Value)
	assert.Equal(t, "", resp.Question)
	assert.Equal(t, "", resp.Answer)
	assert.Nil(t, resp.AirDate)
}

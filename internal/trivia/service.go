package trivia

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/judge"
	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuestions      = errors.New("no questions found")
)

// AnswerJudge is satisfied by *judge.Judge.
type AnswerJudge interface {
	Judge(ctx context.Context, question, correctAnswer, userAnswer string) judge.Verdict
}

type Service interface {
	GetRandomQuestion(ctx context.Context, round, value string) (*Question, error)
	GetQuestionByID(ctx context.Context, id uint) (*Question, error)
	VerifyAnswer(ctx context.Context, req VerifyAnswerRequest) (*VerifyAnswerResponse, error)
}

type service struct {
	repo  Repository
	judge AnswerJudge
}

func NewService(repo Repository, judge AnswerJudge) Service {
	return &service{repo: repo, judge: judge}
}

// BuildFilter turns raw query parameters into a repository filter. Blank
// parameters are ignored, as is a value that does not parse to a positive
// amount.
func BuildFilter(round, value string) QuestionFilter {
	var filter QuestionFilter
	if r := strings.TrimSpace(round); r != "" {
		filter.Round = &r
	}
	if v, ok := ParseValue(value); ok && v > 0 {
		filter.Value = &v
	}
	return filter
}

func (s *service) GetRandomQuestion(ctx context.Context, round, value string) (*Question, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"round": round,
		"value": value,
	})

	question, err := s.repo.FindRandom(ctx, BuildFilter(round, value))
	if err != nil {
		log.WithError(err).Error("Failed to fetch random question")
		return nil, err
	}
	if question == nil {
		log.Info("No question matches filters")
		return nil, ErrNoQuestions
	}
	return question, nil
}

func (s *service) GetQuestionByID(ctx context.Context, id uint) (*Question, error) {
	log := config.WithContext(ctx).WithField("question_id", id)

	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question")
		return nil, err
	}
	if question == nil {
		log.Warn("Question not found")
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

func (s *service) VerifyAnswer(ctx context.Context, req VerifyAnswerRequest) (*VerifyAnswerResponse, error) {
	question, err := s.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	verdict := s.judge.Judge(ctx, question.QuestionText(), question.AnswerText(), req.UserAnswer)

	config.WithContext(ctx).WithFields(logrus.Fields{
		"question_id": req.QuestionID,
		"is_correct":  verdict.IsCorrect,
		"fallback":    verdict.Fallback,
	}).Info("Answer verified")

	return &VerifyAnswerResponse{
		IsCorrect:  verdict.IsCorrect,
		AIResponse: verdict.Explanation,
	}, nil
}

package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

var ErrUnknownAgent = errors.New("unknown agent")

type PlayRequest struct {
	QuestionID *uint  `json:"question_id,omitempty"`
	Round      string `json:"round,omitempty"`
	Value      string `json:"value,omitempty"`
	// AgentID forces a persona instead of choosing one from the category.
	AgentID string `json:"agent_id,omitempty"`
}

type PlayResult struct {
	PlayID           uuid.UUID `json:"play_id"`
	Agent            Persona   `json:"agent"`
	Match            MatchKind `json:"match"`
	QuestionID       uint      `json:"question_id"`
	Round            string    `json:"round"`
	Category         string    `json:"category"`
	Value            string    `json:"value"`
	Question         string    `json:"question"`
	CorrectAnswer    string    `json:"correct_answer"`
	AgentAnswer      string    `json:"agent_answer"`
	Reasoning        string    `json:"reasoning"`
	IsCorrect        bool      `json:"is_correct"`
	ErrorProbability float64   `json:"error_probability"`
}

// QuestionSource is satisfied by trivia.Service.
type QuestionSource interface {
	GetRandomQuestion(ctx context.Context, round, value string) (*trivia.Question, error)
	GetQuestionByID(ctx context.Context, id uint) (*trivia.Question, error)
}

type Service interface {
	Play(ctx context.Context, req PlayRequest) (*PlayResult, error)
	ListAgents() []Persona
}

type service struct {
	questions QuestionSource
	selector  *Selector
	answerer  *Answerer
}

func NewService(questions QuestionSource, selector *Selector, answerer *Answerer) Service {
	return &service{questions: questions, selector: selector, answerer: answerer}
}

func (s *service) ListAgents() []Persona {
	return Roster()
}

func (s *service) Play(ctx context.Context, req PlayRequest) (*PlayResult, error) {
	log := config.WithContext(ctx)

	question, err := s.loadQuestion(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		persona Persona
		match   MatchKind
	)
	if id := strings.TrimSpace(req.AgentID); id != "" {
		p, ok := PersonaByID(id)
		if !ok {
			log.WithField("agent_id", id).Warn("Unknown agent requested")
			return nil, ErrUnknownAgent
		}
		persona, match = p, MatchRequested
	} else {
		persona, match = s.selector.Classify(question.CategoryText())
	}

	answer := s.answerer.Answer(ctx, AnswerRequest{
		Question:      question.QuestionText(),
		Category:      question.CategoryText(),
		CorrectAnswer: question.AnswerText(),
		Specialty:     persona.Specialty,
		SkillLevel:    persona.SkillLevel,
	})

	result := &PlayResult{
		PlayID:           uuid.New(),
		Agent:            persona,
		Match:            match,
		QuestionID:       question.ID,
		Round:            question.RoundText(),
		Category:         question.CategoryText(),
		Value:            trivia.FormatValue(question.Value),
		Question:         question.QuestionText(),
		CorrectAnswer:    question.AnswerText(),
		AgentAnswer:      answer.Answer,
		Reasoning:        answer.Reasoning,
		IsCorrect:        answer.IsCorrect,
		ErrorProbability: answer.ErrorProbability,
	}

	log.WithField("play_id", result.PlayID).
		WithField("agent_id", persona.ID).
		WithField("question_id", question.ID).
		Info("Agent play finished")
	return result, nil
}

func (s *service) loadQuestion(ctx context.Context, req PlayRequest) (*trivia.Question, error) {
	if req.QuestionID != nil {
		return s.questions.GetQuestionByID(ctx, *req.QuestionID)
	}
	return s.questions.GetRandomQuestion(ctx, req.Round, req.Value)
}

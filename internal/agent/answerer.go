package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/judge"
	"github.com/saulo-duarte/trivia-lambda/internal/oracle"
	"github.com/sirupsen/logrus"
)

const (
	failedAnswer       = "Unable to answer"
	noReasoningMessage = "No reasoning provided."
	expertMatchedRate  = 0.02
)

var baseErrorRates = map[SkillLevel]float64{
	SkillExpert:       0.05,
	SkillIntermediate: 0.25,
	SkillNovice:       0.50,
}

// AnswerJudge is satisfied by *judge.Judge.
type AnswerJudge interface {
	Judge(ctx context.Context, question, correctAnswer, userAnswer string) judge.Verdict
}

type AnswerRequest struct {
	Question      string
	Category      string
	CorrectAnswer string
	Specialty     string
	SkillLevel    SkillLevel
}

type AgentAnswer struct {
	Answer           string
	Reasoning        string
	IsCorrect        bool
	ErrorProbability float64
	AttemptedMistake bool
}

type Answerer struct {
	provider oracle.Provider
	judge    AnswerJudge
	rng      Rand
}

// NewAnswerer uses the global random source when rng is nil.
func NewAnswerer(provider oracle.Provider, judge AnswerJudge, rng Rand) *Answerer {
	return &Answerer{provider: provider, judge: judge, rng: orDefault(rng)}
}

// ErrorProbability is the chance that a persona of the given skill answers
// wrongly. Unknown skill levels are treated as intermediate. The result is
// clamped to [0, 1].
func ErrorProbability(skill SkillLevel, matched bool) float64 {
	skill = normalizeSkill(skill)
	base := baseErrorRates[skill]

	var p float64
	switch {
	case matched && skill == SkillExpert:
		p = expertMatchedRate
	case matched:
		p = base * 0.5
	default:
		p = base * 1.5
	}

	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func normalizeSkill(skill SkillLevel) SkillLevel {
	s := SkillLevel(strings.ToLower(strings.TrimSpace(string(skill))))
	if _, ok := baseErrorRates[s]; !ok {
		return SkillIntermediate
	}
	return s
}

// Answer asks the oracle to answer in character. Whether the result is
// correct is decided by the judge, not by which prompt was sent. Oracle
// failures produce a fixed answer marked incorrect.
func (a *Answerer) Answer(ctx context.Context, req AnswerRequest) AgentAnswer {
	skill := normalizeSkill(req.SkillLevel)
	matched := SpecialtyMatches(req.Category, req.Specialty)
	probability := ErrorProbability(skill, matched)
	mistake := a.rng.Float64() < probability

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"specialty":         req.Specialty,
		"skill_level":       skill,
		"specialty_match":   matched,
		"error_probability": probability,
		"attempt_mistake":   mistake,
	})

	oracleReq := oracle.Request{
		System:      buildSystemPrompt(req.Specialty, skill),
		User:        buildCorrectPrompt(req.Question, req.Category),
		MaxTokens:   answerMaxTokens,
		Temperature: correctTemperature,
	}
	if mistake {
		oracleReq.User = buildMistakePrompt(req.Question, req.Category, req.CorrectAnswer, skill)
		oracleReq.Temperature = mistakeTemperature
	}

	reply, err := a.provider.Complete(ctx, oracleReq)
	if err != nil {
		log.WithError(err).Warn("Agent could not answer")
		return AgentAnswer{
			Answer:           failedAnswer,
			Reasoning:        fmt.Sprintf("Agent failed to respond: %v", err),
			IsCorrect:        false,
			ErrorProbability: probability,
			AttemptedMistake: mistake,
		}
	}

	answer, reasoning := parseAgentReply(reply)
	if answer == "" {
		log.Warn("Agent reply has no answer")
		return AgentAnswer{
			Answer:           failedAnswer,
			Reasoning:        reasoning,
			IsCorrect:        false,
			ErrorProbability: probability,
			AttemptedMistake: mistake,
		}
	}

	verdict := a.judge.Judge(ctx, req.Question, req.CorrectAnswer, answer)

	log.WithField("is_correct", verdict.IsCorrect).Info("Agent answered")
	return AgentAnswer{
		Answer:           answer,
		Reasoning:        reasoning,
		IsCorrect:        verdict.IsCorrect,
		ErrorProbability: probability,
		AttemptedMistake: mistake,
	}
}

func parseAgentReply(reply string) (answer, reasoning string) {
	fields := oracle.ExtractLabels(reply, answerLabel, reasoningLabel)

	answer = fields[answerLabel]
	if answer == "" {
		answer = oracle.FirstUnlabeledLine(reply, answerLabel, reasoningLabel)
	}
	reasoning = fields[reasoningLabel]
	if reasoning == "" {
		reasoning = noReasoningMessage
	}
	return answer, reasoning
}

// Package judge decides whether a free-text trivia answer is correct by
// asking the oracle, with a substring match as the fallback.
package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/oracle"
)

const maxTokens = 150

type Verdict struct {
	IsCorrect   bool
	Explanation string
	// Fallback is set when the oracle could not be used.
	Fallback bool
}

type Judge struct {
	provider oracle.Provider
}

func New(provider oracle.Provider) *Judge {
	return &Judge{provider: provider}
}

// Judge never fails: oracle errors degrade to a substring comparison.
func (j *Judge) Judge(ctx context.Context, question, correctAnswer, userAnswer string) Verdict {
	reply, err := j.provider.Complete(ctx, oracle.Request{
		System:    systemPrompt,
		User:      buildUserPrompt(question, correctAnswer, userAnswer),
		MaxTokens: maxTokens,
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Judge falling back to simple match")
		return fallbackVerdict(correctAnswer, userAnswer)
	}
	return ParseVerdict(reply)
}

// ParseVerdict reads a "VERDICT:/EXPLANATION:" reply. The incorrect token is
// checked as well because "INCORRECT" contains "CORRECT".
func ParseVerdict(reply string) Verdict {
	fields := oracle.ExtractLabels(reply, verdictLabel, explanationLabel)

	verdict := strings.ToUpper(fields[verdictLabel])
	isCorrect := strings.Contains(verdict, correctToken) && !strings.Contains(verdict, incorrectToken)

	explanation := fields[explanationLabel]
	if explanation == "" {
		explanation = strings.TrimSpace(reply)
	}

	return Verdict{IsCorrect: isCorrect, Explanation: explanation}
}

// SimpleMatch reports whether either answer contains the other, ignoring case
// and surrounding whitespace. A blank user answer never matches.
func SimpleMatch(correctAnswer, userAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))
	if user == "" || correct == "" {
		return false
	}
	return strings.Contains(correct, user) || strings.Contains(user, correct)
}

func fallbackVerdict(correctAnswer, userAnswer string) Verdict {
	isCorrect := SimpleMatch(correctAnswer, userAnswer)
	match := "No"
	if isCorrect {
		match = "Yes"
	}
	return Verdict{
		IsCorrect:   isCorrect,
		Explanation: fmt.Sprintf("API error. Simple match: %s, correct answer is %s.", match, correctAnswer),
		Fallback:    true,
	}
}

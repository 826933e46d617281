package oracle

import (
	"context"
	"time"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// LoggingProvider logs every oracle call with its latency and outcome.
type LoggingProvider struct {
	inner Provider
}

func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := l.inner.Complete(ctx, req)

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"model":       l.inner.ModelID(),
		"latency_ms":  time.Since(start).Milliseconds(),
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	})
	if err != nil {
		log.WithError(err).Warn("Oracle call failed")
		return "", err
	}

	log.WithField("reply_chars", len(text)).Debug("Oracle call succeeded")
	return text, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxValue  = 1200
	DefaultBatchSize = 1000
)

type Options struct {
	MaxValue  int
	BatchSize int
}

type Stats struct {
	Read     int   `json:"read"`
	Kept     int   `json:"kept"`
	Inserted int   `json:"inserted"`
	Total    int64 `json:"total"`
}

type Ingester struct {
	repo trivia.Repository
}

func New(repo trivia.Repository) *Ingester {
	return &Ingester{repo: repo}
}

// Run creates the table if needed, then inserts every kept row of the CSV.
func (i *Ingester) Run(ctx context.Context, r io.Reader, opts Options) (Stats, error) {
	if opts.MaxValue <= 0 {
		opts.MaxValue = DefaultMaxValue
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"max_value":  opts.MaxValue,
		"batch_size": opts.BatchSize,
	})

	var stats Stats

	if err := i.repo.AutoMigrate(ctx); err != nil {
		return stats, fmt.Errorf("create table: %w", err)
	}

	questions, read, err := ReadQuestions(r, opts.MaxValue)
	stats.Read = read
	if err != nil {
		return stats, err
	}
	stats.Kept = len(questions)
	log.WithField("read", stats.Read).WithField("kept", stats.Kept).Info("CSV loaded")

	if err := i.repo.CreateBatch(ctx, questions, opts.BatchSize); err != nil {
		return stats, fmt.Errorf("insert questions: %w", err)
	}
	stats.Inserted = len(questions)

	total, err := i.repo.Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count questions: %w", err)
	}
	stats.Total = total

	log.WithField("inserted", stats.Inserted).WithField("total", stats.Total).Info("Ingestion completed")
	return stats, nil
}

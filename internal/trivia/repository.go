package trivia

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuestionFilter struct {
	Round *string
	Value *int
}

// Repository is the read side used by the API plus the write side used by
// ingestion. Lookups return (nil, nil) when nothing matches.
type Repository interface {
	FindRandom(ctx context.Context, filter QuestionFilter) (*Question, error)
	FindByID(ctx context.Context, id uint) (*Question, error)

	CreateBatch(ctx context.Context, questions []*Question, batchSize int) error
	Count(ctx context.Context) (int64, error)
	AutoMigrate(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRandom(ctx context.Context, filter QuestionFilter) (*Question, error) {
	query := r.db.WithContext(ctx).Model(&Question{})

	if filter.Round != nil {
		query = query.Where("round = ?", *filter.Round)
	}
	if filter.Value != nil {
		query = query.Where("value = ?", *filter.Value)
	}

	var question Question
	if err := query.Order("RANDOM()").Take(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Question, error) {
	var question Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *repository) CreateBatch(ctx context.Context, questions []*Question, batchSize int) error {
	if len(questions) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1000
	}
	return r.db.WithContext(ctx).CreateInBatches(questions, batchSize).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Question{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Question{})
}

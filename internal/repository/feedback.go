package repository

import (
	"context"
	"errors"

	"github.com/Onwuagba/Telinga/internal/model"
	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("FEEDBACK_NOT_FOUND")

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	// UpdateSentiment writes the sentiment column only. Creation side
	// effects cannot re-fire from this write.
	UpdateSentiment(ctx context.Context, id int64, sentiment model.Sentiment) error
	GetByID(id int64) (*model.Feedback, error)
}

type Feedback struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &Feedback{db: db}
}

func (f *Feedback) Create(ctx context.Context, feedback *model.Feedback) error {
	db := GetTx(ctx, f.db)
	return db.Create(feedback).Error
}

func (f *Feedback) UpdateSentiment(ctx context.Context, id int64, sentiment model.Sentiment) error {
	db := GetTx(ctx, f.db)
	return db.Model(&model.Feedback{}).Where("id = ?", id).
		Update("sentiment", sentiment).Error
}

func (f *Feedback) GetByID(id int64) (*model.Feedback, error) {
	var feedback model.Feedback

	err := f.db.Preload("Customer").Where("id = ?", id).First(&feedback).Error
	if err == nil {
		return &feedback, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFeedbackNotFound
	}

	return nil, err
}

package repository

import (
	"context"
	"errors"

	"github.com/Onwuagba/Telinga/internal/model"
	"gorm.io/gorm"
)

var ErrWebhookNotFound = errors.New("WEBHOOK_NOT_FOUND")

type WebhookRepository interface {
	Create(ctx context.Context, registration *model.WebhookRegistration) error
	GetByTriggerType(triggerType string) (*model.WebhookRegistration, error)
}

type Webhook struct {
	db *gorm.DB
}

func NewWebhookRepository(db *gorm.DB) WebhookRepository {
	return &Webhook{db: db}
}

func (w *Webhook) Create(ctx context.Context, registration *model.WebhookRegistration) error {
	db := GetTx(ctx, w.db)
	return db.Create(registration).Error
}

func (w *Webhook) GetByTriggerType(triggerType string) (*model.WebhookRegistration, error) {
	var registration model.WebhookRegistration

	err := w.db.Where("trigger_type = ?", triggerType).
		Order("created_at DESC").
		First(&registration).Error
	if err == nil {
		return &registration, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWebhookNotFound
	}

	return nil, err
}

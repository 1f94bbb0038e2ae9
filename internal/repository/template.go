package repository

import (
	"context"
	"errors"

	"github.com/Onwuagba/Telinga/internal/model"
	"gorm.io/gorm"
)

var ErrTemplateNotFound = errors.New("TEMPLATE_NOT_FOUND")

type TemplateRepository interface {
	Create(ctx context.Context, template *model.MessageTemplate) error
	GetByID(id int64) (*model.MessageTemplate, error)
}

type Template struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &Template{db: db}
}

func (t *Template) Create(ctx context.Context, template *model.MessageTemplate) error {
	db := GetTx(ctx, t.db)
	return db.Create(template).Error
}

func (t *Template) GetByID(id int64) (*model.MessageTemplate, error) {
	var template model.MessageTemplate

	err := t.db.Where("id = ?", id).First(&template).Error
	if err == nil {
		return &template, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}

	return nil, err
}

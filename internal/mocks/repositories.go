package mocks

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepository) GetByID(id int64) (*model.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *CustomerRepository) GetByPhone(phone string) (*model.Customer, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *CustomerRepository) GetByEmail(email string) (*model.Customer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

type DeliveryRepository struct {
	mock.Mock
}

func (m *DeliveryRepository) Create(ctx context.Context, record *model.DeliveryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *DeliveryRepository) UpdateStatus(ctx context.Context, id int64, status model.DeliveryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *DeliveryRepository) GetByProviderMsgID(providerMsgID string) (*model.DeliveryRecord, error) {
	args := m.Called(providerMsgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeliveryRecord), args.Error(1)
}

func (m *DeliveryRepository) FindByStatuses(statuses []model.DeliveryStatus, limit int) ([]model.DeliveryRecord, error) {
	args := m.Called(statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryRecord), args.Error(1)
}

func (m *DeliveryRepository) CountAttempts(ctx context.Context, customerID int64) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *FeedbackRepository) UpdateSentiment(ctx context.Context, id int64, sentiment model.Sentiment) error {
	args := m.Called(ctx, id, sentiment)
	return args.Error(0)
}

func (m *FeedbackRepository) GetByID(id int64) (*model.Feedback, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

type WebhookRepository struct {
	mock.Mock
}

func (m *WebhookRepository) Create(ctx context.Context, registration *model.WebhookRegistration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *WebhookRepository) GetByTriggerType(triggerType string) (*model.WebhookRegistration, error) {
	args := m.Called(triggerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebhookRegistration), args.Error(1)
}

type TxManager struct {
	mock.Mock
}

func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

package mocks

import (
	"context"

	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/stretchr/testify/mock"
)

type TwilioClient struct {
	mock.Mock
}

func (m *TwilioClient) SendSMS(ctx context.Context, to string, body string) (twilio.Message, error) {
	args := m.Called(ctx, to, body)
	return args.Get(0).(twilio.Message), args.Error(1)
}

func (m *TwilioClient) FetchMessage(ctx context.Context, sid string) (twilio.Message, error) {
	args := m.Called(ctx, sid)
	return args.Get(0).(twilio.Message), args.Error(1)
}

func (m *TwilioClient) CreateCall(ctx context.Context, to string, twiml string) (twilio.Call, error) {
	args := m.Called(ctx, to, twiml)
	return args.Get(0).(twilio.Call), args.Error(1)
}

type NylasClient struct {
	mock.Mock
}

func (m *NylasClient) SendMessage(ctx context.Context, req nylas.SendMessageRequest) (nylas.Message, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(nylas.Message), args.Error(1)
}

func (m *NylasClient) GetMessage(ctx context.Context, messageID string) (nylas.Message, error) {
	args := m.Called(ctx, messageID)
	return args.Get(0).(nylas.Message), args.Error(1)
}

func (m *NylasClient) ListCalendars(ctx context.Context) ([]nylas.Calendar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nylas.Calendar), args.Error(1)
}

func (m *NylasClient) CreateEvent(ctx context.Context, calendarID string, req nylas.CreateEventRequest) (nylas.Event, error) {
	args := m.Called(ctx, calendarID, req)
	return args.Get(0).(nylas.Event), args.Error(1)
}

func (m *NylasClient) UpdateEvent(ctx context.Context, calendarID string, eventID string, req nylas.UpdateEventRequest) (nylas.Event, error) {
	args := m.Called(ctx, calendarID, eventID, req)
	return args.Get(0).(nylas.Event), args.Error(1)
}

func (m *NylasClient) CreateWebhook(ctx context.Context, req nylas.CreateWebhookRequest) (nylas.Webhook, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(nylas.Webhook), args.Error(1)
}

type GeminiClient struct {
	mock.Mock
}

func (m *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

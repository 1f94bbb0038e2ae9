package mocks

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/stretchr/testify/mock"
)

type AssistService struct {
	mock.Mock
}

func (m *AssistService) EmailSubject(ctx context.Context, message string) string {
	args := m.Called(ctx, message)
	return args.String(0)
}

func (m *AssistService) Sentiment(ctx context.Context, feedback string) (string, error) {
	args := m.Called(ctx, feedback)
	return args.String(0), args.Error(1)
}

func (m *AssistService) SummarizeFeedback(ctx context.Context, feedback string) string {
	args := m.Called(ctx, feedback)
	return args.String(0)
}

func (m *AssistService) DetectLanguage(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

func (m *AssistService) Translate(ctx context.Context, text string, targetLanguage string) string {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0)
}

func (m *AssistService) EmailDraft(ctx context.Context, subject string, body string) string {
	args := m.Called(ctx, subject, body)
	return args.String(0)
}

func (m *AssistService) SuggestMeetingTime(ctx context.Context, feedback string) string {
	args := m.Called(ctx, feedback)
	return args.String(0)
}

type ClassifierService struct {
	mock.Mock
}

func (m *ClassifierService) Classify(ctx context.Context, text string) model.Sentiment {
	args := m.Called(ctx, text)
	return args.Get(0).(model.Sentiment)
}

type ResponderService struct {
	mock.Mock
}

func (m *ResponderService) RespondToFeedback(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *ResponderService) EscalateToAgent(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

type FeedbackService struct {
	mock.Mock
}

func (m *FeedbackService) IngestSMSReply(ctx context.Context, cmd service.SMSReplyCommand) (service.IngestFeedbackResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.IngestFeedbackResponse), args.Error(1)
}

func (m *FeedbackService) IngestEmailReply(ctx context.Context, cmd service.EmailReplyCommand) (service.IngestFeedbackResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.IngestFeedbackResponse), args.Error(1)
}

type VerifierService struct {
	mock.Mock
}

func (m *VerifierService) VerifySMSWebhook(url string, params map[string]string, signature string) bool {
	args := m.Called(url, params, signature)
	return args.Bool(0)
}

func (m *VerifierService) VerifyEmailWebhook(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}

type DispatchPublisher struct {
	mock.Mock
}

func (m *DispatchPublisher) Publish(ctx context.Context, commands []service.DispatchCommand) (int, error) {
	args := m.Called(ctx, commands)
	return args.Int(0), args.Error(1)
}

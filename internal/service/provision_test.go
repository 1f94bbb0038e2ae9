package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Onwuagba/Telinga/internal/mocks"
	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestProvision_RegisterReplyWebhook(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("registers subscription and stores the secret", func(t *testing.T) {
		mockWebhookRepo := &mocks.WebhookRepository{}
		mockEmail := &mocks.NylasClient{}

		mockEmail.On("CreateWebhook", ctx, mock.MatchedBy(func(req nylas.CreateWebhookRequest) bool {
			return len(req.TriggerTypes) == 1 &&
				req.TriggerTypes[0] == service.ThreadRepliedTrigger &&
				req.WebhookURL == "https://app.example.com/webhooks/nylas" &&
				len(req.NotificationEmailAddresses) == 1
		})).Return(nylas.Webhook{ID: "wh-001", WebhookSecret: "secret-abc"}, nil)

		mockWebhookRepo.On("Create", ctx, mock.MatchedBy(func(registration *model.WebhookRegistration) bool {
			return registration.WebhookID == "wh-001" &&
				registration.SecretKey == "secret-abc" &&
				registration.TriggerType == service.ThreadRepliedTrigger
		})).Return(nil)

		provision := service.NewProvisionService(mockWebhookRepo, mockEmail, logger)

		registration, err := provision.RegisterReplyWebhook(ctx, "https://app.example.com/", "ops@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "wh-001", registration.WebhookID)
		mockWebhookRepo.AssertExpectations(t)
	})

	t.Run("provider failure is returned without persistence", func(t *testing.T) {
		mockWebhookRepo := &mocks.WebhookRepository{}
		mockEmail := &mocks.NylasClient{}

		mockEmail.On("CreateWebhook", ctx, mock.Anything).
			Return(nylas.Webhook{}, errors.New("SERVER_ERROR"))

		provision := service.NewProvisionService(mockWebhookRepo, mockEmail, logger)

		_, err := provision.RegisterReplyWebhook(ctx, "https://app.example.com", "")

		assert.Error(t, err)
		mockWebhookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

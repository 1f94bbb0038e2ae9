package service

import (
	"context"
	"strings"
	"time"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"go.uber.org/zap"
)

const ThreadRepliedTrigger = "thread.replied"

// ProvisionService registers the email-reply webhook with the provider
// and stores the subscription secret for later signature checks. Run once
// at deployment time.
type ProvisionService interface {
	RegisterReplyWebhook(ctx context.Context, siteDomain string, notifyEmail string) (*model.WebhookRegistration, error)
}

type provision struct {
	webhookRepo repository.WebhookRepository
	email       nylas.Client
	logger      *zap.Logger
}

func NewProvisionService(webhookRepo repository.WebhookRepository, email nylas.Client,
	logger *zap.Logger) ProvisionService {
	return &provision{webhookRepo: webhookRepo, email: email, logger: logger}
}

func (p *provision) RegisterReplyWebhook(ctx context.Context, siteDomain string, notifyEmail string) (*model.WebhookRegistration, error) {
	callbackURL := strings.TrimSuffix(siteDomain, "/") + "/webhooks/nylas"

	request := nylas.CreateWebhookRequest{
		TriggerTypes: []string{ThreadRepliedTrigger},
		WebhookURL:   callbackURL,
		Description:  "Telinga email replies webhook",
	}
	if notifyEmail != "" {
		request.NotificationEmailAddresses = []string{notifyEmail}
	}

	webhook, err := p.email.CreateWebhook(ctx, request)
	if err != nil {
		p.logger.Error("Failed to create webhook", zap.Error(err))
		return nil, err
	}

	registration := &model.WebhookRegistration{
		WebhookID:   webhook.ID,
		SecretKey:   webhook.WebhookSecret,
		TriggerType: ThreadRepliedTrigger,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := p.webhookRepo.Create(ctx, registration); err != nil {
		p.logger.Error("Failed to persist webhook registration",
			zap.String("webhookID", webhook.ID),
			zap.Error(err))
		return nil, err
	}

	p.logger.Info("Webhook created",
		zap.String("webhookID", webhook.ID),
		zap.String("callbackURL", callbackURL))

	return registration, nil
}

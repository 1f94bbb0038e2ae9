package service

import (
	"errors"

	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"go.uber.org/zap"
)

// VerifierService authenticates inbound webhook calls before any payload
// field is trusted. Verification can only be bypassed in an explicit
// development mode.
type VerifierService interface {
	VerifySMSWebhook(url string, params map[string]string, signature string) bool
	VerifyEmailWebhook(body []byte, signature string) bool
}

type verifier struct {
	webhookRepo repository.WebhookRepository
	authToken   string
	skipVerify  bool
	logger      *zap.Logger
}

func NewVerifierService(webhookRepo repository.WebhookRepository, authToken string, skipVerify bool,
	logger *zap.Logger) VerifierService {
	return &verifier{webhookRepo: webhookRepo, authToken: authToken, skipVerify: skipVerify, logger: logger}
}

func (v *verifier) VerifySMSWebhook(url string, params map[string]string, signature string) bool {
	if v.skipVerify {
		v.logger.Warn("Webhook signature verification skipped (development mode)")
		return true
	}

	if signature == "" {
		return false
	}

	return twilio.ValidateSignature(v.authToken, url, params, signature)
}

func (v *verifier) VerifyEmailWebhook(body []byte, signature string) bool {
	if v.skipVerify {
		v.logger.Warn("Webhook signature verification skipped (development mode)")
		return true
	}

	if signature == "" {
		return false
	}

	registration, err := v.webhookRepo.GetByTriggerType(ThreadRepliedTrigger)
	if err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			v.logger.Error("No webhook registration on record, rejecting event")
		} else {
			v.logger.Error("Failed to load webhook registration", zap.Error(err))
		}
		return false
	}

	return nylas.VerifySignature(registration.SecretKey, body, signature)
}

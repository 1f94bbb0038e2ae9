package service

import (
	"context"
	"errors"
	"time"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxSendAttempts = 3
	sendRetryDelay  = 60 * time.Second

	// Synthetic correlation ids mark records whose transport send never
	// produced a provider id. Kept at 34 characters so they can never
	// collide with real provider message ids.
	syntheticIDLength = 34
)

// DispatchService renders a customer's template and delivers it over the
// customer's preferred channel, recording exactly one DeliveryRecord per
// dispatch attempt.
type DispatchService interface {
	Dispatch(ctx context.Context, cmd DispatchCommand) error
}

type dispatch struct {
	customerRepo repository.CustomerRepository
	deliveryRepo repository.DeliveryRepository
	sms          twilio.Client
	email        nylas.Client
	assist       AssistService
	emailFrom    string
	retryDelay   time.Duration
	logger       *zap.Logger
}

func NewDispatchService(customerRepo repository.CustomerRepository, deliveryRepo repository.DeliveryRepository,
	sms twilio.Client, email nylas.Client, assist AssistService, emailFrom string,
	retryDelay time.Duration, logger *zap.Logger) DispatchService {
	if retryDelay <= 0 {
		retryDelay = sendRetryDelay
	}
	return &dispatch{
		customerRepo: customerRepo,
		deliveryRepo: deliveryRepo,
		sms:          sms,
		email:        email,
		assist:       assist,
		emailFrom:    emailFrom,
		retryDelay:   retryDelay,
		logger:       logger,
	}
}

func (d *dispatch) Dispatch(ctx context.Context, cmd DispatchCommand) error {
	customer, err := d.customerRepo.GetByID(cmd.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			d.logger.Error("Dispatch aborted, customer does not exist",
				zap.Int64("customerID", cmd.CustomerID))
			return nil
		}

		return mq.Temporary(err)
	}

	d.logger.Info("Dispatching notification",
		zap.Int64("customerID", customer.ID),
		zap.String("firstName", customer.FirstName))

	body := RenderTemplate(customer.Template.Body, customer)

	switch {
	case customer.PhoneNumber != "":
		return d.dispatchSMS(ctx, customer, body)
	case customer.Email != "":
		return d.dispatchEmail(ctx, customer, body)
	default:
		d.logger.Error("Customer does not have a phone number or email",
			zap.Int64("customerID", customer.ID))
		return ErrNoContactChannel
	}
}

func (d *dispatch) dispatchSMS(ctx context.Context, customer *model.Customer, body string) error {
	msg, attempts, sendErr := d.sendSMSWithRetry(ctx, customer.PhoneNumber, body)
	if sendErr == nil {
		record := d.newRecord(customer.ID, model.ChannelSMS, msg.SID, model.DeliveryStatus(msg.Status), attempts, nil)
		if record.Status == "" {
			record.Status = model.DeliveryStatusQueued
		}

		if err := d.deliveryRepo.Create(ctx, record); err != nil {
			d.logger.Error("Failed to persist delivery record after SMS send",
				zap.Int64("customerID", customer.ID),
				zap.String("providerMsgID", msg.SID),
				zap.Error(err))
			return mq.Temporary(err)
		}

		d.logger.Info("SMS dispatched",
			zap.Int64("customerID", customer.ID),
			zap.String("providerMsgID", msg.SID),
			zap.Int("attempts", attempts))
		return nil
	}

	lastError := sendErr.Error()
	record := d.newRecord(customer.ID, model.ChannelSMS, syntheticID(), model.DeliveryStatusFailed, attempts, &lastError)

	if err := d.deliveryRepo.Create(ctx, record); err != nil {
		d.logger.Error("Failed to persist failed delivery record",
			zap.Int64("customerID", customer.ID),
			zap.Error(err))
		return mq.Temporary(err)
	}

	d.logger.Error("SMS dispatch failed",
		zap.Int64("customerID", customer.ID),
		zap.Int("attempts", attempts),
		zap.String("reason", lastError))

	return nil
}

func (d *dispatch) sendSMSWithRetry(ctx context.Context, to string, body string) (twilio.Message, int, error) {
	var lastErr error

	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		msg, err := d.sms.SendSMS(ctx, to, body)
		if err == nil {
			return msg, attempt, nil
		}

		lastErr = err

		if twilio.Permanent(err.Error()) {
			d.logger.Warn("Non-retryable transport rejection",
				zap.String("to", to),
				zap.String("code", err.Error()))
			return twilio.Message{}, attempt, err
		}

		d.logger.Warn("SMS send attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", maxSendAttempts))

		if attempt < maxSendAttempts {
			select {
			case <-time.After(d.retryDelay):
			case <-ctx.Done():
				return twilio.Message{}, attempt, ctx.Err()
			}
		}
	}

	return twilio.Message{}, maxSendAttempts, lastErr
}

func (d *dispatch) dispatchEmail(ctx context.Context, customer *model.Customer, body string) error {
	subject := d.assist.EmailSubject(ctx, customer.Template.Body)

	sent, err := d.email.SendMessage(ctx, nylas.SendMessageRequest{
		To:      []nylas.Participant{{Name: customer.FullName(), Email: customer.Email}},
		ReplyTo: []nylas.Participant{{Email: d.emailFrom}},
		Subject: subject,
		Body:    body,
		// Thread-reply tracking makes the provider call back when the
		// customer answers, keyed by this message's id.
		TrackingOptions: &nylas.TrackingOptions{ThreadReplies: true},
	})
	if err == nil {
		record := d.newRecord(customer.ID, model.ChannelEmail, sent.ID, model.DeliveryStatusDelivered, 1, nil)

		if err := d.deliveryRepo.Create(ctx, record); err != nil {
			d.logger.Error("Failed to persist delivery record after email send",
				zap.Int64("customerID", customer.ID),
				zap.String("providerMsgID", sent.ID),
				zap.Error(err))
			return mq.Temporary(err)
		}

		d.logger.Info("Email dispatched",
			zap.Int64("customerID", customer.ID),
			zap.String("providerMsgID", sent.ID))
		return nil
	}

	// A failed send still produces a record, under a generated placeholder
	// id, so inbound feedback can never reference a missing record.
	lastError := err.Error()
	record := d.newRecord(customer.ID, model.ChannelEmail, syntheticID(), model.DeliveryStatusFailed, 1, &lastError)

	if createErr := d.deliveryRepo.Create(ctx, record); createErr != nil {
		d.logger.Error("Failed to persist failed delivery record",
			zap.Int64("customerID", customer.ID),
			zap.Error(createErr))
		return mq.Temporary(createErr)
	}

	d.logger.Error("Email dispatch failed",
		zap.Int64("customerID", customer.ID),
		zap.String("reason", lastError))

	return nil
}

func (d *dispatch) newRecord(customerID int64, channel model.Channel, providerMsgID string,
	status model.DeliveryStatus, attempts int, lastError *string) *model.DeliveryRecord {
	return &model.DeliveryRecord{
		CustomerID:    customerID,
		Channel:       channel,
		ProviderMsgID: providerMsgID,
		Status:        status,
		AttemptCount:  attempts,
		LastError:     lastError,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func syntheticID() string {
	id := uuid.NewString()
	return id[:syntheticIDLength]
}

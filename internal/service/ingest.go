package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Onwuagba/Telinga/internal/constants"
	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"go.uber.org/zap"
)

// FeedbackService turns verified inbound replies into Feedback rows and
// runs the classify-then-respond chain as plain sequential calls, so a
// sentiment write can never re-trigger ingestion.
type FeedbackService interface {
	IngestSMSReply(ctx context.Context, cmd SMSReplyCommand) (IngestFeedbackResponse, error)
	IngestEmailReply(ctx context.Context, cmd EmailReplyCommand) (IngestFeedbackResponse, error)
}

type feedbackService struct {
	customerRepo repository.CustomerRepository
	deliveryRepo repository.DeliveryRepository
	feedbackRepo repository.FeedbackRepository
	email        nylas.Client
	classifier   ClassifierService
	responder    ResponderService
	logger       *zap.Logger
}

func NewFeedbackService(customerRepo repository.CustomerRepository, deliveryRepo repository.DeliveryRepository,
	feedbackRepo repository.FeedbackRepository, email nylas.Client, classifier ClassifierService,
	responder ResponderService, logger *zap.Logger) FeedbackService {
	return &feedbackService{
		customerRepo: customerRepo,
		deliveryRepo: deliveryRepo,
		feedbackRepo: feedbackRepo,
		email:        email,
		classifier:   classifier,
		responder:    responder,
		logger:       logger,
	}
}

func (f *feedbackService) IngestSMSReply(ctx context.Context, cmd SMSReplyCommand) (IngestFeedbackResponse, error) {
	customer, err := f.matchCustomer(cmd)
	if err != nil {
		return IngestFeedbackResponse{}, err
	}

	feedback := &model.Feedback{
		CustomerID: customer.ID,
		Message:    cmd.Body,
		Source:     model.ChannelSMS,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	feedback.Customer = *customer

	if err := f.feedbackRepo.Create(ctx, feedback); err != nil {
		f.logger.Error("Failed to persist feedback",
			zap.Int64("customerID", customer.ID),
			zap.Error(err))
		return IngestFeedbackResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	f.logger.Info("Feedback received via SMS",
		zap.Int64("customerID", customer.ID),
		zap.Int64("feedbackID", feedback.ID))

	sentiment := f.processFeedback(ctx, feedback)

	return IngestFeedbackResponse{FeedbackID: feedback.ID, Sentiment: string(sentiment)}, nil
}

func (f *feedbackService) IngestEmailReply(ctx context.Context, cmd EmailReplyCommand) (IngestFeedbackResponse, error) {
	record, err := f.deliveryRepo.GetByProviderMsgID(cmd.RootMessageID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryRecordNotFound) {
			f.logger.Warn("Thread reply does not match any delivery record, discarding",
				zap.String("rootMessageID", cmd.RootMessageID))
			return IngestFeedbackResponse{}, NewServiceError(constants.ErrCodeDeliveryRecordNotFound, err)
		}

		return IngestFeedbackResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	reply, err := f.email.GetMessage(ctx, cmd.MessageID)
	if err != nil {
		f.logger.Error("Failed to fetch reply message from provider",
			zap.String("messageID", cmd.MessageID),
			zap.Error(err))
		return IngestFeedbackResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	feedback := &model.Feedback{
		CustomerID: record.CustomerID,
		Message:    reply.Body,
		Source:     model.ChannelEmail,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	feedback.Customer = record.Customer

	if err := f.feedbackRepo.Create(ctx, feedback); err != nil {
		f.logger.Error("Failed to persist feedback",
			zap.Int64("customerID", record.CustomerID),
			zap.Error(err))
		return IngestFeedbackResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	f.logger.Info("Feedback received via email thread reply",
		zap.Int64("customerID", record.CustomerID),
		zap.Int64("feedbackID", feedback.ID),
		zap.String("rootMessageID", cmd.RootMessageID))

	sentiment := f.processFeedback(ctx, feedback)

	return IngestFeedbackResponse{FeedbackID: feedback.ID, Sentiment: string(sentiment)}, nil
}

func (f *feedbackService) matchCustomer(cmd SMSReplyCommand) (*model.Customer, error) {
	phone := strings.TrimPrefix(strings.TrimSpace(cmd.From), "+")

	customer, err := f.customerRepo.GetByPhone(phone)
	if err == nil {
		return customer, nil
	}

	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	if cmd.Email != "" {
		customer, err = f.customerRepo.GetByEmail(cmd.Email)
		if err == nil {
			return customer, nil
		}

		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, NewServiceError(constants.ErrCodeInternalError, err)
		}
	}

	f.logger.Warn("Inbound reply does not match any customer, discarding",
		zap.String("from", cmd.From))

	return nil, NewServiceError(constants.ErrCodeCustomerNotFound, ErrCustomerNotFound)
}

// processFeedback runs classification once, persists the sentiment as a
// column update, then responds and escalates. Reply and escalation
// failures are logged, never propagated to the webhook caller.
func (f *feedbackService) processFeedback(ctx context.Context, feedback *model.Feedback) model.Sentiment {
	sentiment := f.classifier.Classify(ctx, feedback.Message)

	if err := f.feedbackRepo.UpdateSentiment(ctx, feedback.ID, sentiment); err != nil {
		f.logger.Error("Failed to persist sentiment",
			zap.Int64("feedbackID", feedback.ID),
			zap.Error(err))
	}
	feedback.Sentiment = &sentiment

	f.logger.Info("Feedback classified",
		zap.Int64("feedbackID", feedback.ID),
		zap.String("sentiment", string(sentiment)))

	if err := f.responder.RespondToFeedback(ctx, feedback); err != nil {
		f.logger.Error("Error sending response to customer",
			zap.Int64("feedbackID", feedback.ID),
			zap.Error(err))
	}

	if sentiment == model.SentimentNegative {
		if err := f.responder.EscalateToAgent(ctx, feedback); err != nil {
			f.logger.Error("Escalation failed",
				zap.Int64("feedbackID", feedback.ID),
				zap.Error(err))
		}
	}

	return sentiment
}

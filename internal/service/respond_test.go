package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Onwuagba/Telinga/internal/mocks"
	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func sentimentOf(s model.Sentiment) *model.Sentiment {
	return &s
}

func TestResponder_RespondToFeedback(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	customer := model.Customer{
		ID:          7,
		FirstName:   "Ada",
		LastName:    "Obi",
		PhoneNumber: "2348012345678",
		Email:       "ada@example.com",
	}

	t.Run("positive SMS feedback gets the fixed thank-you text", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        1,
			Message:   "Great service!",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentPositive),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, "Great service!").Return("english")
		mockSMS.On("SendSMS", ctx, "2348012345678",
			"Thank you for your positive feedback! We appreciate your support.\nFeedback: Great service!").
			Return(twilio.Message{SID: "SM1"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		err := responder.RespondToFeedback(ctx, feedback)

		assert.NoError(t, err)
		mockAssist.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
		mockSMS.AssertExpectations(t)
	})

	t.Run("neutral SMS feedback gets the noted text", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        2,
			Message:   "It was okay",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentNeutral),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, "It was okay").Return("english")
		mockSMS.On("SendSMS", ctx, "2348012345678",
			"Thank you for your feedback. They are noted and will be taken into consideration.\nFeedback: It was okay").
			Return(twilio.Message{SID: "SM2"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.RespondToFeedback(ctx, feedback))
	})

	t.Run("negative SMS feedback keeps the deterministic apology", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        3,
			Message:   "Terrible experience",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, "Terrible experience").Return("english")
		mockSMS.On("SendSMS", ctx, "2348012345678",
			"We're sorry about your experience. A live agent is addressing the issue.\nFeedback: Terrible experience").
			Return(twilio.Message{SID: "SM3"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.RespondToFeedback(ctx, feedback))
		mockAssist.AssertNotCalled(t, "EmailDraft", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative email feedback gets an AI-drafted apology", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        4,
			Message:   "Package arrived broken",
			Source:    model.ChannelEmail,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		mockAssist.On("EmailDraft", ctx, "Addressing Your Concerns",
			"Apologize and address the following feedback: Package arrived broken").
			Return("We are deeply sorry your package arrived broken.")
		mockAssist.On("DetectLanguage", ctx, "Package arrived broken").Return("english")
		mockAssist.On("EmailSubject", ctx, mock.Anything).Return("About your recent delivery")
		mockEmail.On("SendMessage", ctx, mock.MatchedBy(func(req nylas.SendMessageRequest) bool {
			return req.To[0].Email == "ada@example.com" &&
				req.Subject == "About your recent delivery" &&
				req.Body == "We are deeply sorry your package arrived broken.\nFeedback: Package arrived broken"
		})).Return(nylas.Message{ID: "msg-1"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.RespondToFeedback(ctx, feedback))
		mockEmail.AssertExpectations(t)
	})

	t.Run("non-default language gets a translated reply", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        5,
			Message:   "Excelente servicio",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentPositive),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, "Excelente servicio").Return("spanish")
		mockAssist.On("Translate", ctx,
			"Thank you for your positive feedback! We appreciate your support.", "spanish").
			Return("¡Gracias por sus comentarios positivos!")
		mockSMS.On("SendSMS", ctx, "2348012345678",
			"¡Gracias por sus comentarios positivos!\nFeedback: Excelente servicio").
			Return(twilio.Message{SID: "SM5"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.RespondToFeedback(ctx, feedback))
		mockAssist.AssertExpectations(t)
	})

	t.Run("transport failure is returned", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        6,
			Message:   "hi",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentNeutral),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, mock.Anything).Return("english")
		mockSMS.On("SendSMS", ctx, mock.Anything, mock.Anything).
			Return(twilio.Message{}, errors.New(twilio.ErrorCodeServerError))

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.Error(t, responder.RespondToFeedback(ctx, feedback))
	})
}

func TestResponder_EscalateToAgent(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	customer := model.Customer{
		ID:          7,
		FirstName:   "Ada",
		LastName:    "Obi",
		PhoneNumber: "2348012345678",
		Email:       "ada@example.com",
	}

	t.Run("SMS feedback escalates by phone call with a summary", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        1,
			Message:   "Terrible experience",
			Source:    model.ChannelSMS,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		mockAssist.On("SummarizeFeedback", ctx, "Terrible experience").
			Return("Customer unhappy with delivery time")
		mockSMS.On("CreateCall", ctx, "+15550001111",
			"<Response><Say>Customer Ada left a negative review. Here's the summary: "+
				"Customer unhappy with delivery time. Please review and assist.</Say></Response>").
			Return(twilio.Call{SID: "CA1"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.EscalateToAgent(ctx, feedback))
		mockSMS.AssertExpectations(t)
	})

	t.Run("email feedback escalates by scheduling a meeting", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        2,
			Message:   "Package arrived broken",
			Source:    model.ChannelEmail,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		suggested := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

		mockAssist.On("DetectLanguage", ctx, "Package arrived broken").Return("english")
		mockAssist.On("SuggestMeetingTime", ctx, "Package arrived broken").
			Return(suggested.Format(time.RFC3339))
		mockEmail.On("ListCalendars", ctx).Return([]nylas.Calendar{
			{ID: "cal-secondary"},
			{ID: "cal-primary", IsPrimary: true},
		}, nil)
		mockEmail.On("CreateEvent", ctx, "cal-primary", mock.MatchedBy(func(req nylas.CreateEventRequest) bool {
			return req.Title == "Telinga: Feedback review with Ada Obi" &&
				req.When.StartTime == suggested.Unix() &&
				req.When.EndTime == suggested.Add(time.Hour).Unix()
		})).Return(nylas.Event{ID: "evt-1"}, nil)
		mockEmail.On("UpdateEvent", ctx, "cal-primary", "evt-1",
			mock.MatchedBy(func(req nylas.UpdateEventRequest) bool {
				return req.NotifyParticipants &&
					len(req.Participants) == 1 &&
					req.Participants[0].Email == "ada@example.com"
			})).Return(nylas.Event{ID: "evt-1"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.EscalateToAgent(ctx, feedback))
		mockEmail.AssertExpectations(t)
	})

	t.Run("unparseable meeting suggestion falls back to tomorrow", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        3,
			Message:   "Bad",
			Source:    model.ChannelEmail,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, mock.Anything).Return("english")
		mockAssist.On("SuggestMeetingTime", ctx, mock.Anything).
			Return("sometime tomorrow afternoon works")
		mockEmail.On("ListCalendars", ctx).Return([]nylas.Calendar{{ID: "cal-1"}}, nil)
		mockEmail.On("CreateEvent", ctx, "cal-1", mock.MatchedBy(func(req nylas.CreateEventRequest) bool {
			return req.When.StartTime > time.Now().Unix() &&
				req.When.EndTime-req.When.StartTime == int64(time.Hour/time.Second)
		})).Return(nylas.Event{ID: "evt-2"}, nil)
		mockEmail.On("UpdateEvent", ctx, "cal-1", "evt-2", mock.Anything).
			Return(nylas.Event{ID: "evt-2"}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.NoError(t, responder.EscalateToAgent(ctx, feedback))
	})

	t.Run("no calendar available fails the escalation", func(t *testing.T) {
		mockSMS := &mocks.TwilioClient{}
		mockEmail := &mocks.NylasClient{}
		mockAssist := &mocks.AssistService{}

		feedback := &model.Feedback{
			ID:        4,
			Message:   "Bad",
			Source:    model.ChannelEmail,
			Sentiment: sentimentOf(model.SentimentNegative),
			Customer:  customer,
		}

		mockAssist.On("DetectLanguage", ctx, mock.Anything).Return("english")
		mockAssist.On("SuggestMeetingTime", ctx, mock.Anything).Return("")
		mockEmail.On("ListCalendars", ctx).Return([]nylas.Calendar{}, nil)

		responder := service.NewResponderService(mockSMS, mockEmail, mockAssist,
			"english", "+15550001111", "support@example.com", logger)

		assert.Error(t, responder.EscalateToAgent(ctx, feedback))
		mockEmail.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
	})
}

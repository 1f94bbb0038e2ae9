package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"go.uber.org/zap"
)

const (
	responsePositive = "Thank you for your positive feedback! We appreciate your support."
	responseNeutral  = "Thank you for your feedback. They are noted and will be taken into consideration."
	responseNegative = "We're sorry about your experience. A live agent is addressing the issue."
	responseDefault  = "Thank you for your feedback."

	meetingTitlePrefix = "Feedback review with"
	meetingDuration    = time.Hour
)

// ResponderService composes and delivers the automated reply for a
// classified Feedback and drives the escalation path for negative
// sentiment.
type ResponderService interface {
	RespondToFeedback(ctx context.Context, feedback *model.Feedback) error
	EscalateToAgent(ctx context.Context, feedback *model.Feedback) error
}

type responder struct {
	sms              twilio.Client
	email            nylas.Client
	assist           AssistService
	defaultLanguage  string
	escalationNumber string
	emailFrom        string
	logger           *zap.Logger
}

func NewResponderService(sms twilio.Client, email nylas.Client, assist AssistService,
	defaultLanguage string, escalationNumber string, emailFrom string, logger *zap.Logger) ResponderService {
	return &responder{
		sms:              sms,
		email:            email,
		assist:           assist,
		defaultLanguage:  defaultLanguage,
		escalationNumber: escalationNumber,
		emailFrom:        emailFrom,
		logger:           logger,
	}
}

func (r *responder) RespondToFeedback(ctx context.Context, feedback *model.Feedback) error {
	customer := feedback.Customer
	message := r.composeResponse(ctx, feedback)

	switch feedback.Source {
	case model.ChannelSMS:
		r.logger.Info("Replying to feedback via SMS",
			zap.Int64("feedbackID", feedback.ID),
			zap.Int64("customerID", customer.ID))

		if _, err := r.sms.SendSMS(ctx, customer.PhoneNumber, message); err != nil {
			return err
		}

	case model.ChannelEmail:
		r.logger.Info("Replying to feedback via email",
			zap.Int64("feedbackID", feedback.ID),
			zap.Int64("customerID", customer.ID))

		subject := r.assist.EmailSubject(ctx, message)

		_, err := r.email.SendMessage(ctx, nylas.SendMessageRequest{
			To:      []nylas.Participant{{Name: customer.FullName(), Email: customer.Email}},
			ReplyTo: []nylas.Participant{{Email: r.emailFrom}},
			Subject: subject,
			Body:    message,
		})
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown feedback source %q", feedback.Source)
	}

	return nil
}

func (r *responder) composeResponse(ctx context.Context, feedback *model.Feedback) string {
	sentiment := model.SentimentNeutral
	if feedback.Sentiment != nil {
		sentiment = *feedback.Sentiment
	}

	var response string
	switch sentiment {
	case model.SentimentPositive:
		response = responsePositive
	case model.SentimentNeutral:
		response = responseNeutral
	case model.SentimentNegative:
		response = responseNegative
	default:
		response = responseDefault
	}

	// Voice-channel replies stay deterministic; only email apologies get
	// an AI-drafted response.
	if sentiment == model.SentimentNegative && feedback.Source != model.ChannelSMS {
		response = r.assist.EmailDraft(ctx, "Addressing Your Concerns",
			fmt.Sprintf("Apologize and address the following feedback: %s", feedback.Message))
	}

	language := r.assist.DetectLanguage(ctx, feedback.Message)
	if language != r.defaultLanguage {
		response = r.assist.Translate(ctx, response, language)
	}

	return fmt.Sprintf("%s\nFeedback: %s", response, feedback.Message)
}

func (r *responder) EscalateToAgent(ctx context.Context, feedback *model.Feedback) error {
	if feedback.Source == model.ChannelSMS {
		return r.escalateByCall(ctx, feedback)
	}

	return r.escalateByMeeting(ctx, feedback)
}

func (r *responder) escalateByCall(ctx context.Context, feedback *model.Feedback) error {
	summary := r.assist.SummarizeFeedback(ctx, feedback.Message)

	twiml := fmt.Sprintf("<Response><Say>Customer %s left a negative review. Here's the summary: %s. "+
		"Please review and assist.</Say></Response>", feedback.Customer.FirstName, summary)

	call, err := r.sms.CreateCall(ctx, r.escalationNumber, twiml)
	if err != nil {
		return err
	}

	r.logger.Info("Call initiated to live agent",
		zap.Int64("feedbackID", feedback.ID),
		zap.String("callSID", call.SID))

	return nil
}

func (r *responder) escalateByMeeting(ctx context.Context, feedback *model.Feedback) error {
	customer := feedback.Customer

	title := meetingTitlePrefix
	language := r.assist.DetectLanguage(ctx, feedback.Message)
	if language != r.defaultLanguage {
		title = r.assist.Translate(ctx, title, language)
	}

	suggestion := r.assist.SuggestMeetingTime(ctx, feedback.Message)
	start := parseMeetingTime(suggestion)

	calendarID, err := r.primaryCalendar(ctx)
	if err != nil {
		return err
	}

	event, err := r.email.CreateEvent(ctx, calendarID, nylas.CreateEventRequest{
		Title: fmt.Sprintf("Telinga: %s %s", title, customer.FullName()),
		When: nylas.EventWhen{
			StartTime: start.Unix(),
			EndTime:   start.Add(meetingDuration).Unix(),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.email.UpdateEvent(ctx, calendarID, event.ID, nylas.UpdateEventRequest{
		Participants:       []nylas.Participant{{Name: customer.FullName(), Email: customer.Email}},
		NotifyParticipants: true,
	})
	if err != nil {
		return err
	}

	r.logger.Info("Meeting scheduled",
		zap.Int64("feedbackID", feedback.ID),
		zap.String("customerEmail", customer.Email),
		zap.Time("startTime", start))

	return nil
}

func (r *responder) primaryCalendar(ctx context.Context) (string, error) {
	calendars, err := r.email.ListCalendars(ctx)
	if err != nil {
		return "", err
	}

	for _, calendar := range calendars {
		if calendar.IsPrimary {
			return calendar.ID, nil
		}
	}

	if len(calendars) > 0 {
		return calendars[0].ID, nil
	}

	return "", errors.New("no calendar available")
}

// parseMeetingTime makes a best effort at the AI's free-text suggestion,
// falling back to the same slot tomorrow.
func parseMeetingTime(suggestion string) time.Time {
	layouts := []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, suggestion); err == nil && t.After(time.Now()) {
			return t
		}
	}

	return time.Now().Add(24 * time.Hour).Truncate(time.Hour)
}

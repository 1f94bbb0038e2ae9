package v1

import (
	"encoding/json"
	"time"

	"github.com/Onwuagba/Telinga/internal/constants"
	"github.com/Onwuagba/Telinga/internal/publishers"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	feedback  service.FeedbackService
	verifier  service.VerifierService
	publisher publishers.DispatchPublisher
}

func NewHandler(logger *zap.Logger, feedback service.FeedbackService, verifier service.VerifierService,
	publisher publishers.DispatchPublisher) *Handler {
	return &Handler{logger: logger, feedback: feedback, verifier: verifier, publisher: publisher}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

// DispatchCampaign is the entry point the CSV upload collaborator calls
// once customer rows are persisted: one dispatch task per customer.
func (h *Handler) DispatchCampaign(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request DispatchCampaignRequest
	if err := c.BodyParser(&request); err != nil || len(request.CustomerIDs) == 0 {
		h.logger.Warn("Failed to parse dispatch request",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	var sendAt *time.Time
	if request.SendAt != "" {
		parsed, err := time.Parse(time.RFC3339, request.SendAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    constants.ErrCodeInvalidRequestBody,
				"message": "send_at must be RFC3339",
			})
		}
		sendAt = &parsed
	}

	commands := make([]service.DispatchCommand, 0, len(request.CustomerIDs))
	for _, customerID := range request.CustomerIDs {
		commands = append(commands, service.DispatchCommand{CustomerID: customerID, SendAt: sendAt})
	}

	queued, err := h.publisher.Publish(ctx, commands)
	if err != nil {
		h.logger.Error("Failed to enqueue dispatch commands", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(
		DispatchCampaignResponse{Queued: queued, Total: len(commands)})
}

// TwilioWebhook receives SMS/voice replies. The signature covers the full
// request URL plus every POST parameter.
func (h *Handler) TwilioWebhook(c *fiber.Ctx) error {
	ctx := c.UserContext()

	params := map[string]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	url := c.BaseURL() + c.OriginalURL()
	signature := c.Get("X-Twilio-Signature")

	if !h.verifier.VerifySMSWebhook(url, params, signature) {
		h.logger.Warn("Rejected SMS webhook with invalid signature",
			zap.String("url", url))
		return service.NewServiceError(constants.ErrCodeInvalidSignature, service.ErrInvalidSignature)
	}

	cmd := service.SMSReplyCommand{
		From:  c.FormValue("From"),
		Body:  c.FormValue("Body"),
		Email: c.FormValue("Email"),
	}

	resp, err := h.feedback.IngestSMSReply(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(
		FeedbackReceivedResponse{Status: "received", FeedbackID: resp.FeedbackID})
}

// NylasChallenge answers the provider's verification handshake by echoing
// the challenge value as plain text.
func (h *Handler) NylasChallenge(c *fiber.Ctx) error {
	return c.SendString(c.Query("challenge"))
}

// NylasWebhook receives email-thread events. Only thread.replied is
// handled; everything else is acknowledged and dropped.
func (h *Handler) NylasWebhook(c *fiber.Ctx) error {
	ctx := c.UserContext()

	body := c.Body()
	signature := c.Get("X-Nylas-Signature")

	if !h.verifier.VerifyEmailWebhook(body, signature) {
		h.logger.Warn("Rejected email webhook with invalid signature")
		return service.NewServiceError(constants.ErrCodeInvalidSignature, service.ErrInvalidSignature)
	}

	var event NylasEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("Failed to parse webhook event",
			zap.Error(err),
			zap.String("body", string(body)))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if event.Type != service.ThreadRepliedTrigger {
		h.logger.Debug("Ignoring unhandled webhook event", zap.String("type", event.Type))
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored"})
	}

	cmd := service.EmailReplyCommand{
		RootMessageID: event.Data.Object.RootMessageID,
		MessageID:     event.Data.Object.MessageID,
	}

	resp, err := h.feedback.IngestEmailReply(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(
		FeedbackReceivedResponse{Status: "received", FeedbackID: resp.FeedbackID})
}

package api

import (
	v1 "github.com/Onwuagba/Telinga/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Post("/v1/campaigns/dispatch", handler.DispatchCampaign)
	app.Post("/webhooks/twilio", handler.TwilioWebhook)
	app.Get("/webhooks/nylas", handler.NylasChallenge)
	app.Post("/webhooks/nylas", handler.NylasWebhook)
}

package main

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/api"
	v1 "github.com/Onwuagba/Telinga/internal/api/v1"
	"github.com/Onwuagba/Telinga/internal/config"
	"github.com/Onwuagba/Telinga/internal/database"
	middleware "github.com/Onwuagba/Telinga/internal/error"
	"github.com/Onwuagba/Telinga/internal/publishers"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/gemini"
	"github.com/Onwuagba/Telinga/pkg/httpclient"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewFiberApp,
			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,

			repository.NewCustomerRepository,
			repository.NewDeliveryRepository,
			repository.NewFeedbackRepository,
			repository.NewWebhookRepository,

			NewTwilioClient,
			NewNylasClient,
			NewGeminiClient,

			service.NewAssistService,
			service.NewClassifierService,
			NewResponderService,
			service.NewFeedbackService,
			NewVerifierService,

			publishers.NewDispatchPublisher,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.DispatchQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewTwilioClient(cfg *config.Config) twilio.Client {
	return twilio.NewClient(cfg.Twilio, httpclient.NewHTTPClient(cfg.Twilio.Timeout))
}

func NewNylasClient(cfg *config.Config) nylas.Client {
	return nylas.NewClient(cfg.Nylas, httpclient.NewHTTPClient(cfg.Nylas.Timeout))
}

func NewGeminiClient(cfg *config.Config) gemini.Client {
	return gemini.NewClient(cfg.Gemini, httpclient.NewHTTPClient(cfg.Gemini.Timeout))
}

func NewResponderService(cfg *config.Config, sms twilio.Client, email nylas.Client,
	assist service.AssistService, logger *zap.Logger) service.ResponderService {
	return service.NewResponderService(sms, email, assist,
		cfg.Respond.DefaultLanguage, cfg.Respond.EscalationNumber, cfg.Nylas.From, logger)
}

func NewVerifierService(cfg *config.Config, webhookRepo repository.WebhookRepository,
	logger *zap.Logger) service.VerifierService {
	return service.NewVerifierService(webhookRepo, cfg.Twilio.AuthToken, cfg.Webhooks.SkipVerify, logger)
}

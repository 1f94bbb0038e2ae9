package main

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/config"
	"github.com/Onwuagba/Telinga/internal/consumers"
	"github.com/Onwuagba/Telinga/internal/database"
	"github.com/Onwuagba/Telinga/internal/publishers"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/gemini"
	"github.com/Onwuagba/Telinga/pkg/httpclient"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQConsumer,

			repository.NewCustomerRepository,
			repository.NewDeliveryRepository,

			NewTwilioClient,
			NewNylasClient,
			NewGeminiClient,

			service.NewAssistService,
			NewDispatchService,

			consumers.NewDispatchConsumer,
		),
		fx.Invoke(runDispatchConsumer),
	).Run()
}

func runDispatchConsumer(cfg *config.Config, dispatchConsumer consumers.DispatchConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.DispatchQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.DispatchQueue))

			go func() {
				if err := dispatchConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("dispatch consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping dispatch consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
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

func NewDispatchService(cfg *config.Config, customerRepo repository.CustomerRepository,
	deliveryRepo repository.DeliveryRepository, sms twilio.Client, email nylas.Client,
	assist service.AssistService, logger *zap.Logger) service.DispatchService {
	return service.NewDispatchService(customerRepo, deliveryRepo, sms, email, assist,
		cfg.Nylas.From, 0, logger)
}

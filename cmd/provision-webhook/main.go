package main

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/config"
	"github.com/Onwuagba/Telinga/internal/database"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/httpclient"
	"github.com/Onwuagba/Telinga/pkg/nylas"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			repository.NewWebhookRepository,

			NewNylasClient,
			service.NewProvisionService,
		),
		fx.Invoke(registerWebhook),
	).Run()
}

func registerWebhook(cfg *config.Config, provision service.ProvisionService, logger *zap.Logger,
	shutdowner fx.Shutdowner, lc fx.Lifecycle,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				registration, err := provision.RegisterReplyWebhook(context.Background(),
					cfg.Webhooks.SiteDomain, cfg.Nylas.From)
				if err != nil {
					logger.Error("failed to register reply webhook", zap.Error(err))
				} else {
					logger.Info("reply webhook registered",
						zap.String("webhookID", registration.WebhookID),
						zap.String("triggerType", registration.TriggerType))
				}

				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("shutdown failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return nil
		},
	})
}

func NewNylasClient(cfg *config.Config) nylas.Client {
	return nylas.NewClient(cfg.Nylas, httpclient.NewHTTPClient(cfg.Nylas.Timeout))
}

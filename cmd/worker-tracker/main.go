package main

import (
	"context"
	"time"

	"github.com/Onwuagba/Telinga/internal/config"
	"github.com/Onwuagba/Telinga/internal/database"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/httpclient"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const reconcileInterval = 5 * time.Minute

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			repository.NewDeliveryRepository,

			NewTwilioClient,
			service.NewTrackerService,
		),
		fx.Invoke(runTracker),
	).Run()
}

func runTracker(tracker service.TrackerService, logger *zap.Logger, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(reconcileInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := tracker.Reconcile(appCtx); err != nil {
							logger.Error("failed to reconcile delivery statuses", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("tracker context cancelled")
						return
					}
				}
			}()

			logger.Info("delivery tracker started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping delivery tracker")
			cancel()
			return nil
		},
	})
}

func NewTwilioClient(cfg *config.Config) twilio.Client {
	return twilio.NewClient(cfg.Twilio, httpclient.NewHTTPClient(cfg.Twilio.Timeout))
}

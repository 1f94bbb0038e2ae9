package service

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/Onwuagba/Telinga/internal/repository"
	"github.com/Onwuagba/Telinga/pkg/twilio"
	"go.uber.org/zap"
)

const trackerBatchSize = 500

// TrackerService reconciles non-terminal delivery records against the
// transport provider's live status. Runs on a fixed interval.
type TrackerService interface {
	Reconcile(ctx context.Context) error
}

type tracker struct {
	deliveryRepo repository.DeliveryRepository
	sms          twilio.Client
	logger       *zap.Logger
}

func NewTrackerService(deliveryRepo repository.DeliveryRepository, sms twilio.Client,
	logger *zap.Logger) TrackerService {
	return &tracker{deliveryRepo: deliveryRepo, sms: sms, logger: logger}
}

func (t *tracker) Reconcile(ctx context.Context) error {
	records, err := t.deliveryRepo.FindByStatuses(model.NonTerminalStatuses, trackerBatchSize)
	if err != nil {
		t.logger.Error("Failed to load pending delivery records", zap.Error(err))
		return err
	}

	if len(records) == 0 {
		return nil
	}

	t.logger.Info("Reconciling delivery statuses", zap.Int("count", len(records)))

	updated := 0
	for _, record := range records {
		if record.Channel != model.ChannelSMS {
			continue
		}

		// One record's provider failure must not abort the scan.
		msg, err := t.sms.FetchMessage(ctx, record.ProviderMsgID)
		if err != nil {
			t.logger.Warn("Status lookup failed, skipping record",
				zap.Int64("recordID", record.ID),
				zap.String("providerMsgID", record.ProviderMsgID),
				zap.Error(err))
			continue
		}

		status := model.DeliveryStatus(msg.Status)
		if status == record.Status || status == "" {
			continue
		}

		if err := t.deliveryRepo.UpdateStatus(ctx, record.ID, status); err != nil {
			t.logger.Error("Failed to update delivery status",
				zap.Int64("recordID", record.ID),
				zap.String("status", string(status)),
				zap.Error(err))
			continue
		}

		updated++
	}

	if updated > 0 {
		t.logger.Info("Delivery statuses updated",
			zap.Int("updated", updated),
			zap.Int("scanned", len(records)))
	}

	return nil
}

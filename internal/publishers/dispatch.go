package publishers

import (
	"context"
	"encoding/json"

	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"go.uber.org/zap"
)

const DispatchQueue = "notify.dispatch"

// DispatchPublisher enqueues one dispatch task per customer. The CSV
// upload collaborator calls this through the API after persisting rows.
type DispatchPublisher interface {
	Publish(ctx context.Context, commands []service.DispatchCommand) (int, error)
}

type dispatchPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewDispatchPublisher(publisher mq.Publisher, logger *zap.Logger) DispatchPublisher {
	return &dispatchPublisher{publisher: publisher, logger: logger}
}

func (d *dispatchPublisher) Publish(ctx context.Context, commands []service.DispatchCommand) (int, error) {
	if len(commands) == 0 {
		return 0, nil
	}

	d.logger.Info("Publishing dispatch commands", zap.Int("count", len(commands)))

	successCount := 0
	for _, command := range commands {
		body, _ := json.Marshal(command)
		if err := d.publisher.Publish(ctx, "", DispatchQueue, body); err != nil {
			d.logger.Error("Failed to publish dispatch command",
				zap.Error(err),
				zap.Int64("customerID", command.CustomerID))
			continue
		}

		successCount++
	}

	if successCount > 0 {
		d.logger.Info("Dispatch commands published",
			zap.Int("published", successCount),
			zap.Int("total", len(commands)))
	}

	return successCount, nil
}

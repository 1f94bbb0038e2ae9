package consumers

import (
	"context"
	"encoding/json"

	"github.com/Onwuagba/Telinga/internal/publishers"
	"github.com/Onwuagba/Telinga/internal/service"
	"github.com/Onwuagba/Telinga/pkg/mq"
	"go.uber.org/zap"
)

type DispatchConsumer interface {
	Consume(ctx context.Context) error
}

type dispatchConsumer struct {
	service  service.DispatchService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewDispatchConsumer(service service.DispatchService, consumer mq.Consumer, logger *zap.Logger) DispatchConsumer {
	return &dispatchConsumer{
		service:  service,
		consumer: consumer,
		logger:   logger,
	}
}

func (d *dispatchConsumer) Consume(ctx context.Context) error {
	return d.consumer.Consume(ctx, 1, publishers.DispatchQueue, d.handleMessage)
}

func (d *dispatchConsumer) handleMessage(ctx context.Context, body []byte) error {
	d.logger.Info("received dispatch command", zap.ByteString("body", body))

	var cmd service.DispatchCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		d.logger.Warn("invalid dispatch command", zap.Error(err))
		return err
	}

	return d.service.Dispatch(ctx, cmd)
}

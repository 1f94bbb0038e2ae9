package service

import (
	"context"

	"github.com/Onwuagba/Telinga/internal/model"
	"go.uber.org/zap"
)

// ClassifierService maps free-text feedback onto the closed sentiment set.
type ClassifierService interface {
	Classify(ctx context.Context, text string) model.Sentiment
}

type classifier struct {
	assist AssistService
	logger *zap.Logger
}

func NewClassifierService(assist AssistService, logger *zap.Logger) ClassifierService {
	return &classifier{assist: assist, logger: logger}
}

func (c *classifier) Classify(ctx context.Context, text string) model.Sentiment {
	result, err := c.assist.Sentiment(ctx, text)
	if err != nil {
		c.logger.Error("Sentiment analysis failed, defaulting to neutral", zap.Error(err))
		return model.SentimentNeutral
	}

	switch model.Sentiment(result) {
	case model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral:
		return model.Sentiment(result)
	default:
		c.logger.Error("Unexpected sentiment analysis result, coercing to neutral",
			zap.String("result", result))
		return model.SentimentNeutral
	}
}

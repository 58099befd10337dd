package message

import (
	"context"

	"campustix/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const consumerGroupPrefix = "svc-campustix."

type InsightsProjector interface {
	OnResaleAnalysisCompleted(ctx context.Context, e *event.ResaleAnalysisCompleted) error
	OnResaleAnalysisFailed(ctx context.Context, e *event.ResaleAnalysisFailed) error
	OnTicketPurchased(ctx context.Context, e *event.TicketPurchased) error
}

func NewProcessorConfig(logger watermill.LoggerAdapter, redisClient *redis.Client) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: consumerGroupPrefix + params.HandlerName,
			}, logger)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: cqrs.JSONMarshaler{
			GenerateName: cqrs.StructName,
		},
		Logger: logger,
	}
}

func handleLogEventCreated(ctx context.Context, e *event.EventCreated) error {
	log.FromContext(ctx).WithFields(logrus.Fields{
		"event_id":  e.EventID,
		"title":     e.Title,
		"date":      e.Date,
		"price_min": e.PriceRange.Min.String(),
		"price_max": e.PriceRange.Max.String(),
	}).Info("New campus event published")

	return nil
}

func handleLogAnalysisFailed(ctx context.Context, e *event.ResaleAnalysisFailed) error {
	log.FromContext(ctx).WithFields(logrus.Fields{
		"event_id": e.EventID,
		"reason":   e.Reason,
	}).Warn("Resale analysis unavailable")

	return nil
}

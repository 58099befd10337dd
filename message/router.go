package message

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

type RouterDeps struct {
	Logger          watermill.LoggerAdapter
	ProcessorConfig cqrs.EventProcessorConfig
	Insights        InsightsProjector
}

type Router struct {
	*message.Router
}

func NewRouter(deps RouterDeps) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.AddMiddleware(correlationIDMiddleware)
	router.AddMiddleware(loggerMiddleware)
	router.AddMiddleware(handlerLogMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          deps.Logger,
	}.Middleware)

	ep, err := cqrs.NewEventProcessorWithConfig(router, deps.ProcessorConfig)
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	handlers := []cqrs.EventHandler{
		cqrs.NewEventHandler("project-analysis-completed", deps.Insights.OnResaleAnalysisCompleted),
		cqrs.NewEventHandler("project-analysis-failed", deps.Insights.OnResaleAnalysisFailed),
		cqrs.NewEventHandler("project-ticket-purchased", deps.Insights.OnTicketPurchased),
		cqrs.NewEventHandler("log-analysis-failed", handleLogAnalysisFailed),
		cqrs.NewEventHandler("log-event-created", handleLogEventCreated),
	}

	if err := ep.AddHandlers(handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return &Router{router}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campustix/advisory"
	"campustix/http"
	"campustix/message"
	"campustix/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

type Service struct {
	msgRouter  *message.Router
	httpRouter *echo.Echo
	config     Config
}

func New(
	cfg Config,
	logger watermill.LoggerAdapter,
	redisClient *redis.Client,
	mem *store.Memory,
	textAdvisor advisory.TextAdvisor,
) (*Service, error) {
	publisher, err := message.NewRedisPublisher(redisClient, logger)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	eventBus, err := message.NewEventBus(publisher, logger)
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}

	insights := store.NewInsightsRepo()

	msgRouter, err := message.NewRouter(message.RouterDeps{
		Logger:          logger,
		ProcessorConfig: message.NewProcessorConfig(logger, redisClient),
		Insights:        insights,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	httpRouter := http.NewRouter(http.RouterDeps{
		Publisher:  eventBus,
		Advisor:    advisory.NewService(textAdvisor),
		EventRepo:  store.NewEventRepo(mem),
		WalletRepo: store.NewWalletRepo(mem),
		Insights:   insights,
	})

	return &Service{
		msgRouter:  msgRouter,
		httpRouter: httpRouter,
		config:     cfg,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		<-s.msgRouter.Running()

		logrus.WithField("addr", s.config.HTTPAddr).Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.config.HTTPAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}

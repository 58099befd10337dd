package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"campustix/clients"
	"campustix/config"
	"campustix/service"
	"campustix/store"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log.Init(logrus.InfoLevel)
	logger := watermill.NewStdLogger(false, false)

	if err := run(logger); err != nil {
		logger.Error("failed to run", err, nil)
		os.Exit(1)
	}
}

func run(logger watermill.LoggerAdapter) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logrus.SetLevel(cfg.LogLevel)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis connection", err, nil)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ollama := clients.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.AdvisorTemperature, cfg.AdvisorTimeout)
	logrus.WithFields(logrus.Fields{
		"ollama_url":   cfg.OllamaURL,
		"ollama_model": cfg.OllamaModel,
	}).Info("Resale advisor configured")

	svc, err := service.New(
		service.Config{
			HTTPAddr:        cfg.HTTPAddr,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		logger,
		rdb,
		store.NewSeededMemory(time.Now()),
		ollama,
	)
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return svc.Run(ctx)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/laes18/go-restaurant-pos/internal/audit"
	"github.com/laes18/go-restaurant-pos/internal/config"
	kafkax "github.com/laes18/go-restaurant-pos/internal/kafka"
	"github.com/laes18/go-restaurant-pos/internal/pos"
	"github.com/laes18/go-restaurant-pos/internal/postgres"
	"github.com/laes18/go-restaurant-pos/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("schema", zap.Error(err))
	}

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &audit.Service{
		Repo:  &pos.Repo{DB: db},
		Redis: rdb,
		Log:   logger,
	}

	group := getenv("AUDITOR_GROUP", "pos-auditor")
	workers := atoiOr(os.Getenv("AUDITOR_WORKERS"), 4)

	topics := []string{pos.TopicOrderCreated, pos.TopicOrderStatusChanged, pos.TopicPaymentRecorded}
	for _, topic := range topics {
		cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, topic, workers, logger)
		go func(topic string) {
			logger.Info("consumer started", zap.String("topic", topic), zap.Int("workers", workers))
			if err := cons.Start(ctx, svc.HandleEvent); err != nil {
				logger.Error("consumer exit", zap.String("topic", topic), zap.Error(err))
				cancel()
			}
		}(topic)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

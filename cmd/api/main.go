package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/laes18/go-restaurant-pos/internal/config"
	"github.com/laes18/go-restaurant-pos/internal/httpx"
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

	pCreated := kafkax.NewProducer(cfg.KafkaBrokers, pos.TopicOrderCreated, 1024, logger)
	pStatus := kafkax.NewProducer(cfg.KafkaBrokers, pos.TopicOrderStatusChanged, 1024, logger)
	pPayment := kafkax.NewProducer(cfg.KafkaBrokers, pos.TopicPaymentRecorded, 1024, logger)
	pCreated.Start(ctx)
	pStatus.Start(ctx)
	pPayment.Start(ctx)

	router := httpx.NewRouter()
	h := &httpx.Handler{
		Store:           &pos.Repo{DB: db},
		Sessions:        &redisx.Sessions{R: rdb},
		Numbers:         &redisx.Numbering{R: rdb},
		Statuses:        &redisx.StatusCache{R: rdb},
		OrderCreated:    pCreated,
		StatusChanged:   pStatus,
		PaymentRecorded: pPayment,
		Validate:        httpx.NewValidator(),
		Service:         cfg.ServiceName,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	pCreated.Close()
	pStatus.Close()
	pPayment.Close()
	cancel()
	pCreated.WaitClosed()
	pStatus.WaitClosed()
	pPayment.WaitClosed()
}

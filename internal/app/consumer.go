package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-erp/internal/config"
	"go-erp/internal/messaging/kafka/consumer"
	"go-erp/internal/order"
	"go-erp/internal/shared/connection"
	"go-erp/internal/shared/counter"

	"go.uber.org/zap"
)

const jobCompletedGroupID = "go-erp-order-delivery"

// RunConsumer marks orders delivered from job completion events until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	orderService := order.NewService(sqlDB, order.NewRepository(gormDB), counter.NewRepository(gormDB), logger)

	reader := consumer.NewJobCompletedReader(cfg.KafkaBroker, jobCompletedGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeJobCompleted(ctx, reader, orderService, logger)

	log.Info("consumer shutting down")
	return nil
}

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-erp/internal/events"
	ordererrors "go-erp/internal/order/errors"
	"go-erp/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// OrderDeliverer is implemented by order.Service.
type OrderDeliverer interface {
	MarkDeliveredIfComplete(ctx context.Context, orderID int64) (bool, error)
}

var (
	retryBackoff    = 500 * time.Millisecond
	maxRetryBackoff = 30 * time.Second
)

func NewJobCompletedReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		GroupID: groupID,
		Topic:   events.JobCompletedTopic,
	})
}

// ConsumeJobCompleted marks orders delivered as their jobs complete. A message is
// committed once handled, or when it can never be handled (bad payload, unknown order).
// Transient failures retry the same message with backoff, so a later commit never
// skips past an unhandled offset. The loop stops when ctx is cancelled.
func ConsumeJobCompleted(
	ctx context.Context,
	reader MessageReader,
	orders OrderDeliverer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.job_completed")
	log.Info("job completed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("job completed consumer stopped")
				return
			}
			log.Error("fetch job completed message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, orders, log) {
			log.Info("job completed consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit job completed message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns false only when ctx ends before msg is handled.
func handleWithRetry(ctx context.Context, msg kafkago.Message, orders OrderDeliverer, log *zap.Logger) bool {
	wait := retryBackoff
	for attempt := 1; ; attempt++ {
		err := handleJobCompleted(ctx, msg, orders, log)
		if err == nil {
			return true
		}
		log.Warn("job completed message failed, retrying",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}

// handleJobCompleted returns an error only for failures worth retrying.
func handleJobCompleted(ctx context.Context, msg kafkago.Message, orders OrderDeliverer, log *zap.Logger) error {
	var event events.JobCompletedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode job_completed event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	fields := []zap.Field{
		zap.Int64("job_id", event.JobID),
		zap.Int64("order_id", event.OrderID),
		zap.String("request_id", event.RequestID),
	}

	delivered, err := orders.MarkDeliveredIfComplete(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, ordererrors.ErrOrderNotFound) {
			log.Warn("order for completed job no longer exists, skipping", fields...)
			return nil
		}
		return err
	}

	log.Info("job completed event handled", append(fields, zap.Bool("order_delivered", delivered))...)
	return nil
}

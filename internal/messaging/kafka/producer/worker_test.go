package producer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-erp/internal/messaging/kafka"
	kafkaMock "go-erp/internal/messaging/kafka/mock"
	"go-erp/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafkago.Message
	failFor  map[string]error
	written  chan struct{}
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{failFor: map[string]error{}, written: make(chan struct{}, 16)}
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		if err, ok := f.failFor[string(m.Key)]; ok {
			return err
		}
		f.messages = append(f.messages, m)
		f.written <- struct{}{}
	}
	return nil
}

func (f *fakeWriter) sent() []kafkago.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]kafkago.Message(nil), f.messages...)
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestWorker_ProcessPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := newFakeWriter()
	writer.failFor["8"] = errors.New("broker unavailable")

	events := []kafka.OutboxEvent{
		{ID: "e-1", RequestID: "rid-1", AggregateType: "job", AggregateID: "7", EventType: "job_completed", Topic: "logistics.job.completed", Payload: []byte(`{"job_id":7}`)},
		{ID: "e-2", AggregateType: "job", AggregateID: "8", EventType: "job_completed", Topic: "logistics.job.completed", Payload: []byte(`{"job_id":8}`)},
	}

	repo.EXPECT().ListPending(ctx, producer.DefaultBatchSize).Return(events, nil)
	repo.EXPECT().MarkSent(ctx, "e-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "e-2", "broker unavailable").Return(nil)

	w := producer.NewWorker(repo, writer, zap.NewNop(), time.Second)
	sent, err := w.ProcessPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	msgs := writer.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "logistics.job.completed", msgs[0].Topic)
	assert.Equal(t, "7", string(msgs[0].Key))
	assert.Equal(t, "job_completed", header(msgs[0], "event_type"))
	assert.Equal(t, "rid-1", header(msgs[0], "request_id"))
}

func TestWorker_ProcessPendingListError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(ctx, producer.DefaultBatchSize).Return(nil, errors.New("db down"))

	_, err := producer.NewWorker(repo, newFakeWriter(), zap.NewNop(), time.Second).ProcessPending(ctx)
	assert.EqualError(t, err, "db down")
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := newFakeWriter()

	var once sync.Once
	repo.EXPECT().
		ListPending(gomock.Any(), producer.DefaultBatchSize).
		DoAndReturn(func(context.Context, int) ([]kafka.OutboxEvent, error) {
			var out []kafka.OutboxEvent
			once.Do(func() {
				out = []kafka.OutboxEvent{{ID: "e-1", AggregateID: "1", Topic: "t", Payload: []byte("{}")}}
			})
			return out, nil
		}).
		MinTimes(1)
	repo.EXPECT().MarkSent(gomock.Any(), "e-1").Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.NewWorker(repo, writer, zap.NewNop(), 5*time.Millisecond).Run(ctx)
	}()

	select {
	case <-writer.written:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not publish")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

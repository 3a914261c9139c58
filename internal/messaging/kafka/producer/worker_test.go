package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-crm/internal/messaging/kafka"
	kafkamock "go-crm/internal/messaging/kafka/mock"
	"go-crm/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failOn  string
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == f.failOn {
			return errors.New("broker unavailable")
		}
		f.written = append(f.written, m)
	}
	return nil
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, nil)

		sent, err := producer.NewRelay(repo, &fakeWriter{}, 0, zap.NewNop()).Flush(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("marks each event sent or failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: "leave-2"}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "o1", AggregateType: kafka.AggregateLeave, AggregateID: "leave-1", EventType: "leave_applied", Topic: "t", Payload: []byte(`{}`), RequestID: "req-1"},
			{ID: "o2", AggregateType: kafka.AggregateLeave, AggregateID: "leave-2", EventType: "leave_applied", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "o1").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "o2", "broker unavailable").Return(nil)

		sent, err := producer.NewRelay(repo, writer, 0, zap.NewNop()).Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "leave-1", string(msg.Key))
		assert.Len(t, msg.Headers, 3)
		assert.Equal(t, "request_id", msg.Headers[2].Key)
	})

	t.Run("list error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkamock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

		_, err := producer.NewRelay(repo, &fakeWriter{}, 0, zap.NewNop()).Flush(ctx)
		assert.EqualError(t, err, "db down")
	})
}

package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-crm/internal/bootstrap"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka/consumer"
	"go-crm/internal/realtime"
	realtimemock "go-crm/internal/realtime/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// scriptedReader replays msgs then cancels the run.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: raw}
}

func TestRun_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("ok")},
			{Offset: 2, Value: []byte("retry")},
			{Offset: 3, Value: []byte("poison")},
		},
		cancel: cancel,
	}

	consumer.Run(ctx, reader, "test", func(_ context.Context, msg kafkago.Message) error {
		switch string(msg.Value) {
		case "retry":
			return errors.New("temporary")
		case "poison":
			return consumer.ErrSkip
		}
		return nil
	}, zap.NewNop())

	assert.Equal(t, []int64{1, 3}, reader.committed)
}

func TestLeaveLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("new request is broadcast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pub := realtimemock.NewMockPublisher(ctrl)
		pub.EXPECT().Broadcast(gomock.Any(), realtime.EventLeaveRequestReceived, map[string]string{
			"leaveId":   "l1",
			"userId":    "u1",
			"leaveType": "Sick",
			"status":    "Pending",
		}).Return(nil)

		err := consumer.LeaveLifecycle(pub)(ctx, message(t, 1, events.LeaveStatusChangedEvent{
			EventType: events.LeaveApplied, LeaveID: "l1", UserID: "u1", LeaveType: "Sick", Status: "Pending",
		}))
		assert.NoError(t, err)
	})

	t.Run("status change goes to the applicant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pub := realtimemock.NewMockPublisher(ctrl)
		pub.EXPECT().EmitToUser(gomock.Any(), "u1", realtime.EventLeaveStatusUpdate, map[string]string{
			"leaveId": "l1",
			"status":  "Approved",
		}).Return(nil)

		err := consumer.LeaveLifecycle(pub)(ctx, message(t, 1, events.LeaveStatusChangedEvent{
			EventType: events.LeaveStatusChanged, LeaveID: "l1", UserID: "u1", Status: "Approved",
		}))
		assert.NoError(t, err)
	})

	t.Run("garbage is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pub := realtimemock.NewMockPublisher(ctrl)

		err := consumer.LeaveLifecycle(pub)(ctx, kafkago.Message{Value: []byte("{")})
		assert.ErrorIs(t, err, consumer.ErrSkip)

		err = consumer.LeaveLifecycle(pub)(ctx, message(t, 2, events.LeaveStatusChangedEvent{EventType: "other"}))
		assert.ErrorIs(t, err, consumer.ErrSkip)
	})
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestSubscriptionAudit(t *testing.T) {
	audit := &recordingAudit{}
	err := consumer.SubscriptionAudit(audit)(context.Background(), message(t, 1, events.SubscriptionLifecycleEvent{
		EventType:        events.SubscriptionPlanChanged,
		SubscriptionID:   "s1",
		Number:           "SUB-0007",
		PlanName:         "Gold",
		PreviousPlanName: "Silver",
		Status:           "Active",
		OccurredAt:       time.Now(),
	}))
	require.NoError(t, err)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "SUBSCRIPTION_PLAN_CHANGED", audit.entries[0].Action)
	assert.Equal(t, "Silver", audit.entries[0].Meta["previous_plan"])
	assert.NotContains(t, audit.entries[0].Meta, "changed_by")
}

package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-crm/internal/realtime"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEnvelopeJSON(t *testing.T, room, event string, data any) string {
	t.Helper()
	env, err := realtime.NewEnvelope(room, event, data)
	require.NoError(t, err)
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	return string(raw)
}

func TestRedisPublisher_EmitToUser(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"message": "Leave Fully Approved"}

	t.Run("publishes room envelope", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		pub := realtime.NewRedisPublisher(rdb, "")

		mock.ExpectPublish(realtime.DefaultChannel, mustEnvelopeJSON(t, "user-1", realtime.EventAlertReceived, payload)).SetVal(1)

		err := pub.EmitToUser(ctx, "user-1", realtime.EventAlertReceived, payload)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty user is a no-op", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		pub := realtime.NewRedisPublisher(rdb, "")

		assert.NoError(t, pub.EmitToUser(ctx, "", realtime.EventAlertReceived, payload))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		pub := realtime.NewRedisPublisher(rdb, "events")

		mock.ExpectPublish("events", mustEnvelopeJSON(t, "user-1", realtime.EventAlertReceived, payload)).SetErr(errors.New("redis down"))

		err := pub.EmitToUser(ctx, "user-1", realtime.EventAlertReceived, payload)
		assert.EqualError(t, err, "redis down")
	})
}

func TestRedisPublisher_Broadcast(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	pub := realtime.NewRedisPublisher(rdb, "")
	payload := map[string]string{"userId": "u1", "presence": "away"}

	mock.ExpectPublish(realtime.DefaultChannel, mustEnvelopeJSON(t, "", realtime.EventPresenceUpdated, payload)).SetVal(2)

	assert.NoError(t, pub.Broadcast(context.Background(), realtime.EventPresenceUpdated, payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopPublisher(t *testing.T) {
	var p realtime.Publisher = realtime.NopPublisher{}
	assert.NoError(t, p.EmitToUser(context.Background(), "u", "e", nil))
	assert.NoError(t, p.Broadcast(context.Background(), "e", nil))
}

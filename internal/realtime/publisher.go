package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	EventAlertReceived        = "alert_received"
	EventNewNotification      = "new_notification"
	EventPresenceUpdated      = "presence_updated"
	EventLeaveStatusUpdate    = "leave_status_update"
	EventLeaveRequestReceived = "leave_request_received"
	EventNewMessage           = "new_message"
	EventTyping               = "typing"

	DefaultChannel = "crm:realtime"
)

// Envelope is the unit fanned out to socket clients. An empty Room means every client.
type Envelope struct {
	Room  string          `json:"room,omitempty"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	EmitToUser(ctx context.Context, userID, event string, data any) error
	Broadcast(ctx context.Context, event string, data any) error
}

func NewEnvelope(room, event string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", event, err)
	}
	return Envelope{Room: room, Event: event, Data: raw}, nil
}

// NopPublisher drops every event. Used where no realtime layer is configured.
type NopPublisher struct{}

func (NopPublisher) EmitToUser(context.Context, string, string, any) error { return nil }
func (NopPublisher) Broadcast(context.Context, string, any) error { return nil }

// RedisPublisher publishes envelopes on a Redis channel so any process can
// reach sockets held by the API process.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisPublisher(rdb *redis.Client, channel string, logger ...*zap.Logger) *RedisPublisher {
	l := zap.L().Named("realtime.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.publisher")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel, logger: l}
}

func (p *RedisPublisher) EmitToUser(ctx context.Context, userID, event string, data any) error {
	if userID == "" {
		return nil
	}
	return p.publish(ctx, userID, event, data)
}

func (p *RedisPublisher) Broadcast(ctx context.Context, event string, data any) error {
	return p.publish(ctx, "", event, data)
}

func (p *RedisPublisher) publish(ctx context.Context, room, event string, data any) error {
	env, err := NewEnvelope(room, event, data)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, p.channel, string(raw)).Err(); err != nil {
		p.logger.Warn("realtime publish failed",
			zap.String("event", event),
			zap.String("room", room),
			zap.Error(err),
		)
		return err
	}
	p.logger.Debug("realtime event published", zap.String("event", event), zap.String("room", room))
	return nil
}

// Deliverer receives envelopes read off the Redis channel.
type Deliverer interface {
	Deliver(env Envelope)
}

// Subscribe forwards envelopes from channel to d until ctx is done.
func Subscribe(ctx context.Context, rdb *redis.Client, channel string, d Deliverer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("realtime.subscriber")
	if channel == "" {
		channel = DefaultChannel
	}

	pubsub := rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	log.Info("subscribed to realtime channel", zap.String("channel", channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var env Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Warn("decode realtime envelope failed", zap.Error(err))
				continue
			}
			d.Deliver(env)
		}
	}
}

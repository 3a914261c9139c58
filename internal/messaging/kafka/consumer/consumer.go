package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrSkip marks a message that can never be processed. It is committed and dropped.
var ErrSkip = errors.New("skip message")

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type HandleFunc func(ctx context.Context, msg kafkago.Message) error

// Run fetches messages until ctx is cancelled. A message is committed once
// handle succeeds or returns ErrSkip; any other error leaves it uncommitted
// so the group redelivers it after a rebalance.
func Run(ctx context.Context, reader MessageReader, name string, handle HandleFunc, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer." + name)
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrSkip) {
				log.Error("handle message failed",
					zap.String("event_type", header(msg, "event_type")),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("message skipped", zap.Int64("offset", msg.Offset), zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func decode(msg kafkago.Message, v any) error {
	if err := json.Unmarshal(msg.Value, v); err != nil {
		return errors.Join(ErrSkip, err)
	}
	return nil
}

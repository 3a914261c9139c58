package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-crm/internal/bootstrap"
	"go-crm/internal/config"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka/consumer"
	"go-crm/internal/realtime"
	"go-crm/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newReader(cfg *config.Config, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          topic,
		GroupID:        cfg.KafkaConsumerGroup + "-" + group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer forwards leave events to the websocket gateway and writes
// subscription events to the audit log.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.RedisPassword, connectRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	publisher := realtime.NewRedisPublisher(rdb, realtime.DefaultChannel)
	audit := bootstrap.NewStdoutAuditLogger()

	leaveReader := newReader(cfg, events.LeaveLifecycleTopic, "leave-realtime")
	defer leaveReader.Close()
	subscriptionReader := newReader(cfg, events.SubscriptionLifecycleTopic, "subscription-audit")
	defer subscriptionReader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.Run(ctx, leaveReader, "leave_lifecycle", consumer.LeaveLifecycle(publisher), logger)
		return nil
	})
	g.Go(func() error {
		consumer.Run(ctx, subscriptionReader, "subscription_audit", consumer.SubscriptionAudit(audit), logger)
		return nil
	})

	err = g.Wait()
	logger.Info("consumer shutting down")
	return err
}

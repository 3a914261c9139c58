package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-crm/internal/account"
	"go-crm/internal/alert"
	"go-crm/internal/brandservice"
	"go-crm/internal/config"
	"go-crm/internal/events"
	"go-crm/internal/leave"
	"go-crm/internal/messages"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/messaging/kafka/producer"
	"go-crm/internal/notification"
	"go-crm/internal/realtime"
	"go-crm/internal/scheduler"
	"go-crm/internal/shared/connection"
	"go-crm/internal/shared/counter"
	"go-crm/internal/subscription"
	"go-crm/internal/user"
	"go-crm/internal/worksession"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunWorker relays the outbox to Kafka and runs the periodic jobs until a
// termination signal arrives.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")
	messages.Init(cfg.DefaultLocale)

	in, err := Connect(cfg, true)
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	publisher := realtime.NewRedisPublisher(in.Redis, realtime.DefaultChannel)
	alerts := alert.NewService(alert.NewRepository(in.Mongo.DB), publisher)
	notifier := notification.NewService(notification.NewRepository(in.Mongo.DB), publisher)
	var outbox kafka.OutboxRepository
	if cfg.KafkaBroker != "" {
		outbox = kafka.NewOutboxRepository(in.DB)
	}

	subscriptions := subscription.NewService(in.DB, subscription.NewRepository(in.GormDB), subscription.Deps{
		Catalog:  brandservice.NewRepository(in.GormDB),
		Accounts: account.NewRepository(in.GormDB),
		Clients:  user.NewRepository(in.GormDB),
		Counter:  counter.NewRepository(in.GormDB),
		Outbox:   outbox,
		Alerts:   alerts,
		Redis:    in.Redis,
		Location: cfg.Timezone,
	})
	sessions := worksession.NewService(in.DB, worksession.NewRepository(in.GormDB), worksession.Deps{
		Leaves:   leave.NewRepository(in.GormDB),
		Alerts:   alerts,
		Notifier: notifier,
		Location: cfg.Timezone,
	})

	g, ctx := errgroup.WithContext(ctx)

	if cfg.KafkaBroker != "" {
		if err := connection.EnsureKafkaTopics(cfg.KafkaBroker, events.LeaveLifecycleTopic, events.SubscriptionLifecycleTopic); err != nil {
			logger.Warn("ensure kafka topics failed", zap.Error(err))
		}
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
		if err != nil {
			return err
		}
		defer writer.Close()

		relay := producer.NewRelay(outbox, writer, 0, logger)
		g.Go(func() error {
			relay.Run(ctx)
			return nil
		})
	} else {
		logger.Warn("KAFKA_BROKER not set, outbox relay disabled")
	}

	processor := scheduler.NewProcessor(subscriptions, sessions, logger)
	g.Go(func() error {
		return scheduler.Run(ctx, asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}, cfg.Timezone, processor, logger)
	})

	err = g.Wait()
	logger.Info("worker shutting down")
	return err
}

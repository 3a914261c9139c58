package producer

import (
	"context"
	"time"

	"go-crm/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize     = 50
	purgeInterval = time.Hour
	sentRetention = 7 * 24 * time.Hour
)

// Relay moves pending outbox rows to Kafka. Rows that fail to publish are
// marked failed and retried later by the repository's backoff. Sent rows are
// purged after a week.
type Relay struct {
	repo     kafka.OutboxRepository
	writer   MessageWriter
	interval time.Duration
	logger   *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, interval time.Duration, logger *zap.Logger) *Relay {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Relay{
		repo:     repo,
		writer:   writer,
		interval: interval,
		logger:   logger.Named("kafka.producer.relay"),
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	r.logger.Info("outbox relay started", zap.Duration("poll_interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil {
				r.logger.Error("flush outbox failed", zap.Error(err))
			}
		case now := <-purge.C:
			n, err := r.repo.PurgeSent(ctx, now.Add(-sentRetention))
			if err != nil {
				r.logger.Warn("purge sent outbox rows failed", zap.Error(err))
				continue
			}
			if n > 0 {
				r.logger.Info("purged sent outbox rows", zap.Int64("count", n))
			}
		}
	}
}

// Flush publishes one batch and reports how many rows were sent.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	pending, err := r.repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	sent := 0
	for _, event := range pending {
		if err := publishEvent(ctx, r.writer, event); err != nil {
			r.logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = r.repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}
		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.logger.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
	}

	r.logger.Info("outbox batch flushed", zap.Int("pending", len(pending)), zap.Int("sent", sent))
	return sent, nil
}

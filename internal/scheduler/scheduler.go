package scheduler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Entry is one cron registration.
type Entry struct {
	Spec     string
	TaskType string
	Timeout  time.Duration
}

// DefaultEntries are interpreted in the scheduler's location.
var DefaultEntries = []Entry{
	{Spec: "0 9 * * *", TaskType: TypeRenewalReminder, Timeout: 5 * time.Minute},
	{Spec: "*/10 * * * *", TaskType: TypeOvertimeCheck, Timeout: time.Minute},
}

// Registrar is what *asynq.Scheduler offers for cron registration.
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// Register adds every entry to r. A periodic task is unique for its own
// interval so a slow run never stacks up copies of itself.
func Register(r Registrar, entries []Entry, logger *zap.Logger) error {
	for _, e := range entries {
		opts := []asynq.Option{asynq.Queue(queueDefault), asynq.MaxRetry(2)}
		if e.Timeout > 0 {
			opts = append(opts, asynq.Timeout(e.Timeout), asynq.Unique(e.Timeout))
		}
		id, err := r.Register(e.Spec, asynq.NewTask(e.TaskType, nil), opts...)
		if err != nil {
			return err
		}
		logger.Info("periodic task registered",
			zap.String("entry_id", id),
			zap.String("task", e.TaskType),
			zap.String("spec", e.Spec),
		)
	}
	return nil
}

// Run starts the cron scheduler and the task server on the same Redis and
// blocks until ctx is cancelled.
func Run(ctx context.Context, redis asynq.RedisClientOpt, loc *time.Location, p *Processor, logger *zap.Logger) error {
	log := logger.Named("scheduler")

	sched := asynq.NewScheduler(redis, &asynq.SchedulerOpts{Location: loc})
	if err := Register(sched, DefaultEntries, log); err != nil {
		return err
	}

	srv := asynq.NewServer(redis, asynq.Config{
		Concurrency: 4,
		Queues:      map[string]int{queueDefault: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Error("task failed", zap.String("task", task.Type()), zap.Error(err))
		}),
	})

	if err := sched.Start(); err != nil {
		return err
	}
	if err := srv.Start(p.Mux()); err != nil {
		sched.Shutdown()
		return err
	}
	log.Info("scheduler started", zap.String("timezone", loc.String()))

	<-ctx.Done()
	srv.Shutdown()
	sched.Shutdown()
	log.Info("scheduler stopped")
	return nil
}

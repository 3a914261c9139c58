// Package scheduler runs the periodic jobs of the CRM on asynq.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeRenewalReminder = "subscription:renewal_reminder"
	TypeOvertimeCheck   = "worksession:overtime_check"

	queueDefault = "default"
)

type RenewalReminder interface {
	SendRenewalReminders(ctx context.Context) (int, error)
}

type OvertimeChecker interface {
	CheckOvertime(ctx context.Context) (int, error)
}

type Processor struct {
	renewals RenewalReminder
	overtime OvertimeChecker
	logger   *zap.Logger
}

func NewProcessor(renewals RenewalReminder, overtime OvertimeChecker, logger ...*zap.Logger) *Processor {
	l := zap.L().Named("scheduler.processor")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("scheduler.processor")
	}
	return &Processor{renewals: renewals, overtime: overtime, logger: l}
}

func (p *Processor) HandleRenewalReminder(ctx context.Context, t *asynq.Task) error {
	started := time.Now()
	sent, err := p.renewals.SendRenewalReminders(ctx)
	if err != nil {
		p.logger.Error("renewal reminder run failed", zap.Error(err))
		return fmt.Errorf("renewal reminders: %w", err)
	}
	p.logger.Info("renewal reminder run success", zap.Int("sent", sent), zap.Duration("took", time.Since(started)))
	return nil
}

// HandleOvertimeCheck is not retried. The next tick covers whatever a failed
// run missed.
func (p *Processor) HandleOvertimeCheck(ctx context.Context, t *asynq.Task) error {
	warned, err := p.overtime.CheckOvertime(ctx)
	if err != nil {
		p.logger.Error("overtime check failed", zap.Error(err))
		return fmt.Errorf("overtime check: %v: %w", err, asynq.SkipRetry)
	}
	if warned > 0 {
		p.logger.Info("overtime check success", zap.Int("warned", warned))
	}
	return nil
}

func (p *Processor) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRenewalReminder, p.HandleRenewalReminder)
	mux.HandleFunc(TypeOvertimeCheck, p.HandleOvertimeCheck)
	return mux
}

package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"go-crm/internal/scheduler"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRenewals struct {
	SendFn func(ctx context.Context) (int, error)
}

func (f fakeRenewals) SendRenewalReminders(ctx context.Context) (int, error) { return f.SendFn(ctx) }

type fakeOvertime struct {
	CheckFn func(ctx context.Context) (int, error)
}

func (f fakeOvertime) CheckOvertime(ctx context.Context) (int, error) { return f.CheckFn(ctx) }

type recordingRegistrar struct {
	specs map[string]string
}

func (r *recordingRegistrar) Register(spec string, task *asynq.Task, opts ...asynq.Option) (string, error) {
	r.specs[task.Type()] = spec
	return "id-" + task.Type(), nil
}

func TestProcessor_HandleRenewalReminder(t *testing.T) {
	calls := 0
	p := scheduler.NewProcessor(fakeRenewals{SendFn: func(context.Context) (int, error) {
		calls++
		return 3, nil
	}}, nil, zap.NewNop())

	err := p.HandleRenewalReminder(context.Background(), asynq.NewTask(scheduler.TypeRenewalReminder, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	failing := scheduler.NewProcessor(fakeRenewals{SendFn: func(context.Context) (int, error) {
		return 0, errors.New("redis down")
	}}, nil, zap.NewNop())
	err = failing.HandleRenewalReminder(context.Background(), asynq.NewTask(scheduler.TypeRenewalReminder, nil))
	assert.ErrorContains(t, err, "redis down")
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessor_HandleOvertimeCheck(t *testing.T) {
	p := scheduler.NewProcessor(nil, fakeOvertime{CheckFn: func(context.Context) (int, error) {
		return 0, errors.New("db down")
	}}, zap.NewNop())

	err := p.HandleOvertimeCheck(context.Background(), asynq.NewTask(scheduler.TypeOvertimeCheck, nil))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	ok := scheduler.NewProcessor(nil, fakeOvertime{CheckFn: func(context.Context) (int, error) {
		return 2, nil
	}}, zap.NewNop())
	assert.NoError(t, ok.HandleOvertimeCheck(context.Background(), asynq.NewTask(scheduler.TypeOvertimeCheck, nil)))
}

func TestRegister(t *testing.T) {
	r := &recordingRegistrar{specs: map[string]string{}}
	require.NoError(t, scheduler.Register(r, scheduler.DefaultEntries, zap.NewNop()))

	assert.Equal(t, "0 9 * * *", r.specs[scheduler.TypeRenewalReminder])
	assert.Equal(t, "*/10 * * * *", r.specs[scheduler.TypeOvertimeCheck])
}

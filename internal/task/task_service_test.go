package task_test

import (
	"context"
	"errors"
	"testing"

	"go-crm/internal/alert"
	alertmock "go-crm/internal/alert/mock"
	"go-crm/internal/task"
	taskerrors "go-crm/internal/task/errors"
	taskmock "go-crm/internal/task/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupTaskService(t *testing.T) (*taskmock.MockRepository, *alertmock.MockDispatcher, task.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := taskmock.NewMockRepository(ctrl)
	alerts := alertmock.NewMockDispatcher(ctrl)
	return repo, alerts, task.NewService(repo, alerts)
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	assignee := uuid.New()
	assigner := uuid.New()

	t.Run("defaults status and alerts the assignee", func(t *testing.T) {
		repo, alerts, svc := setupTaskService(t)

		var created *task.Task
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
			assert.Equal(t, task.StatusToDo, tk.Status)
			assert.Equal(t, assigner, *tk.AssignedBy)
			assert.False(t, tk.AssignedDate.IsZero())
			created = tk
			return nil
		})
		alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, assignee.String(), in.UserID)
			assert.Equal(t, "New task assigned: Write copy", in.Message)
			assert.Equal(t, alert.TypeTask, in.Type)
		})
		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string) (*task.Task, error) {
			return created, nil
		})

		res, err := svc.Create(ctx, task.CreateTaskRequest{
			Title:      "Write copy",
			AssignedTo: assignee.String(),
		}, assigner.String())

		require.NoError(t, err)
		assert.Equal(t, "Write copy", res.Title)
		assert.Equal(t, assignee.String(), res.AssignedTo.ID)
		assert.Empty(t, res.Attachments)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, _, svc := setupTaskService(t)
		_, err := svc.Create(ctx, task.CreateTaskRequest{
			Title:      "Write copy",
			AssignedTo: assignee.String(),
			Status:     "Done",
		}, assigner.String())
		assert.ErrorIs(t, err, taskerrors.ErrInvalidStatus)
	})

	t.Run("rejects malformed account reference", func(t *testing.T) {
		_, _, svc := setupTaskService(t)
		_, err := svc.Create(ctx, task.CreateTaskRequest{
			Title:      "Write copy",
			AssignedTo: assignee.String(),
			AccountID:  "nope",
		}, assigner.String())
		assert.ErrorIs(t, err, taskerrors.ErrInvalidReference)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	assigner := uuid.New()

	t.Run("keeps assigner and alerts with fallback title", func(t *testing.T) {
		repo, alerts, svc := setupTaskService(t)
		existing := &task.Task{ID: id, Title: "Old", AssignedTo: uuid.New(), AssignedBy: &assigner, Status: task.StatusToDo}

		empty := ""
		status := task.StatusReview
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
			assert.Equal(t, assigner, *tk.AssignedBy)
			assert.Equal(t, task.StatusReview, tk.Status)
			return nil
		})
		alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, "Task updated: Untitled Task", in.Message)
		})

		_, err := svc.Update(ctx, id.String(), task.UpdateTaskRequest{Title: &empty, Status: &status})
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, svc := setupTaskService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id.String(), task.UpdateTaskRequest{})
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_GetAll(t *testing.T) {
	repo, _, svc := setupTaskService(t)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f task.Filter) ([]task.Task, int64, error) {
		assert.Equal(t, 100, f.Limit)
		assert.Equal(t, 200, f.Offset)
		assert.Equal(t, "logo", f.Search)
		return []task.Task{{ID: uuid.New(), Title: "Logo"}}, 201, nil
	})

	res, total, err := svc.GetAll(context.Background(), task.ListQuery{Page: 3, Search: "  logo "})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.EqualValues(t, 201, total)
}

func TestTaskService_Delete(t *testing.T) {
	id := uuid.NewString()

	t.Run("not found", func(t *testing.T) {
		repo, _, svc := setupTaskService(t)
		repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.Delete(context.Background(), id), taskerrors.ErrTaskNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo, _, svc := setupTaskService(t)
		boom := errors.New("boom")
		repo.EXPECT().Delete(gomock.Any(), id).Return(boom)
		assert.ErrorIs(t, svc.Delete(context.Background(), id), boom)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, svc := setupTaskService(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "x"), taskerrors.ErrInvalidTaskID)
	})
}

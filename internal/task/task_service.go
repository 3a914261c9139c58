package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-crm/internal/alert"
	"go-crm/internal/messages"
	taskerrors "go-crm/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultPageSize = 100

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q ListQuery) ([]TaskResponse, int64, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	Create(ctx context.Context, req CreateTaskRequest, assignedBy string) (TaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	alerts alert.Dispatcher
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, alerts alert.Dispatcher, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, alerts: alerts, now: time.Now, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}
	return err
}

// optionalID treats the empty string as "no reference".
func optionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, taskerrors.ErrInvalidReference
	}
	return &id, nil
}

func displayTitle(t *Task) string {
	if strings.TrimSpace(t.Title) == "" {
		return "Untitled Task"
	}
	return t.Title
}

func (s *service) notifyAssignee(ctx context.Context, t *Task, msgID string) {
	if s.alerts == nil {
		return
	}
	s.alerts.Send(ctx, alert.Input{
		UserID:  t.AssignedTo.String(),
		Message: messages.T(ctx, msgID, map[string]any{"Title": displayTitle(t)}),
		Type:    alert.TypeTask,
		RefID:   t.ID.String(),
	})
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]TaskResponse, int64, error) {
	size := q.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	tasks, total, err := s.repo.List(ctx, Filter{
		AssignedTo: q.AssignedTo,
		AssignedBy: q.AssignedBy,
		Status:     q.Status,
		AccountID:  q.AccountID,
		ServiceID:  q.ServiceID,
		Search:     strings.TrimSpace(q.Search),
		From:       q.From,
		To:         q.To,
		Limit:      size,
		Offset:     (page - 1) * size,
	})
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, 0, err
	}

	res := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		res = append(res, mapToResponse(&tasks[i]))
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(t), nil
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest, assignedBy string) (TaskResponse, error) {
	s.logger.Debug("create task requested", zap.String("assigned_to", req.AssignedTo))

	assignee, err := uuid.Parse(req.AssignedTo)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidReference
	}
	assigner, err := optionalID(assignedBy)
	if err != nil {
		return TaskResponse{}, err
	}
	accountID, err := optionalID(req.AccountID)
	if err != nil {
		return TaskResponse{}, err
	}
	serviceID, err := optionalID(req.ServiceID)
	if err != nil {
		return TaskResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusToDo
	}
	if !IsValidStatus(status) {
		s.logger.Warn("create task rejected: invalid status", zap.String("status", status))
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}

	assignedDate := s.now()
	if req.AssignedDate != nil {
		assignedDate = *req.AssignedDate
	}

	t := &Task{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		AssignedTo:   assignee,
		AssignedBy:   assigner,
		AccountID:    accountID,
		ServiceID:    serviceID,
		Status:       status,
		AssignedDate: assignedDate,
		DueDate:      req.DueDate,
		Attachments:  req.Attachments,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task failed", zap.Error(err))
		return TaskResponse{}, err
	}

	s.notifyAssignee(ctx, t, messages.TaskAssigned)

	s.logger.Info("create task success", zap.String("task_id", t.ID.String()))
	return s.GetByID(ctx, t.ID.String())
}

// Update never touches AssignedBy.
func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	s.logger.Debug("update task requested", zap.String("task_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.AssignedTo != nil {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidReference
		}
		t.AssignedTo = assignee
		t.Assignee = nil
	}
	if req.AccountID != nil {
		if t.AccountID, err = optionalID(*req.AccountID); err != nil {
			return TaskResponse{}, err
		}
		t.Account = nil
	}
	if req.ServiceID != nil {
		if t.ServiceID, err = optionalID(*req.ServiceID); err != nil {
			return TaskResponse{}, err
		}
		t.Service = nil
	}
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return TaskResponse{}, taskerrors.ErrInvalidStatus
		}
		t.Status = *req.Status
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.Attachments != nil {
		t.Attachments = *req.Attachments
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update task failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, err
	}

	s.notifyAssignee(ctx, t, messages.TaskUpdated)

	s.logger.Info("update task success", zap.String("task_id", id))
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskerrors.ErrTaskNotFound
		}
		s.logger.Error("delete task failed", zap.String("task_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete task success", zap.String("task_id", id))
	return nil
}

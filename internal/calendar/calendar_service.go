package calendar

import (
	"context"
	"errors"
	"strings"

	"go-crm/internal/alert"
	calendarerrors "go-crm/internal/calendar/errors"
	"go-crm/internal/messages"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const untitledEvent = "Untitled Event"

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, userID string) ([]EventResponse, error)
	Create(ctx context.Context, req EventRequest, userID, role string) (EventResponse, error)
	Update(ctx context.Context, id string, req EventRequest, userID string) (EventResponse, error)
	Delete(ctx context.Context, id, userID string) error
}

type service struct {
	repo   Repository
	alerts alert.Dispatcher
	logger *zap.Logger
}

func NewService(repo Repository, alerts alert.Dispatcher, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, alerts: alerts, logger: l}
}

func optionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, calendarerrors.ErrInvalidReference
	}
	return &id, nil
}

func displayTitle(e *Event) string {
	if strings.TrimSpace(e.Title) == "" {
		return untitledEvent
	}
	return e.Title
}

// apply copies req onto e, replacing every editable field.
func apply(e *Event, req EventRequest) error {
	if req.End != nil && req.End.Before(req.Start) {
		return calendarerrors.ErrInvalidRange
	}
	accountID, err := optionalID(req.AccountID)
	if err != nil {
		return err
	}
	serviceID, err := optionalID(req.ServiceID)
	if err != nil {
		return err
	}
	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.Start = req.Start
	e.End = req.End
	e.AllDay = req.AllDay
	e.AccountID, e.Account = accountID, nil
	e.ServiceID, e.Service = serviceID, nil
	return nil
}

func (s *service) notify(ctx context.Context, userID, refID, msgID, title string) {
	if s.alerts == nil {
		return
	}
	s.alerts.Send(ctx, alert.Input{
		UserID:  userID,
		Message: messages.T(ctx, msgID, map[string]any{"Title": title}),
		Type:    alert.TypeEvent,
		RefID:   refID,
	})
}

func (s *service) GetAll(ctx context.Context, userID string) ([]EventResponse, error) {
	events, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list events failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	res := make([]EventResponse, 0, len(events))
	for i := range events {
		res = append(res, mapToResponse(&events[i]))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, req EventRequest, userID, role string) (EventResponse, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return EventResponse{}, calendarerrors.ErrInvalidReference
	}

	e := &Event{ID: uuid.New(), UserID: owner, Role: role}
	if err := apply(e, req); err != nil {
		return EventResponse{}, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create event failed", zap.String("user_id", userID), zap.Error(err))
		return EventResponse{}, err
	}

	created, err := s.repo.FindForUser(ctx, e.ID.String(), userID)
	if err != nil {
		return EventResponse{}, err
	}
	s.notify(ctx, userID, e.ID.String(), messages.EventCreated, displayTitle(created))

	s.logger.Info("create event success", zap.String("event_id", e.ID.String()))
	return mapToResponse(created), nil
}

func (s *service) Update(ctx context.Context, id string, req EventRequest, userID string) (EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EventResponse{}, calendarerrors.ErrInvalidEventID
	}
	e, err := s.repo.FindForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventResponse{}, calendarerrors.ErrEventNotFound
		}
		return EventResponse{}, err
	}

	if err := apply(e, req); err != nil {
		return EventResponse{}, err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update event failed", zap.String("event_id", id), zap.Error(err))
		return EventResponse{}, err
	}

	updated, err := s.repo.FindForUser(ctx, id, userID)
	if err != nil {
		return EventResponse{}, err
	}
	s.notify(ctx, userID, id, messages.EventUpdated, displayTitle(updated))

	s.logger.Info("update event success", zap.String("event_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return calendarerrors.ErrInvalidEventID
	}
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendarerrors.ErrEventNotFound
		}
		s.logger.Error("delete event failed", zap.String("event_id", id), zap.Error(err))
		return err
	}

	s.notify(ctx, userID, "", messages.EventDeleted, "")
	s.logger.Info("delete event success", zap.String("event_id", id))
	return nil
}

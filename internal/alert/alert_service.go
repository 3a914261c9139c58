package alert

import (
	"context"
	"errors"
	"time"

	alerterrors "go-crm/internal/alert/errors"
	"go-crm/internal/realtime"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// Dispatcher sends alerts on behalf of other modules. Send never fails the caller.
//
//go:generate mockgen -source=alert_service.go -destination=mock/alert_service_mock.go -package=mock
type Dispatcher interface {
	Send(ctx context.Context, in Input)
	HasAlertForRef(ctx context.Context, userID, refID, alertType string) (bool, error)
}

type Service interface {
	Dispatcher
	List(ctx context.Context, userID string) ([]AlertResponse, error)
	MarkRead(ctx context.Context, id string) (AlertResponse, error)
	MarkAllRead(ctx context.Context, userID string) (CountResponse, error)
	Clear(ctx context.Context, userID string) (CountResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher realtime.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("alert.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("alert.service")
	}
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func (s *service) Send(ctx context.Context, in Input) {
	if in.UserID == "" || in.Message == "" {
		s.logger.Debug("alert skipped, no recipient or message", zap.String("type", in.Type))
		return
	}
	if in.Type == "" {
		in.Type = TypeGeneral
	}

	a := &Alert{
		UserID:    in.UserID,
		Message:   in.Message,
		Type:      in.Type,
		RefID:     in.RefID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("persist alert failed",
			zap.String("user_id", in.UserID),
			zap.String("type", in.Type),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.EmitToUser(ctx, in.UserID, realtime.EventAlertReceived, mapToResponse(*a)); err != nil {
		s.logger.Warn("emit alert failed", zap.String("user_id", in.UserID), zap.Error(err))
	}
	s.logger.Debug("alert sent", zap.String("user_id", in.UserID), zap.String("type", in.Type))
}

func (s *service) HasAlertForRef(ctx context.Context, userID, refID, alertType string) (bool, error) {
	return s.repo.ExistsForRef(ctx, userID, refID, alertType)
}

func (s *service) List(ctx context.Context, userID string) ([]AlertResponse, error) {
	if userID == "" {
		return nil, alerterrors.ErrUserIDRequired
	}
	alerts, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list alerts failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(alerts), nil
}

func (s *service) MarkRead(ctx context.Context, id string) (AlertResponse, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return AlertResponse{}, alerterrors.ErrInvalidAlertID
	}
	a, err := s.repo.MarkRead(ctx, oid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AlertResponse{}, alerterrors.ErrAlertNotFound
		}
		return AlertResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) (CountResponse, error) {
	if userID == "" {
		return CountResponse{}, alerterrors.ErrUserIDRequired
	}
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return CountResponse{}, err
	}
	s.logger.Info("alerts marked read", zap.String("user_id", userID), zap.Int64("count", n))
	return CountResponse{Affected: n}, nil
}

func (s *service) Clear(ctx context.Context, userID string) (CountResponse, error) {
	if userID == "" {
		return CountResponse{}, alerterrors.ErrUserIDRequired
	}
	n, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return CountResponse{}, err
	}
	s.logger.Info("alerts cleared", zap.String("user_id", userID), zap.Int64("count", n))
	return CountResponse{Affected: n}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return alerterrors.ErrInvalidAlertID
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return alerterrors.ErrAlertNotFound
		}
		return err
	}
	return nil
}

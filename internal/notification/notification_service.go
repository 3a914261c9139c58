package notification

import (
	"context"
	"errors"
	"time"

	notificationerrors "go-crm/internal/notification/errors"
	"go-crm/internal/realtime"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

const latestLimit = 50

// Notifier is the best-effort entry point other modules use.
//
//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, in Input)
}

type Service interface {
	Notifier
	Latest(ctx context.Context, userID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, ids []string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher realtime.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func (s *service) Notify(ctx context.Context, in Input) {
	if in.UserID == "" {
		return
	}
	if in.Type == "" {
		in.Type = TypeInfo
	}
	n := &Notification{
		UserID:    in.UserID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		RefID:     in.RefID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("persist notification failed", zap.String("user_id", in.UserID), zap.Error(err))
		return
	}
	if err := s.publisher.EmitToUser(ctx, in.UserID, realtime.EventNewNotification, mapToResponse(*n)); err != nil {
		s.logger.Warn("emit notification failed", zap.String("user_id", in.UserID), zap.Error(err))
	}
}

func (s *service) Latest(ctx context.Context, userID string) ([]NotificationResponse, error) {
	items, err := s.repo.Latest(ctx, userID, latestLimit)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	res := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		res = append(res, mapToResponse(n))
	}
	return res, nil
}

func (s *service) MarkRead(ctx context.Context, ids []string) (int64, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return 0, notificationerrors.ErrInvalidNotificationID
		}
		oids = append(oids, oid)
	}
	return s.repo.MarkRead(ctx, oids)
}

func (s *service) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notificationerrors.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

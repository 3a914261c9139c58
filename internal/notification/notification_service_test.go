package notification_test

import (
	"context"
	"errors"
	"testing"

	"go-crm/internal/notification"
	notificationerrors "go-crm/internal/notification/errors"
	notificationmock "go-crm/internal/notification/mock"
	"go-crm/internal/realtime"
	realtimemock "go-crm/internal/realtime/mock"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and emits new_notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := notificationmock.NewMockRepository(ctrl)
		pub := realtimemock.NewMockPublisher(ctrl)
		svc := notification.NewService(repo, pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, notification.TypeStopWorkWarning, n.Type)
			assert.Equal(t, "session-1", n.RefID)
			return nil
		})
		pub.EXPECT().EmitToUser(gomock.Any(), "u1", realtime.EventNewNotification, gomock.Any()).Return(nil)

		svc.Notify(ctx, notification.Input{UserID: "u1", Title: "t", Message: "m", Type: notification.TypeStopWorkWarning, RefID: "session-1"})
	})

	t.Run("persist failure does not emit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := notificationmock.NewMockRepository(ctrl)
		pub := realtimemock.NewMockPublisher(ctrl)
		svc := notification.NewService(repo, pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		svc.Notify(ctx, notification.Input{UserID: "u1", Message: "m"})
	})
}

func TestNotificationService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := notificationmock.NewMockRepository(ctrl)
	svc := notification.NewService(repo, nil)

	repo.EXPECT().Latest(gomock.Any(), "u1", int64(50)).Return([]notification.Notification{{ID: bson.NewObjectID(), UserID: "u1"}}, nil)

	got, err := svc.Latest(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notification.NewService(notificationmock.NewMockRepository(ctrl), nil)

		_, err := svc.MarkRead(ctx, []string{bson.NewObjectID().Hex(), "bad"})
		assert.ErrorIs(t, err, notificationerrors.ErrInvalidNotificationID)
	})

	t.Run("marks all given ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := notificationmock.NewMockRepository(ctrl)
		svc := notification.NewService(repo, nil)
		a, b := bson.NewObjectID(), bson.NewObjectID()

		repo.EXPECT().MarkRead(gomock.Any(), []bson.ObjectID{a, b}).Return(int64(2), nil)

		n, err := svc.MarkRead(ctx, []string{a.Hex(), b.Hex()})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := notificationmock.NewMockRepository(ctrl)
	svc := notification.NewService(repo, nil)
	id := bson.NewObjectID()

	repo.EXPECT().Delete(gomock.Any(), id).Return(notification.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id.Hex()), notificationerrors.ErrNotificationNotFound)
}

package calendar_test

import (
	"context"
	"testing"
	"time"

	"go-crm/internal/alert"
	alertmock "go-crm/internal/alert/mock"
	"go-crm/internal/calendar"
	calendarerrors "go-crm/internal/calendar/errors"
	calendarmock "go-crm/internal/calendar/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupCalendarService(t *testing.T) (*calendarmock.MockRepository, *alertmock.MockDispatcher, calendar.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := calendarmock.NewMockRepository(ctrl)
	alerts := alertmock.NewMockDispatcher(ctrl)
	return repo, alerts, calendar.NewService(repo, alerts)
}

func TestCalendarService_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	t.Run("stamps owner and role then alerts the owner", func(t *testing.T) {
		repo, alerts, svc := setupCalendarService(t)

		var created *calendar.Event
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *calendar.Event) error {
			assert.Equal(t, owner, e.UserID)
			assert.Equal(t, "Employee", e.Role)
			assert.Nil(t, e.AccountID)
			assert.Nil(t, e.ServiceID)
			created = e
			return nil
		})
		repo.EXPECT().FindForUser(gomock.Any(), gomock.Any(), owner.String()).DoAndReturn(func(context.Context, string, string) (*calendar.Event, error) {
			return created, nil
		})
		alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, owner.String(), in.UserID)
			assert.Equal(t, "Event created: Untitled Event", in.Message)
			assert.Equal(t, alert.TypeEvent, in.Type)
			assert.Equal(t, created.ID.String(), in.RefID)
		})

		res, err := svc.Create(ctx, calendar.EventRequest{Start: start}, owner.String(), "Employee")
		require.NoError(t, err)
		assert.Equal(t, owner.String(), res.User)
		assert.Nil(t, res.Account)
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, svc := setupCalendarService(t)
		end := start.Add(-time.Hour)
		_, err := svc.Create(ctx, calendar.EventRequest{Title: "Demo", Start: start, End: &end}, owner.String(), "Employee")
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidRange)
	})

	t.Run("malformed account reference", func(t *testing.T) {
		_, _, svc := setupCalendarService(t)
		_, err := svc.Create(ctx, calendar.EventRequest{Start: start, AccountID: "acme"}, owner.String(), "Employee")
		assert.ErrorIs(t, err, calendarerrors.ErrInvalidReference)
	})
}

func TestCalendarService_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()
	account := uuid.New()
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	t.Run("replaces fields and clears links left empty", func(t *testing.T) {
		repo, alerts, svc := setupCalendarService(t)
		existing := &calendar.Event{ID: id, UserID: owner, Title: "Call", Start: start, AccountID: &account}

		repo.EXPECT().FindForUser(gomock.Any(), id.String(), owner.String()).Return(existing, nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *calendar.Event) error {
			assert.Equal(t, "Kickoff", e.Title)
			assert.Nil(t, e.AccountID)
			assert.True(t, e.AllDay)
			return nil
		})
		alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, "Event updated: Kickoff", in.Message)
		})

		res, err := svc.Update(ctx, id.String(), calendar.EventRequest{Title: "Kickoff", Start: start, AllDay: true}, owner.String())
		require.NoError(t, err)
		assert.Equal(t, "Kickoff", res.Title)
	})

	t.Run("another user's event is not found", func(t *testing.T) {
		repo, _, svc := setupCalendarService(t)
		intruder := uuid.New()
		repo.EXPECT().FindForUser(gomock.Any(), id.String(), intruder.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id.String(), calendar.EventRequest{Start: start}, intruder.String())
		assert.ErrorIs(t, err, calendarerrors.ErrEventNotFound)
	})
}

func TestCalendarService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	t.Run("alerts the owner", func(t *testing.T) {
		repo, alerts, svc := setupCalendarService(t)
		repo.EXPECT().DeleteForUser(gomock.Any(), id.String(), owner.String()).Return(nil)
		alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, "Event deleted", in.Message)
			assert.Equal(t, alert.TypeEvent, in.Type)
		})
		assert.NoError(t, svc.Delete(ctx, id.String(), owner.String()))
	})

	t.Run("missing event does not alert", func(t *testing.T) {
		repo, _, svc := setupCalendarService(t)
		repo.EXPECT().DeleteForUser(gomock.Any(), id.String(), owner.String()).Return(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, id.String(), owner.String()), calendarerrors.ErrEventNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, svc := setupCalendarService(t)
		assert.ErrorIs(t, svc.Delete(ctx, "x", owner.String()), calendarerrors.ErrInvalidEventID)
	})
}

func TestCalendarService_GetAll(t *testing.T) {
	repo, _, svc := setupCalendarService(t)
	owner := uuid.New()
	repo.EXPECT().ListByUser(gomock.Any(), owner.String()).Return([]calendar.Event{
		{ID: uuid.New(), UserID: owner, Title: "Standup"},
	}, nil)

	res, err := svc.GetAll(context.Background(), owner.String())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Standup", res[0].Title)
}

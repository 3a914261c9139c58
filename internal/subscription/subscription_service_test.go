package subscription_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-crm/internal/account"
	accountmock "go-crm/internal/account/mock"
	"go-crm/internal/alert"
	alertmock "go-crm/internal/alert/mock"
	"go-crm/internal/brandservice"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka"
	kafkamock "go-crm/internal/messaging/kafka/mock"
	countermock "go-crm/internal/shared/counter/mock"
	"go-crm/internal/subscription"
	suberrors "go-crm/internal/subscription/errors"
	submock "go-crm/internal/subscription/mock"
	"go-crm/internal/user"
	usermock "go-crm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeCatalog struct {
	findByID func(ctx context.Context, id string) (*brandservice.BrandService, error)
}

func (f *fakeCatalog) FindByID(ctx context.Context, id string) (*brandservice.BrandService, error) {
	return f.findByID(ctx, id)
}

type subDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *submock.MockRepository
	accounts  *accountmock.MockRepository
	users     *usermock.MockRepository
	counter   *countermock.MockRepository
	outbox    *kafkamock.MockOutboxRepository
	alerts    *alertmock.MockDispatcher
	redisMock redismock.ClientMock
	catalog   *fakeCatalog
	service   subscription.Service
}

var (
	serviceID = uuid.MustParse("5d1b2f7a-0c11-4d57-9c1e-51f0aa000001")
	growthID  = uuid.MustParse("5d1b2f7a-0c11-4d57-9c1e-51f0aa000002")
	proID     = uuid.MustParse("5d1b2f7a-0c11-4d57-9c1e-51f0aa000003")
)

func seoService() *brandservice.BrandService {
	return &brandservice.BrandService{
		ID:          serviceID,
		ServiceName: "SEO",
		BasePrice:   1000,
		GSTRate:     18,
		Plans: []brandservice.Plan{
			{
				ID:       growthID, ServiceID: serviceID, Name: "Growth", PriceMonthly: 5000, PriceYearly: 50000,
				Features: []brandservice.Feature{{Name: "Keyword research"}, {Name: "Monthly report"}},
			},
			{ID: proID, ServiceID: serviceID, Name: "Pro", PriceMonthly: 8000, PriceYearly: 80000},
		},
	}
}

func setupSubscriptionService(t *testing.T) *subDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	d := &subDeps{
		sqlMock:  sqlMock,
		repo:     submock.NewMockRepository(ctrl),
		accounts: accountmock.NewMockRepository(ctrl),
		users:    usermock.NewMockRepository(ctrl),
		counter:  countermock.NewMockRepository(ctrl),
		outbox:   kafkamock.NewMockOutboxRepository(ctrl),
		alerts:   alertmock.NewMockDispatcher(ctrl),
		catalog: &fakeCatalog{findByID: func(context.Context, string) (*brandservice.BrandService, error) {
			return seoService(), nil
		}},
	}
	rdb, redisMock := redismock.NewClientMock()
	d.redisMock = redisMock
	d.service = subscription.NewService(db, d.repo, subscription.Deps{
		Catalog:  d.catalog,
		Accounts: d.accounts,
		Clients:  d.users,
		Counter:  d.counter,
		Outbox:   d.outbox,
		Alerts:   d.alerts,
		Redis:    rdb,
		Location: time.UTC,
	})
	return d
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func (d *subDeps) expectOutbox(t *testing.T, eventType string) {
	t.Helper()
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
		assert.Equal(t, eventType, e.EventType)
		assert.Equal(t, events.SubscriptionLifecycleTopic, e.Topic)
		assert.Equal(t, kafka.AggregateSubscription, e.AggregateType)
		return nil
	})
}

func TestSubscriptionService_Create(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	ownerID := uuid.New()

	t.Run("success stamps the account and alerts the owner", func(t *testing.T) {
		d := setupSubscriptionService(t)
		expectTx(t, d.sqlMock, true)

		d.counter.EXPECT().WithTx(gomock.Any()).Return(d.counter)
		d.counter.EXPECT().GetNextValue(gomock.Any(), subscription.NumberCounter).Return(int64(7), nil)
		d.accounts.EXPECT().WithTx(gomock.Any()).Return(d.accounts)
		d.accounts.EXPECT().FindByID(gomock.Any(), accountID.String()).
			Return(&account.Account{ID: accountID, OwnerID: &ownerID, Status: account.StatusQuotations}, nil)

		var created *subscription.Subscription
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, "SUB-000007", s.Number)
			assert.Equal(t, "Growth", s.PlanName)
			assert.Equal(t, 50000.0, s.AmountPaid)
			assert.Equal(t, 59000.0, s.TotalWithGST)
			assert.Equal(t, 18.0, s.GSTRate)
			assert.True(t, s.AutoRenew)
			assert.Equal(t, s.PurchaseDate.AddDate(0, 12, 0), s.RenewalDate)
			created = s
			return nil
		})
		d.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *account.Account) error {
			assert.Equal(t, account.StatusCustomer, a.Status)
			assert.True(t, a.IsCustomer)
			assert.Equal(t, 59000.0, a.TotalPrice)
			assert.Equal(t, "Yearly", a.BillingCycle)
			require.NotNil(t, a.SelectedPlanID)
			assert.Equal(t, growthID, *a.SelectedPlanID)
			return nil
		})
		d.expectOutbox(t, events.SubscriptionCreated)
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, ownerID.String(), in.UserID)
			assert.Equal(t, "Subscription Activated - Growth", in.Message)
			assert.Equal(t, alert.TypeSubscription, in.Type)
		})
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (*subscription.Subscription, error) {
			return created, nil
		})

		res, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            growthID.String(),
			BillingCycle:      "Yearly",
		})

		require.NoError(t, err)
		assert.Equal(t, "SUB-000007", res.Number)
		assert.Equal(t, subscription.StatusActive, res.Status)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("client user is alerted when the account has no owner", func(t *testing.T) {
		d := setupSubscriptionService(t)
		expectTx(t, d.sqlMock, true)
		clientID := uuid.New()

		d.counter.EXPECT().WithTx(gomock.Any()).Return(d.counter)
		d.counter.EXPECT().GetNextValue(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		d.accounts.EXPECT().WithTx(gomock.Any()).Return(d.accounts)
		d.accounts.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&account.Account{ID: accountID}, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, 1500.0, s.AmountPaid)
			assert.False(t, s.AutoRenew)
			return nil
		})
		d.accounts.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.expectOutbox(t, events.SubscriptionCreated)
		d.users.EXPECT().FirstClientOfAccount(gomock.Any(), accountID.String()).Return(&user.User{ID: clientID}, nil)
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, clientID.String(), in.UserID)
		})
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&subscription.Subscription{}, nil)

		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            growthID.String(),
			BillingCycle:      "One Time",
			AmountPaid:        1500,
		})
		require.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		d := setupSubscriptionService(t)
		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{ServiceID: serviceID.String()})
		assert.ErrorIs(t, err, suberrors.ErrMissingFields)
	})

	t.Run("invalid billing cycle", func(t *testing.T) {
		d := setupSubscriptionService(t)
		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            growthID.String(),
			BillingCycle:      "Weekly",
		})
		assert.ErrorIs(t, err, suberrors.ErrInvalidBillingCycle)
	})

	t.Run("unknown service", func(t *testing.T) {
		d := setupSubscriptionService(t)
		d.catalog.findByID = func(context.Context, string) (*brandservice.BrandService, error) {
			return nil, gorm.ErrRecordNotFound
		}
		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         uuid.NewString(),
			PlanID:            growthID.String(),
			BillingCycle:      "Monthly",
		})
		assert.ErrorIs(t, err, suberrors.ErrServiceNotFound)
	})

	t.Run("unknown plan", func(t *testing.T) {
		d := setupSubscriptionService(t)
		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            uuid.NewString(),
			BillingCycle:      "Monthly",
		})
		assert.ErrorIs(t, err, suberrors.ErrPlanNotFound)
	})

	t.Run("unknown account rolls back without taking a number", func(t *testing.T) {
		d := setupSubscriptionService(t)
		expectTx(t, d.sqlMock, false)
		d.counter.EXPECT().GetNextValue(gomock.Any(), gomock.Any()).Times(0)
		d.accounts.EXPECT().WithTx(gomock.Any()).Return(d.accounts)
		d.accounts.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            growthID.String(),
			BillingCycle:      "Monthly",
		})
		assert.ErrorIs(t, err, suberrors.ErrAccountNotFound)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("number is allocated on the open transaction", func(t *testing.T) {
		d := setupSubscriptionService(t)
		d.sqlMock.ExpectBegin()
		d.sqlMock.ExpectRollback()
		counterErr := errors.New("counter unavailable")

		d.accounts.EXPECT().WithTx(gomock.Any()).Return(d.accounts)
		d.accounts.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&account.Account{ID: accountID}, nil)
		d.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(d.counter)
		d.counter.EXPECT().GetNextValue(gomock.Any(), subscription.NumberCounter).Return(int64(0), counterErr)

		_, err := d.service.Create(ctx, subscription.CreateSubscriptionRequest{
			BusinessAccountID: accountID.String(),
			ServiceID:         serviceID.String(),
			PlanID:            growthID.String(),
			BillingCycle:      "Monthly",
		})
		assert.ErrorIs(t, err, counterErr)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func activeSubscription(owner *uuid.UUID) *subscription.Subscription {
	planID := growthID
	return &subscription.Subscription{
		ID:                uuid.New(),
		Number:            "SUB-000003",
		BusinessAccountID: uuid.New(),
		ServiceID:         serviceID,
		PlanID:            &planID,
		PlanName:          "Growth",
		BillingCycle:      "Monthly",
		Status:            subscription.StatusActive,
		AutoRenew:         true,
		Account:           &subscription.AccountRef{BusinessName: "Acme", OwnerID: owner},
		Service:           &subscription.ServiceRef{ID: serviceID, ServiceName: "SEO"},
	}
}

func TestSubscriptionService_UpgradePlan(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	changedBy := uuid.New()

	t.Run("success appends history and reprices", func(t *testing.T) {
		d := setupSubscriptionService(t)
		sub := activeSubscription(&ownerID)
		id := sub.ID.String()
		expectTx(t, d.sqlMock, true)

		d.repo.EXPECT().FindByID(gomock.Any(), id).Return(sub, nil).Times(2)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *subscription.History) error {
			assert.Equal(t, "Growth", h.PreviousPlanName)
			assert.Equal(t, "Pro", h.NewPlanName)
			require.NotNil(t, h.ChangedBy)
			assert.Equal(t, changedBy, *h.ChangedBy)
			return nil
		})
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, "Pro", s.PlanName)
			assert.Equal(t, 8000.0, s.PlanPriceMonthly)
			assert.Equal(t, 9440.0, s.TotalWithGST)
			return nil
		})
		d.expectOutbox(t, events.SubscriptionPlanChanged)
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, ownerID.String(), in.UserID)
			assert.Equal(t, "Subscription Plan Updated: Growth → Pro", in.Message)
		})

		res, err := d.service.UpgradePlan(ctx, id, subscription.UpgradePlanRequest{PlanID: proID.String()}, changedBy.String())

		require.NoError(t, err)
		assert.Equal(t, "Pro", res.PlanName)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("cancelled subscription cannot change plan", func(t *testing.T) {
		d := setupSubscriptionService(t)
		sub := activeSubscription(&ownerID)
		sub.Status = subscription.StatusCancelled
		d.repo.EXPECT().FindByID(gomock.Any(), sub.ID.String()).Return(sub, nil)

		_, err := d.service.UpgradePlan(ctx, sub.ID.String(), subscription.UpgradePlanRequest{PlanID: proID.String()}, "")
		assert.ErrorIs(t, err, suberrors.ErrAlreadyCancelled)
	})

	t.Run("plan is required", func(t *testing.T) {
		d := setupSubscriptionService(t)
		_, err := d.service.UpgradePlan(ctx, uuid.NewString(), subscription.UpgradePlanRequest{}, "")
		assert.ErrorIs(t, err, suberrors.ErrMissingFields)
	})

	t.Run("not found", func(t *testing.T) {
		d := setupSubscriptionService(t)
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		_, err := d.service.UpgradePlan(ctx, uuid.NewString(), subscription.UpgradePlanRequest{PlanID: proID.String()}, "")
		assert.ErrorIs(t, err, suberrors.ErrSubscriptionNotFound)
	})
}

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		d := setupSubscriptionService(t)
		sub := activeSubscription(&ownerID)
		expectTx(t, d.sqlMock, true)

		d.repo.EXPECT().FindByID(gomock.Any(), sub.ID.String()).Return(sub, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *subscription.Subscription) error {
			assert.Equal(t, subscription.StatusCancelled, s.Status)
			assert.False(t, s.AutoRenew)
			return nil
		})
		d.expectOutbox(t, events.SubscriptionCancelled)
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, "Subscription Cancelled - SEO", in.Message)
		})

		res, err := d.service.Cancel(ctx, sub.ID.String())
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusCancelled, res.Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		d := setupSubscriptionService(t)
		sub := activeSubscription(&ownerID)
		sub.Status = subscription.StatusCancelled
		d.repo.EXPECT().FindByID(gomock.Any(), sub.ID.String()).Return(sub, nil)

		_, err := d.service.Cancel(ctx, sub.ID.String())
		assert.ErrorIs(t, err, suberrors.ErrAlreadyCancelled)
	})

	t.Run("invalid id", func(t *testing.T) {
		d := setupSubscriptionService(t)
		_, err := d.service.Cancel(ctx, "nope")
		assert.ErrorIs(t, err, suberrors.ErrInvalidID)
	})
}

func TestSubscriptionService_GetDetails(t *testing.T) {
	d := setupSubscriptionService(t)
	sub := activeSubscription(nil)
	d.repo.EXPECT().FindByID(gomock.Any(), sub.ID.String()).Return(sub, nil)

	res, err := d.service.GetDetails(context.Background(), sub.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "SEO", res.ServiceName)
	assert.Equal(t, "Acme", res.BusinessName)
	assert.Equal(t, []brandservice.Feature{{Name: "Keyword research"}, {Name: "Monthly report"}}, res.PlanFeatures)
}

func TestReminderWindow(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC) // 03:30 on the 11th in IST

	from, to := subscription.ReminderWindow(now, loc)

	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, loc), to)
}

func TestSubscriptionService_SendRenewalReminders(t *testing.T) {
	ctx := context.Background()
	d := setupSubscriptionService(t)
	ownerA, ownerB := uuid.New(), uuid.New()

	fresh := activeSubscription(&ownerA)
	already := activeSubscription(&ownerB)
	orphan := activeSubscription(nil)

	from, _ := subscription.ReminderWindow(time.Now(), time.UTC)
	d.repo.EXPECT().FindRenewingBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]subscription.Subscription{*fresh, *already, *orphan}, nil)
	d.users.EXPECT().FirstClientOfAccount(gomock.Any(), orphan.BusinessAccountID.String()).
		Return(nil, gorm.ErrRecordNotFound)

	d.redisMock.ExpectSetNX(subscription.ReminderKey(fresh.ID.String(), from), 1, 48*time.Hour).SetVal(true)
	d.redisMock.ExpectSetNX(subscription.ReminderKey(already.ID.String(), from), 1, 48*time.Hour).SetVal(false)
	d.alerts.EXPECT().Send(gomock.Any(), alert.Input{
		UserID:  ownerA.String(),
		Message: `Subscription "SEO" expires in 5 days. Renew soon!`,
		Type:    alert.TypeSubscription,
		RefID:   fresh.ID.String(),
	})

	sent, err := d.service.SendRenewalReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.NoError(t, d.redisMock.ExpectationsWereMet())
}

package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-crm/internal/account"
	"go-crm/internal/alert"
	"go-crm/internal/brandservice"
	"go-crm/internal/events"
	"go-crm/internal/messages"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/pricing"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/shared/counter"
	suberrors "go-crm/internal/subscription/errors"
	"go-crm/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ReminderLeadDays  = 5
	reminderKeyPrefix = "subscription:renewal_reminder"
	reminderKeyTTL    = 48 * time.Hour
)

type ServiceCatalog interface {
	FindByID(ctx context.Context, id string) (*brandservice.BrandService, error)
}

// ClientDirectory finds the portal user of a business account.
type ClientDirectory interface {
	FirstClientOfAccount(ctx context.Context, accountID string) (*user.User, error)
}

// Deps are the collaborators a subscription touches besides its own table.
type Deps struct {
	Catalog  ServiceCatalog
	Accounts account.Repository
	Clients  ClientDirectory
	Counter  counter.Repository
	Outbox   kafka.OutboxRepository
	Alerts   alert.Dispatcher
	Redis    *redis.Client
	Location *time.Location
}

//go:generate mockgen -source=subscription_service.go -destination=mock/subscription_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSubscriptionRequest) (SubscriptionResponse, error)
	GetAll(ctx context.Context) ([]SubscriptionResponse, error)
	GetByBusiness(ctx context.Context, accountID string) ([]SubscriptionResponse, error)
	GetDetails(ctx context.Context, id string) (DetailsResponse, error)
	UpgradePlan(ctx context.Context, id string, req UpgradePlanRequest, changedBy string) (SubscriptionResponse, error)
	Cancel(ctx context.Context, id string) (SubscriptionResponse, error)
	SendRenewalReminders(ctx context.Context) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("subscription.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subscription.service")
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	return &service{db: db, repo: repo, deps: deps, now: time.Now, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suberrors.ErrSubscriptionNotFound
	}
	return err
}

func (s *service) lookupService(ctx context.Context, id string) (*brandservice.BrandService, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, suberrors.ErrServiceNotFound
	}
	svc, err := s.deps.Catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, suberrors.ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *service) queue(ctx context.Context, tx *sql.Tx, sub *Subscription, eventType, previousPlan, changedBy string) error {
	if s.deps.Outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.SubscriptionLifecycleEvent{
		EventType:         eventType,
		RequestID:         rid,
		SubscriptionID:    sub.ID.String(),
		Number:            sub.Number,
		BusinessAccountID: sub.BusinessAccountID.String(),
		ServiceID:         sub.ServiceID.String(),
		PlanName:          sub.PlanName,
		PreviousPlanName:  previousPlan,
		Status:            sub.Status,
		TotalWithGST:      sub.TotalWithGST,
		ChangedBy:         changedBy,
		OccurredAt:        s.now().UTC(),
	}
	msg, err := kafka.NewOutboxEvent(kafka.AggregateSubscription, sub.ID.String(), eventType,
		events.SubscriptionLifecycleTopic, rid, event)
	if err != nil {
		return err
	}
	if err := s.deps.Outbox.WithTx(tx).Create(ctx, msg); err != nil {
		s.logger.Error("subscription outbox persist failed",
			zap.String("subscription_id", sub.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// recipient is the account owner, or the first client user of the account.
func (s *service) recipient(ctx context.Context, accountID string, owner *uuid.UUID) string {
	if owner != nil {
		return owner.String()
	}
	if s.deps.Clients == nil {
		return ""
	}
	u, err := s.deps.Clients.FirstClientOfAccount(ctx, accountID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("client lookup failed", zap.String("account_id", accountID), zap.Error(err))
		}
		return ""
	}
	return u.ID.String()
}

func (s *service) notify(ctx context.Context, userID, message, refID string) {
	if s.deps.Alerts == nil || userID == "" {
		return
	}
	s.deps.Alerts.Send(ctx, alert.Input{
		UserID:  userID,
		Message: message,
		Type:    alert.TypeSubscription,
		RefID:   refID,
	})
}

func (s *service) Create(ctx context.Context, req CreateSubscriptionRequest) (SubscriptionResponse, error) {
	s.logger.Debug("create subscription requested",
		zap.String("account_id", req.BusinessAccountID),
		zap.String("service_id", req.ServiceID),
		zap.String("billing_cycle", req.BillingCycle),
	)

	if req.BusinessAccountID == "" || req.ServiceID == "" || req.PlanID == "" || req.BillingCycle == "" {
		return SubscriptionResponse{}, suberrors.ErrMissingFields
	}
	if !pricing.IsValidCycle(req.BillingCycle) {
		return SubscriptionResponse{}, suberrors.ErrInvalidBillingCycle
	}
	accountID, err := uuid.Parse(req.BusinessAccountID)
	if err != nil {
		return SubscriptionResponse{}, suberrors.ErrAccountNotFound
	}

	svc, err := s.lookupService(ctx, req.ServiceID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	plan, ok := svc.FindPlan(req.PlanID)
	if !ok {
		s.logger.Warn("create subscription rejected, unknown plan", zap.String("plan_id", req.PlanID))
		return SubscriptionResponse{}, suberrors.ErrPlanNotFound
	}

	quote := pricing.Compute(svc.Pricing(), req.PlanID, req.BillingCycle)
	amountPaid := req.AmountPaid
	if amountPaid <= 0 {
		amountPaid = quote.Base
	}

	purchased := s.now().In(s.deps.Location)
	planID := plan.ID
	sub := &Subscription{
		ID:                uuid.New(),
		BusinessAccountID: accountID,
		ServiceID:         svc.ID,
		PlanID:            &planID,
		PlanName:          plan.Name,
		PlanPriceMonthly:  plan.PriceMonthly,
		PlanPriceYearly:   plan.PriceYearly,
		PlanPriceOneTime:  plan.PriceOneTime,
		BillingCycle:      req.BillingCycle,
		AmountPaid:        amountPaid,
		GSTRate:           quote.GSTRate,
		TotalWithGST:      quote.Total,
		OrderID:           req.OrderID,
		PaymentID:         req.PaymentID,
		PurchaseDate:      purchased,
		RenewalDate:       pricing.RenewalDate(purchased, req.BillingCycle),
		Status:            StatusActive,
		AutoRenew:         pricing.AutoRenews(req.BillingCycle),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	defer tx.Rollback()

	accounts := s.deps.Accounts.WithTx(tx)
	acc, err := accounts.FindByID(ctx, accountID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, suberrors.ErrAccountNotFound
		}
		return SubscriptionResponse{}, err
	}

	seq, err := s.deps.Counter.WithTx(tx).GetNextValue(ctx, NumberCounter)
	if err != nil {
		s.logger.Error("subscription number allocation failed", zap.Error(err))
		return SubscriptionResponse{}, err
	}
	sub.Number = counter.Format(NumberPrefix, numberWidth, seq)

	if err := s.repo.WithTx(tx).Create(ctx, sub); err != nil {
		s.logger.Error("create subscription failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return SubscriptionResponse{}, err
	}

	serviceID := svc.ID
	acc.SelectedServiceID = &serviceID
	acc.SelectedPlanID = &planID
	acc.BillingCycle = sub.BillingCycle
	acc.TotalPrice = sub.TotalWithGST
	acc.GSTRate = sub.GSTRate
	acc.Status = account.StatusCustomer
	acc.IsCustomer = true
	if err := accounts.Update(ctx, acc); err != nil {
		s.logger.Error("stamp account failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return SubscriptionResponse{}, err
	}

	if err := s.queue(ctx, tx, sub, events.SubscriptionCreated, "", ""); err != nil {
		return SubscriptionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.Error(err))
		return SubscriptionResponse{}, err
	}

	s.notify(ctx,
		s.recipient(ctx, accountID.String(), acc.OwnerID),
		messages.T(ctx, messages.SubscriptionActivated, map[string]any{"Plan": sub.PlanName}),
		sub.ID.String(),
	)

	s.logger.Info("create subscription success",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("number", sub.Number),
		zap.Float64("total_with_gst", sub.TotalWithGST),
	)
	return s.load(ctx, sub.ID.String())
}

func (s *service) load(ctx context.Context, id string) (SubscriptionResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SubscriptionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(sub), nil
}

func (s *service) GetAll(ctx context.Context) ([]SubscriptionResponse, error) {
	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list subscriptions failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(subs), nil
}

func (s *service) GetByBusiness(ctx context.Context, accountID string) ([]SubscriptionResponse, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, suberrors.ErrAccountNotFound
	}
	subs, err := s.repo.FindByBusiness(ctx, accountID)
	if err != nil {
		s.logger.Error("list account subscriptions failed", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(subs), nil
}

func (s *service) find(ctx context.Context, id string) (*Subscription, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, suberrors.ErrInvalidID
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return sub, nil
}

// GetDetails joins the subscription with the feature list of its current plan.
// Plans are matched by name since the catalog may have recreated them.
func (s *service) GetDetails(ctx context.Context, id string) (DetailsResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return DetailsResponse{}, err
	}

	res := DetailsResponse{
		ID:           sub.ID.String(),
		Number:       sub.Number,
		BillingCycle: sub.BillingCycle,
		Status:       sub.Status,
		RenewalDate:  sub.RenewalDate,
		AmountPaid:   sub.AmountPaid,
		GSTRate:      sub.GSTRate,
		TotalWithGST: sub.TotalWithGST,
		OrderID:      sub.OrderID,
		PlanName:     sub.PlanName,
		PlanFeatures: []brandservice.Feature{},
		History:      mapHistory(sub.History),
	}
	if sub.Account != nil {
		res.BusinessName = sub.Account.BusinessName
		res.ContactNumber = sub.Account.ContactNumber
		res.ContactEmail = sub.Account.ContactEmail
	}

	svc, err := s.deps.Catalog.FindByID(ctx, sub.ServiceID.String())
	switch {
	case err == nil:
		res.ServiceName = svc.ServiceName
		if plan, ok := svc.FindPlanByName(sub.PlanName); ok && plan.Features != nil {
			res.PlanFeatures = plan.Features
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if sub.Service != nil {
			res.ServiceName = sub.Service.ServiceName
		}
	default:
		s.logger.Error("load subscription service failed", zap.String("subscription_id", id), zap.Error(err))
		return DetailsResponse{}, err
	}
	return res, nil
}

// UpgradePlan moves the subscription onto another plan, optionally of another
// service, and appends a history row.
func (s *service) UpgradePlan(ctx context.Context, id string, req UpgradePlanRequest, changedBy string) (SubscriptionResponse, error) {
	s.logger.Debug("upgrade plan requested", zap.String("subscription_id", id), zap.String("plan_id", req.PlanID))

	if strings.TrimSpace(req.PlanID) == "" {
		return SubscriptionResponse{}, suberrors.ErrMissingFields
	}
	sub, err := s.find(ctx, id)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if sub.Status == StatusCancelled {
		s.logger.Warn("upgrade plan rejected, subscription cancelled", zap.String("subscription_id", id))
		return SubscriptionResponse{}, suberrors.ErrAlreadyCancelled
	}

	serviceID := req.ServiceID
	if serviceID == "" {
		serviceID = sub.ServiceID.String()
	}
	svc, err := s.lookupService(ctx, serviceID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	plan, ok := svc.FindPlan(req.PlanID)
	if !ok {
		return SubscriptionResponse{}, suberrors.ErrPlanNotFound
	}

	previous := sub.PlanName
	quote := pricing.Compute(svc.Pricing(), req.PlanID, sub.BillingCycle)
	planID := plan.ID
	sub.ServiceID = svc.ID
	sub.PlanID = &planID
	sub.PlanName = plan.Name
	sub.PlanPriceMonthly = plan.PriceMonthly
	sub.PlanPriceYearly = plan.PriceYearly
	sub.PlanPriceOneTime = plan.PriceOneTime
	sub.GSTRate = quote.GSTRate
	sub.TotalWithGST = quote.Total

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	h := &History{
		SubscriptionID:   sub.ID,
		PreviousPlanName: previous,
		NewPlanName:      plan.Name,
		Note:             req.Note,
		ChangedDate:      s.now(),
	}
	if by, err := uuid.Parse(changedBy); err == nil {
		h.ChangedBy = &by
	}
	if err := qtx.AppendHistory(ctx, h); err != nil {
		s.logger.Error("append plan history failed", zap.String("subscription_id", id), zap.Error(err))
		return SubscriptionResponse{}, err
	}
	if err := qtx.Update(ctx, sub); err != nil {
		s.logger.Error("upgrade plan failed", zap.String("subscription_id", id), zap.Error(err))
		return SubscriptionResponse{}, err
	}
	if err := s.queue(ctx, tx, sub, events.SubscriptionPlanChanged, previous, changedBy); err != nil {
		return SubscriptionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SubscriptionResponse{}, err
	}

	var owner *uuid.UUID
	if sub.Account != nil {
		owner = sub.Account.OwnerID
	}
	s.notify(ctx,
		s.recipient(ctx, sub.BusinessAccountID.String(), owner),
		messages.T(ctx, messages.SubscriptionPlanUpdated, map[string]any{"Old": previous, "New": plan.Name}),
		sub.ID.String(),
	)

	s.logger.Info("upgrade plan success",
		zap.String("subscription_id", id),
		zap.String("previous_plan", previous),
		zap.String("new_plan", plan.Name),
	)
	return s.load(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id string) (SubscriptionResponse, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if sub.Status == StatusCancelled {
		return SubscriptionResponse{}, suberrors.ErrAlreadyCancelled
	}

	sub.Status = StatusCancelled
	sub.AutoRenew = false

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, sub); err != nil {
		s.logger.Error("cancel subscription failed", zap.String("subscription_id", id), zap.Error(err))
		return SubscriptionResponse{}, err
	}
	if err := s.queue(ctx, tx, sub, events.SubscriptionCancelled, "", ""); err != nil {
		return SubscriptionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SubscriptionResponse{}, err
	}

	var owner *uuid.UUID
	if sub.Account != nil {
		owner = sub.Account.OwnerID
	}
	serviceName := sub.PlanName
	if sub.Service != nil {
		serviceName = sub.Service.ServiceName
	}
	s.notify(ctx,
		s.recipient(ctx, sub.BusinessAccountID.String(), owner),
		messages.T(ctx, messages.SubscriptionCancelled, map[string]any{"Service": serviceName}),
		sub.ID.String(),
	)

	s.logger.Info("cancel subscription success", zap.String("subscription_id", id))
	return mapToResponse(sub), nil
}

// ReminderWindow is the local calendar day ReminderLeadDays after now.
func ReminderWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	start := midnight.AddDate(0, 0, ReminderLeadDays)
	return start, start.AddDate(0, 0, 1)
}

func ReminderKey(subscriptionID string, day time.Time) string {
	return fmt.Sprintf("%s:%s:%s", reminderKeyPrefix, subscriptionID, day.Format("2006-01-02"))
}

// SendRenewalReminders alerts every active subscription renewing in the
// reminder window. A Redis key per subscription and day keeps reruns from
// sending twice. It returns the number of reminders sent.
func (s *service) SendRenewalReminders(ctx context.Context) (int, error) {
	from, to := ReminderWindow(s.now(), s.deps.Location)
	subs, err := s.repo.FindRenewingBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("renewal lookup failed", zap.Error(err))
		return 0, err
	}

	sent := 0
	for i := range subs {
		sub := &subs[i]
		var owner *uuid.UUID
		if sub.Account != nil {
			owner = sub.Account.OwnerID
		}
		userID := s.recipient(ctx, sub.BusinessAccountID.String(), owner)
		if userID == "" {
			continue
		}

		if s.deps.Redis != nil {
			first, err := s.deps.Redis.SetNX(ctx, ReminderKey(sub.ID.String(), from), 1, reminderKeyTTL).Result()
			if err != nil {
				s.logger.Error("renewal reminder dedup failed", zap.String("subscription_id", sub.ID.String()), zap.Error(err))
				continue
			}
			if !first {
				continue
			}
		}

		name := sub.PlanName
		if sub.Service != nil {
			name = sub.Service.ServiceName
		}
		s.notify(ctx, userID, messages.T(ctx, messages.SubscriptionRenewal, map[string]any{"Service": name}), sub.ID.String())
		sent++
	}

	s.logger.Info("renewal reminders sent",
		zap.Int("due", len(subs)),
		zap.Int("sent", sent),
		zap.Time("window_start", from),
	)
	return sent, nil
}

func mapHistory(hs []History) []HistoryResponse {
	res := make([]HistoryResponse, 0, len(hs))
	for _, h := range hs {
		item := HistoryResponse{
			PreviousPlanName: h.PreviousPlanName,
			NewPlanName:      h.NewPlanName,
			Note:             h.Note,
			ChangedDate:      h.ChangedDate,
		}
		if h.ChangedBy != nil {
			by := h.ChangedBy.String()
			item.ChangedBy = &by
		}
		res = append(res, item)
	}
	return res
}

func mapToResponse(sub *Subscription) SubscriptionResponse {
	res := SubscriptionResponse{
		ID:               sub.ID.String(),
		Number:           sub.Number,
		BusinessAccount:  AccountSummary{ID: sub.BusinessAccountID.String()},
		Service:          ServiceSummary{ID: sub.ServiceID.String()},
		PlanName:         sub.PlanName,
		PlanPriceMonthly: sub.PlanPriceMonthly,
		PlanPriceYearly:  sub.PlanPriceYearly,
		PlanPriceOneTime: sub.PlanPriceOneTime,
		BillingCycle:     sub.BillingCycle,
		AmountPaid:       sub.AmountPaid,
		GSTRate:          sub.GSTRate,
		TotalWithGST:     sub.TotalWithGST,
		OrderID:          sub.OrderID,
		PaymentID:        sub.PaymentID,
		PurchaseDate:     sub.PurchaseDate,
		RenewalDate:      sub.RenewalDate,
		Status:           sub.Status,
		AutoRenew:        sub.AutoRenew,
		History:          mapHistory(sub.History),
		CreatedAt:        sub.CreatedAt,
	}
	if sub.PlanID != nil {
		id := sub.PlanID.String()
		res.PlanID = &id
	}
	if sub.Account != nil {
		res.BusinessAccount.BusinessName = sub.Account.BusinessName
		res.BusinessAccount.ContactName = sub.Account.ContactName
	}
	if sub.Service != nil {
		res.Service.ServiceName = sub.Service.ServiceName
	}
	return res
}

func mapToListResponse(subs []Subscription) []SubscriptionResponse {
	res := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		res = append(res, mapToResponse(&subs[i]))
	}
	return res
}

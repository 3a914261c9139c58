package subscription

import (
	"context"
	"database/sql"
	"time"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=subscription_repo.go -destination=mock/subscription_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Subscription) error
	FindByID(ctx context.Context, id string) (*Subscription, error)
	FindAll(ctx context.Context) ([]Subscription, error)
	FindByBusiness(ctx context.Context, accountID string) ([]Subscription, error)
	Update(ctx context.Context, s *Subscription) error
	AppendHistory(ctx context.Context, h *History) error
	FindRenewingBetween(ctx context.Context, from, to time.Time) ([]Subscription, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func historyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("changed_date ASC")
}

func (r *repository) Create(ctx context.Context, s *Subscription) error {
	return r.conn(ctx).Omit("Account", "Service", "History").Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Subscription, error) {
	var s Subscription
	err := r.conn(ctx).
		Preload("Account").
		Preload("Service").
		Preload("History", historyOrder).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	err := r.conn(ctx).
		Preload("Account").
		Preload("Service").
		Preload("History", historyOrder).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *repository) FindByBusiness(ctx context.Context, accountID string) ([]Subscription, error) {
	var subs []Subscription
	err := r.conn(ctx).
		Preload("Service").
		Preload("History", historyOrder).
		Where("business_account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *repository) Update(ctx context.Context, s *Subscription) error {
	return r.conn(ctx).Omit("Account", "Service", "History").Save(s).Error
}

func (r *repository) AppendHistory(ctx context.Context, h *History) error {
	return r.conn(ctx).Create(h).Error
}

// FindRenewingBetween returns active subscriptions whose renewal date falls in [from, to).
func (r *repository) FindRenewingBetween(ctx context.Context, from, to time.Time) ([]Subscription, error) {
	var subs []Subscription
	err := r.conn(ctx).
		Preload("Account").
		Preload("Service").
		Where("status = ? AND renewal_date >= ? AND renewal_date < ?", StatusActive, from, to).
		Order("renewal_date ASC").
		Find(&subs).Error
	return subs, err
}

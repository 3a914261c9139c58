package quotation

import (
	"context"
	"database/sql"

	"go-crm/internal/account"
	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=quotation_repo.go -destination=mock/quotation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, q *Quotation) error
	FindByID(ctx context.Context, id string) (*Quotation, error)
	List(ctx context.Context, businessAccountID string) ([]Quotation, error)
	Update(ctx context.Context, q *Quotation) error
	Delete(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]BusinessRef, error)
	ListFollowUps(ctx context.Context, quotationID string) ([]FollowUp, error)
	FindFollowUp(ctx context.Context, quotationID, followUpID string) (*FollowUp, error)
	CreateFollowUp(ctx context.Context, f *FollowUp) error
	UpdateFollowUp(ctx context.Context, f *FollowUp) error
	DeleteFollowUp(ctx context.Context, quotationID, followUpID string) error
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

func populate(db *gorm.DB) *gorm.DB {
	return db.Preload("Business").
		Preload("Service").
		Preload("FollowUps", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("FollowUps.AddedByUser")
}

func (r *repository) Create(ctx context.Context, q *Quotation) error {
	return r.conn(ctx).Omit("Business", "Service", "FollowUps").Create(q).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Quotation, error) {
	var q Quotation
	err := populate(r.conn(ctx)).First(&q, "id = ?", id).Error
	return &q, err
}

// List returns quotations newest first, narrowed to one business when
// businessAccountID is set.
func (r *repository) List(ctx context.Context, businessAccountID string) ([]Quotation, error) {
	q := populate(r.conn(ctx).Model(&Quotation{}))
	if businessAccountID != "" {
		q = q.Where("business_account_id = ?", businessAccountID)
	}
	var quotations []Quotation
	err := q.Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

func (r *repository) Update(ctx context.Context, q *Quotation) error {
	return r.conn(ctx).Omit("Business", "Service", "FollowUps").Save(q).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Quotation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListCustomers(ctx context.Context) ([]BusinessRef, error) {
	var refs []BusinessRef
	err := r.conn(ctx).
		Where("status = ?", account.StatusCustomer).
		Order("business_name ASC").
		Find(&refs).Error
	return refs, err
}

func (r *repository) ListFollowUps(ctx context.Context, quotationID string) ([]FollowUp, error) {
	var followUps []FollowUp
	err := r.conn(ctx).
		Preload("AddedByUser").
		Where("quotation_id = ?", quotationID).
		Order("date ASC").
		Find(&followUps).Error
	return followUps, err
}

func (r *repository) FindFollowUp(ctx context.Context, quotationID, followUpID string) (*FollowUp, error) {
	var f FollowUp
	err := r.conn(ctx).First(&f, "id = ? AND quotation_id = ?", followUpID, quotationID).Error
	return &f, err
}

func (r *repository) CreateFollowUp(ctx context.Context, f *FollowUp) error {
	return r.conn(ctx).Omit("AddedByUser").Create(f).Error
}

func (r *repository) UpdateFollowUp(ctx context.Context, f *FollowUp) error {
	return r.conn(ctx).Omit("AddedByUser").Save(f).Error
}

func (r *repository) DeleteFollowUp(ctx context.Context, quotationID, followUpID string) error {
	res := r.conn(ctx).Delete(&FollowUp{}, "id = ? AND quotation_id = ?", followUpID, quotationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

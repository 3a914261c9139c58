package brandservice

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=brandservice_repo.go -destination=mock/brandservice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]BrandService, error)
	FindByID(ctx context.Context, id string) (*BrandService, error)
	Create(ctx context.Context, svc *BrandService) error
	Update(ctx context.Context, svc *BrandService) error
	UpdateNotes(ctx context.Context, id string, notes []Note) error
	Delete(ctx context.Context, id string) error
	FindPlan(ctx context.Context, serviceID, planID string) (*Plan, error)
	CreatePlan(ctx context.Context, plan *Plan) error
	UpdatePlan(ctx context.Context, plan *Plan) error
	DeletePlan(ctx context.Context, serviceID, planID string) error
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

func preloadPlans(db *gorm.DB) *gorm.DB {
	return db.Order("service_plans.created_at ASC")
}

// FindAll lists the catalog newest first.
func (r *repository) FindAll(ctx context.Context) ([]BrandService, error) {
	var services []BrandService
	err := r.conn(ctx).
		Preload("Plans", preloadPlans).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*BrandService, error) {
	var svc BrandService
	err := r.conn(ctx).
		Preload("Plans", preloadPlans).
		First(&svc, "id = ?", id).Error
	return &svc, err
}

// Create inserts the service together with any plans attached to it.
func (r *repository) Create(ctx context.Context, svc *BrandService) error {
	return r.conn(ctx).Create(svc).Error
}

func (r *repository) Update(ctx context.Context, svc *BrandService) error {
	return r.conn(ctx).Omit("Plans").Save(svc).Error
}

func (r *repository) UpdateNotes(ctx context.Context, id string, notes []Note) error {
	res := r.conn(ctx).
		Model(&BrandService{}).
		Where("id = ?", id).
		Select("Notes").
		Updates(&BrandService{Notes: notes})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&BrandService{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindPlan(ctx context.Context, serviceID, planID string) (*Plan, error) {
	var plan Plan
	err := r.conn(ctx).
		First(&plan, "id = ? AND service_id = ?", planID, serviceID).Error
	return &plan, err
}

func (r *repository) CreatePlan(ctx context.Context, plan *Plan) error {
	return r.conn(ctx).Create(plan).Error
}

func (r *repository) UpdatePlan(ctx context.Context, plan *Plan) error {
	return r.conn(ctx).Save(plan).Error
}

func (r *repository) DeletePlan(ctx context.Context, serviceID, planID string) error {
	res := r.conn(ctx).Delete(&Plan{}, "id = ? AND service_id = ?", planID, serviceID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

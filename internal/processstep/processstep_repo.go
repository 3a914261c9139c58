package processstep

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=processstep_repo.go -destination=mock/processstep_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Step, error)
	FindByType(ctx context.Context, stepType string) ([]Step, error)
	CountByType(ctx context.Context, stepType string) (int64, error)
	CreateMany(ctx context.Context, steps []Step) error
	DeleteByType(ctx context.Context, stepType string) (int64, error)
	DeleteByID(ctx context.Context, id string) error
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

func (r *repository) FindAll(ctx context.Context) ([]Step, error) {
	var steps []Step
	err := r.conn(ctx).Order("step_type ASC, step_order ASC").Find(&steps).Error
	return steps, err
}

func (r *repository) FindByType(ctx context.Context, stepType string) ([]Step, error) {
	var steps []Step
	err := r.conn(ctx).
		Where("step_type = ?", stepType).
		Order("step_order ASC").
		Find(&steps).Error
	return steps, err
}

func (r *repository) CountByType(ctx context.Context, stepType string) (int64, error) {
	var n int64
	err := r.conn(ctx).Model(&Step{}).Where("step_type = ?", stepType).Count(&n).Error
	return n, err
}

func (r *repository) CreateMany(ctx context.Context, steps []Step) error {
	if len(steps) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&steps).Error
}

func (r *repository) DeleteByType(ctx context.Context, stepType string) (int64, error) {
	res := r.conn(ctx).Where("step_type = ?", stepType).Delete(&Step{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByID(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Step{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

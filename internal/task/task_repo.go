package task

import (
	"context"
	"database/sql"
	"time"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

type Filter struct {
	AssignedTo string
	AssignedBy string
	Status     string
	AccountID  string
	ServiceID  string
	Search     string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, f Filter) ([]Task, int64, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
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
	return db.Preload("Assignee").Preload("Assigner").Preload("Account").Preload("Service")
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.conn(ctx).Omit("Assignee", "Assigner", "Account", "Service").Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := populate(r.conn(ctx)).First(&t, "id = ?", id).Error
	return &t, err
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}
	if f.AssignedBy != "" {
		q = q.Where("assigned_by = ?", f.AssignedBy)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AccountID != "" {
		q = q.Where("account_id = ?", f.AccountID)
	}
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if f.From != nil {
		q = q.Where("assigned_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("assigned_date <= ?", *f.To)
	}
	return q
}

func (r *repository) List(ctx context.Context, f Filter) ([]Task, int64, error) {
	var total int64
	if err := applyFilter(r.conn(ctx).Model(&Task{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := populate(applyFilter(r.conn(ctx).Model(&Task{}), f)).Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var tasks []Task
	err := q.Find(&tasks).Error
	return tasks, total, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.conn(ctx).Omit("Assignee", "Assigner", "Account", "Service").Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

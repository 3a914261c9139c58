package account

import (
	"context"
	"database/sql"
	"strings"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

// Filter narrows account listings. Zero values do not filter.
type Filter struct {
	Search     string
	Status     string
	NotStatus  string
	SourceType string
	AssignedTo string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"businessName": "business_name",
	"contactName":  "contact_name",
	"status":       "status",
	"totalPrice":   "total_price",
}

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByBusinessName(ctx context.Context, name string) (*Account, error)
	List(ctx context.Context, f Filter) ([]Account, int64, error)
	CountByStatus(ctx context.Context, assignedTo string) (map[string]int64, error)
	Update(ctx context.Context, a *Account) error
	BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
	CreateNote(ctx context.Context, n *Note) error
	ListNotes(ctx context.Context, accountID string) ([]Note, error)
	ListFollowUps(ctx context.Context, accountID string) ([]FollowUp, error)
	FindFollowUp(ctx context.Context, accountID, followUpID string) (*FollowUp, error)
	CreateFollowUp(ctx context.Context, f *FollowUp) error
	UpdateFollowUp(ctx context.Context, f *FollowUp) error
	DeleteFollowUp(ctx context.Context, accountID, followUpID string) error
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

func (r *repository) Create(ctx context.Context, a *Account) error {
	return r.conn(ctx).Omit("Assignee", "Notes", "FollowUps").Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var a Account
	err := r.conn(ctx).
		Preload("Assignee").
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("FollowUps", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("FollowUps.AddedByUser").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByBusinessName(ctx context.Context, name string) (*Account, error) {
	var a Account
	err := r.conn(ctx).
		Preload("Assignee").
		Where("LOWER(business_name) = LOWER(?)", strings.TrimSpace(name)).
		Take(&a).Error
	return &a, err
}

func applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.NotStatus != "" {
		q = q.Where("status <> ?", f.NotStatus)
	}
	if f.SourceType != "" {
		q = q.Where("source_type = ?", f.SourceType)
	}
	if f.AssignedTo != "" {
		q = q.Where("assigned_to = ?", f.AssignedTo)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(business_name) LIKE ? OR LOWER(contact_name) LIKE ?)", like, like)
	}
	return q
}

func (r *repository) List(ctx context.Context, f Filter) ([]Account, int64, error) {
	var (
		accounts []Account
		total    int64
	)

	if err := applyFilter(r.conn(ctx).Model(&Account{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}

	q := applyFilter(r.conn(ctx).Preload("Assignee"), f).Order(column + " " + direction)
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *repository) CountByStatus(ctx context.Context, assignedTo string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	q := r.conn(ctx).Model(&Account{}).Select("status, COUNT(*) AS total")
	if assignedTo != "" {
		q = q.Where("assigned_to = ?", assignedTo)
	}
	if err := q.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) Update(ctx context.Context, a *Account) error {
	return r.conn(ctx).Omit("Assignee", "Notes", "FollowUps").Save(a).Error
}

func (r *repository) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	res := r.conn(ctx).
		Model(&Account{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":      status,
			"is_customer": status == StatusCustomer,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateNote(ctx context.Context, n *Note) error {
	return r.conn(ctx).Create(n).Error
}

func (r *repository) ListNotes(ctx context.Context, accountID string) ([]Note, error) {
	var notes []Note
	err := r.conn(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (r *repository) ListFollowUps(ctx context.Context, accountID string) ([]FollowUp, error) {
	var followUps []FollowUp
	err := r.conn(ctx).
		Preload("AddedByUser").
		Where("account_id = ?", accountID).
		Order("date ASC").
		Find(&followUps).Error
	return followUps, err
}

func (r *repository) FindFollowUp(ctx context.Context, accountID, followUpID string) (*FollowUp, error) {
	var f FollowUp
	err := r.conn(ctx).First(&f, "id = ? AND account_id = ?", followUpID, accountID).Error
	return &f, err
}

func (r *repository) CreateFollowUp(ctx context.Context, f *FollowUp) error {
	return r.conn(ctx).Omit("AddedByUser").Create(f).Error
}

func (r *repository) UpdateFollowUp(ctx context.Context, f *FollowUp) error {
	return r.conn(ctx).Omit("AddedByUser").Save(f).Error
}

func (r *repository) DeleteFollowUp(ctx context.Context, accountID, followUpID string) error {
	res := r.conn(ctx).Delete(&FollowUp{}, "id = ? AND account_id = ?", followUpID, accountID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

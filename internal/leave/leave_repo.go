package leave

import (
	"context"
	"database/sql"
	"time"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PendingFilter struct {
	Level  string
	TeamID string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindByUser(ctx context.Context, userID string) ([]Leave, error)
	FindPending(ctx context.Context, f PendingFilter) ([]Leave, error)
	FindAll(ctx context.Context) ([]Leave, error)
	FindApprovedOverlapping(ctx context.Context, userID string, from, to time.Time) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	FindBalanceForUpdate(ctx context.Context, userID string, year int) (*Balance, error)
	FindBalance(ctx context.Context, userID string, year int) (*Balance, error)
	CreateBalance(ctx context.Context, b *Balance) error
	UpdateBalance(ctx context.Context, b *Balance) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("User").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).Preload("User").First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	return leaves, err
}

// FindPending returns requests still in flight. An empty Level matches every
// pending request.
func (r *repository) FindPending(ctx context.Context, f PendingFilter) ([]Leave, error) {
	q := r.conn(ctx).Preload("User").Where("leaves.status = ?", StatusPending)
	if f.Level != "" {
		q = q.Where("leaves.current_level = ?", f.Level)
	}
	if f.TeamID != "" {
		q = q.Joins("JOIN users ON users.id = leaves.user_id").Where("users.team_id = ?", f.TeamID)
	}

	var leaves []Leave
	err := q.Order("leaves.created_at ASC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).Preload("User").Order("created_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindApprovedOverlapping(ctx context.Context, userID string, from, to time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Where("NOT (to_date < ? OR from_date > ?)", from, to).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("User").Save(l).Error
}

// FindBalanceForUpdate locks the row so concurrent approvals deduct serially.
func (r *repository) FindBalanceForUpdate(ctx context.Context, userID string, year int) (*Balance, error) {
	var b Balance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND year = ?", userID, year).
		Take(&b).Error
	return &b, err
}

func (r *repository) FindBalance(ctx context.Context, userID string, year int) (*Balance, error) {
	var b Balance
	err := r.conn(ctx).Where("user_id = ? AND year = ?", userID, year).Take(&b).Error
	return &b, err
}

func (r *repository) CreateBalance(ctx context.Context, b *Balance) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) UpdateBalance(ctx context.Context, b *Balance) error {
	return r.conn(ctx).Save(b).Error
}

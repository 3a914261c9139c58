package worksession

import (
	"context"
	"database/sql"
	"time"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=worksession_repo.go -destination=mock/worksession_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, id string) (*Session, error)
	FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*Session, error)
	ListByDate(ctx context.Context, day time.Time, userID string) ([]Session, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Session, error)
	ListOpenByDate(ctx context.Context, day time.Time) ([]Session, error)
	LoginTimesBetween(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)
	Update(ctx context.Context, s *Session) error
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

func (r *repository) Create(ctx context.Context, s *Session) error {
	return r.conn(ctx).Omit("User").Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := r.conn(ctx).Preload("User").First(&s, "id = ?", id).Error
	return &s, err
}

// FindByUserAndDate returns the earliest session of day.
func (r *repository) FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*Session, error) {
	var s Session
	err := r.conn(ctx).
		Where("user_id = ? AND work_date = ?", userID, day).
		Order("login_time ASC").
		First(&s).Error
	return &s, err
}

func (r *repository) ListByDate(ctx context.Context, day time.Time, userID string) ([]Session, error) {
	q := r.conn(ctx).Preload("User").Where("work_date = ?", day)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var sessions []Session
	err := q.Order("login_time ASC").Find(&sessions).Error
	return sessions, err
}

func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]Session, error) {
	var sessions []Session
	err := r.conn(ctx).
		Preload("User").
		Where("login_time >= ? AND login_time <= ?", from, to).
		Order("login_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *repository) ListOpenByDate(ctx context.Context, day time.Time) ([]Session, error) {
	var sessions []Session
	err := r.conn(ctx).
		Where("work_date = ? AND logout_time IS NULL", day).
		Find(&sessions).Error
	return sessions, err
}

func (r *repository) LoginTimesBetween(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	var logins []time.Time
	err := r.conn(ctx).
		Model(&Session{}).
		Where("user_id = ? AND login_time >= ? AND login_time <= ?", userID, from, to).
		Pluck("login_time", &logins).Error
	return logins, err
}

func (r *repository) Update(ctx context.Context, s *Session) error {
	return r.conn(ctx).Omit("User").Save(s).Error
}

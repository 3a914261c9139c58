package calendar

import (
	"context"

	"gorm.io/gorm"
)

// Every lookup is scoped to the owning user, so a foreign event id reads as
// not found.
//
//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Event) error
	FindForUser(ctx context.Context, id, userID string) (*Event, error)
	ListByUser(ctx context.Context, userID string) ([]Event, error)
	Update(ctx context.Context, e *Event) error
	DeleteForUser(ctx context.Context, id, userID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func populate(db *gorm.DB) *gorm.DB {
	return db.Preload("Account").Preload("Service")
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("Account", "Service").Create(e).Error
}

func (r *repository) FindForUser(ctx context.Context, id, userID string) (*Event, error) {
	var e Event
	err := populate(r.db.WithContext(ctx)).First(&e, "id = ? AND user_id = ?", id, userID).Error
	return &e, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Event, error) {
	var events []Event
	err := populate(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("Account", "Service").Save(e).Error
}

func (r *repository) DeleteForUser(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Delete(&Event{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

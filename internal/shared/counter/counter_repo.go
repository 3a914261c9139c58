// Package counter hands out gap-free sequence numbers for human-readable
// document numbers such as SUB-000001.
package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
	WithTx(tx *sql.Tx) Repository
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the counter to tx so a rolled back document does not consume
// its number.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// GetNextValue increments the named counter in a single upsert, creating it at 1.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var next int64
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType).Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("next %s number: %w", counterType, err)
	}
	return next, nil
}

// Format zero-pads value to width digits behind prefix. Values wider than
// width are printed in full.
func Format(prefix string, width int, value int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, value)
}

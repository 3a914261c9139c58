package rbac

import (
	"context"

	"gorm.io/gorm"
)

type RolePermission struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Role     string
	Resource string
	Action   string
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPolicies(ctx context.Context) ([]RolePermission, error)
	ListByRole(ctx context.Context, role string) ([]RolePermission, error)
	Grant(ctx context.Context, rp *RolePermission) error
	Revoke(ctx context.Context, role, resource, action string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPolicies(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) ListByRole(ctx context.Context, role string) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("resource, action").
		Find(&result).Error
	return result, err
}

func (r *repository) Grant(ctx context.Context, rp *RolePermission) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *repository) Revoke(ctx context.Context, role, resource, action string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("role = ? AND resource = ? AND action = ?", role, resource, action).
		Delete(&RolePermission{})
	return res.RowsAffected, res.Error
}

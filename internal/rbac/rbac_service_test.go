package rbac_test

import (
	"context"
	"testing"

	"go-crm/internal/domain"
	"go-crm/internal/rbac"
	rbacerrors "go-crm/internal/rbac/errors"
	"go-crm/internal/rbac/infra"
	rbacmock "go-crm/internal/rbac/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoadedService(t *testing.T, policies []rbac.RolePermission) (*rbacmock.MockRepository, rbac.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := rbacmock.NewMockRepository(ctrl)

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)

	svc := rbac.NewService(repo, enforcer)
	repo.EXPECT().ListPolicies(gomock.Any()).Return(policies, nil)
	require.NoError(t, svc.LoadPolicy(context.Background()))
	return repo, svc
}

func TestRBACService_Enforce(t *testing.T) {
	_, svc := newLoadedService(t, []rbac.RolePermission{
		{Role: "Superadmin", Resource: "*", Action: "*"},
		{Role: "Team Leader", Resource: "leave", Action: "approve"},
		{Role: "Employee", Resource: "leave", Action: "create"},
	})

	cases := []struct {
		name string
		req  domain.EnforceRequest
		want bool
	}{
		{"wildcard resource and action", domain.EnforceRequest{Role: "Superadmin", Resource: "subscription", Action: "write"}, true},
		{"role with spaces", domain.EnforceRequest{Role: "Team Leader", Resource: "leave", Action: "approve"}, true},
		{"exact grant", domain.EnforceRequest{Role: "Employee", Resource: "leave", Action: "create"}, true},
		{"missing action", domain.EnforceRequest{Role: "Employee", Resource: "leave", Action: "approve"}, false},
		{"unknown role", domain.EnforceRequest{Role: "Client", Resource: "leave", Action: "create"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}

	t.Run("incomplete request", func(t *testing.T) {
		_, err := svc.Enforce(domain.EnforceRequest{Role: "Employee"})
		assert.ErrorIs(t, err, rbacerrors.ErrInvalidEnforceRequest)
	})
}

func TestRBACService_GrantAndRevoke(t *testing.T) {
	ctx := context.Background()
	req := domain.GrantPermissionRequest{Role: "Client", Resource: "task", Action: "read"}

	t.Run("grant takes effect without reload", func(t *testing.T) {
		repo, svc := newLoadedService(t, nil)
		repo.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Grant(ctx, req)
		require.NoError(t, err)

		allowed, err := svc.Enforce(domain.EnforceRequest{Role: "Client", Resource: "task", Action: "read"})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("duplicate grant", func(t *testing.T) {
		repo, svc := newLoadedService(t, nil)
		repo.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Grant(ctx, req)
		assert.ErrorIs(t, err, rbacerrors.ErrPermissionExists)
	})

	t.Run("revoke removes policy", func(t *testing.T) {
		repo, svc := newLoadedService(t, []rbac.RolePermission{{Role: "Client", Resource: "task", Action: "read"}})
		repo.EXPECT().Revoke(gomock.Any(), "Client", "task", "read").Return(int64(1), nil)

		require.NoError(t, svc.Revoke(ctx, req))

		allowed, err := svc.Enforce(domain.EnforceRequest{Role: "Client", Resource: "task", Action: "read"})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("revoke unknown permission", func(t *testing.T) {
		repo, svc := newLoadedService(t, nil)
		repo.EXPECT().Revoke(gomock.Any(), "Client", "task", "read").Return(int64(0), nil)

		assert.ErrorIs(t, svc.Revoke(ctx, req), rbacerrors.ErrPermissionNotFound)
	})
}

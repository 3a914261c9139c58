package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-crm/internal/domain"
	rbacerrors "go-crm/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListPermissions(ctx context.Context, role string) ([]domain.PermissionResponse, error)
	Grant(ctx context.Context, req domain.GrantPermissionRequest) (domain.PermissionResponse, error)
	Revoke(ctx context.Context, req domain.GrantPermissionRequest) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the in-memory policy with the role_permissions table.
func (s *service) LoadPolicy(ctx context.Context) error {
	rows, err := s.repo.ListPolicies(ctx)
	if err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("policies", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.Role == "" || req.Resource == "" || req.Action == "" {
		return false, rbacerrors.ErrInvalidEnforceRequest
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListPermissions(ctx context.Context, role string) ([]domain.PermissionResponse, error) {
	var (
		rows []RolePermission
		err  error
	)
	if role == "" {
		rows, err = s.repo.ListPolicies(ctx)
	} else {
		rows, err = s.repo.ListByRole(ctx, role)
	}
	if err != nil {
		return nil, err
	}

	res := make([]domain.PermissionResponse, 0, len(rows))
	for _, rp := range rows {
		res = append(res, domain.PermissionResponse{Role: rp.Role, Resource: rp.Resource, Action: rp.Action})
	}
	return res, nil
}

func (s *service) Grant(ctx context.Context, req domain.GrantPermissionRequest) (domain.PermissionResponse, error) {
	req = normalize(req)
	if req.Role == "" || req.Resource == "" || req.Action == "" {
		return domain.PermissionResponse{}, rbacerrors.ErrInvalidEnforceRequest
	}

	rp := &RolePermission{Role: req.Role, Resource: req.Resource, Action: req.Action}
	if err := s.repo.Grant(ctx, rp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.PermissionResponse{}, rbacerrors.ErrPermissionExists
		}
		s.logger.Error("rbac grant failed", zap.Error(err))
		return domain.PermissionResponse{}, err
	}

	s.mu.Lock()
	_, err := s.enforcer.AddPolicy(req.Role, req.Resource, req.Action)
	s.mu.Unlock()
	if err != nil {
		return domain.PermissionResponse{}, err
	}

	s.logger.Info("rbac permission granted",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
	)
	return domain.PermissionResponse{Role: req.Role, Resource: req.Resource, Action: req.Action}, nil
}

func (s *service) Revoke(ctx context.Context, req domain.GrantPermissionRequest) error {
	req = normalize(req)

	affected, err := s.repo.Revoke(ctx, req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac revoke failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return rbacerrors.ErrPermissionNotFound
	}

	s.mu.Lock()
	_, err = s.enforcer.RemovePolicy(req.Role, req.Resource, req.Action)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Info("rbac permission revoked",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
	)
	return nil
}

func normalize(req domain.GrantPermissionRequest) domain.GrantPermissionRequest {
	req.Role = strings.TrimSpace(req.Role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)
	return req
}

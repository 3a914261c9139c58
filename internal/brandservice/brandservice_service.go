package brandservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	bserrors "go-crm/internal/brandservice/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	CatalogCacheKey = "brand_services:all"
	CatalogCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=brandservice_service.go -destination=mock/brandservice_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ServiceResponse, error)
	GetByID(ctx context.Context, id string) (ServiceResponse, error)
	Create(ctx context.Context, req CreateServiceRequest, author string) (ServiceResponse, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (ServiceResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateNotes(ctx context.Context, id string, req UpdateNotesRequest, author string) (ServiceResponse, error)
	AddPlan(ctx context.Context, serviceID string, req PlanRequest) (ServiceResponse, error)
	UpdatePlan(ctx context.Context, serviceID, planID string, req PlanRequest) (ServiceResponse, error)
	DeletePlan(ctx context.Context, serviceID, planID string) (ServiceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("brandservice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("brandservice.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bserrors.ErrServiceNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return bserrors.ErrServiceCodeTaken
	}
	return err
}

func (s *service) invalidateCatalog(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CatalogCacheKey).Err(); err != nil {
		s.logger.Error("invalidate catalog cache failed", zap.String("key", CatalogCacheKey), zap.Error(err))
	}
}

func (s *service) GetAll(ctx context.Context) ([]ServiceResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CatalogCacheKey).Result()
		if err == nil {
			var resp []ServiceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read catalog cache failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(CatalogCacheKey, func() (any, error) {
		services, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]ServiceResponse, 0, len(services))
		for i := range services {
			resp = append(resp, mapToResponse(&services[i]))
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CatalogCacheKey, string(data), CatalogCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all services failed", zap.Error(err))
		return nil, err
	}

	return v.([]ServiceResponse), nil
}

func (s *service) find(ctx context.Context, id string) (*BrandService, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, bserrors.ErrInvalidServiceID
	}
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get service failed", zap.String("service_id", id), zap.Error(err))
		}
		return nil, mapRepositoryError(err)
	}
	return svc, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceResponse, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return ServiceResponse{}, err
	}
	return mapToResponse(svc), nil
}

func (s *service) Create(ctx context.Context, req CreateServiceRequest, author string) (ServiceResponse, error) {
	s.logger.Debug("create service requested", zap.String("service_name", req.ServiceName))

	svc := &BrandService{
		ServiceCode: uuid.NewString(),
		ServiceName: strings.TrimSpace(req.ServiceName),
		Category:    req.Category,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		GSTRate:     18,
		Notes:       []Note{},
		IsActive:    true,
	}
	if req.GSTRate != nil {
		svc.GSTRate = *req.GSTRate
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	for _, p := range req.Plans {
		svc.Plans = append(svc.Plans, newPlan(p))
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		s.logger.Error("create service failed", zap.Error(err))
		return ServiceResponse{}, mapRepositoryError(err)
	}
	s.invalidateCatalog(ctx)

	s.logger.Info("create service success", zap.String("service_id", svc.ID.String()), zap.String("author", author))
	return mapToResponse(svc), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateServiceRequest) (ServiceResponse, error) {
	s.logger.Debug("update service requested", zap.String("service_id", id))

	svc, err := s.find(ctx, id)
	if err != nil {
		return ServiceResponse{}, err
	}

	if req.ServiceName != nil {
		svc.ServiceName = strings.TrimSpace(*req.ServiceName)
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.GSTRate != nil {
		svc.GSTRate = *req.GSTRate
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		s.logger.Error("update service failed", zap.String("service_id", id), zap.Error(err))
		return ServiceResponse{}, mapRepositoryError(err)
	}
	s.invalidateCatalog(ctx)

	s.logger.Info("update service success", zap.String("service_id", id))
	return mapToResponse(svc), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return bserrors.ErrInvalidServiceID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("delete service failed", zap.String("service_id", id), zap.Error(err))
		}
		return mapRepositoryError(err)
	}
	s.invalidateCatalog(ctx)

	s.logger.Info("delete service success", zap.String("service_id", id))
	return nil
}

// UpdateNotes replaces the whole note list.
func (s *service) UpdateNotes(ctx context.Context, id string, req UpdateNotesRequest, author string) (ServiceResponse, error) {
	svc, err := s.find(ctx, id)
	if err != nil {
		return ServiceResponse{}, err
	}

	notes := make([]Note, 0, len(req.Notes))
	for _, n := range req.Notes {
		note := Note{Text: n.Text, Author: n.Author, Timestamp: s.now()}
		if n.Timestamp != nil {
			note.Timestamp = *n.Timestamp
		}
		if note.Author == "" {
			note.Author = author
		}
		notes = append(notes, note)
	}

	if err := s.repo.UpdateNotes(ctx, id, notes); err != nil {
		s.logger.Error("update service notes failed", zap.String("service_id", id), zap.Error(err))
		return ServiceResponse{}, mapRepositoryError(err)
	}
	s.invalidateCatalog(ctx)

	svc.Notes = notes
	return mapToResponse(svc), nil
}

func (s *service) AddPlan(ctx context.Context, serviceID string, req PlanRequest) (ServiceResponse, error) {
	s.logger.Debug("add plan requested", zap.String("service_id", serviceID), zap.String("plan", req.Name))

	svc, err := s.find(ctx, serviceID)
	if err != nil {
		return ServiceResponse{}, err
	}

	plan := newPlan(req)
	plan.ServiceID = svc.ID
	if err := s.repo.CreatePlan(ctx, &plan); err != nil {
		s.logger.Error("add plan failed", zap.String("service_id", serviceID), zap.Error(err))
		return ServiceResponse{}, err
	}
	s.invalidateCatalog(ctx)

	svc.Plans = append(svc.Plans, plan)
	s.logger.Info("add plan success", zap.String("service_id", serviceID), zap.String("plan_id", plan.ID.String()))
	return mapToResponse(svc), nil
}

func (s *service) UpdatePlan(ctx context.Context, serviceID, planID string, req PlanRequest) (ServiceResponse, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return ServiceResponse{}, bserrors.ErrInvalidPlanID
	}
	svc, err := s.find(ctx, serviceID)
	if err != nil {
		return ServiceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	plan, err := qtx.FindPlan(ctx, serviceID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServiceResponse{}, bserrors.ErrPlanNotFound
		}
		return ServiceResponse{}, err
	}

	applyPlan(plan, req)
	if err := qtx.UpdatePlan(ctx, plan); err != nil {
		s.logger.Error("update plan failed", zap.String("plan_id", planID), zap.Error(err))
		return ServiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ServiceResponse{}, err
	}
	s.invalidateCatalog(ctx)

	for i := range svc.Plans {
		if svc.Plans[i].ID == plan.ID {
			svc.Plans[i] = *plan
		}
	}
	s.logger.Info("update plan success", zap.String("plan_id", planID))
	return mapToResponse(svc), nil
}

func (s *service) DeletePlan(ctx context.Context, serviceID, planID string) (ServiceResponse, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return ServiceResponse{}, bserrors.ErrInvalidPlanID
	}
	svc, err := s.find(ctx, serviceID)
	if err != nil {
		return ServiceResponse{}, err
	}

	if err := s.repo.DeletePlan(ctx, serviceID, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ServiceResponse{}, bserrors.ErrPlanNotFound
		}
		s.logger.Error("delete plan failed", zap.String("plan_id", planID), zap.Error(err))
		return ServiceResponse{}, err
	}
	s.invalidateCatalog(ctx)

	kept := svc.Plans[:0]
	for _, p := range svc.Plans {
		if p.ID.String() != planID {
			kept = append(kept, p)
		}
	}
	svc.Plans = kept
	return mapToResponse(svc), nil
}

func newPlan(req PlanRequest) Plan {
	p := Plan{IsActive: true}
	applyPlan(&p, req)
	return p
}

func applyPlan(p *Plan, req PlanRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.PriceMonthly = req.PriceMonthly
	p.PriceYearly = req.PriceYearly
	p.PriceOneTime = req.PriceOneTime
	p.ScriptBased = req.ScriptBased
	p.Features = make([]Feature, 0, len(req.Features))
	for _, f := range req.Features {
		p.Features = append(p.Features, Feature{Name: f.Name})
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func mapToResponse(svc *BrandService) ServiceResponse {
	notes := make([]NoteResponse, 0, len(svc.Notes))
	for _, n := range svc.Notes {
		notes = append(notes, NoteResponse(n))
	}
	plans := make([]PlanResponse, 0, len(svc.Plans))
	for _, p := range svc.Plans {
		features := p.Features
		if features == nil {
			features = []Feature{}
		}
		plans = append(plans, PlanResponse{
			ID:           p.ID.String(),
			Name:         p.Name,
			PriceMonthly: p.PriceMonthly,
			PriceYearly:  p.PriceYearly,
			PriceOneTime: p.PriceOneTime,
			ScriptBased:  p.ScriptBased,
			Features:     features,
			IsActive:     p.IsActive,
		})
	}
	return ServiceResponse{
		ID:          svc.ID.String(),
		ServiceCode: svc.ServiceCode,
		ServiceName: svc.ServiceName,
		Category:    svc.Category,
		Description: svc.Description,
		BasePrice:   svc.BasePrice,
		GSTRate:     svc.GSTRate,
		Notes:       notes,
		Plans:       plans,
		IsActive:    svc.IsActive,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

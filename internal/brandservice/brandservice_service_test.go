package brandservice_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-crm/internal/brandservice"
	bserrors "go-crm/internal/brandservice/errors"
	bsmock "go-crm/internal/brandservice/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *bsmock.MockRepository
	redisMock redismock.ClientMock
	service   brandservice.Service
}

func setupService(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := bsmock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &serviceDeps{
		sqlMock:   sqlMock,
		repo:      repo,
		redisMock: redisMock,
		service:   brandservice.NewService(db, repo, rdb),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func sampleService() (brandservice.BrandService, brandservice.ServiceResponse) {
	serviceID := uuid.New()
	planID := uuid.New()
	entity := brandservice.BrandService{
		ID:          serviceID,
		ServiceCode: "SEO-1",
		ServiceName: "SEO",
		BasePrice:   1000,
		GSTRate:     18,
		IsActive:    true,
		Plans: []brandservice.Plan{
			{ID: planID, ServiceID: serviceID, Name: "Basic", PriceMonthly: 500, IsActive: true},
		},
	}
	resp := brandservice.ServiceResponse{
		ID:          serviceID.String(),
		ServiceCode: "SEO-1",
		ServiceName: "SEO",
		BasePrice:   1000,
		GSTRate:     18,
		Notes:       []brandservice.NoteResponse{},
		Plans: []brandservice.PlanResponse{
			{ID: planID.String(), Name: "Basic", PriceMonthly: 500, Features: []brandservice.Feature{}, IsActive: true},
		},
		IsActive: true,
	}
	return entity, resp
}

func TestBrandService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupService(t)
		_, resp := sampleService()
		cached, _ := json.Marshal([]brandservice.ServiceResponse{resp})
		deps.redisMock.ExpectGet(brandservice.CatalogCacheKey).SetVal(string(cached))

		got, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "SEO", got[0].ServiceName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupService(t)
		entity, resp := sampleService()
		want := []brandservice.ServiceResponse{resp}
		data, _ := json.Marshal(want)

		deps.redisMock.ExpectGet(brandservice.CatalogCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return([]brandservice.BrandService{entity}, nil)
		deps.redisMock.ExpectSet(brandservice.CatalogCacheKey, string(data), brandservice.CatalogCacheTTL).SetVal("OK")

		got, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupService(t)
		deps.redisMock.ExpectGet(brandservice.CatalogCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		got, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestBrandService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.GetByID(ctx, "nope")

		assert.ErrorIs(t, err, bserrors.ErrInvalidServiceID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, bserrors.ErrServiceNotFound)
	})
}

func TestBrandService_Create(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)

	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, svc *brandservice.BrandService) error {
			assert.Equal(t, "Web Design", svc.ServiceName)
			assert.Equal(t, 18.0, svc.GSTRate)
			assert.NotEmpty(t, svc.ServiceCode)
			require.Len(t, svc.Plans, 1)
			assert.Equal(t, []brandservice.Feature{{Name: "5 pages"}}, svc.Plans[0].Features)
			svc.ID = uuid.New()
			return nil
		})
	deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

	resp, err := deps.service.Create(ctx, brandservice.CreateServiceRequest{
		ServiceName: " Web Design ",
		BasePrice:   20000,
		Plans: []brandservice.PlanRequest{
			{Name: "Starter", PriceOneTime: 15000, Features: []brandservice.FeatureInput{{Name: "5 pages"}}},
		},
	}, "admin-1")

	assert.NoError(t, err)
	assert.Equal(t, "Web Design", resp.ServiceName)
	assert.Len(t, resp.Plans, 1)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestBrandService_Update(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)
	entity, _ := sampleService()
	id := entity.ID.String()
	price := 1500.0
	name := "Local SEO"

	deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, svc *brandservice.BrandService) error {
			assert.Equal(t, 1500.0, svc.BasePrice)
			assert.Equal(t, "Local SEO", svc.ServiceName)
			return nil
		})
	deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

	resp, err := deps.service.Update(ctx, id, brandservice.UpdateServiceRequest{BasePrice: &price, ServiceName: &name})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, resp.BasePrice)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestBrandService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.NewString()
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.NewString()
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, id), bserrors.ErrServiceNotFound)
	})
}

func TestBrandService_UpdateNotes(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)
	entity, _ := sampleService()
	id := entity.ID.String()

	deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
	deps.repo.EXPECT().
		UpdateNotes(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, notes []brandservice.Note) error {
			require.Len(t, notes, 2)
			assert.Equal(t, "admin-1", notes[0].Author)
			assert.Equal(t, "Ravi", notes[1].Author)
			assert.False(t, notes[0].Timestamp.IsZero())
			return nil
		})
	deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

	resp, err := deps.service.UpdateNotes(ctx, id, brandservice.UpdateNotesRequest{
		Notes: []brandservice.NoteInput{{Text: "Call back"}, {Text: "Sent deck", Author: "Ravi"}},
	}, "admin-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Notes, 2)
}

func TestBrandService_Plans(t *testing.T) {
	ctx := context.Background()

	t.Run("add plan", func(t *testing.T) {
		deps := setupService(t)
		entity, _ := sampleService()
		id := entity.ID.String()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
		deps.repo.EXPECT().
			CreatePlan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *brandservice.Plan) error {
				assert.Equal(t, entity.ID, p.ServiceID)
				assert.True(t, p.IsActive)
				p.ID = uuid.New()
				return nil
			})
		deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

		resp, err := deps.service.AddPlan(ctx, id, brandservice.PlanRequest{Name: "Pro", PriceMonthly: 900})

		assert.NoError(t, err)
		assert.Len(t, resp.Plans, 2)
	})

	t.Run("update missing plan", func(t *testing.T) {
		deps := setupService(t)
		entity, _ := sampleService()
		id := entity.ID.String()
		planID := uuid.NewString()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindPlan(gomock.Any(), id, planID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdatePlan(ctx, id, planID, brandservice.PlanRequest{Name: "Pro"})

		assert.ErrorIs(t, err, bserrors.ErrPlanNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("update plan", func(t *testing.T) {
		deps := setupService(t)
		entity, _ := sampleService()
		id := entity.ID.String()
		plan := entity.Plans[0]
		planID := plan.ID.String()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindPlan(gomock.Any(), id, planID).Return(&plan, nil)
		deps.repo.EXPECT().UpdatePlan(gomock.Any(), gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

		resp, err := deps.service.UpdatePlan(ctx, id, planID, brandservice.PlanRequest{Name: "Basic+", PriceMonthly: 650})

		assert.NoError(t, err)
		assert.Equal(t, "Basic+", resp.Plans[0].Name)
		assert.Equal(t, 650.0, resp.Plans[0].PriceMonthly)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("delete plan", func(t *testing.T) {
		deps := setupService(t)
		entity, _ := sampleService()
		id := entity.ID.String()
		planID := entity.Plans[0].ID.String()

		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity, nil)
		deps.repo.EXPECT().DeletePlan(gomock.Any(), id, planID).Return(nil)
		deps.redisMock.ExpectDel(brandservice.CatalogCacheKey).SetVal(1)

		resp, err := deps.service.DeletePlan(ctx, id, planID)

		assert.NoError(t, err)
		assert.Empty(t, resp.Plans)
	})
}

func TestBrandService_Pricing(t *testing.T) {
	entity, _ := sampleService()

	svc := entity.Pricing()

	assert.Equal(t, 1000.0, svc.BasePrice)
	require.Len(t, svc.Plans, 1)
	assert.Equal(t, entity.Plans[0].ID.String(), svc.Plans[0].ID)
	_, ok := entity.FindPlanByName("Basic")
	assert.True(t, ok)
}

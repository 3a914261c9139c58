package processstep_test

import (
	"context"
	"errors"
	"testing"

	"go-crm/internal/processstep"
	pserrors "go-crm/internal/processstep/errors"
	psmock "go-crm/internal/processstep/mock"
	"go-crm/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (sqlmock.Sqlmock, *psmock.MockRepository, processstep.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := psmock.NewMockRepository(ctrl)
	return sqlMock, repo, processstep.NewService(db, repo)
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

func TestProcessStepService_CreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers steps by position", func(t *testing.T) {
		_, repo, svc := setupService(t)
		repo.EXPECT().CountByType(gomock.Any(), "SEO").Return(int64(0), nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, steps []processstep.Step) error {
			require.Len(t, steps, 3)
			for i, s := range steps {
				assert.Equal(t, i+1, s.Order)
				assert.Equal(t, "SEO", s.StepType)
			}
			assert.Equal(t, processstep.StatusPending, steps[0].Status)
			assert.Equal(t, "Review", steps[2].Status)
			return nil
		})

		res, err := svc.CreateGroup(ctx, processstep.CreateGroupRequest{
			StepType: " SEO ",
			Steps: []processstep.StepInput{
				{StepName: "Audit"},
				{StepName: "Keywords"},
				{StepName: "Report", Status: "Review"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Report", res[2].StepName)
		assert.Equal(t, 3, res[2].Order)
	})

	t.Run("existing group conflicts", func(t *testing.T) {
		_, repo, svc := setupService(t)
		repo.EXPECT().CountByType(gomock.Any(), "SEO").Return(int64(2), nil)

		_, err := svc.CreateGroup(ctx, processstep.CreateGroupRequest{
			StepType: "SEO",
			Steps:    []processstep.StepInput{{StepName: "Audit"}},
		})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 409, httpErr.Status)
		assert.Equal(t, `Step Type "SEO" already exists. Please use PUT to update.`, httpErr.Message)
	})

	t.Run("empty group", func(t *testing.T) {
		_, repo, svc := setupService(t)
		repo.EXPECT().CountByType(gomock.Any(), "SEO").Return(int64(0), nil)

		_, err := svc.CreateGroup(ctx, processstep.CreateGroupRequest{StepType: "SEO"})
		assert.ErrorIs(t, err, pserrors.ErrStepsRequired)
	})
}

func TestProcessStepService_GetGrouped(t *testing.T) {
	_, repo, svc := setupService(t)
	repo.EXPECT().FindAll(gomock.Any()).Return([]processstep.Step{
		{ID: uuid.New(), StepType: "Ads", StepName: "Setup", Order: 1},
		{ID: uuid.New(), StepType: "SEO", StepName: "Audit", Order: 1},
		{ID: uuid.New(), StepType: "SEO", StepName: "Report", Order: 2},
	}, nil)

	groups, err := svc.GetGrouped(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Ads", groups[0].StepType)
	assert.Len(t, groups[1].Steps, 2)
	assert.Equal(t, "Report", groups[1].Steps[1].StepName)
}

func TestProcessStepService_ReplaceGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("delete then insert in one transaction", func(t *testing.T) {
		sqlMock, repo, svc := setupService(t)
		expectTx(t, sqlMock, true)
		gomock.InOrder(
			repo.EXPECT().WithTx(gomock.Any()).Return(repo),
			repo.EXPECT().DeleteByType(gomock.Any(), "SEO").Return(int64(4), nil),
			repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(2)).Return(nil),
		)

		res, err := svc.ReplaceGroup(ctx, "SEO", processstep.ReplaceGroupRequest{
			Steps: []processstep.StepInput{{StepName: "B"}, {StepName: "A"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "B", res[0].StepName)
		assert.Equal(t, 2, res[1].Order)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		sqlMock, repo, svc := setupService(t)
		expectTx(t, sqlMock, false)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().DeleteByType(gomock.Any(), "SEO").Return(int64(1), nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.ReplaceGroup(ctx, "SEO", processstep.ReplaceGroupRequest{
			Steps: []processstep.StepInput{{StepName: "A"}},
		})

		assert.EqualError(t, err, "db down")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("empty list", func(t *testing.T) {
		_, _, svc := setupService(t)
		_, err := svc.ReplaceGroup(ctx, "SEO", processstep.ReplaceGroupRequest{})
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})
}

func TestProcessStepService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing group", func(t *testing.T) {
		_, repo, svc := setupService(t)
		repo.EXPECT().DeleteByType(gomock.Any(), "Ads").Return(int64(0), nil)

		err := svc.DeleteGroup(ctx, "Ads")
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 404, httpErr.Status)
		assert.Equal(t, "Step Group 'Ads' not found.", httpErr.Message)
	})

	t.Run("single step", func(t *testing.T) {
		_, repo, svc := setupService(t)
		id := uuid.NewString()
		repo.EXPECT().DeleteByID(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeleteStep(ctx, id), pserrors.ErrStepNotFound)
		assert.ErrorIs(t, svc.DeleteStep(ctx, "bad"), pserrors.ErrInvalidStepID)
	})
}

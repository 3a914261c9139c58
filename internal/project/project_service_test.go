package project_test

import (
	"context"
	"testing"
	"time"

	"go-crm/internal/alert"
	alertmock "go-crm/internal/alert/mock"
	"go-crm/internal/brandservice"
	"go-crm/internal/processstep"
	psmock "go-crm/internal/processstep/mock"
	"go-crm/internal/project"
	projecterrors "go-crm/internal/project/errors"
	projectmock "go-crm/internal/project/mock"
	"go-crm/internal/shared/storage"
	storagemock "go-crm/internal/shared/storage/mock"
	"go-crm/internal/user"
	usermock "go-crm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeCatalog struct {
	findByID func(ctx context.Context, id string) (*brandservice.BrandService, error)
}

func (f *fakeCatalog) FindByID(ctx context.Context, id string) (*brandservice.BrandService, error) {
	return f.findByID(ctx, id)
}

type projectDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *projectmock.MockRepository
	templates *psmock.MockRepository
	users     *usermock.MockRepository
	alerts    *alertmock.MockDispatcher
	storage   *storagemock.MockPresigner
	service   project.Service
}

func setupProjectService(t *testing.T) *projectDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	d := &projectDeps{
		sqlMock:   sqlMock,
		repo:      projectmock.NewMockRepository(ctrl),
		templates: psmock.NewMockRepository(ctrl),
		users:     usermock.NewMockRepository(ctrl),
		alerts:    alertmock.NewMockDispatcher(ctrl),
		storage:   storagemock.NewMockPresigner(ctrl),
	}
	catalog := &fakeCatalog{findByID: func(_ context.Context, id string) (*brandservice.BrandService, error) {
		return &brandservice.BrandService{ID: uuid.MustParse(id), ServiceName: "SEO"}, nil
	}}
	d.service = project.NewService(db, d.repo, project.Deps{
		Templates: d.templates,
		Catalog:   catalog,
		Users:     d.users,
		Alerts:    d.alerts,
		Storage:   d.storage,
	})
	return d
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

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	member := uuid.New()
	accountID := uuid.NewString()
	serviceID := uuid.NewString()

	t.Run("copies the template group as pending steps", func(t *testing.T) {
		d := setupProjectService(t)
		expectTx(t, d.sqlMock, true)

		d.templates.EXPECT().FindByType(gomock.Any(), "SEO").Return([]processstep.Step{
			{StepName: "Audit", Status: "Completed", Order: 3},
			{StepName: "Keywords", Status: "Review", Order: 7},
		}, nil)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().ReplaceSteps(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, steps []project.Step) error {
				require.Len(t, steps, 2)
				assert.Equal(t, "Audit", steps[0].StepName)
				for i, s := range steps {
					assert.Equal(t, project.StepPending, s.Status)
					assert.Equal(t, i+1, s.Order)
				}
				return nil
			})
		d.repo.EXPECT().ReplaceMembers(gomock.Any(), gomock.Any(), []uuid.UUID{member}).Return(nil)

		var recipients []string
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).Do(func(_ context.Context, in alert.Input) {
			assert.Equal(t, "New project assigned: Launch", in.Message)
			assert.Equal(t, alert.TypeProject, in.Type)
			recipients = append(recipients, in.UserID)
		})
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&project.Project{Name: "Launch"}, nil)

		res, err := d.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Launch",
			StartDate: "2026-03-01",
			AccountID: accountID,
			ServiceID: serviceID,
			Members:   []string{member.String(), member.String()},
		}, creator.String())

		require.NoError(t, err)
		assert.Equal(t, "Launch", res.Name)
		assert.ElementsMatch(t, []string{creator.String(), member.String()}, recipients)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit steps are renumbered, not templated", func(t *testing.T) {
		d := setupProjectService(t)
		expectTx(t, d.sqlMock, true)

		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
			assert.Equal(t, project.StatusPlanned, p.Status)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
			return nil
		})
		d.repo.EXPECT().ReplaceSteps(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, steps []project.Step) error {
				assert.Equal(t, "B", steps[0].StepName)
				assert.Equal(t, 2, steps[1].Order)
				assert.Equal(t, project.StepInProgress, steps[1].Status)
				return nil
			})
		d.repo.EXPECT().ReplaceMembers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.alerts.EXPECT().Send(gomock.Any(), gomock.Any())
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&project.Project{}, nil)

		_, err := d.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Launch",
			StartDate: "2026-03-01",
			AccountID: accountID,
			ServiceID: serviceID,
			Steps:     []project.StepInput{{StepName: "B"}, {StepName: "A", Status: "In Progress"}},
		}, creator.String())
		require.NoError(t, err)
	})

	t.Run("bad step status", func(t *testing.T) {
		d := setupProjectService(t)
		_, err := d.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Launch",
			StartDate: "2026-03-01",
			AccountID: accountID,
			ServiceID: serviceID,
			Steps:     []project.StepInput{{StepName: "A", Status: "Done"}},
		}, creator.String())
		assert.ErrorIs(t, err, projecterrors.ErrInvalidStepStatus)
	})

	t.Run("bad date", func(t *testing.T) {
		d := setupProjectService(t)
		_, err := d.service.Create(ctx, project.CreateProjectRequest{
			Name:      "Launch",
			StartDate: "01/03/2026",
			AccountID: accountID,
			ServiceID: serviceID,
		}, creator.String())
		assert.ErrorIs(t, err, projecterrors.ErrInvalidDate)
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	member := uuid.New()
	p := &project.Project{
		ID:      uuid.New(),
		Name:    "Launch",
		Status:  project.StatusPlanned,
		Members: []project.Member{{ID: member, Name: "Ravi"}},
	}

	d := setupProjectService(t)
	expectTx(t, d.sqlMock, true)
	status := project.StatusInProgress
	steps := []project.StepInput{{StepName: "Only"}}

	d.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(p, nil).Times(2)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().ReplaceSteps(gomock.Any(), p.ID, gomock.Len(1)).Return(nil)
	d.alerts.EXPECT().Send(gomock.Any(), alert.Input{
		UserID:  member.String(),
		Message: "Project updated: Launch",
		Type:    alert.TypeProject,
		RefID:   p.ID.String(),
	})

	res, err := d.service.Update(ctx, p.ID.String(), project.UpdateProjectRequest{Status: &status, Steps: &steps})

	require.NoError(t, err)
	assert.Equal(t, project.StatusInProgress, res.Status)
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
}

func TestProjectService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("employee sees member projects", func(t *testing.T) {
		d := setupProjectService(t)
		d.repo.EXPECT().List(gomock.Any(), project.Filter{Status: "Planned", MemberID: "emp-1"}).
			Return([]project.Project{{Name: "A"}}, nil)

		res, err := d.service.GetAll(ctx, project.ListQuery{Status: "Planned", UserID: "emp-1", Role: "Employee"})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("client sees its business account", func(t *testing.T) {
		d := setupProjectService(t)
		accountID := uuid.New()
		d.users.EXPECT().FindByID(gomock.Any(), "client-1").Return(&user.User{BusinessAccountID: &accountID}, nil)
		d.repo.EXPECT().List(gomock.Any(), project.Filter{AccountID: accountID.String()}).Return(nil, nil)

		res, err := d.service.GetAll(ctx, project.ListQuery{UserID: "client-1", Role: "Client", AccountID: "other"})
		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("client without account sees nothing", func(t *testing.T) {
		d := setupProjectService(t)
		d.users.EXPECT().FindByID(gomock.Any(), "client-2").Return(&user.User{}, nil)

		res, err := d.service.GetAll(ctx, project.ListQuery{UserID: "client-2", Role: "Client"})
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestProjectService_GetStats(t *testing.T) {
	d := setupProjectService(t)
	d.repo.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int64{"Planned": 2, "Completed": 5}, nil)

	res, err := d.service.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []project.StatResponse{{Status: "Completed", Count: 5}, {Status: "Planned", Count: 2}}, res)
}

func TestProjectService_Notes(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("add defaults the author", func(t *testing.T) {
		d := setupProjectService(t)
		d.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&project.Project{ID: id}, nil)
		d.repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *project.Note) error {
			assert.Equal(t, "user-1", n.Author)
			assert.Equal(t, id, n.ProjectID)
			return nil
		})
		d.repo.EXPECT().ListNotes(gomock.Any(), id.String()).Return([]project.Note{{Text: "kickoff", Author: "user-1"}}, nil)

		notes, err := d.service.AddNote(ctx, id.String(), project.AddNoteRequest{Text: "kickoff"}, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "kickoff", notes[0].Text)
	})

	t.Run("delete missing note", func(t *testing.T) {
		d := setupProjectService(t)
		d.repo.EXPECT().DeleteNote(gomock.Any(), id.String(), "n1").Return(gorm.ErrRecordNotFound)

		_, err := d.service.DeleteNote(ctx, id.String(), "n1")
		assert.ErrorIs(t, err, projecterrors.ErrNoteNotFound)
	})
}

func TestProjectService_PresignAttachment(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	d := setupProjectService(t)
	expires := time.Now().Add(15 * time.Minute)

	d.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&project.Project{ID: id}, nil)
	d.storage.EXPECT().PresignUpload(gomock.Any(), "projects/"+id.String(), "brief.pdf", "application/pdf").
		Return(storage.Upload{
			UploadURL: "https://signed",
			PublicURL: "https://bucket/projects/x_brief.pdf",
			Key:       "projects/x_brief.pdf",
			ExpiresAt: expires,
		}, nil)
	d.repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *project.Attachment) error {
		assert.Equal(t, "projects/x_brief.pdf", a.ObjectKey)
		return nil
	})

	res, err := d.service.PresignAttachment(ctx, id.String(), project.PresignRequest{Filename: "brief.pdf", ContentType: "application/pdf"})

	require.NoError(t, err)
	assert.Equal(t, "https://signed", res.UploadURL)
	assert.Equal(t, "https://bucket/projects/x_brief.pdf", res.URL)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	d := setupProjectService(t)
	id := uuid.NewString()
	d.repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, d.service.Delete(context.Background(), id), projecterrors.ErrProjectNotFound)
}

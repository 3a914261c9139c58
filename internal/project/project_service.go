package project

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"go-crm/internal/alert"
	"go-crm/internal/brandservice"
	"go-crm/internal/messages"
	"go-crm/internal/processstep"
	projecterrors "go-crm/internal/project/errors"
	"go-crm/internal/shared/storage"
	"go-crm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	roleEmployee = "Employee"
	roleClient   = "Client"
)

// StepTemplates is the template group source for new projects.
type StepTemplates interface {
	FindByType(ctx context.Context, stepType string) ([]processstep.Step, error)
}

type ServiceCatalog interface {
	FindByID(ctx context.Context, id string) (*brandservice.BrandService, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type Deps struct {
	Templates StepTemplates
	Catalog   ServiceCatalog
	Users     UserDirectory
	Alerts    alert.Dispatcher
	Storage   storage.Presigner
}

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest, createdBy string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context) ([]StatResponse, error)
	AddNote(ctx context.Context, id string, req AddNoteRequest, author string) ([]NoteResponse, error)
	DeleteNote(ctx context.Context, id, noteID string) ([]NoteResponse, error)
	PresignAttachment(ctx context.Context, id string, req PresignRequest) (AttachmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, deps: deps, now: time.Now, logger: l}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}
	return err
}

func parseID(id string) (uuid.UUID, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, projecterrors.ErrInvalidProjectID
	}
	return pid, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, projecterrors.ErrInvalidDate
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseMembers(ids []string) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// numberSteps keeps submission order and renumbers 1..N.
func numberSteps(inputs []StepInput) ([]Step, error) {
	steps := make([]Step, 0, len(inputs))
	for i, in := range inputs {
		status := in.Status
		if status == "" {
			status = StepPending
		}
		if !IsValidStepStatus(status) {
			return nil, projecterrors.ErrInvalidStepStatus
		}
		steps = append(steps, Step{
			StepName:    in.StepName,
			URL:         in.URL,
			Description: in.Description,
			Status:      status,
			Order:       i + 1,
		})
	}
	return steps, nil
}

// templateSteps copies the template group for serviceName. Every copied step
// starts Pending whatever the template says.
func (s *service) templateSteps(ctx context.Context, serviceID uuid.UUID, serviceName string) ([]Step, error) {
	if serviceName == "" && s.deps.Catalog != nil {
		svc, err := s.deps.Catalog.FindByID(ctx, serviceID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, projecterrors.ErrServiceNotFound
			}
			return nil, err
		}
		serviceName = svc.ServiceName
	}
	if serviceName == "" || s.deps.Templates == nil {
		return nil, nil
	}

	templates, err := s.deps.Templates.FindByType(ctx, serviceName)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(templates))
	for i, t := range templates {
		steps = append(steps, Step{
			StepName:    t.StepName,
			URL:         t.URL,
			Description: t.Description,
			Status:      StepPending,
			Order:       i + 1,
		})
	}
	return steps, nil
}

func (s *service) notify(ctx context.Context, p *Project, message string, recipients []uuid.UUID) {
	if s.deps.Alerts == nil {
		return
	}
	sent := make(map[uuid.UUID]bool, len(recipients))
	for _, id := range recipients {
		if id == uuid.Nil || sent[id] {
			continue
		}
		sent[id] = true
		s.deps.Alerts.Send(ctx, alert.Input{
			UserID:  id.String(),
			Message: message,
			Type:    alert.TypeProject,
			RefID:   p.ID.String(),
		})
	}
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest, createdBy string) (ProjectResponse, error) {
	s.logger.Debug("create project requested", zap.String("name", req.Name), zap.String("service_id", req.ServiceID))

	creator, err := uuid.Parse(createdBy)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidReference
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidReference
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrServiceNotFound
	}

	status := req.Status
	if status == "" {
		status = StatusPlanned
	}
	if !IsValidStatus(status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatus
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	var steps []Step
	if len(req.Steps) > 0 {
		steps, err = numberSteps(req.Steps)
	} else {
		steps, err = s.templateSteps(ctx, serviceID, strings.TrimSpace(req.ServiceName))
	}
	if err != nil {
		return ProjectResponse{}, err
	}
	members := parseMembers(req.Members)

	p := &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      status,
		StartDate:   start,
		EndDate:     end,
		AccountID:   accountID,
		ServiceID:   serviceID,
		CreatedBy:   creator,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create project failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	if err := qtx.ReplaceSteps(ctx, p.ID, steps); err != nil {
		s.logger.Error("create project steps failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		return ProjectResponse{}, err
	}
	if err := qtx.ReplaceMembers(ctx, p.ID, members); err != nil {
		s.logger.Error("create project members failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		return ProjectResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.notify(ctx, p,
		messages.T(ctx, messages.ProjectAssigned, map[string]any{"Name": p.Name}),
		append([]uuid.UUID{creator}, members...),
	)

	s.logger.Info("create project success",
		zap.String("project_id", p.ID.String()),
		zap.Int("steps", len(steps)),
		zap.Int("members", len(members)),
	)
	return s.GetByID(ctx, p.ID.String())
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	s.logger.Debug("update project requested", zap.String("project_id", id))

	if _, err := parseID(id); err != nil {
		return ProjectResponse{}, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return ProjectResponse{}, projecterrors.ErrInvalidStatus
		}
		p.Status = *req.Status
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return ProjectResponse{}, err
		}
		p.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseOptionalDate(*req.EndDate)
		if err != nil {
			return ProjectResponse{}, err
		}
		p.EndDate = end
	}

	var steps []Step
	if req.Steps != nil {
		if steps, err = numberSteps(*req.Steps); err != nil {
			return ProjectResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update project failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}
	if req.Steps != nil {
		if err := qtx.ReplaceSteps(ctx, p.ID, steps); err != nil {
			return ProjectResponse{}, err
		}
	}
	members := make([]uuid.UUID, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, m.ID)
	}
	if req.Members != nil {
		members = parseMembers(*req.Members)
		if err := qtx.ReplaceMembers(ctx, p.ID, members); err != nil {
			return ProjectResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	s.notify(ctx, p, messages.T(ctx, messages.ProjectUpdated, map[string]any{"Name": p.Name}), members)

	s.logger.Info("update project success", zap.String("project_id", id))
	return s.GetByID(ctx, id)
}

// GetAll applies the query filters, then narrows by role: Employees see
// projects they are members of and Clients see their business account's.
func (s *service) GetAll(ctx context.Context, q ListQuery) ([]ProjectResponse, error) {
	f := Filter{Status: q.Status, ServiceID: q.ServiceID, AccountID: q.AccountID}

	if q.UserID != "" {
		switch q.Role {
		case roleEmployee:
			f.MemberID = q.UserID
		case roleClient:
			if s.deps.Users == nil {
				return []ProjectResponse{}, nil
			}
			u, err := s.deps.Users.FindByID(ctx, q.UserID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if err != nil || u.BusinessAccountID == nil {
				return []ProjectResponse{}, nil
			}
			f.AccountID = u.BusinessAccountID.String()
		}
	}

	projects, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, err
	}
	res := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		res = append(res, mapToResponse(&projects[i]))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	if _, err := parseID(id); err != nil {
		return ProjectResponse{}, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("delete project failed", zap.String("project_id", id), zap.Error(err))
		}
		return mapRepositoryError(err)
	}
	s.logger.Info("delete project success", zap.String("project_id", id))
	return nil
}

func (s *service) GetStats(ctx context.Context) ([]StatResponse, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("project stats failed", zap.Error(err))
		return nil, err
	}
	res := make([]StatResponse, 0, len(counts))
	for status, n := range counts {
		res = append(res, StatResponse{Status: status, Count: n})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Status < res[j].Status })
	return res, nil
}

func (s *service) AddNote(ctx context.Context, id string, req AddNoteRequest, author string) ([]NoteResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	note := &Note{ProjectID: pid, Text: req.Text, Author: req.Author, CreatedAt: s.now()}
	if note.Author == "" {
		note.Author = author
	}
	if err := s.repo.CreateNote(ctx, note); err != nil {
		s.logger.Error("add project note failed", zap.String("project_id", id), zap.Error(err))
		return nil, err
	}

	notes, err := s.repo.ListNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapNotes(notes), nil
}

func (s *service) DeleteNote(ctx context.Context, id, noteID string) ([]NoteResponse, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteNote(ctx, id, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrNoteNotFound
		}
		return nil, err
	}
	notes, err := s.repo.ListNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapNotes(notes), nil
}

// PresignAttachment records the attachment up front and hands back a
// short-lived PUT URL for the client to upload the bytes to.
func (s *service) PresignAttachment(ctx context.Context, id string, req PresignRequest) (AttachmentResponse, error) {
	pid, err := parseID(id)
	if err != nil {
		return AttachmentResponse{}, err
	}
	if s.deps.Storage == nil {
		return AttachmentResponse{}, projecterrors.ErrStorageUnavailable
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return AttachmentResponse{}, mapRepositoryError(err)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	up, err := s.deps.Storage.PresignUpload(ctx, "projects/"+id, req.Filename, contentType)
	if err != nil {
		s.logger.Error("presign attachment failed", zap.String("project_id", id), zap.Error(err))
		return AttachmentResponse{}, err
	}

	a := &Attachment{ProjectID: pid, Filename: req.Filename, URL: up.PublicURL, ObjectKey: up.Key}
	if err := s.repo.CreateAttachment(ctx, a); err != nil {
		s.logger.Error("record attachment failed", zap.String("project_id", id), zap.Error(err))
		return AttachmentResponse{}, err
	}

	res := mapAttachment(*a)
	res.UploadURL = up.UploadURL
	res.ExpiresAt = &up.ExpiresAt
	return res, nil
}

package project

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter narrows project listings. Zero values do not filter.
type Filter struct {
	Status    string
	ServiceID string
	AccountID string
	MemberID  string
}

type memberRow struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (memberRow) TableName() string {
	return "project_members"
}

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, f Filter) ([]Project, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	ReplaceSteps(ctx context.Context, projectID uuid.UUID, steps []Step) error
	ReplaceMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error
	CreateNote(ctx context.Context, n *Note) error
	DeleteNote(ctx context.Context, projectID, noteID string) error
	ListNotes(ctx context.Context, projectID string) ([]Note, error)
	CreateAttachment(ctx context.Context, a *Attachment) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Account").
		Preload("Service").
		Preload("Creator").
		Preload("Members").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.conn(ctx).
		Omit("Steps", "Notes", "Attachments", "Members", "Account", "Service", "Creator").
		Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := withDetails(r.conn(ctx)).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) List(ctx context.Context, f Filter) ([]Project, error) {
	q := withDetails(r.conn(ctx)).Model(&Project{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.AccountID != "" {
		q = q.Where("account_id = ?", f.AccountID)
	}
	if f.MemberID != "" {
		q = q.Where("id IN (SELECT project_id FROM project_members WHERE user_id = ?)", f.MemberID)
	}

	var projects []Project
	err := q.Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.conn(ctx).
		Model(&Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.conn(ctx).
		Omit("Steps", "Notes", "Attachments", "Members", "Account", "Service", "Creator").
		Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplaceSteps(ctx context.Context, projectID uuid.UUID, steps []Step) error {
	db := r.conn(ctx)
	if err := db.Where("project_id = ?", projectID).Delete(&Step{}).Error; err != nil {
		return err
	}
	if len(steps) == 0 {
		return nil
	}
	for i := range steps {
		steps[i].ProjectID = projectID
	}
	return db.Create(&steps).Error
}

func (r *repository) ReplaceMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	db := r.conn(ctx)
	if err := db.Where("project_id = ?", projectID).Delete(&memberRow{}).Error; err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]memberRow, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, memberRow{ProjectID: projectID, UserID: id})
	}
	return db.Create(&rows).Error
}

func (r *repository) CreateNote(ctx context.Context, n *Note) error {
	return r.conn(ctx).Create(n).Error
}

func (r *repository) DeleteNote(ctx context.Context, projectID, noteID string) error {
	res := r.conn(ctx).Delete(&Note{}, "id = ? AND project_id = ?", noteID, projectID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListNotes(ctx context.Context, projectID string) ([]Note, error) {
	var notes []Note
	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}

func (r *repository) CreateAttachment(ctx context.Context, a *Attachment) error {
	return r.conn(ctx).Create(a).Error
}

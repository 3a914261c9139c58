package user

import (
	"context"
	"database/sql"
	"time"

	"go-crm/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, role string) ([]User, error)
	FirstByRole(ctx context.Context, role string) (*User, error)
	TeamLeaderOf(ctx context.Context, userID string) (*User, error)
	FirstClientOfAccount(ctx context.Context, accountID string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdatePresence(ctx context.Context, id, presence, previous string, at time.Time) error
	Delete(ctx context.Context, id string) error
	CreateTeam(ctx context.Context, t *Team) error
	FindTeamByLeader(ctx context.Context, leaderID string) (*Team, error)
	FindAllTeams(ctx context.Context) ([]Team, error)
	AssignTeam(ctx context.Context, teamID string, userIDs []string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Preload("Team").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "LOWER(email) = LOWER(?)", email).Error
	return &u, err
}

// FindAll lists users oldest first, optionally narrowed to one role.
func (r *repository) FindAll(ctx context.Context, role string) ([]User, error) {
	var users []User
	q := r.conn(ctx).Preload("Team")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Order("created_at ASC").Find(&users).Error
	return users, err
}

// FirstByRole returns the longest-standing active user holding role.
func (r *repository) FirstByRole(ctx context.Context, role string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("created_at ASC").
		Take(&u).Error
	return &u, err
}

func (r *repository) TeamLeaderOf(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Joins("JOIN teams ON teams.team_leader_id = users.id").
		Joins("JOIN users AS members ON members.team_id = teams.id").
		Where("members.id = ?", userID).
		Take(&u).Error
	return &u, err
}

func (r *repository) FirstClientOfAccount(ctx context.Context, accountID string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Where("business_account_id = ? AND role = ?", accountID, RoleClient).
		Order("created_at ASC").
		Take(&u).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Omit("Team").Save(u).Error
}

func (r *repository) UpdatePresence(ctx context.Context, id, presence, previous string, at time.Time) error {
	res := r.conn(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"presence":          presence,
			"previous_presence": previous,
			"last_active_at":    at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateTeam(ctx context.Context, t *Team) error {
	return r.conn(ctx).Omit("Leader", "Members").Create(t).Error
}

func (r *repository) FindTeamByLeader(ctx context.Context, leaderID string) (*Team, error) {
	var t Team
	err := r.conn(ctx).First(&t, "team_leader_id = ?", leaderID).Error
	return &t, err
}

func (r *repository) FindAllTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.conn(ctx).
		Preload("Leader").
		Preload("Members").
		Order("created_at ASC").
		Find(&teams).Error
	return teams, err
}

func (r *repository) AssignTeam(ctx context.Context, teamID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.conn(ctx).
		Model(&User{}).
		Where("id IN ?", userIDs).
		Update("team_id", teamID).Error
}

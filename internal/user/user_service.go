package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-crm/internal/realtime"
	usererrors "go-crm/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, role string) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (UserResponse, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
	UpdatePresence(ctx context.Context, userID, presence string) error
	GetAllTeams(ctx context.Context) ([]TeamResponse, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher realtime.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher realtime.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}
	return &service{db: db, repo: repo, publisher: publisher, now: time.Now, logger: l}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_email" {
		return usererrors.ErrUserAlreadyExists
	}
	return err
}

func (s *service) GetAll(ctx context.Context, role string) ([]UserResponse, error) {
	s.logger.Debug("get all users requested", zap.String("role", role))

	if role != "" && !IsValidRole(role) {
		return nil, usererrors.ErrInvalidRole
	}

	users, err := s.repo.FindAll(ctx, role)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, err
	}

	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, mapToResponse(&u))
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get user failed", zap.String("user_id", id), zap.Error(err))
		}
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	s.logger.Debug("update user requested", zap.String("user_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		if !IsValidRole(*req.Role) {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		u.Role = *req.Role
	}
	if req.TeamID != nil {
		teamID, err := parseOptionalUUID(*req.TeamID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidTeamID
		}
		u.TeamID = teamID
		u.Team = nil
	}
	if req.BusinessAccountID != nil {
		accountID, err := parseOptionalUUID(*req.BusinessAccountID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID.WithMessage("Invalid business account ID")
		}
		u.BusinessAccountID = accountID
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("delete user failed", zap.String("user_id", id), zap.Error(err))
		}
		return mapRepositoryError(err)
	}
	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) ToggleStatus(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.IsActive = !u.IsActive
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("toggle user status failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("toggle user status success", zap.String("user_id", id), zap.Bool("is_active", u.IsActive))
	return mapToResponse(u), nil
}

func (s *service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("change password rejected", zap.String("user_id", id))
		return usererrors.ErrInvalidCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("change password failed", zap.String("user_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("change password success", zap.String("user_id", id))
	return nil
}

// UpdatePresence stores the new presence and broadcasts presence_updated to every socket.
func (s *service) UpdatePresence(ctx context.Context, userID, presence string) error {
	if !IsValidPresence(presence) {
		return usererrors.ErrInvalidPresence
	}
	if _, err := uuid.Parse(userID); err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	previous := u.Presence
	at := s.now()
	if err := s.repo.UpdatePresence(ctx, userID, presence, previous, at); err != nil {
		s.logger.Error("update presence failed", zap.String("user_id", userID), zap.Error(err))
		return mapRepositoryError(err)
	}

	event := PresenceEvent{
		UserID:           userID,
		Presence:         presence,
		PreviousPresence: previous,
		LastActiveAt:     at.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Broadcast(ctx, realtime.EventPresenceUpdated, event); err != nil {
		s.logger.Warn("presence broadcast failed", zap.String("user_id", userID), zap.Error(err))
	}

	s.logger.Debug("update presence success",
		zap.String("user_id", userID),
		zap.String("presence", presence),
		zap.String("previous_presence", previous),
	)
	return nil
}

func (s *service) GetAllTeams(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.FindAllTeams(ctx)
	if err != nil {
		s.logger.Error("get all teams failed", zap.Error(err))
		return nil, err
	}
	res := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		res = append(res, mapToTeamResponse(&t))
	}
	return res, nil
}

func (s *service) CreateTeam(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	s.logger.Debug("create team requested",
		zap.String("name", req.Name),
		zap.String("team_leader_id", req.TeamLeaderID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create team begin tx failed", zap.Error(err))
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leader, err := qtx.FindByID(ctx, req.TeamLeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, usererrors.ErrTeamLeaderNotFound
		}
		s.logger.Error("create team leader lookup failed", zap.Error(err))
		return TeamResponse{}, err
	}
	if leader.Role != RoleTeamLeader {
		s.logger.Warn("create team leader has wrong role",
			zap.String("team_leader_id", req.TeamLeaderID),
			zap.String("role", leader.Role),
		)
		return TeamResponse{}, usererrors.ErrNotATeamLeader
	}

	_, err = qtx.FindTeamByLeader(ctx, req.TeamLeaderID)
	switch {
	case err == nil:
		return TeamResponse{}, usererrors.ErrTeamLeaderTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("create team leader check failed", zap.Error(err))
		return TeamResponse{}, err
	}

	team := &Team{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		TeamLeaderID: &leader.ID,
	}
	if err := qtx.CreateTeam(ctx, team); err != nil {
		s.logger.Error("create team persist failed", zap.Error(err))
		return TeamResponse{}, err
	}

	members := append([]string{leader.ID.String()}, req.MemberIDs...)
	if err := qtx.AssignTeam(ctx, team.ID.String(), members); err != nil {
		s.logger.Error("create team assign members failed", zap.Error(err))
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create team commit failed", zap.Error(err))
		return TeamResponse{}, err
	}

	team.Leader = leader
	s.logger.Info("create team success", zap.String("team_id", team.ID.String()))
	return mapToTeamResponse(team), nil
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapToResponse(u *User) UserResponse {
	res := UserResponse{
		ID:               u.ID.String(),
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		Presence:         u.Presence,
		PreviousPresence: u.PreviousPresence,
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
	if u.TeamID != nil {
		v := u.TeamID.String()
		res.TeamID = &v
	}
	if u.Team != nil {
		res.TeamName = u.Team.Name
	}
	if u.BusinessAccountID != nil {
		v := u.BusinessAccountID.String()
		res.BusinessAccountID = &v
	}
	if u.LastActiveAt != nil {
		v := u.LastActiveAt.UTC().Format(time.RFC3339)
		res.LastActiveAt = &v
	}
	return res
}

func mapToTeamResponse(t *Team) TeamResponse {
	res := TeamResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Members:   make([]TeamMember, 0, len(t.Members)),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.Leader != nil {
		res.TeamLeader = &TeamMember{
			ID:    t.Leader.ID.String(),
			Name:  t.Leader.Name,
			Email: t.Leader.Email,
			Role:  t.Leader.Role,
		}
	}
	for _, m := range t.Members {
		res.Members = append(res.Members, TeamMember{
			ID:    m.ID.String(),
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		})
	}
	return res
}

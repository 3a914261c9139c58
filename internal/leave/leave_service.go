package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-crm/internal/alert"
	"go-crm/internal/events"
	leaveerrors "go-crm/internal/leave/errors"
	"go-crm/internal/messages"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/realtime"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const alertDateLayout = "02 Jan 2006"

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	TeamLeaderOf(ctx context.Context, userID string) (*user.User, error)
	FirstByRole(ctx context.Context, role string) (*user.User, error)
}

type Deps struct {
	Users     UserDirectory
	Alerts    alert.Dispatcher
	Outbox    kafka.OutboxRepository
	Publisher realtime.Publisher
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error)
	GetMine(ctx context.Context, userID string) ([]LeaveResponse, error)
	GetPending(ctx context.Context, q PendingQuery) ([]LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetBalance(ctx context.Context, userID string, year int) (BalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if deps.Publisher == nil {
		deps.Publisher = realtime.NopPublisher{}
	}
	return &service{db: db, repo: repo, deps: deps, now: time.Now, logger: l}
}

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("user_id", req.UserID),
		zap.String("leave_type", req.LeaveType),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}
	if !IsValidType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	from, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	to, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if from.After(to) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	applicant, err := s.deps.Users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrUserNotFound
		}
		return LeaveResponse{}, err
	}

	days := InclusiveDays(from, to)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	balance, err := s.lockBalance(ctx, qtx, userID, from.Year())
	if err != nil {
		return LeaveResponse{}, err
	}
	if remaining, bounded := balance.Remaining(req.LeaveType); bounded && remaining < days {
		s.logger.Warn("apply leave rejected: insufficient balance",
			zap.String("user_id", req.UserID),
			zap.String("leave_type", req.LeaveType),
			zap.Int("remaining", remaining),
			zap.Int("requested", days),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	l := &Leave{
		ID:                 uuid.New(),
		UserID:             userID,
		LeaveType:          req.LeaveType,
		FromDate:           from,
		ToDate:             to,
		TotalDays:          days,
		Reason:             req.Reason,
		Status:             StatusPending,
		CurrentLevel:       LevelTeamLeader,
		ApprovalTeamLeader: StatusPending,
		ApprovalAdmin:      StatusPending,
		ApprovalSuperadmin: StatusPending,
		CreatedAt:          s.now(),
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	queued, err := s.queue(ctx, tx, l, events.LeaveApplied, "")
	if err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.alert(ctx, userID.String(), l, messages.T(ctx, messages.LeaveRequested, map[string]any{
		"From": from.Format(alertDateLayout),
		"To":   to.Format(alertDateLayout),
	}))
	if leader, err := s.deps.Users.TeamLeaderOf(ctx, req.UserID); err == nil && leader.ID != userID {
		s.alert(ctx, leader.ID.String(), l, messages.T(ctx, messages.LeaveTeamRequested, map[string]any{
			"Name": applicant.Name,
		}))
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("apply leave team leader lookup failed", zap.String("user_id", req.UserID), zap.Error(err))
	}

	resp := mapToResponse(*l)
	if !queued {
		s.emit(ctx, "", realtime.EventLeaveRequestReceived, resp)
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("total_days", days),
	)
	return resp, nil
}

// lockBalance returns the year's balance row, creating it with the default
// allowance when the user has none yet.
func (s *service) lockBalance(ctx context.Context, qtx Repository, userID uuid.UUID, year int) (*Balance, error) {
	b, err := qtx.FindBalanceForUpdate(ctx, userID.String(), year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("leave balance lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	b = NewBalance(userID, year)
	if err := qtx.CreateBalance(ctx, b); err != nil {
		s.logger.Error("leave balance create failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a request one rung. Terminal requests are never
// re-processed and the balance is only touched on the final approval.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave status requested",
		zap.String("leave_id", id),
		zap.String("role", req.Role),
		zap.String("status", req.Status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if _, ok := nextLevel[req.Role]; !ok {
		return LeaveResponse{}, leaveerrors.ErrInvalidRole
	}
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}
	if req.Status == StatusRejected && req.RejectReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.IsTerminal() {
		s.logger.Warn("update leave status rejected: already processed",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyProcessed
	}
	if l.CurrentLevel != req.Role {
		s.logger.Warn("update leave status rejected: level mismatch",
			zap.String("leave_id", id),
			zap.String("current_level", l.CurrentLevel),
			zap.String("role", req.Role),
		)
		return LeaveResponse{}, leaveerrors.ErrLevelMismatch
	}

	notifyTo := l.UserID.String()
	var message string

	switch req.Status {
	case StatusRejected:
		reason := req.RejectReason
		l.Status = StatusRejected
		l.CurrentLevel = LevelCompleted
		l.RejectReason = &reason
		l.stamp(req.Role, StatusRejected)
		message = messages.T(ctx, messages.LeaveRejected, map[string]any{"Reason": reason})

	case StatusApproved:
		l.stamp(req.Role, StatusApproved)
		next := nextLevel[req.Role]
		if next != LevelCompleted {
			l.CurrentLevel = next
			notifyTo = ""
			approver, err := s.deps.Users.FirstByRole(ctx, next)
			if err == nil {
				notifyTo = approver.ID.String()
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return LeaveResponse{}, err
			}
			message = messages.T(ctx, messages.LeaveLevelApproved, map[string]any{"Role": req.Role, "Next": next})
		} else {
			l.Status = StatusApproved
			l.CurrentLevel = LevelCompleted
			if err := s.deduct(ctx, qtx, l); err != nil {
				return LeaveResponse{}, err
			}
			message = messages.T(ctx, messages.LeaveFullyApproved)
		}
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave status persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	queued, err := s.queue(ctx, tx, l, events.LeaveStatusChanged, req.Role)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if notifyTo != "" {
		s.alert(ctx, notifyTo, l, message)
	}
	if !queued {
		s.emit(ctx, l.UserID.String(), realtime.EventLeaveStatusUpdate, map[string]string{
			"leaveId": l.ID.String(),
			"status":  req.Status,
		})
	}

	s.logger.Info("update leave status success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
		zap.String("current_level", l.CurrentLevel),
	)
	return mapToResponse(*l), nil
}

func (s *service) deduct(ctx context.Context, qtx Repository, l *Leave) error {
	if !IsBounded(l.LeaveType) {
		return nil
	}
	b, err := s.lockBalance(ctx, qtx, l.UserID, l.FromDate.Year())
	if err != nil {
		return err
	}
	b.Deduct(l.LeaveType, InclusiveDays(l.FromDate, l.ToDate))
	if err := qtx.UpdateBalance(ctx, b); err != nil {
		s.logger.Error("leave balance deduct failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

// queue writes the lifecycle event inside tx. It reports false when no outbox
// is configured, in which case the caller emits the realtime event itself.
func (s *service) queue(ctx context.Context, tx *sql.Tx, l *Leave, eventType, actingRole string) (bool, error) {
	if s.deps.Outbox == nil {
		return false, nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveStatusChangedEvent{
		EventType:    eventType,
		RequestID:    rid,
		LeaveID:      l.ID.String(),
		UserID:       l.UserID.String(),
		LeaveType:    l.LeaveType,
		Status:       l.Status,
		CurrentLevel: l.CurrentLevel,
		ActingRole:   actingRole,
		OccurredAt:   s.now().UTC(),
	}
	if l.RejectReason != nil {
		event.RejectReason = *l.RejectReason
	}
	msg, err := kafka.NewOutboxEvent(kafka.AggregateLeave, l.ID.String(), eventType, events.LeaveLifecycleTopic, rid, event)
	if err != nil {
		return false, err
	}
	if err := s.deps.Outbox.WithTx(tx).Create(ctx, msg); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return false, err
	}
	return true, nil
}

func (s *service) alert(ctx context.Context, userID string, l *Leave, message string) {
	if s.deps.Alerts == nil {
		return
	}
	s.deps.Alerts.Send(ctx, alert.Input{
		UserID:  userID,
		Message: message,
		Type:    alert.TypeLeave,
		RefID:   l.ID.String(),
	})
}

func (s *service) emit(ctx context.Context, userID, event string, data any) {
	var err error
	if userID == "" {
		err = s.deps.Publisher.Broadcast(ctx, event, data)
	} else {
		err = s.deps.Publisher.EmitToUser(ctx, userID, event, data)
	}
	if err != nil {
		s.logger.Warn("leave realtime emit failed", zap.String("event", event), zap.Error(err))
	}
}

func (s *service) GetMine(ctx context.Context, userID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}
	leaves, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// GetPending narrows by the approver's rung. Unknown roles see every pending
// request.
func (s *service) GetPending(ctx context.Context, q PendingQuery) ([]LeaveResponse, error) {
	f := PendingFilter{}
	switch q.Role {
	case LevelTeamLeader:
		f.Level = LevelTeamLeader
		f.TeamID = q.TeamID
	case LevelAdmin, LevelSuperadmin:
		f.Level = q.Role
	}
	leaves, err := s.repo.FindPending(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// GetBalance reports the default allowance for users who never applied.
func (s *service) GetBalance(ctx context.Context, userID string, year int) (BalanceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidUserID
	}
	if year == 0 {
		year = s.now().Year()
	}
	b, err := s.repo.FindBalance(ctx, userID, year)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, err
		}
		b = NewBalance(uid, year)
	}
	return BalanceResponse{Year: b.Year, Sick: b.Sick, Casual: b.Casual, Medical: b.Medical}, nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, leaveerrors.ErrInvalidDateFormat
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		LeaveType:    l.LeaveType,
		FromDate:     l.FromDate.Format("2006-01-02"),
		ToDate:       l.ToDate.Format("2006-01-02"),
		TotalDays:    l.TotalDays,
		Reason:       l.Reason,
		Status:       l.Status,
		CurrentLevel: l.CurrentLevel,
		Approval: ApprovalResponse{
			TeamLeader: l.ApprovalTeamLeader,
			Admin:      l.ApprovalAdmin,
			Superadmin: l.ApprovalSuperadmin,
		},
		RejectReason: l.RejectReason,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
	if l.User != nil {
		resp.User = &ApplicantResponse{ID: l.User.ID.String(), Name: l.User.Name, Role: l.User.Role}
		if l.User.TeamID != nil {
			team := l.User.TeamID.String()
			resp.User.TeamID = &team
		}
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

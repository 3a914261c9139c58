package worksession

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-crm/internal/alert"
	"go-crm/internal/leave"
	"go-crm/internal/messages"
	"go-crm/internal/notification"
	wserrors "go-crm/internal/worksession/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	clockLayout   = "15:04"
	groupLayout   = "02-01-2006"
	overtimeHour  = 20
	warningHour   = 19
	warningMinute = 30
)

type LeaveSource interface {
	FindApprovedOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.Leave, error)
}

type Deps struct {
	Leaves   LeaveSource
	Alerts   alert.Dispatcher
	Notifier notification.Notifier
	Location *time.Location
	Now      func() time.Time
}

//go:generate mockgen -source=worksession_service.go -destination=mock/worksession_service_mock.go -package=mock
type Service interface {
	Start(ctx context.Context, userID string) (SessionResponse, error)
	Stop(ctx context.Context, req StopRequest) (SessionResponse, error)
	SaveEOD(ctx context.Context, req EODRequest) (SessionResponse, error)
	Today(ctx context.Context, userID string) (HistoryResponse, error)
	Range(ctx context.Context, from, to time.Time) (HistoryResponse, error)
	MonthlyAttendance(ctx context.Context, userID string, year int, month time.Month) (AttendanceResponse, error)
	CheckOvertime(ctx context.Context) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	deps   Deps
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("worksession.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worksession.service")
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{db: db, repo: repo, deps: deps, now: now, logger: l}
}

// OvertimeRef is the alert ref used to send the evening warning once per session.
func OvertimeRef(sessionID string) string {
	return "overtime:" + sessionID
}

// today is the local calendar day as a UTC midnight, the shape DATE columns scan into.
func (s *service) today() (time.Time, time.Time) {
	now := s.now().In(s.deps.Location)
	return now, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) alert(ctx context.Context, sess *Session, refID, message string) {
	if s.deps.Alerts == nil {
		return
	}
	s.deps.Alerts.Send(ctx, alert.Input{
		UserID:  sess.UserID.String(),
		Message: message,
		Type:    alert.TypeWork,
		RefID:   refID,
	})
}

func (s *service) Start(ctx context.Context, userID string) (SessionResponse, error) {
	s.logger.Debug("start work session requested", zap.String("user_id", userID))

	uid, err := uuid.Parse(userID)
	if err != nil {
		return SessionResponse{}, wserrors.ErrInvalidUserID
	}
	now, day := s.today()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SessionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindByUserAndDate(ctx, userID, day); err == nil {
		s.logger.Warn("start work session rejected: already started", zap.String("user_id", userID))
		return SessionResponse{}, wserrors.ErrAlreadyStarted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SessionResponse{}, err
	}

	sess := &Session{
		ID:         uuid.New(),
		UserID:     uid,
		WorkDate:   day,
		LoginTime:  now,
		AccountIDs: []string{},
		ServiceIDs: []string{},
	}
	if err := qtx.Create(ctx, sess); err != nil {
		s.logger.Error("start work session failed", zap.String("user_id", userID), zap.Error(err))
		return SessionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SessionResponse{}, err
	}

	s.alert(ctx, sess, sess.ID.String(), messages.T(ctx, messages.WorkStarted, map[string]any{
		"Time": now.Format(clockLayout),
	}))

	s.logger.Info("start work session success", zap.String("session_id", sess.ID.String()), zap.String("user_id", userID))
	return mapToResponse(*sess), nil
}

// Stop closes the given session, or the caller's session of today when only
// the user is known.
func (s *service) Stop(ctx context.Context, req StopRequest) (SessionResponse, error) {
	s.logger.Debug("stop work session requested", zap.String("session_id", req.SessionID), zap.String("user_id", req.UserID))

	if req.SessionID == "" && req.UserID == "" {
		return SessionResponse{}, wserrors.ErrSessionRequired
	}
	now, day := s.today()

	var (
		sess *Session
		err  error
	)
	if req.SessionID != "" {
		sess, err = s.repo.FindByID(ctx, req.SessionID)
	} else {
		sess, err = s.repo.FindByUserAndDate(ctx, req.UserID, day)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, wserrors.ErrSessionNotFound
		}
		return SessionResponse{}, err
	}
	if !sess.IsOpen() {
		return SessionResponse{}, wserrors.ErrAlreadyStopped
	}

	sess.LogoutTime = &now
	sess.TotalHours = Hours(sess.LoginTime, now)
	if err := s.repo.Update(ctx, sess); err != nil {
		s.logger.Error("stop work session failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
		return SessionResponse{}, err
	}

	s.alert(ctx, sess, sess.ID.String(), messages.T(ctx, messages.WorkStopped, map[string]any{
		"Time": now.Format(clockLayout),
	}))
	if now.Hour() >= overtimeHour {
		s.alert(ctx, sess, sess.ID.String(), messages.T(ctx, messages.WorkOvertimeStop))
	}

	s.logger.Info("stop work session success",
		zap.String("session_id", sess.ID.String()),
		zap.String("total_hours", sess.TotalHours.StringFixed(2)),
	)
	return mapToResponse(*sess), nil
}

// SaveEOD keeps the stored value for every field left empty.
func (s *service) SaveEOD(ctx context.Context, req EODRequest) (SessionResponse, error) {
	sess, err := s.repo.FindByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, wserrors.ErrSessionNotFound
		}
		return SessionResponse{}, err
	}
	if req.EOD != "" {
		sess.EOD = req.EOD
	}
	if len(req.AccountIDs) > 0 {
		sess.AccountIDs = req.AccountIDs
	}
	if len(req.ServiceIDs) > 0 {
		sess.ServiceIDs = req.ServiceIDs
	}
	if req.Date != nil {
		d := req.Date.In(s.deps.Location)
		sess.WorkDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if err := s.repo.Update(ctx, sess); err != nil {
		s.logger.Error("save eod failed", zap.String("session_id", req.SessionID), zap.Error(err))
		return SessionResponse{}, err
	}
	return mapToResponse(*sess), nil
}

// Today lists today's sessions for userID, or for everyone when it is empty.
func (s *service) Today(ctx context.Context, userID string) (HistoryResponse, error) {
	_, day := s.today()
	sessions, err := s.repo.ListByDate(ctx, day, userID)
	if err != nil {
		return HistoryResponse{}, err
	}
	return s.group(sessions), nil
}

func (s *service) Range(ctx context.Context, from, to time.Time) (HistoryResponse, error) {
	if from.IsZero() || to.IsZero() {
		return HistoryResponse{}, wserrors.ErrRangeRequired
	}
	sessions, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("list work sessions by range failed", zap.Error(err))
		return HistoryResponse{}, err
	}
	return s.group(sessions), nil
}

// group buckets sessions by local login day, keeping first-seen order.
func (s *service) group(sessions []Session) HistoryResponse {
	res := HistoryResponse{History: []DayGroup{}}
	index := make(map[string]int)
	for _, sess := range sessions {
		key := sess.LoginTime.In(s.deps.Location).Format(groupLayout)
		i, ok := index[key]
		if !ok {
			i = len(res.History)
			index[key] = i
			res.History = append(res.History, DayGroup{Date: key})
		}
		res.History[i].Sessions = append(res.History[i].Sessions, mapToResponse(sess))
	}
	return res
}

func (s *service) MonthlyAttendance(ctx context.Context, userID string, year int, month time.Month) (AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil || year < 1 || month < time.January || month > time.December {
		return AttendanceResponse{}, wserrors.ErrInvalidMonth
	}

	loc := s.deps.Location
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	logins, err := s.repo.LoginTimesBetween(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("attendance session lookup failed", zap.String("user_id", userID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	var ranges []LeaveRange
	if s.deps.Leaves != nil {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		leaves, err := s.deps.Leaves.FindApprovedOverlapping(ctx, userID, monthStart, monthStart.AddDate(0, 1, -1))
		if err != nil {
			s.logger.Error("attendance leave lookup failed", zap.String("user_id", userID), zap.Error(err))
			return AttendanceResponse{}, err
		}
		for _, l := range leaves {
			ranges = append(ranges, LeaveRange{From: l.FromDate, To: l.ToDate})
		}
	}

	return Reconcile(userID, year, month, loc, logins, ranges), nil
}

// CheckOvertime warns every user whose session of today is still open after
// 19:30. Each session is warned at most once.
func (s *service) CheckOvertime(ctx context.Context) (int, error) {
	now, day := s.today()
	if now.Hour() < warningHour || (now.Hour() == warningHour && now.Minute() < warningMinute) {
		return 0, nil
	}

	sessions, err := s.repo.ListOpenByDate(ctx, day)
	if err != nil {
		s.logger.Error("overtime scan failed", zap.Error(err))
		return 0, err
	}

	warned := 0
	for i := range sessions {
		sess := &sessions[i]
		ref := OvertimeRef(sess.ID.String())
		if s.deps.Alerts != nil {
			seen, err := s.deps.Alerts.HasAlertForRef(ctx, sess.UserID.String(), ref, alert.TypeWork)
			if err != nil {
				s.logger.Warn("overtime dedup lookup failed", zap.String("session_id", sess.ID.String()), zap.Error(err))
				continue
			}
			if seen {
				continue
			}
		}

		message := messages.T(ctx, messages.WorkOvertimeWarning)
		s.alert(ctx, sess, ref, message)
		if s.deps.Notifier != nil {
			s.deps.Notifier.Notify(ctx, notification.Input{
				UserID:  sess.UserID.String(),
				Title:   messages.T(ctx, messages.WorkOvertimeTitle),
				Message: message,
				Type:    notification.TypeStopWorkWarning,
				RefID:   sess.ID.String(),
			})
		}
		warned++
	}

	if warned > 0 {
		s.logger.Info("overtime warnings sent", zap.Int("count", warned))
	}
	return warned, nil
}

package worksession

import "time"

type StartRequest struct {
	UserID string `json:"userId" binding:"omitempty,uuid"`
}

type StopRequest struct {
	SessionID string `json:"sessionId" binding:"omitempty,uuid"`
	UserID    string `json:"userId" binding:"omitempty,uuid"`
}

type EODRequest struct {
	SessionID  string     `json:"sessionId" binding:"required,uuid"`
	EOD        string     `json:"eod"`
	AccountIDs []string   `json:"accountIds" binding:"omitempty,dive,uuid"`
	ServiceIDs []string   `json:"serviceIds" binding:"omitempty,dive,uuid"`
	Date       *time.Time `json:"date"`
}

type SessionResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	WorkDate   string     `json:"date"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime"`
	TotalHours float64    `json:"totalHours"`
	EOD        string     `json:"eod"`
	AccountIDs []string   `json:"accountIds"`
	ServiceIDs []string   `json:"serviceIds"`
}

type DayGroup struct {
	Date     string            `json:"date"`
	Sessions []SessionResponse `json:"sessions"`
}

type HistoryResponse struct {
	History []DayGroup `json:"history"`
}

type AttendanceResponse struct {
	UserID       string   `json:"userId"`
	Month        string   `json:"month"`
	TotalDays    int      `json:"totalDays"`
	PresentDays  int      `json:"presentDays"`
	LeaveDays    int      `json:"leaveDays"`
	AbsentDays   int      `json:"absentDays"`
	PresentDates []string `json:"presentDates"`
	LeaveDates   []string `json:"leaveDates"`
	AbsentDates  []string `json:"absentDates"`
}

func mapToResponse(s Session) SessionResponse {
	res := SessionResponse{
		ID:         s.ID.String(),
		UserID:     s.UserID.String(),
		WorkDate:   s.WorkDate.Format("2006-01-02"),
		LoginTime:  s.LoginTime,
		LogoutTime: s.LogoutTime,
		TotalHours: s.TotalHours.InexactFloat64(),
		EOD:        s.EOD,
		AccountIDs: s.AccountIDs,
		ServiceIDs: s.ServiceIDs,
	}
	if s.User != nil {
		res.Name = s.User.Name
		res.Email = s.User.Email
	}
	if res.AccountIDs == nil {
		res.AccountIDs = []string{}
	}
	if res.ServiceIDs == nil {
		res.ServiceIDs = []string{}
	}
	return res
}

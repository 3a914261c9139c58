package leave

type ApplyLeaveRequest struct {
	UserID    string `json:"userId" binding:"required,uuid"`
	LeaveType string `json:"type" binding:"required,oneof=Sick Casual Paid Unpaid Medical"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
	Reason    string `json:"reason"`
}

// UpdateStatusRequest.Role is always overwritten with the caller's token role.
type UpdateStatusRequest struct {
	Role         string `json:"role"`
	Status       string `json:"status" binding:"required,oneof=Approved Rejected"`
	RejectReason string `json:"rejectReason"`
}

type PendingQuery struct {
	Role   string
	TeamID string
}

type ApplicantResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	TeamID *string `json:"team,omitempty"`
}

type ApprovalResponse struct {
	TeamLeader string `json:"Team Leader"`
	Admin      string `json:"Admin"`
	Superadmin string `json:"Superadmin"`
}

type LeaveResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	User         *ApplicantResponse `json:"user,omitempty"`
	LeaveType    string             `json:"type"`
	FromDate     string             `json:"fromDate"`
	ToDate       string             `json:"toDate"`
	TotalDays    int                `json:"totalDays"`
	Reason       string             `json:"reason"`
	Status       string             `json:"status"`
	CurrentLevel string             `json:"currentLevel"`
	Approval     ApprovalResponse   `json:"approval"`
	RejectReason *string            `json:"rejectReason,omitempty"`
	CreatedAt    string             `json:"createdAt"`
}

// BalanceResponse renders unbounded types as null.
type BalanceResponse struct {
	Year    int  `json:"year"`
	Sick    int  `json:"Sick"`
	Casual  int  `json:"Casual"`
	Medical int  `json:"Medical"`
	Paid    *int `json:"Paid"`
	Unpaid  *int `json:"Unpaid"`
}

type StatusUpdateResponse struct {
	Leave LeaveResponse `json:"leave"`
}

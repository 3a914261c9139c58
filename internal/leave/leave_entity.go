package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSick    = "Sick"
	TypeCasual  = "Casual"
	TypePaid    = "Paid"
	TypeUnpaid  = "Unpaid"
	TypeMedical = "Medical"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	LevelTeamLeader = "Team Leader"
	LevelAdmin      = "Admin"
	LevelSuperadmin = "Superadmin"
	LevelCompleted  = "Completed"
)

// nextLevel is the fixed approval ladder.
var nextLevel = map[string]string{
	LevelTeamLeader: LevelAdmin,
	LevelAdmin:      LevelSuperadmin,
	LevelSuperadmin: LevelCompleted,
}

func IsValidType(t string) bool {
	switch t {
	case TypeSick, TypeCasual, TypePaid, TypeUnpaid, TypeMedical:
		return true
	}
	return false
}

type Leave struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null"`
	LeaveType          string    `gorm:"type:varchar(20);not null"`
	FromDate           time.Time `gorm:"type:date;not null"`
	ToDate             time.Time `gorm:"type:date;not null"`
	TotalDays          int       `gorm:"not null"`
	Reason             string    `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CurrentLevel       string    `gorm:"type:varchar(20);not null;default:'Team Leader'"`
	ApprovalTeamLeader string    `gorm:"column:approval_team_leader;not null;default:'Pending'"`
	ApprovalAdmin      string    `gorm:"column:approval_admin;not null;default:'Pending'"`
	ApprovalSuperadmin string    `gorm:"column:approval_superadmin;not null;default:'Pending'"`
	RejectReason       *string   `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User *Applicant `gorm:"foreignKey:UserID"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l *Leave) IsTerminal() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}

// stamp records decision against the rung the acting role sits on.
func (l *Leave) stamp(role, decision string) {
	switch role {
	case LevelTeamLeader:
		l.ApprovalTeamLeader = decision
	case LevelAdmin:
		l.ApprovalAdmin = decision
	case LevelSuperadmin:
		l.ApprovalSuperadmin = decision
	}
}

type Applicant struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string
	TeamID *uuid.UUID `gorm:"type:uuid"`
}

func (Applicant) TableName() string {
	return "users"
}

const (
	DefaultSick    = 8
	DefaultCasual  = 12
	DefaultMedical = 5
)

// Balance holds the remaining days per bounded leave type. Paid and Unpaid
// have no counter.
type Balance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Year      int       `gorm:"not null"`
	Sick      int       `gorm:"not null;default:8"`
	Casual    int       `gorm:"not null;default:12"`
	Medical   int       `gorm:"not null;default:5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Balance) TableName() string {
	return "leave_balances"
}

func NewBalance(userID uuid.UUID, year int) *Balance {
	return &Balance{
		ID:      uuid.New(),
		UserID:  userID,
		Year:    year,
		Sick:    DefaultSick,
		Casual:  DefaultCasual,
		Medical: DefaultMedical,
	}
}

func IsBounded(leaveType string) bool {
	return leaveType == TypeSick || leaveType == TypeCasual || leaveType == TypeMedical
}

// Remaining reports the counter for leaveType. bounded is false for types
// without a limit.
func (b *Balance) Remaining(leaveType string) (days int, bounded bool) {
	switch leaveType {
	case TypeSick:
		return b.Sick, true
	case TypeCasual:
		return b.Casual, true
	case TypeMedical:
		return b.Medical, true
	}
	return 0, false
}

func (b *Balance) Deduct(leaveType string, days int) {
	switch leaveType {
	case TypeSick:
		b.Sick -= days
	case TypeCasual:
		b.Casual -= days
	case TypeMedical:
		b.Medical -= days
	}
}

// InclusiveDays counts calendar days in [from, to].
func InclusiveDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

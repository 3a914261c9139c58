package account

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive      = "Active"
	StatusPipeline    = "Pipeline"
	StatusQuotations  = "Quotations"
	StatusCustomer    = "Customer"
	StatusClosed      = "Closed"
	StatusTargetLeads = "TargetLeads"
)

const (
	FollowUpPending   = "pending"
	FollowUpCompleted = "completed"
)

const DefaultSourceType = "Direct"

var Statuses = []string{
	StatusActive,
	StatusPipeline,
	StatusQuotations,
	StatusCustomer,
	StatusClosed,
	StatusTargetLeads,
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidLeadType(t string) bool {
	switch t {
	case "Fixed client", "Revenue based client", "Vrism Product", "others":
		return true
	}
	return false
}

type Account struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessName      string     `gorm:"not null"`
	OwnerID           *uuid.UUID `gorm:"type:uuid"`
	SelectedUserID    *uuid.UUID `gorm:"type:uuid"`
	ContactName       string     `gorm:"not null"`
	ContactEmail      string
	ContactNumber     string `gorm:"not null"`
	GSTNumber         string `gorm:"column:gst_number"`
	AddressLine1      string `gorm:"column:address_line1"`
	AddressLine2      string `gorm:"column:address_line2"`
	City              string
	State             string
	Country           string
	Pincode           string
	Website           string
	TypeOfLead        []string   `gorm:"type:jsonb;serializer:json"`
	Status            string     `gorm:"not null;default:Active"`
	SourceType        string     `gorm:"not null;default:Direct"`
	AssignedTo        *uuid.UUID `gorm:"type:uuid"`
	SelectedServiceID *uuid.UUID `gorm:"type:uuid"`
	SelectedPlanID    *uuid.UUID `gorm:"type:uuid"`
	BillingCycle      string     `gorm:"not null;default:Monthly"`
	TotalPrice        float64    `gorm:"type:numeric(14,2);not null;default:0"`
	GSTRate           float64    `gorm:"column:gst_rate;type:numeric(5,2);not null;default:18"`
	IsCustomer        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Assignee  *Member    `gorm:"foreignKey:AssignedTo"`
	Notes     []Note     `gorm:"foreignKey:AccountID"`
	FollowUps []FollowUp `gorm:"foreignKey:AccountID"`
}

func (Account) TableName() string {
	return "business_accounts"
}

// Member is the slice of a user row that account listings show.
type Member struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string
}

func (Member) TableName() string {
	return "users"
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"not null"`
	Author    string
	CreatedAt time.Time
}

func (Note) TableName() string {
	return "account_notes"
}

type FollowUp struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	Date      time.Time `gorm:"not null"`
	Note      string
	AddedBy   *uuid.UUID `gorm:"type:uuid"`
	Status    string     `gorm:"not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time

	AddedByUser *Member `gorm:"foreignKey:AddedBy"`
}

func (FollowUp) TableName() string {
	return "account_follow_ups"
}

package quotation

import (
	"time"

	"github.com/google/uuid"
)

const (
	NumberCounter = "quotation"
	NumberPrefix  = "Q"
	numberWidth   = 4

	StatusDraft    = "Draft"
	StatusSent     = "Sent"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"

	FollowUpPending   = "pending"
	FollowUpCompleted = "completed"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// LineItem is one priced row of a quotation.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Quotation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number            string     `gorm:"not null;uniqueIndex"`
	BusinessAccountID *uuid.UUID `gorm:"type:uuid"`
	ServiceID         *uuid.UUID `gorm:"type:uuid"`
	Title             string     `gorm:"not null"`
	Items             []LineItem `gorm:"type:jsonb;serializer:json"`
	Subtotal          float64
	GSTRate           float64
	Total             float64
	Status            string `gorm:"not null;default:'Draft'"`
	ValidUntil        *time.Time
	Notes             string
	CreatedBy         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Business  *BusinessRef `gorm:"foreignKey:BusinessAccountID"`
	Service   *ServiceRef  `gorm:"foreignKey:ServiceID"`
	FollowUps []FollowUp   `gorm:"foreignKey:QuotationID"`
}

func (Quotation) TableName() string {
	return "quotations"
}

type FollowUp struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null"`
	Date        time.Time `gorm:"not null"`
	Note        string
	AddedBy     *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	AddedByUser *Person `gorm:"foreignKey:AddedBy"`
}

func (FollowUp) TableName() string {
	return "quotation_follow_ups"
}

type Person struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

func (Person) TableName() string {
	return "users"
}

type BusinessRef struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName  string
	ContactName   string
	ContactEmail  string
	ContactNumber string
	Status        string
}

func (BusinessRef) TableName() string {
	return "business_accounts"
}

type ServiceRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceName string
	Category    string
}

func (ServiceRef) TableName() string {
	return "brand_services"
}

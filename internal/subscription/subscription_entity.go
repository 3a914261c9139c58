package subscription

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

const (
	NumberCounter = "subscription"
	NumberPrefix  = "SUB"
	numberWidth   = 6
)

type Subscription struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number            string     `gorm:"not null"`
	BusinessAccountID uuid.UUID  `gorm:"type:uuid;not null"`
	ServiceID         uuid.UUID  `gorm:"type:uuid;not null"`
	PlanID            *uuid.UUID `gorm:"type:uuid"`
	PlanName          string     `gorm:"not null"`
	PlanPriceMonthly  float64    `gorm:"type:numeric(14,2)"`
	PlanPriceYearly   float64    `gorm:"type:numeric(14,2)"`
	PlanPriceOneTime  float64    `gorm:"type:numeric(14,2)"`
	BillingCycle      string     `gorm:"not null"`
	AmountPaid        float64    `gorm:"type:numeric(14,2)"`
	GSTRate           float64    `gorm:"column:gst_rate;type:numeric(5,2)"`
	TotalWithGST      float64    `gorm:"column:total_with_gst;type:numeric(14,2)"`
	OrderID           string
	PaymentID         string
	PurchaseDate      time.Time
	RenewalDate       time.Time
	Status            string `gorm:"not null;default:active"`
	AutoRenew         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Account *AccountRef `gorm:"foreignKey:BusinessAccountID"`
	Service *ServiceRef `gorm:"foreignKey:ServiceID"`
	History []History   `gorm:"foreignKey:SubscriptionID"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// AccountRef is the part of a business account shown next to its subscriptions.
type AccountRef struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName  string
	ContactName   string
	ContactNumber string
	ContactEmail  string
	OwnerID       *uuid.UUID `gorm:"type:uuid"`
}

func (AccountRef) TableName() string {
	return "business_accounts"
}

type ServiceRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceName string
}

func (ServiceRef) TableName() string {
	return "brand_services"
}

// History is append-only. Rows are never updated once written.
type History struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionID   uuid.UUID `gorm:"type:uuid;not null"`
	PreviousPlanName string
	NewPlanName      string     `gorm:"not null"`
	ChangedBy        *uuid.UUID `gorm:"type:uuid"`
	Note             string
	ChangedDate      time.Time
}

func (History) TableName() string {
	return "subscription_history"
}

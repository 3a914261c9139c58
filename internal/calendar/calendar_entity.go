// Package calendar keeps each user's private calendar events.
package calendar

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	Role        string
	Title       string
	Description string
	Start       time.Time  `gorm:"column:starts_at;not null"`
	End         *time.Time `gorm:"column:ends_at"`
	AllDay      bool
	AccountID   *uuid.UUID `gorm:"type:uuid"`
	ServiceID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Account *AccountRef `gorm:"foreignKey:AccountID"`
	Service *ServiceRef `gorm:"foreignKey:ServiceID"`
}

func (Event) TableName() string {
	return "calendar_events"
}

type AccountRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName string
	ContactName  string
}

func (AccountRef) TableName() string {
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

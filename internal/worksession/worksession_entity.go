package worksession

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Session struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	WorkDate   time.Time `gorm:"type:date;not null"`
	LoginTime  time.Time `gorm:"not null"`
	LogoutTime *time.Time
	TotalHours decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	EOD        string          `gorm:"column:eod;type:text"`
	AccountIDs []string        `gorm:"type:jsonb;serializer:json"`
	ServiceIDs []string        `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *Worker `gorm:"foreignKey:UserID"`
}

func (Session) TableName() string {
	return "work_sessions"
}

func (s *Session) IsOpen() bool {
	return s.LogoutTime == nil
}

type Worker struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

func (Worker) TableName() string {
	return "users"
}

// Hours is elapsed/3600 rounded to two places.
func Hours(login, logout time.Time) decimal.Decimal {
	secs := decimal.NewFromFloat(logout.Sub(login).Seconds())
	return secs.Div(decimal.NewFromInt(3600)).Round(2)
}

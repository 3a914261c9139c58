package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusReview     = "Review"
	StatusCompleted  = "Completed"
	StatusOverdue    = "Overdue"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

type Task struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"not null"`
	Description  string
	AssignedTo   uuid.UUID  `gorm:"type:uuid;not null"`
	AssignedBy   *uuid.UUID `gorm:"type:uuid"`
	AccountID    *uuid.UUID `gorm:"type:uuid"`
	ServiceID    *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"not null;default:'To Do'"`
	AssignedDate time.Time
	DueDate      *time.Time
	Attachments  []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Assignee *Person     `gorm:"foreignKey:AssignedTo"`
	Assigner *Person     `gorm:"foreignKey:AssignedBy"`
	Account  *AccountRef `gorm:"foreignKey:AccountID"`
	Service  *ServiceRef `gorm:"foreignKey:ServiceID"`
}

func (Task) TableName() string {
	return "tasks"
}

type Person struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
	Role  string
}

func (Person) TableName() string {
	return "users"
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

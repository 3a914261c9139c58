package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
	StatusCancelled  = "Cancelled"
)

var Statuses = []string{StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled}

const (
	StepPending    = "Pending"
	StepInProgress = "In Progress"
	StepReview     = "Review"
	StepCompleted  = "Completed"
	StepOnHold     = "On Hold"
)

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidStepStatus(s string) bool {
	switch s {
	case StepPending, StepInProgress, StepReview, StepCompleted, StepOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	Status      string     `gorm:"not null;default:Planned"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"type:date"`
	AccountID   uuid.UUID  `gorm:"type:uuid;not null"`
	ServiceID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Steps       []Step       `gorm:"foreignKey:ProjectID"`
	Notes       []Note       `gorm:"foreignKey:ProjectID"`
	Attachments []Attachment `gorm:"foreignKey:ProjectID"`
	Members     []Member     `gorm:"many2many:project_members;joinForeignKey:ProjectID;joinReferences:UserID"`
	Account     *AccountRef  `gorm:"foreignKey:AccountID"`
	Service     *ServiceRef  `gorm:"foreignKey:ServiceID"`
	Creator     *Member      `gorm:"foreignKey:CreatedBy"`
}

func (Project) TableName() string {
	return "projects"
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null"`
	StepName    string    `gorm:"not null"`
	URL         string    `gorm:"column:url"`
	Description string
	Status      string `gorm:"not null;default:Pending"`
	Order       int    `gorm:"column:step_order;not null"`
}

func (Step) TableName() string {
	return "project_steps"
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"not null"`
	Author    string
	CreatedAt time.Time
}

func (Note) TableName() string {
	return "project_notes"
}

type Attachment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null"`
	Filename  string    `gorm:"not null"`
	URL       string    `gorm:"column:url;not null"`
	ObjectKey string    `gorm:"not null"`
	CreatedAt time.Time
}

func (Attachment) TableName() string {
	return "project_attachments"
}

type Member struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
	Role  string
}

func (Member) TableName() string {
	return "users"
}

type AccountRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName string
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

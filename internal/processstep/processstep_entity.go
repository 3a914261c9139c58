package processstep

import (
	"time"

	"github.com/google/uuid"
)

const StatusPending = "Pending"

// Step is one row of a template group. StepType carries the service name the
// group seeds projects for.
type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StepType    string    `gorm:"not null"`
	StepName    string    `gorm:"not null"`
	URL         string    `gorm:"column:url"`
	Description string
	Status      string `gorm:"not null;default:Pending"`
	Order       int    `gorm:"column:step_order;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Step) TableName() string {
	return "process_steps"
}

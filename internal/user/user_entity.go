package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSuperadmin = "Superadmin"
	RoleAdmin      = "Admin"
	RoleTeamLeader = "Team Leader"
	RoleEmployee   = "Employee"
	RoleClient     = "Client"
)

const (
	PresenceOnline  = "online"
	PresenceAway    = "away"
	PresenceBusy    = "busy"
	PresenceOffline = "offline"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleSuperadmin, RoleAdmin, RoleTeamLeader, RoleEmployee, RoleClient:
		return true
	}
	return false
}

func IsValidPresence(presence string) bool {
	switch presence {
	case PresenceOnline, PresenceAway, PresenceBusy, PresenceOffline:
		return true
	}
	return false
}

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string     `gorm:"not null"`
	Email             string     `gorm:"uniqueIndex;not null"`
	Password          string     `gorm:"not null"`
	Role              string     `gorm:"not null"`
	TeamID            *uuid.UUID `gorm:"type:uuid"`
	BusinessAccountID *uuid.UUID `gorm:"type:uuid"`
	Presence          string     `gorm:"not null;default:offline"`
	PreviousPresence  string     `gorm:"not null;default:''"`
	LastActiveAt      *time.Time
	IsActive          bool `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	Team *Team `gorm:"foreignKey:TeamID"`
}

func (User) TableName() string {
	return "users"
}

type Team struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"not null"`
	TeamLeaderID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Leader  *User  `gorm:"foreignKey:TeamLeaderID"`
	Members []User `gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

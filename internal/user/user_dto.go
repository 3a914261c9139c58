package user

type UserResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	TeamID            *string `json:"teamId,omitempty"`
	TeamName          string  `json:"teamName,omitempty"`
	BusinessAccountID *string `json:"businessAccountId,omitempty"`
	Presence          string  `json:"presence"`
	PreviousPresence  string  `json:"previousPresence,omitempty"`
	LastActiveAt      *string `json:"lastActiveAt,omitempty"`
	IsActive          bool    `json:"isActive"`
	CreatedAt         string  `json:"createdAt"`
}

type UpdateUserRequest struct {
	Name              *string `json:"name"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Role              *string `json:"role"`
	TeamID            *string `json:"teamId"`
	BusinessAccountID *string `json:"businessAccountId"`
	IsActive          *bool   `json:"isActive"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type UpdatePresenceRequest struct {
	Presence string `json:"presence" binding:"required"`
}

// PresenceEvent is the payload broadcast as presence_updated.
type PresenceEvent struct {
	UserID           string `json:"userId"`
	Presence         string `json:"presence"`
	PreviousPresence string `json:"previousPresence"`
	LastActiveAt     string `json:"lastActiveAt"`
}

type CreateTeamRequest struct {
	Name         string   `json:"name" binding:"required"`
	TeamLeaderID string   `json:"teamLeaderId" binding:"required,uuid"`
	MemberIDs    []string `json:"memberIds" binding:"omitempty,dive,uuid"`
}

type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TeamResponse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	TeamLeader *TeamMember  `json:"teamLeader,omitempty"`
	Members    []TeamMember `json:"members"`
	CreatedAt  string       `json:"createdAt"`
}

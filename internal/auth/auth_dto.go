package auth

type RegisterRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6"`
	Role              string `json:"role"`
	TeamID            string `json:"teamId" binding:"omitempty,uuid"`
	BusinessAccountID string `json:"businessAccountId" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type AuthResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	TeamID            *string `json:"teamId,omitempty"`
	TeamName          string  `json:"teamName,omitempty"`
	BusinessAccountID *string `json:"businessAccountId,omitempty"`
	Presence          string  `json:"presence"`
}

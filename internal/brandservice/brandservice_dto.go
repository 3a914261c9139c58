package brandservice

import "time"

type FeatureInput struct {
	Name string `json:"name" binding:"required"`
}

type PlanRequest struct {
	Name         string         `json:"name" binding:"required"`
	PriceMonthly float64        `json:"priceMonthly" binding:"gte=0"`
	PriceYearly  float64        `json:"priceYearly" binding:"gte=0"`
	PriceOneTime float64        `json:"priceOneTime" binding:"gte=0"`
	ScriptBased  bool           `json:"scriptBased"`
	Features     []FeatureInput `json:"features" binding:"dive"`
	IsActive     *bool          `json:"isActive"`
}

type CreateServiceRequest struct {
	ServiceName string        `json:"serviceName" binding:"required,notblank"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	BasePrice   float64       `json:"basePrice" binding:"gte=0"`
	GSTRate     *float64      `json:"gstRate" binding:"omitempty,gte=0"`
	Plans       []PlanRequest `json:"plans" binding:"dive"`
	IsActive    *bool         `json:"isActive"`
}

type UpdateServiceRequest struct {
	ServiceName *string  `json:"serviceName"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"basePrice" binding:"omitempty,gte=0"`
	GSTRate     *float64 `json:"gstRate" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive"`
}

type NoteInput struct {
	Text      string     `json:"text" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Author    string     `json:"author"`
}

type UpdateNotesRequest struct {
	Notes []NoteInput `json:"notes" binding:"dive"`
}

type NoteResponse struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

type PlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PriceMonthly float64   `json:"priceMonthly"`
	PriceYearly  float64   `json:"priceYearly"`
	PriceOneTime float64   `json:"priceOneTime"`
	ScriptBased  bool      `json:"scriptBased"`
	Features     []Feature `json:"features"`
	IsActive     bool      `json:"isActive"`
}

type ServiceResponse struct {
	ID          string         `json:"id"`
	ServiceCode string         `json:"serviceCode"`
	ServiceName string         `json:"serviceName"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	BasePrice   float64        `json:"basePrice"`
	GSTRate     float64        `json:"gstRate"`
	Notes       []NoteResponse `json:"notes"`
	Plans       []PlanResponse `json:"plans"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

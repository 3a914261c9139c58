package calendar

import "time"

// EventRequest is used for both create and update. Update replaces every
// field, and an empty accountId or serviceId clears the link.
type EventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start" binding:"required"`
	End         *time.Time `json:"end"`
	AllDay      bool       `json:"allDay"`
	AccountID   string     `json:"accountId" binding:"omitempty,uuid"`
	ServiceID   string     `json:"serviceId" binding:"omitempty,uuid"`
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	ID          string       `json:"id"`
	User        string       `json:"user"`
	Role        string       `json:"role"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Start       time.Time    `json:"start"`
	End         *time.Time   `json:"end"`
	AllDay      bool         `json:"allDay"`
	Account     *RefResponse `json:"accountId"`
	Service     *RefResponse `json:"serviceId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func mapToResponse(e *Event) EventResponse {
	res := EventResponse{
		ID:          e.ID.String(),
		User:        e.UserID.String(),
		Role:        e.Role,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		AllDay:      e.AllDay,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.AccountID != nil {
		res.Account = &RefResponse{ID: e.AccountID.String()}
		if e.Account != nil {
			res.Account.Name = e.Account.BusinessName
		}
	}
	if e.ServiceID != nil {
		res.Service = &RefResponse{ID: e.ServiceID.String()}
		if e.Service != nil {
			res.Service.Name = e.Service.ServiceName
		}
	}
	return res
}

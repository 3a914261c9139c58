package quotation

import "time"

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"gte=0"`
}

type CreateQuotationRequest struct {
	Title             string            `json:"title" binding:"required"`
	BusinessAccountID string            `json:"businessId" binding:"omitempty,uuid"`
	ServiceID         string            `json:"serviceId" binding:"omitempty,uuid"`
	Items             []LineItemRequest `json:"items" binding:"dive"`
	GSTRate           float64           `json:"gstRate"`
	Status            string            `json:"status"`
	ValidUntil        *time.Time        `json:"validUntil"`
	Notes             string            `json:"notes"`
}

type UpdateQuotationRequest struct {
	Title             *string            `json:"title"`
	BusinessAccountID *string            `json:"businessId"`
	ServiceID         *string            `json:"serviceId"`
	Items             *[]LineItemRequest `json:"items"`
	GSTRate           *float64           `json:"gstRate"`
	Status            *string            `json:"status"`
	ValidUntil        *time.Time         `json:"validUntil"`
	Notes             *string            `json:"notes"`
}

type FollowUpRequest struct {
	Date   time.Time `json:"date" binding:"required"`
	Note   string    `json:"note"`
	Status string    `json:"status"`
}

type PersonResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FollowUpResponse struct {
	ID      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Note    string          `json:"note"`
	Status  string          `json:"status"`
	AddedBy *PersonResponse `json:"addedBy"`
}

type QuotationResponse struct {
	ID         string             `json:"id"`
	Number     string             `json:"quotationNumber"`
	Title      string             `json:"title"`
	Business   *RefResponse       `json:"businessId"`
	Service    *RefResponse       `json:"serviceId"`
	Items      []LineItem         `json:"items"`
	Subtotal   float64            `json:"subtotal"`
	GSTRate    float64            `json:"gstRate"`
	Total      float64            `json:"total"`
	Status     string             `json:"status"`
	ValidUntil *time.Time         `json:"validUntil"`
	Notes      string             `json:"notes"`
	CreatedBy  string             `json:"createdBy,omitempty"`
	FollowUps  []FollowUpResponse `json:"followUps"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// CustomerResponse is a business that can be quoted against.
type CustomerResponse struct {
	ID            string `json:"id"`
	BusinessName  string `json:"businessName"`
	ContactName   string `json:"contactName"`
	ContactEmail  string `json:"contactEmail"`
	ContactNumber string `json:"contactNumber"`
	Status        string `json:"status"`
}

func mapFollowUps(followUps []FollowUp) []FollowUpResponse {
	res := make([]FollowUpResponse, 0, len(followUps))
	for _, f := range followUps {
		item := FollowUpResponse{ID: f.ID.String(), Date: f.Date, Note: f.Note, Status: f.Status}
		if f.AddedByUser != nil {
			item.AddedBy = &PersonResponse{ID: f.AddedByUser.ID.String(), Name: f.AddedByUser.Name, Email: f.AddedByUser.Email}
		} else if f.AddedBy != nil {
			item.AddedBy = &PersonResponse{ID: f.AddedBy.String()}
		}
		res = append(res, item)
	}
	return res
}

func mapToResponse(q *Quotation) QuotationResponse {
	res := QuotationResponse{
		ID:         q.ID.String(),
		Number:     q.Number,
		Title:      q.Title,
		Items:      q.Items,
		Subtotal:   q.Subtotal,
		GSTRate:    q.GSTRate,
		Total:      q.Total,
		Status:     q.Status,
		ValidUntil: q.ValidUntil,
		Notes:      q.Notes,
		FollowUps:  mapFollowUps(q.FollowUps),
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	if res.Items == nil {
		res.Items = []LineItem{}
	}
	if q.CreatedBy != nil {
		res.CreatedBy = q.CreatedBy.String()
	}
	if q.BusinessAccountID != nil {
		res.Business = &RefResponse{ID: q.BusinessAccountID.String()}
		if q.Business != nil {
			res.Business.Name = q.Business.BusinessName
		}
	}
	if q.ServiceID != nil {
		res.Service = &RefResponse{ID: q.ServiceID.String()}
		if q.Service != nil {
			res.Service.Name = q.Service.ServiceName
		}
	}
	return res
}

func mapCustomers(refs []BusinessRef) []CustomerResponse {
	res := make([]CustomerResponse, 0, len(refs))
	for _, b := range refs {
		res = append(res, CustomerResponse{
			ID:            b.ID.String(),
			BusinessName:  b.BusinessName,
			ContactName:   b.ContactName,
			ContactEmail:  b.ContactEmail,
			ContactNumber: b.ContactNumber,
			Status:        b.Status,
		})
	}
	return res
}

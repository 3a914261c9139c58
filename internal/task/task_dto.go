package task

import "time"

type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	AssignedTo   string     `json:"assignedTo" binding:"required,uuid"`
	AccountID    string     `json:"accountId" binding:"omitempty,uuid"`
	ServiceID    string     `json:"serviceId" binding:"omitempty,uuid"`
	Status       string     `json:"status"`
	AssignedDate *time.Time `json:"assignedDate"`
	DueDate      *time.Time `json:"dueDate"`
	Attachments  []string   `json:"attachments"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assignedTo" binding:"omitempty,uuid"`
	AccountID   *string    `json:"accountId"`
	ServiceID   *string    `json:"serviceId"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Attachments *[]string  `json:"attachments"`
}

type ListQuery struct {
	AssignedTo string
	AssignedBy string
	Status     string
	AccountID  string
	ServiceID  string
	Search     string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

type PersonResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	AssignedTo   *PersonResponse `json:"assignedTo"`
	AssignedBy   *PersonResponse `json:"assignedBy"`
	Account      *RefResponse    `json:"accountId"`
	Service      *RefResponse    `json:"serviceId"`
	Status       string          `json:"status"`
	AssignedDate time.Time       `json:"assignedDate"`
	DueDate      *time.Time      `json:"dueDate"`
	Attachments  []string        `json:"attachments"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func mapPerson(p *Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{ID: p.ID.String(), Name: p.Name, Email: p.Email, Role: p.Role}
}

func mapToResponse(t *Task) TaskResponse {
	res := TaskResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		AssignedTo:   mapPerson(t.Assignee),
		AssignedBy:   mapPerson(t.Assigner),
		Status:       t.Status,
		AssignedDate: t.AssignedDate,
		DueDate:      t.DueDate,
		Attachments:  t.Attachments,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if res.AssignedTo == nil {
		res.AssignedTo = &PersonResponse{ID: t.AssignedTo.String()}
	}
	if res.Attachments == nil {
		res.Attachments = []string{}
	}
	if t.AccountID != nil {
		res.Account = &RefResponse{ID: t.AccountID.String()}
		if t.Account != nil {
			res.Account.Name = t.Account.BusinessName
		}
	}
	if t.ServiceID != nil {
		res.Service = &RefResponse{ID: t.ServiceID.String()}
		if t.Service != nil {
			res.Service.Name = t.Service.ServiceName
		}
	}
	return res
}

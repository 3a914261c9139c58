package project

import "time"

type StepInput struct {
	StepName    string `json:"stepName" binding:"required"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type CreateProjectRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	StartDate   string      `json:"startDate" binding:"required"`
	EndDate     string      `json:"endDate"`
	AccountID   string      `json:"accountId" binding:"required,uuid"`
	ServiceID   string      `json:"serviceId" binding:"required,uuid"`
	ServiceName string      `json:"serviceName"`
	Members     []string    `json:"members" binding:"dive,uuid"`
	Steps       []StepInput `json:"steps" binding:"dive"`
}

type UpdateProjectRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	StartDate   *string      `json:"startDate"`
	EndDate     *string      `json:"endDate"`
	Members     *[]string    `json:"members" binding:"omitempty,dive,uuid"`
	Steps       *[]StepInput `json:"steps" binding:"omitempty,dive"`
}

type ListQuery struct {
	Status    string
	ServiceID string
	AccountID string
	UserID    string
	Role      string
}

type AddNoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}

type PresignRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType"`
}

type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type StepResponse struct {
	ID          string `json:"id"`
	StepName    string `json:"stepName"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type AttachmentResponse struct {
	ID        string     `json:"id"`
	Filename  string     `json:"filename"`
	URL       string     `json:"url"`
	Key       string     `json:"key"`
	UploadURL string     `json:"uploadUrl,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProjectResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Account     RefResponse          `json:"accountId"`
	Service     RefResponse          `json:"serviceId"`
	CreatedBy   *MemberResponse      `json:"createdBy"`
	Members     []MemberResponse     `json:"members"`
	Steps       []StepResponse       `json:"steps"`
	Notes       []NoteResponse       `json:"notes"`
	Attachments []AttachmentResponse `json:"attachments"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type StatResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func mapMember(m Member) MemberResponse {
	return MemberResponse{ID: m.ID.String(), Name: m.Name, Email: m.Email, Role: m.Role}
}

func mapSteps(steps []Step) []StepResponse {
	res := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		res = append(res, StepResponse{
			ID:          s.ID.String(),
			StepName:    s.StepName,
			URL:         s.URL,
			Description: s.Description,
			Status:      s.Status,
			Order:       s.Order,
		})
	}
	return res
}

func mapNotes(notes []Note) []NoteResponse {
	res := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, NoteResponse{ID: n.ID.String(), Text: n.Text, Author: n.Author, Timestamp: n.CreatedAt})
	}
	return res
}

func mapAttachment(a Attachment) AttachmentResponse {
	return AttachmentResponse{ID: a.ID.String(), Filename: a.Filename, URL: a.URL, Key: a.ObjectKey}
}

func mapToResponse(p *Project) ProjectResponse {
	res := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Account:     RefResponse{ID: p.AccountID.String()},
		Service:     RefResponse{ID: p.ServiceID.String()},
		Members:     make([]MemberResponse, 0, len(p.Members)),
		Steps:       mapSteps(p.Steps),
		Notes:       mapNotes(p.Notes),
		Attachments: make([]AttachmentResponse, 0, len(p.Attachments)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Account != nil {
		res.Account.Name = p.Account.BusinessName
	}
	if p.Service != nil {
		res.Service.Name = p.Service.ServiceName
	}
	if p.Creator != nil {
		c := mapMember(*p.Creator)
		res.CreatedBy = &c
	}
	for _, m := range p.Members {
		res.Members = append(res.Members, mapMember(m))
	}
	for _, a := range p.Attachments {
		res.Attachments = append(res.Attachments, mapAttachment(a))
	}
	return res
}

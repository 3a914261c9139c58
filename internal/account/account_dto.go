package account

import "time"

type CreateAccountRequest struct {
	BusinessName      string   `json:"businessName" binding:"required,notblank"`
	SelectedUserID    string   `json:"selectedUser" binding:"omitempty,uuid"`
	ContactName       string   `json:"contactName" binding:"required"`
	ContactEmail      string   `json:"contactEmail" binding:"omitempty,email"`
	ContactNumber     string   `json:"contactNumber" binding:"required"`
	GSTNumber         string   `json:"gstNumber"`
	AddressLine1      string   `json:"addressLine1"`
	AddressLine2      string   `json:"addressLine2"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
	Pincode           string   `json:"pincode"`
	Website           string   `json:"website"`
	TypeOfLead        []string `json:"typeOfLead"`
	Status            string   `json:"status"`
	SourceType        string   `json:"sourceType"`
	AssignedTo        string   `json:"assignedTo" binding:"omitempty,uuid"`
	SelectedServiceID string   `json:"selectedService" binding:"omitempty,uuid"`
	SelectedPlanID    string   `json:"selectedPlan" binding:"omitempty,uuid"`
	BillingCycle      string   `json:"billingCycle"`
}

// UpdateAccountRequest merges onto the stored account. An empty string clears an id field.
type UpdateAccountRequest struct {
	BusinessName      *string   `json:"businessName"`
	SelectedUserID    *string   `json:"selectedUser"`
	ContactName       *string   `json:"contactName"`
	ContactEmail      *string   `json:"contactEmail"`
	ContactNumber     *string   `json:"contactNumber"`
	GSTNumber         *string   `json:"gstNumber"`
	AddressLine1      *string   `json:"addressLine1"`
	AddressLine2      *string   `json:"addressLine2"`
	City              *string   `json:"city"`
	State             *string   `json:"state"`
	Country           *string   `json:"country"`
	Pincode           *string   `json:"pincode"`
	Website           *string   `json:"website"`
	TypeOfLead        *[]string `json:"typeOfLead"`
	Status            *string   `json:"status"`
	SourceType        *string   `json:"sourceType"`
	AssignedTo        *string   `json:"assignedTo"`
	SelectedServiceID *string   `json:"selectedService"`
	SelectedPlanID    *string   `json:"selectedPlan"`
	BillingCycle      *string   `json:"billingCycle"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"dive,uuid"`
	Status string   `json:"status" binding:"required"`
}

type AddNoteRequest struct {
	Text      string     `json:"text" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Author    string     `json:"author"`
}

type FollowUpRequest struct {
	Date   time.Time `json:"date" binding:"required"`
	Note   string    `json:"note"`
	Status string    `json:"status"`
}

// ListQuery drives every account listing. PageSize zero returns everything.
type ListQuery struct {
	Page       int
	PageSize   int
	Search     string
	Status     string
	SourceType string
	NotStatus  string
	SortBy     string
	SortOrder  string
	UserID     string
	Role       string
}

type MemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type AddressResponse struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type FollowUpResponse struct {
	ID      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Note    string          `json:"note"`
	Status  string          `json:"status"`
	AddedBy *MemberResponse `json:"addedBy"`
}

type AccountResponse struct {
	ID                string             `json:"id"`
	BusinessName      string             `json:"businessName"`
	OwnerID           *string            `json:"owner"`
	SelectedUserID    *string            `json:"selectedUser"`
	ContactName       string             `json:"contactName"`
	ContactEmail      string             `json:"contactEmail"`
	ContactNumber     string             `json:"contactNumber"`
	GSTNumber         string             `json:"gstNumber"`
	Address           AddressResponse    `json:"address"`
	Website           string             `json:"website"`
	TypeOfLead        []string           `json:"typeOfLead"`
	Status            string             `json:"status"`
	SourceType        string             `json:"sourceType"`
	AssignedTo        *MemberResponse    `json:"assignedTo"`
	SelectedServiceID *string            `json:"selectedService"`
	SelectedPlanID    *string            `json:"selectedPlan"`
	BillingCycle      string             `json:"billingCycle"`
	TotalPrice        float64            `json:"totalPrice"`
	GSTRate           float64            `json:"gstRate"`
	IsCustomer        bool               `json:"isCustomer"`
	Notes             []NoteResponse     `json:"notes"`
	FollowUps         []FollowUpResponse `json:"followUps"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type CountsResponse struct {
	All         int64 `json:"all"`
	Active      int64 `json:"active"`
	Pipeline    int64 `json:"pipeline"`
	Quotations  int64 `json:"quotations"`
	Customers   int64 `json:"customers"`
	Closed      int64 `json:"closed"`
	TargetLeads int64 `json:"targetLeads"`
}

type BulkStatusResponse struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updatedCount"`
}

// DuplicateDetails is attached to the 409 returned for a taken business name.
type DuplicateDetails struct {
	ExistingAccount string          `json:"existingAccount"`
	AssignedTo      *MemberResponse `json:"assignedTo"`
}

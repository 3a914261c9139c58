package subscription

import (
	"time"

	"go-crm/internal/brandservice"
)

type CreateSubscriptionRequest struct {
	BusinessAccountID string  `json:"businessAccount"`
	ServiceID         string  `json:"service"`
	PlanID            string  `json:"planId"`
	BillingCycle      string  `json:"billingCycle"`
	AmountPaid        float64 `json:"amountPaid" binding:"gte=0"`
	OrderID           string  `json:"orderId"`
	PaymentID         string  `json:"paymentId"`
}

type UpgradePlanRequest struct {
	ServiceID string `json:"service"`
	PlanID    string `json:"planId" binding:"required"`
	Note      string `json:"note"`
}

type HistoryResponse struct {
	PreviousPlanName string    `json:"previousPlanName"`
	NewPlanName      string    `json:"newPlanName"`
	ChangedBy        *string   `json:"changedBy"`
	Note             string    `json:"note"`
	ChangedDate      time.Time `json:"changedDate"`
}

type AccountSummary struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
}

type ServiceSummary struct {
	ID          string `json:"id"`
	ServiceName string `json:"serviceName"`
}

type SubscriptionResponse struct {
	ID               string            `json:"id"`
	Number           string            `json:"number"`
	BusinessAccount  AccountSummary    `json:"businessAccount"`
	Service          ServiceSummary    `json:"service"`
	PlanID           *string           `json:"planId"`
	PlanName         string            `json:"planName"`
	PlanPriceMonthly float64           `json:"planPriceMonthly"`
	PlanPriceYearly  float64           `json:"planPriceYearly"`
	PlanPriceOneTime float64           `json:"planPriceOneTime"`
	BillingCycle     string            `json:"billingCycle"`
	AmountPaid       float64           `json:"amountPaid"`
	GSTRate          float64           `json:"gstRate"`
	TotalWithGST     float64           `json:"totalWithGST"`
	OrderID          string            `json:"orderId"`
	PaymentID        string            `json:"paymentId"`
	PurchaseDate     time.Time         `json:"purchaseDate"`
	RenewalDate      time.Time         `json:"renewalDate"`
	Status           string            `json:"status"`
	AutoRenew        bool              `json:"autoRenew"`
	History          []HistoryResponse `json:"history"`
	CreatedAt        time.Time         `json:"createdAt"`
}

type DetailsResponse struct {
	ID            string                 `json:"id"`
	Number        string                 `json:"number"`
	BusinessName  string                 `json:"businessName"`
	ContactNumber string                 `json:"contactNumber"`
	ContactEmail  string                 `json:"contactEmail"`
	ServiceName   string                 `json:"serviceName"`
	BillingCycle  string                 `json:"billingCycle"`
	Status        string                 `json:"status"`
	RenewalDate   time.Time              `json:"renewalDate"`
	AmountPaid    float64                `json:"amountPaid"`
	GSTRate       float64                `json:"gstRate"`
	TotalWithGST  float64                `json:"totalWithGST"`
	OrderID       string                 `json:"orderId"`
	PlanName      string                 `json:"planName"`
	PlanFeatures  []brandservice.Feature `json:"planFeatures"`
	History       []HistoryResponse      `json:"history"`
}

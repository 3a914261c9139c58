package events

import "time"

const SubscriptionLifecycleTopic = "crm.subscription.lifecycle.v1"

const (
	SubscriptionCreated     = "subscription_created"
	SubscriptionPlanChanged = "subscription_plan_changed"
	SubscriptionCancelled   = "subscription_cancelled"
)

type SubscriptionLifecycleEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	SubscriptionID    string    `json:"subscription_id"`
	Number            string    `json:"number"`
	BusinessAccountID string    `json:"business_account_id"`
	ServiceID         string    `json:"service_id"`
	PlanName          string    `json:"plan_name"`
	PreviousPlanName  string    `json:"previous_plan_name,omitempty"`
	Status            string    `json:"status"`
	TotalWithGST      float64   `json:"total_with_gst"`
	ChangedBy         string    `json:"changed_by,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

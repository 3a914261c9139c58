package events

import "time"

const LeaveLifecycleTopic = "crm.leave.lifecycle.v1"

const (
	LeaveApplied       = "leave_applied"
	LeaveStatusChanged = "leave_status_changed"
)

type LeaveStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	LeaveID      string    `json:"leave_id"`
	UserID       string    `json:"user_id"`
	LeaveType    string    `json:"leave_type"`
	Status       string    `json:"status"`
	CurrentLevel string    `json:"current_level"`
	ActingRole   string    `json:"acting_role,omitempty"`
	RejectReason string    `json:"reject_reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

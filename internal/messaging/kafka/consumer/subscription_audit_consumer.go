package consumer

import (
	"context"
	"strings"

	"go-crm/internal/bootstrap"
	"go-crm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

func SubscriptionAudit(audit bootstrap.AuditLogger) HandleFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.SubscriptionLifecycleEvent
		if err := decode(msg, &event); err != nil {
			return err
		}

		meta := map[string]any{
			"subscription_id":     event.SubscriptionID,
			"number":              event.Number,
			"business_account_id": event.BusinessAccountID,
			"service_id":          event.ServiceID,
			"plan":                event.PlanName,
			"status":              event.Status,
			"total_with_gst":      event.TotalWithGST,
			"occurred_at":         event.OccurredAt,
		}
		if event.PreviousPlanName != "" {
			meta["previous_plan"] = event.PreviousPlanName
		}
		if event.ChangedBy != "" {
			meta["changed_by"] = event.ChangedBy
		}
		if event.RequestID != "" {
			meta["request_id"] = event.RequestID
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  strings.ToUpper(event.EventType),
			Message: "subscription " + event.Number + " " + event.Status,
			Meta:    meta,
		})
		return nil
	}
}

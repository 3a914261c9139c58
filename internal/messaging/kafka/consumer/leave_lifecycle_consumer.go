package consumer

import (
	"context"
	"fmt"

	"go-crm/internal/events"
	"go-crm/internal/realtime"

	kafkago "github.com/segmentio/kafka-go"
)

// LeaveLifecycle fans leave events out to the websocket gateway. New requests
// go to every connected approver, status changes to the applicant's room.
func LeaveLifecycle(pub realtime.Publisher) HandleFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.LeaveStatusChangedEvent
		if err := decode(msg, &event); err != nil {
			return err
		}

		switch event.EventType {
		case events.LeaveApplied:
			return pub.Broadcast(ctx, realtime.EventLeaveRequestReceived, map[string]string{
				"leaveId":   event.LeaveID,
				"userId":    event.UserID,
				"leaveType": event.LeaveType,
				"status":    event.Status,
			})
		case events.LeaveStatusChanged:
			return pub.EmitToUser(ctx, event.UserID, realtime.EventLeaveStatusUpdate, map[string]string{
				"leaveId": event.LeaveID,
				"status":  event.Status,
			})
		default:
			return fmt.Errorf("%w: unknown leave event %q", ErrSkip, event.EventType)
		}
	}
}

package alert

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TypeLeave        = "Leave"
	TypeSubscription = "Subscription"
	TypeProject      = "Project"
	TypeTask         = "Task"
	TypeWork         = "Work"
	TypeEvent        = "Event"
	TypeGeneral      = "General"
)

type Alert struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Message   string        `bson:"message"`
	Type      string        `bson:"type"`
	RefID     string        `bson:"ref_id,omitempty"`
	Read      bool          `bson:"read"`
	CreatedAt time.Time     `bson:"created_at"`
}

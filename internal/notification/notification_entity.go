package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	TypeInfo            = "info"
	TypeError           = "error"
	TypeStopWorkWarning = "STOP_WORK_WARNING"
)

type Notification struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Title     string        `bson:"title"`
	Message   string        `bson:"message"`
	Type      string        `bson:"type"`
	RefID     string        `bson:"ref_id,omitempty"`
	Read      bool          `bson:"read"`
	CreatedAt time.Time     `bson:"created_at"`
}

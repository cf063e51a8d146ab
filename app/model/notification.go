package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationTypeActivity = "Activity"

// ActivityNotification records who did what, written best-effort after a
// record insert. A failed insert is logged and never retried.
type ActivityNotification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	Type      string             `bson:"type" json:"type"`
	CreatedBy string             `bson:"createdBy" json:"createdBy"`
	RecordID  string             `bson:"recordId,omitempty" json:"recordId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// EvaluationNotification is derived, not stored: a trainee whose next
// evaluation has come due.
type EvaluationNotification struct {
	RecordID       string `json:"recordId"`
	Name           string `json:"name"`
	Branch         string `json:"branch,omitempty"`
	CurrentStatus  string `json:"currentStatus"`
	NextEvaluation Status `json:"nextEvaluation"`
	DueDate        string `json:"dueDate"`
}

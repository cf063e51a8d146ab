package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintStatus string

const (
	ComplaintNew        ComplaintStatus = "New"
	ComplaintInProgress ComplaintStatus = "InProgress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch ComplaintStatus(s) {
	case ComplaintNew, ComplaintInProgress, ComplaintResolved:
		return ComplaintStatus(s), nil
	}
	return "", fmt.Errorf("unknown complaint status %q", s)
}

// Complaint is a customer-reported issue against a trainee. It links to the
// trainee by exact name only and is merged into the unified history view by
// timestamp.
type Complaint struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TraineeName       string             `bson:"traineeName" json:"traineeName"`
	Branch            string             `bson:"branch,omitempty" json:"branch,omitempty"`
	ComplaintDate     string             `bson:"complaintDate,omitempty" json:"complaintDate,omitempty"`
	Details           string             `bson:"details" json:"details"`
	ReportedBy        string             `bson:"reportedBy,omitempty" json:"reportedBy,omitempty"`
	Status            ComplaintStatus    `bson:"status" json:"status"`
	ResolutionDetails string             `bson:"resolutionDetails,omitempty" json:"resolutionDetails,omitempty"`
	ResolvedDate      string             `bson:"resolvedDate,omitempty" json:"resolvedDate,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type CreateComplaintRequest struct {
	TraineeName       string `json:"traineeName" validate:"required"`
	Branch            string `json:"branch,omitempty"`
	ComplaintDate     string `json:"complaintDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Details           string `json:"details" validate:"required"`
	ReportedBy        string `json:"reportedBy,omitempty"`
	Status            string `json:"status,omitempty"`
	ResolutionDetails string `json:"resolutionDetails,omitempty"`
	ResolvedDate      string `json:"resolvedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateComplaintRequest struct {
	Branch            *string `json:"branch,omitempty"`
	ComplaintDate     *string `json:"complaintDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Details           *string `json:"details,omitempty"`
	ReportedBy        *string `json:"reportedBy,omitempty"`
	Status            *string `json:"status,omitempty"`
	ResolutionDetails *string `json:"resolutionDetails,omitempty"`
	ResolvedDate      *string `json:"resolvedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

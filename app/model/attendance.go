package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceExcused AttendanceStatus = "Excused"
	AttendanceSick    AttendanceStatus = "Sick"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceExcused, AttendanceSick, AttendanceAbsent:
		return AttendanceStatus(s), nil
	}
	return "", fmt.Errorf("unknown attendance status %q", s)
}

type AttendanceEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ParticipantID    string             `bson:"participantId" json:"participantId"`
	ParticipantName  string             `bson:"participantName" json:"participantName"`
	Location         string             `bson:"location" json:"location"`
	AttendanceStatus AttendanceStatus   `bson:"attendanceStatus" json:"attendanceStatus"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Date             time.Time          `bson:"date" json:"date"`
	RecordedBy       string             `bson:"recordedBy" json:"recordedBy"`
}

type AttendanceMark struct {
	ParticipantID   string `json:"participantId" validate:"required"`
	ParticipantName string `json:"participantName" validate:"required"`
	Status          string `json:"status" validate:"required"`
	Notes           string `json:"notes,omitempty"`
}

// SaveAttendanceRequest is one sheet submission: every mark lands in a single
// InsertMany against the store.
type SaveAttendanceRequest struct {
	Location string           `json:"location" validate:"required"`
	Marks    []AttendanceMark `json:"marks" validate:"required,min=1,dive"`
}

// AttendanceReportRow merges attendance marks and record status changes into
// one recap table ordered by date.
type AttendanceReportRow struct {
	ParticipantName string `json:"participantName"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	Notes           string `json:"notes"`
	RecordedBy      string `json:"recordedBy"`
}

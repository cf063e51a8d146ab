package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment is the structured rubric attached to check and evaluation
// records: a rating plus freeform note per category, and an overall note.
type Assessment struct {
	Ratings     map[string]string `bson:"ratings,omitempty" json:"ratings,omitempty"`
	ManualNotes map[string]string `bson:"manualNotes,omitempty" json:"manualNotes,omitempty"`
	FinalNote   string            `bson:"finalNote,omitempty" json:"finalNote,omitempty"`
}

// TrainingRecord is one event in a trainee's history. Each action (training
// enrollment, a check stage, an evaluation, graduation, resignation) inserts a
// new record; edits patch fields but never rename or renumber prior stages.
// Identity is by exact Name match across records.
type TrainingRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Status           Status             `bson:"status" json:"status"`
	EvaluationResult Result             `bson:"evaluationResult,omitempty" json:"evaluationResult,omitempty"`
	CheckResult      Result             `bson:"checkResult,omitempty" json:"checkResult,omitempty"`

	// Dates are YYYY-MM-DD strings; malformed values are tolerated on read.
	EntryDate  string `bson:"entryDate,omitempty" json:"entryDate,omitempty"`
	EventDate  string `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	PassedDate string `bson:"passedDate,omitempty" json:"passedDate,omitempty"`
	ResignDate string `bson:"resignDate,omitempty" json:"resignDate,omitempty"`

	OriginCity       string `bson:"originCity,omitempty" json:"originCity,omitempty"`
	TrainedFrom      string `bson:"trainedFrom,omitempty" json:"trainedFrom,omitempty"`
	PromotedToBranch string `bson:"promotedToBranch,omitempty" json:"promotedToBranch,omitempty"`
	EvaluationBranch string `bson:"evaluationBranch,omitempty" json:"evaluationBranch,omitempty"`

	Trainer    string `bson:"trainer,omitempty" json:"trainer,omitempty"`
	ApprovedBy string `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	Reference  string `bson:"reference,omitempty" json:"reference,omitempty"`

	Photo      string      `bson:"photo,omitempty" json:"photo,omitempty"`
	Assessment *Assessment `bson:"assessment,omitempty" json:"assessment,omitempty"`

	CreatedBy     string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	LastUpdatedBy string    `bson:"lastUpdatedBy,omitempty" json:"lastUpdatedBy,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	IsDeleted bool `bson:"isDeleted" json:"isDeleted"`
}

// Branch returns the branch a record is attributed to in branch and schedule
// views: promoted-to branch first, evaluation branch as fallback.
func (r TrainingRecord) Branch() string {
	if r.PromotedToBranch != "" {
		return r.PromotedToBranch
	}
	return r.EvaluationBranch
}

// SortTime orders records for latest-per-trainee grouping: updatedAt when
// set, createdAt otherwise.
func (r TrainingRecord) SortTime() time.Time {
	if !r.UpdatedAt.IsZero() {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// CheckStageAuto is accepted in create requests in place of a numbered
// CheckStage tag; the service resolves it to Passed or the next stage number.
const CheckStageAuto = "CheckStage"

type CreateRecordRequest struct {
	Name             string      `json:"name" validate:"required"`
	Status           string      `json:"status" validate:"required"`
	EvaluationResult string      `json:"evaluationResult,omitempty"`
	CheckResult      string      `json:"checkResult,omitempty"`
	EntryDate        string      `json:"entryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EventDate        string      `json:"eventDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PassedDate       string      `json:"passedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ResignDate       string      `json:"resignDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	OriginCity       string      `json:"originCity,omitempty"`
	TrainedFrom      string      `json:"trainedFrom,omitempty"`
	PromotedToBranch string      `json:"promotedToBranch,omitempty"`
	EvaluationBranch string      `json:"evaluationBranch,omitempty"`
	Trainer          string      `json:"trainer,omitempty"`
	ApprovedBy       string      `json:"approvedBy,omitempty"`
	Reference        string      `json:"reference,omitempty"`
	Photo            string      `json:"photo,omitempty"`
	Assessment       *Assessment `json:"assessment,omitempty"`
}

type UpdateRecordRequest struct {
	Status           *string     `json:"status,omitempty"`
	EvaluationResult *string     `json:"evaluationResult,omitempty"`
	CheckResult      *string     `json:"checkResult,omitempty"`
	EntryDate        *string     `json:"entryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EventDate        *string     `json:"eventDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PassedDate       *string     `json:"passedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ResignDate       *string     `json:"resignDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	OriginCity       *string     `json:"originCity,omitempty"`
	TrainedFrom      *string     `json:"trainedFrom,omitempty"`
	PromotedToBranch *string     `json:"promotedToBranch,omitempty"`
	EvaluationBranch *string     `json:"evaluationBranch,omitempty"`
	Trainer          *string     `json:"trainer,omitempty"`
	ApprovedBy       *string     `json:"approvedBy,omitempty"`
	Reference        *string     `json:"reference,omitempty"`
	Photo            *string     `json:"photo,omitempty"`
	Assessment       *Assessment `json:"assessment,omitempty"`
}

type MergeFieldRequest struct {
	Field          string `json:"field" validate:"required,oneof=trainedFrom promotedToBranch evaluationBranch originCity name"`
	IncorrectValue string `json:"incorrectValue" validate:"required"`
	CorrectValue   string `json:"correctValue" validate:"required"`
}

type DateRangeRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// RequiredFieldErrors lists the missing required fields for the chosen
// status, mirroring the per-status form checks. The write is not attempted
// while this is non-empty.
func (req CreateRecordRequest) RequiredFieldErrors() []string {
	var missing []string
	status := Status(req.Status)
	switch {
	case status.IsTraining() && status != TrainingStatus(DisciplineSeitai):
		if req.OriginCity == "" {
			missing = append(missing, "originCity")
		}
		if req.TrainedFrom == "" {
			missing = append(missing, "trainedFrom")
		}
	case status == TrainingStatus(DisciplineSeitai):
		if req.EvaluationBranch == "" {
			missing = append(missing, "evaluationBranch")
		}
	case req.Status == CheckStageAuto || status.IsCheckStage():
		if Result(req.CheckResult) == ResultPassed && req.PromotedToBranch == "" {
			missing = append(missing, "promotedToBranch")
		}
	case status.IsEvaluation():
		if req.EvaluationBranch == "" {
			missing = append(missing, "evaluationBranch")
		}
	}
	return missing
}

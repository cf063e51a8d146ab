package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFieldErrorsPerStatus(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRecordRequest
		want []string
	}{
		{
			name: "training needs origin and source branch",
			req:  CreateRecordRequest{Name: "Ana", Status: "Training:Reflexology"},
			want: []string{"originCity", "trainedFrom"},
		},
		{
			name: "seitai training needs evaluation branch",
			req:  CreateRecordRequest{Name: "Ana", Status: "Training:Seitai"},
			want: []string{"evaluationBranch"},
		},
		{
			name: "passing check needs promotion branch",
			req:  CreateRecordRequest{Name: "Ana", Status: CheckStageAuto, CheckResult: "Passed"},
			want: []string{"promotedToBranch"},
		},
		{
			name: "in-progress check needs nothing extra",
			req:  CreateRecordRequest{Name: "Ana", Status: CheckStageAuto, CheckResult: "InProgress"},
			want: nil,
		},
		{
			name: "evaluation needs evaluation branch",
			req:  CreateRecordRequest{Name: "Ana", Status: "Evaluation:Seitai"},
			want: []string{"evaluationBranch"},
		},
		{
			name: "resignation has no extra requirements",
			req:  CreateRecordRequest{Name: "Ana", Status: "Resigned"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.RequiredFieldErrors())
		})
	}
}

func TestBranchFallback(t *testing.T) {
	r := TrainingRecord{PromotedToBranch: "Dago", EvaluationBranch: "Lembang"}
	assert.Equal(t, "Dago", r.Branch())

	r.PromotedToBranch = ""
	assert.Equal(t, "Lembang", r.Branch())
}

func TestSortTimePrefersUpdatedAt(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	r := TrainingRecord{CreatedAt: created}
	assert.Equal(t, created, r.SortTime())

	r.UpdatedAt = updated
	assert.Equal(t, updated, r.SortTime())
}

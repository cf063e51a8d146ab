package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/endayshebocah/tckokuo/app/model"
)

func rec(name string, status model.Status) model.TrainingRecord {
	return model.TrainingRecord{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Status: status,
	}
}

func TestResolveDisplayStatusEvaluation(t *testing.T) {
	r := rec("Ana", model.EvaluationStatus(model.DisciplineSeitai))
	assert.Equal(t, "In Evaluation:Seitai", ResolveDisplayStatus(r))

	r.EvaluationResult = model.ResultPassed
	assert.Equal(t, "Passed Evaluation:Seitai", ResolveDisplayStatus(r))
}

func TestResolveDisplayStatusCheckStage(t *testing.T) {
	r := rec("Ana", model.CheckStageStatus(2))
	assert.Equal(t, "Check Stage", ResolveDisplayStatus(r))

	r.CheckResult = model.ResultPassed
	assert.Equal(t, "Passed Check", ResolveDisplayStatus(r))

	// The check label is discipline-agnostic regardless of stage number.
	r5 := rec("Ana", model.CheckStageStatus(5))
	r5.CheckResult = model.ResultInProgress
	assert.Equal(t, "Check Stage", ResolveDisplayStatus(r5))
}

func TestResolveDisplayStatusVerbatim(t *testing.T) {
	for _, status := range []model.Status{
		model.TrainingStatus(model.DisciplineReflexology),
		model.StatusPassed,
		model.StatusResigned,
		model.StatusReplacedParticipant,
	} {
		assert.Equal(t, string(status), ResolveDisplayStatus(rec("Ana", status)))
	}
}

func TestResolveDisplayStatusMissing(t *testing.T) {
	assert.Equal(t, UnknownStatus, ResolveDisplayStatus(model.TrainingRecord{Name: "Ana"}))
}

func TestNextCheckStageEmpty(t *testing.T) {
	assert.Equal(t, model.CheckStageStatus(1), NextCheckStage("Ana", nil))
}

func TestNextCheckStageOnlyCountsOwnRecords(t *testing.T) {
	records := []model.TrainingRecord{
		rec("A", model.CheckStageStatus(1)),
		rec("A", model.CheckStageStatus(3)),
		rec("B", model.CheckStageStatus(2)),
	}
	assert.Equal(t, model.CheckStageStatus(4), NextCheckStage("A", records))
	assert.Equal(t, model.CheckStageStatus(3), NextCheckStage("B", records))
	assert.Equal(t, model.CheckStageStatus(1), NextCheckStage("C", records))
}

func TestNextCheckStageDiscardsMalformedSuffixes(t *testing.T) {
	records := []model.TrainingRecord{
		rec("A", model.Status("CheckStage:two")),
		rec("A", model.Status("CheckStage:")),
		rec("A", model.CheckStageStatus(2)),
	}
	assert.Equal(t, model.CheckStageStatus(3), NextCheckStage("A", records))
}

func TestNextCheckStageIgnoresNonCheckStatuses(t *testing.T) {
	records := []model.TrainingRecord{
		rec("A", model.TrainingStatus(model.DisciplineReflexology)),
		rec("A", model.StatusPassed),
	}
	assert.Equal(t, model.CheckStageStatus(1), NextCheckStage("A", records))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2025-03-31")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("31-03-2025")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)

	assert.Equal(t, NotAvailable, FormatDate("not-a-date"))
}

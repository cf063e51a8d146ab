package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endayshebocah/tckokuo/app/model"
)

func TestTimelineStepsOrder(t *testing.T) {
	history := []model.TrainingRecord{
		rec("Ana", model.EvaluationStatus(model.DisciplineReflexology)),
		rec("Ana", model.CheckStageStatus(2)),
		rec("Ana", model.StatusPassed),
		rec("Ana", model.CheckStageStatus(1)),
		rec("Ana", model.TrainingStatus(model.DisciplineReflexology)),
	}
	assert.Equal(t, []model.Status{
		model.TrainingStatus(model.DisciplineReflexology),
		model.CheckStageStatus(1),
		model.CheckStageStatus(2),
		model.StatusPassed,
		model.EvaluationStatus(model.DisciplineReflexology),
	}, TimelineSteps(history))
}

func TestTimelineStepsSkipsTerminalAndDuplicates(t *testing.T) {
	history := []model.TrainingRecord{
		rec("Ana", model.TrainingStatus(model.DisciplineSeitai)),
		rec("Ana", model.TrainingStatus(model.DisciplineSeitai)),
		rec("Ana", model.StatusResigned),
		rec("Ana", model.StatusReplacedParticipant),
	}
	assert.Equal(t, []model.Status{
		model.TrainingStatus(model.DisciplineSeitai),
	}, TimelineSteps(history))
}

func TestWorkDurationUntilResignation(t *testing.T) {
	entry := rec("Ana", model.TrainingStatus(model.DisciplineReflexology))
	entry.EntryDate = "2023-01-15"
	resigned := rec("Ana", model.StatusResigned)
	resigned.ResignDate = "2025-03-10"

	years, months, days, ok := WorkDuration([]model.TrainingRecord{entry, resigned}, time.Now())
	require.True(t, ok)
	assert.Equal(t, 2, years)
	assert.Equal(t, 1, months)
	assert.Equal(t, 23, days)
}

func TestWorkDurationWhileActive(t *testing.T) {
	entry := rec("Ana", model.TrainingStatus(model.DisciplineReflexology))
	entry.EntryDate = "2024-06-01"

	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	years, months, days, ok := WorkDuration([]model.TrainingRecord{entry}, today)
	require.True(t, ok)
	assert.Equal(t, 1, years)
	assert.Equal(t, 0, months)
	assert.Equal(t, 0, days)
}

func TestWorkDurationWithoutEntryDate(t *testing.T) {
	_, _, _, ok := WorkDuration([]model.TrainingRecord{rec("Ana", model.StatusPassed)}, time.Now())
	assert.False(t, ok)
}

func TestMergedHistoryInterleavesNewestFirst(t *testing.T) {
	older := recAt("Ana", model.TrainingStatus(model.DisciplineReflexology), day(1), day(1))
	newer := recAt("Ana", model.StatusPassed, day(3), day(3))
	complaint := model.Complaint{TraineeName: "Ana", CreatedAt: day(2)}

	merged := MergedHistory([]model.TrainingRecord{older, newer}, []model.Complaint{complaint})
	require.Len(t, merged, 3)
	assert.Equal(t, HistoryEntryRecord, merged[0].Type)
	assert.Equal(t, model.StatusPassed, merged[0].Record.Status)
	assert.Equal(t, HistoryEntryComplaint, merged[1].Type)
	assert.Equal(t, HistoryEntryRecord, merged[2].Type)
}

func TestMergedHistoryFallsBackToComplaintDate(t *testing.T) {
	c := model.Complaint{TraineeName: "Ana", ComplaintDate: "2025-04-02"}
	merged := MergedHistory(nil, []model.Complaint{c})
	require.Len(t, merged, 1)
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), merged[0].Timestamp)
}

func TestAssessmentHistory(t *testing.T) {
	plain := recAt("Ana", model.CheckStageStatus(1), day(1), day(1))
	assessed := recAt("Ana", model.CheckStageStatus(2), day(2), day(2))
	assessed.Assessment = &model.Assessment{FinalNote: "steady progress"}
	newest := recAt("Ana", model.StatusPassed, day(3), day(3))
	newest.Assessment = &model.Assessment{FinalNote: "ready"}

	out := AssessmentHistory([]model.TrainingRecord{plain, assessed, newest})
	require.Len(t, out, 2)
	assert.Equal(t, "ready", out[0].Assessment.FinalNote)
	assert.Equal(t, "steady progress", out[1].Assessment.FinalNote)
}

package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/endayshebocah/tckokuo/app/model"
)

func recAt(name string, status model.Status, created, updated time.Time) model.TrainingRecord {
	return model.TrainingRecord{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Status:    status,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestActiveDeletedPartition(t *testing.T) {
	kept := rec("Ana", model.StatusPassed)
	trashed := rec("Budi", model.StatusResigned)
	trashed.IsDeleted = true

	records := []model.TrainingRecord{kept, trashed}
	active := Active(records)
	deleted := Deleted(records)

	require.Len(t, active, 1)
	require.Len(t, deleted, 1)
	assert.Equal(t, kept.ID, active[0].ID)
	assert.Equal(t, trashed.ID, deleted[0].ID)

	// Restore round-trip: the record reappears identically.
	restored := trashed
	restored.IsDeleted = false
	active = Active([]model.TrainingRecord{kept, restored})
	require.Len(t, active, 2)
	assert.Equal(t, trashed.ID, active[1].ID)
	assert.Equal(t, trashed.Status, active[1].Status)
}

func TestLatestPerTraineePicksNewest(t *testing.T) {
	older := recAt("Ana", model.TrainingStatus(model.DisciplineReflexology), day(1), time.Time{})
	newer := recAt("Ana", model.CheckStageStatus(1), day(2), day(5))
	other := recAt("Budi", model.StatusPassed, day(3), time.Time{})

	latest := LatestPerTrainee([]model.TrainingRecord{older, newer, other})
	require.Len(t, latest, 2)
	assert.Equal(t, newer.ID, latest[0].ID)
	assert.Equal(t, other.ID, latest[1].ID)
}

func TestLatestPerTraineeIdempotent(t *testing.T) {
	records := []model.TrainingRecord{
		recAt("Ana", model.TrainingStatus(model.DisciplineReflexology), day(1), day(2)),
		recAt("Ana", model.CheckStageStatus(1), day(3), day(4)),
		recAt("Budi", model.StatusPassed, day(3), time.Time{}),
	}
	first := LatestPerTrainee(records)
	second := LatestPerTrainee(first)
	assert.Equal(t, first, second)
}

func TestLatestPerTraineeDeterministicTieBreak(t *testing.T) {
	a := recAt("Ana", model.StatusPassed, day(1), day(2))
	b := recAt("Ana", model.StatusResigned, day(1), day(2))

	want := a
	if b.ID.Hex() > a.ID.Hex() {
		want = b
	}
	got := LatestPerTrainee([]model.TrainingRecord{a, b})
	require.Len(t, got, 1)
	assert.Equal(t, want.ID, got[0].ID)

	// Same pick regardless of input order.
	got = LatestPerTrainee([]model.TrainingRecord{b, a})
	require.Len(t, got, 1)
	assert.Equal(t, want.ID, got[0].ID)
}

func TestResolvePortraitsEarliestPhotoWins(t *testing.T) {
	first := recAt("Ana", model.TrainingStatus(model.DisciplineReflexology), day(1), time.Time{})
	first.Photo = "X"
	second := recAt("Ana", model.CheckStageStatus(1), day(2), time.Time{})
	third := recAt("Ana", model.StatusPassed, day(3), time.Time{})

	active := []model.TrainingRecord{first, second, third}
	latest := LatestPerTrainee(active)
	require.Len(t, latest, 1)
	assert.Equal(t, third.ID, latest[0].ID)
	assert.Empty(t, latest[0].Photo)

	withPortraits := ResolvePortraits(active, latest)
	require.Len(t, withPortraits, 1)
	assert.Equal(t, "X", withPortraits[0].Photo)
}

func TestFilterByNameCaseInsensitiveSubstring(t *testing.T) {
	records := []model.TrainingRecord{
		rec("Ana", model.StatusPassed),
		rec("Banana", model.StatusPassed),
		rec("Budi", model.StatusPassed),
	}
	got := FilterByName(records, "ana")
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "Banana", got[1].Name)

	assert.Len(t, FilterByName(records, ""), 3)
	assert.Empty(t, FilterByName(records, "zzz"))
}

func TestFilterByLocationPerView(t *testing.T) {
	fromTC := rec("Ana", model.TrainingStatus(model.DisciplineReflexology))
	fromTC.TrainedFrom = "TC Sunda"
	promoted := rec("Budi", model.StatusPassed)
	promoted.PromotedToBranch = "Dago"
	evaluated := rec("Citra", model.EvaluationStatus(model.DisciplineReflexology))
	evaluated.EvaluationBranch = "Dago"

	records := []model.TrainingRecord{fromTC, promoted, evaluated}

	got := FilterByLocation(records, ViewParticipant, "TC Sunda")
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)

	got = FilterByLocation(records, ViewBranch, "Dago")
	require.Len(t, got, 2)

	got = FilterByLocation(records, ViewSchedule, "Dago")
	require.Len(t, got, 2)

	assert.Len(t, FilterByLocation(records, ViewBranch, ""), 3)
}

func TestBranchFallbackPromotedWins(t *testing.T) {
	r := rec("Ana", model.EvaluationStatus(model.DisciplineSeitai))
	r.EvaluationBranch = "Lembang"
	assert.Equal(t, "Lembang", r.Branch())

	r.PromotedToBranch = "Dago"
	assert.Equal(t, "Dago", r.Branch())
}

func TestAttendanceEligible(t *testing.T) {
	latest := []model.TrainingRecord{
		rec("Ana", model.TrainingStatus(model.DisciplineSeitai)),
		rec("Budi", model.CheckStageStatus(2)),
		rec("Citra", model.StatusPassed),
		rec("Dewi", model.StatusResigned),
	}
	got := AttendanceEligible(latest)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "Budi", got[1].Name)
}

func TestMatchesStatusCategory(t *testing.T) {
	training := rec("Ana", model.TrainingStatus(model.DisciplineAthletic))
	checking := rec("Budi", model.CheckStageStatus(1))
	passedCheck := rec("Citra", model.CheckStageStatus(2))
	passedCheck.CheckResult = model.ResultPassed

	assert.True(t, MatchesStatusCategory(training, CategoryTraining))
	assert.False(t, MatchesStatusCategory(training, CategoryChecking))
	assert.True(t, MatchesStatusCategory(checking, CategoryChecking))
	// A passed check no longer shows under the checking filter.
	assert.False(t, MatchesStatusCategory(passedCheck, CategoryChecking))
	assert.True(t, MatchesStatusCategory(training, CategoryAll))
}

func TestMatchesEvaluationCategory(t *testing.T) {
	passed := rec("Ana", model.StatusPassed)
	seitai := rec("Budi", model.EvaluationStatus(model.DisciplineSeitai))

	reflex := model.EvaluationStatus(model.DisciplineReflexology)
	assert.True(t, MatchesEvaluationCategory(passed, reflex))
	assert.False(t, MatchesEvaluationCategory(passed, model.EvaluationStatus(model.DisciplineSeitai)))
	assert.True(t, MatchesEvaluationCategory(seitai, model.EvaluationStatus(model.DisciplineSeitai)))
	assert.True(t, MatchesEvaluationCategory(seitai, ""))
}

func TestLocationOptions(t *testing.T) {
	a := rec("Ana", model.StatusPassed)
	a.PromotedToBranch = "Dago"
	b := rec("Budi", model.TrainingStatus(model.DisciplineReflexology))
	b.TrainedFrom = "TC Sunda"
	c := rec("Citra", model.EvaluationStatus(model.DisciplineReflexology))
	c.EvaluationBranch = "Antapani"

	branches, locations := LocationOptions([]model.TrainingRecord{a, b, c})
	assert.Equal(t, []string{"Antapani", "Dago"}, branches)
	assert.Equal(t, []string{"TC Sunda"}, locations)
}

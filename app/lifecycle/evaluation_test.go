package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endayshebocah/tckokuo/app/model"
)

func TestIsDueThreeMonthBoundary(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	passed := rec("Ana", model.StatusPassed)
	passed.PassedDate = "2025-03-15" // exactly three months before
	assert.True(t, IsDue(passed, today))

	passed.PassedDate = "2025-03-16" // three months minus one day
	assert.False(t, IsDue(passed, today))

	passed.PassedDate = "2025-01-01" // well past due
	assert.True(t, IsDue(passed, today))
}

func TestIsDueRequiresQualifyingStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	training := rec("Ana", model.TrainingStatus(model.DisciplineReflexology))
	training.EventDate = "2024-01-01"
	assert.False(t, IsDue(training, today))

	eval := rec("Budi", model.EvaluationStatus(model.DisciplineAthletic))
	eval.EventDate = "2025-02-01"
	assert.True(t, IsDue(eval, today))
}

func TestIsDueWithoutReferenceDate(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	passed := rec("Ana", model.StatusPassed)
	assert.False(t, IsDue(passed, today))

	passed.PassedDate = "garbage"
	assert.False(t, IsDue(passed, today))
}

func TestReferenceDatePrefersPassedDate(t *testing.T) {
	r := rec("Ana", model.StatusPassed)
	r.EventDate = "2025-01-01"
	r.PassedDate = "2025-02-01"

	got, ok := ReferenceDate(r)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got)

	r.PassedDate = ""
	got, ok = ReferenceDate(r)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestNextEvaluationLabel(t *testing.T) {
	passed := rec("Ana", model.StatusPassed)
	assert.Equal(t, model.EvaluationStatus(model.DisciplineReflexology), NextEvaluationLabel(passed))

	// An in-progress evaluation schedules the same discipline again.
	seitai := rec("Budi", model.EvaluationStatus(model.DisciplineSeitai))
	assert.Equal(t, seitai.Status, NextEvaluationLabel(seitai))
}

func TestDueNotifications(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	due := rec("Ana", model.StatusPassed)
	due.PassedDate = "2025-01-10"
	due.PromotedToBranch = "Dago"
	notDue := rec("Budi", model.StatusPassed)
	notDue.PassedDate = "2025-06-01"

	notifs := DueNotifications([]model.TrainingRecord{due, notDue}, today)
	require.Len(t, notifs, 1)
	assert.Equal(t, "Ana", notifs[0].Name)
	assert.Equal(t, "Dago", notifs[0].Branch)
	assert.Equal(t, model.EvaluationStatus(model.DisciplineReflexology), notifs[0].NextEvaluation)
	assert.Equal(t, "2025-04-10", notifs[0].DueDate)
}

package lifecycle

import (
	"time"

	"github.com/endayshebocah/tckokuo/app/model"
)

// evaluationInterval is the fixed cadence between qualifying events and the
// next evaluation.
const evaluationMonths = 3

// ReferenceDate picks the date an evaluation countdown runs from: the passed
// date when set, the event date otherwise.
func ReferenceDate(rec model.TrainingRecord) (time.Time, bool) {
	if t, ok := ParseDate(rec.PassedDate); ok {
		return t, true
	}
	return ParseDate(rec.EventDate)
}

// DueDate returns the day a trainee's next evaluation comes due, three
// calendar months after the reference date.
func DueDate(rec model.TrainingRecord) (time.Time, bool) {
	ref, ok := ReferenceDate(rec)
	if !ok {
		return time.Time{}, false
	}
	return ref.AddDate(0, evaluationMonths, 0), true
}

// IsDue reports whether a trainee's latest record marks them due for an
// evaluation on the given day: the status must be Passed or an evaluation, a
// reference date must exist, and the due date must not be in the future.
// Records with no usable date are never due.
func IsDue(latest model.TrainingRecord, today time.Time) bool {
	if latest.Status != model.StatusPassed && !latest.Status.IsEvaluation() {
		return false
	}
	due, ok := DueDate(latest)
	if !ok {
		return false
	}
	day := today.Truncate(24 * time.Hour)
	return !due.After(day)
}

// NextEvaluationLabel names the evaluation a due trainee is scheduled for. A
// graduate goes to the first Reflexology evaluation; a trainee already in an
// evaluation stays on the same discipline.
func NextEvaluationLabel(latest model.TrainingRecord) model.Status {
	if latest.Status == model.StatusPassed {
		return model.EvaluationStatus(model.DisciplineReflexology)
	}
	if latest.Status.IsEvaluation() {
		return latest.Status
	}
	return "Evaluation:Continuation"
}

// DueForEvaluation filters latest records down to trainees whose evaluation
// has come due.
func DueForEvaluation(latest []model.TrainingRecord, today time.Time) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range latest {
		if IsDue(rec, today) {
			out = append(out, rec)
		}
	}
	return out
}

// DueNotifications derives the evaluation reminders shown in the bell popup.
func DueNotifications(latest []model.TrainingRecord, today time.Time) []model.EvaluationNotification {
	var out []model.EvaluationNotification
	for _, rec := range DueForEvaluation(latest, today) {
		due, _ := DueDate(rec)
		out = append(out, model.EvaluationNotification{
			RecordID:       rec.ID.Hex(),
			Name:           rec.Name,
			Branch:         rec.Branch(),
			CurrentStatus:  ResolveDisplayStatus(rec),
			NextEvaluation: NextEvaluationLabel(rec),
			DueDate:        due.Format("2006-01-02"),
		})
	}
	return out
}

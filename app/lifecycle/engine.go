// Package lifecycle derives everything displayed about a trainee from the raw
// record list: display status, the next check stage, grouped and filtered
// views, skill buckets and due evaluations. All functions are pure and total;
// malformed records resolve to sentinel values instead of errors, so the
// package is safe to re-run on every store snapshot.
package lifecycle

import (
	"strings"
	"time"

	"github.com/endayshebocah/tckokuo/app/model"
)

const (
	// UnknownStatus is returned for records with a missing or empty status.
	UnknownStatus = "Unknown Status"

	// NotAvailable stands in for malformed or absent dates.
	NotAvailable = "N/A"

	dateLayout = "2006-01-02"
)

// ResolveDisplayStatus maps a record's raw fields to the label shown for it.
func ResolveDisplayStatus(rec model.TrainingRecord) string {
	if rec.Status == "" {
		return UnknownStatus
	}
	switch {
	case rec.Status.IsEvaluation():
		discipline := strings.TrimPrefix(string(rec.Status), model.EvaluationPrefix)
		if rec.EvaluationResult == model.ResultPassed {
			return "Passed Evaluation:" + discipline
		}
		return "In Evaluation:" + discipline
	case rec.Status.IsCheckStage():
		if rec.CheckResult == model.ResultPassed {
			return "Passed Check"
		}
		return "Check Stage"
	}
	return string(rec.Status)
}

// NextCheckStage computes the tag for a trainee's next check stage from their
// non-deleted records: max existing stage number plus one, starting at 1.
// Records of other trainees and malformed stage suffixes are ignored.
func NextCheckStage(name string, activeRecords []model.TrainingRecord) model.Status {
	highest := 0
	for _, rec := range activeRecords {
		if rec.Name != name {
			continue
		}
		if n, ok := rec.Status.CheckStageNumber(); ok && n > highest {
			highest = n
		}
	}
	return model.CheckStageStatus(highest + 1)
}

// ParseDate reads a YYYY-MM-DD field; ok is false for empty or malformed
// values.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a stored date field for display, with the N/A sentinel
// for anything unparseable.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return NotAvailable
	}
	return t.Format("2 January 2006")
}

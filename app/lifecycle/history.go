package lifecycle

import (
	"sort"
	"time"

	"github.com/endayshebocah/tckokuo/app/model"
)

// stepRank orders pipeline steps for the timeline: trainings, then check
// stages by number, then graduation, then evaluations.
func stepRank(s model.Status) (int, int) {
	if s.IsTraining() {
		for i, d := range model.Disciplines() {
			if s == model.TrainingStatus(d) {
				return 0, i
			}
		}
		return 0, len(model.Disciplines())
	}
	if n, ok := s.CheckStageNumber(); ok {
		return 1, n
	}
	if s == model.StatusPassed {
		return 2, 0
	}
	if s.IsEvaluation() {
		for i, d := range model.Disciplines() {
			if s == model.EvaluationStatus(d) {
				return 3, i
			}
		}
		return 3, len(model.Disciplines())
	}
	return 4, 0
}

// TimelineSteps lists the distinct pipeline stages present in a trainee's
// history in pipeline order. Terminal statuses (Resigned,
// ReplacedParticipant) are not steps and are skipped.
func TimelineSteps(history []model.TrainingRecord) []model.Status {
	seen := make(map[model.Status]bool)
	var steps []model.Status
	for _, rec := range history {
		s := rec.Status
		if s == "" || s == model.StatusResigned || s == model.StatusReplacedParticipant {
			continue
		}
		if !seen[s] {
			seen[s] = true
			steps = append(steps, s)
		}
	}
	sort.SliceStable(steps, func(i, j int) bool {
		gi, ri := stepRank(steps[i])
		gj, rj := stepRank(steps[j])
		if gi != gj {
			return gi < gj
		}
		return ri < rj
	})
	return steps
}

// WorkDuration measures a trainee's tenure from their first entry date to
// their resignation date, or to today while still active. ok is false when no
// entry date exists.
func WorkDuration(history []model.TrainingRecord, today time.Time) (years, months, days int, ok bool) {
	var start time.Time
	for _, rec := range history {
		if t, parsed := ParseDate(rec.EntryDate); parsed {
			start = t
			break
		}
	}
	if start.IsZero() {
		return 0, 0, 0, false
	}

	end := today
	for _, rec := range history {
		if rec.Status == model.StatusResigned {
			if t, parsed := ParseDate(rec.ResignDate); parsed {
				end = t
			}
			break
		}
	}

	years = end.Year() - start.Year()
	months = int(end.Month()) - int(start.Month())
	days = end.Day() - start.Day()
	if days < 0 {
		months--
		days += time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months, days, true
}

const (
	HistoryEntryRecord    = "record"
	HistoryEntryComplaint = "complaint"
)

// HistoryEntry is one row of the unified trainee history: a training record
// or a complaint, interleaved by timestamp.
type HistoryEntry struct {
	Type      string                `json:"type"`
	Timestamp time.Time             `json:"timestamp"`
	Record    *model.TrainingRecord `json:"record,omitempty"`
	Complaint *model.Complaint      `json:"complaint,omitempty"`
}

func complaintTime(c model.Complaint) time.Time {
	if !c.CreatedAt.IsZero() {
		return c.CreatedAt
	}
	if t, ok := ParseDate(c.ComplaintDate); ok {
		return t
	}
	return time.Time{}
}

// MergedHistory interleaves a trainee's records and complaints into one
// timeline, newest first.
func MergedHistory(history []model.TrainingRecord, complaints []model.Complaint) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(history)+len(complaints))
	for i := range history {
		rec := history[i]
		entries = append(entries, HistoryEntry{
			Type:      HistoryEntryRecord,
			Timestamp: rec.SortTime(),
			Record:    &rec,
		})
	}
	for i := range complaints {
		c := complaints[i]
		entries = append(entries, HistoryEntry{
			Type:      HistoryEntryComplaint,
			Timestamp: complaintTime(c),
			Complaint: &c,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// AssessmentHistory lists a trainee's records carrying an assessment, newest
// first.
func AssessmentHistory(history []model.TrainingRecord) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range history {
		if rec.Assessment != nil {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortTime().After(out[j].SortTime())
	})
	return out
}

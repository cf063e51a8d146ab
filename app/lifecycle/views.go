package lifecycle

import (
	"sort"
	"strings"

	"github.com/endayshebocah/tckokuo/app/model"
)

// View selects which location field a branch filter applies to.
type View string

const (
	ViewParticipant View = "participant"
	ViewBranch      View = "branch"
	ViewSchedule    View = "schedule"
)

// Active returns the records not in the trash.
func Active(records []model.TrainingRecord) []model.TrainingRecord {
	out := make([]model.TrainingRecord, 0, len(records))
	for _, rec := range records {
		if !rec.IsDeleted {
			out = append(out, rec)
		}
	}
	return out
}

// Deleted returns the trash view.
func Deleted(records []model.TrainingRecord) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range records {
		if rec.IsDeleted {
			out = append(out, rec)
		}
	}
	return out
}

// newer orders records for the latest-per-trainee pick. Equal timestamps are
// broken by record id descending so the result is deterministic regardless of
// store iteration order.
func newer(a, b model.TrainingRecord) bool {
	at, bt := a.SortTime(), b.SortTime()
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return a.ID.Hex() > b.ID.Hex()
}

// LatestPerTrainee reduces active records to one per name, the most recently
// updated record. The result is sorted by name.
func LatestPerTrainee(active []model.TrainingRecord) []model.TrainingRecord {
	latest := make(map[string]model.TrainingRecord)
	for _, rec := range active {
		cur, ok := latest[rec.Name]
		if !ok || newer(rec, cur) {
			latest[rec.Name] = rec
		}
	}
	out := make([]model.TrainingRecord, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResolvePortraits overlays each trainee's canonical portrait onto their
// latest record: the earliest record bearing a photo wins until a newer
// record explicitly sets one and is itself the latest.
func ResolvePortraits(active, latest []model.TrainingRecord) []model.TrainingRecord {
	byCreated := make([]model.TrainingRecord, len(active))
	copy(byCreated, active)
	sort.Slice(byCreated, func(i, j int) bool {
		if !byCreated[i].CreatedAt.Equal(byCreated[j].CreatedAt) {
			return byCreated[i].CreatedAt.Before(byCreated[j].CreatedAt)
		}
		return byCreated[i].ID.Hex() < byCreated[j].ID.Hex()
	})

	portraits := make(map[string]string)
	for _, rec := range byCreated {
		if rec.Name != "" && rec.Photo != "" {
			if _, seen := portraits[rec.Name]; !seen {
				portraits[rec.Name] = rec.Photo
			}
		}
	}

	out := make([]model.TrainingRecord, len(latest))
	copy(out, latest)
	for i := range out {
		if photo, ok := portraits[out[i].Name]; ok {
			out[i].Photo = photo
		}
	}
	return out
}

// FilterByName keeps records whose name contains the term,
// case-insensitively.
func FilterByName(records []model.TrainingRecord, term string) []model.TrainingRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	var out []model.TrainingRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByLocation applies the view-dependent branch filter: the participant
// view matches the trained-from location, branch and schedule views match the
// promoted-to or evaluation branch.
func FilterByLocation(records []model.TrainingRecord, view View, location string) []model.TrainingRecord {
	if location == "" {
		return records
	}
	var out []model.TrainingRecord
	for _, rec := range records {
		switch view {
		case ViewParticipant:
			if rec.TrainedFrom == location {
				out = append(out, rec)
			}
		case ViewBranch, ViewSchedule:
			if rec.Branch() == location {
				out = append(out, rec)
			}
		default:
			out = append(out, rec)
		}
	}
	return out
}

// LocationOptions collects the distinct branch and training-location values
// present in a record set, sorted.
func LocationOptions(records []model.TrainingRecord) (branches, trainingLocations []string) {
	branchSet := make(map[string]struct{})
	locationSet := make(map[string]struct{})
	for _, rec := range records {
		if b := rec.Branch(); b != "" {
			branchSet[b] = struct{}{}
		}
		if rec.TrainedFrom != "" {
			locationSet[rec.TrainedFrom] = struct{}{}
		}
	}
	for b := range branchSet {
		branches = append(branches, b)
	}
	for l := range locationSet {
		trainingLocations = append(trainingLocations, l)
	}
	sort.Strings(branches)
	sort.Strings(trainingLocations)
	return branches, trainingLocations
}

// AttendanceEligible keeps trainees whose latest status is a training or
// check stage, the only stages with a class to attend.
func AttendanceEligible(latest []model.TrainingRecord) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range latest {
		if rec.Status.IsTraining() || rec.Status.IsCheckStage() {
			out = append(out, rec)
		}
	}
	return out
}

// HistoryFor collects a trainee's full non-deleted history, oldest first.
func HistoryFor(name string, records []model.TrainingRecord) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range records {
		if rec.Name == name && !rec.IsDeleted {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

// StatusCategory is the coarse list filter over latest records.
type StatusCategory string

const (
	CategoryAll         StatusCategory = "all"
	CategoryTraining    StatusCategory = "training"
	CategoryChecking    StatusCategory = "checking"
	CategoryResigned    StatusCategory = "resigned"
	CategoryReplacement StatusCategory = "replacement"
)

// MatchesStatusCategory reports whether a record belongs to the chosen list
// filter. The checking category means an in-progress check, not a passed one.
func MatchesStatusCategory(rec model.TrainingRecord, category StatusCategory) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryTraining:
		return rec.Status.IsTraining()
	case CategoryChecking:
		return ResolveDisplayStatus(rec) == "Check Stage"
	case CategoryResigned:
		return rec.Status == model.StatusResigned
	case CategoryReplacement:
		return rec.Status == model.StatusReplacedParticipant
	}
	return true
}

// MatchesEvaluationCategory filters the evaluation schedule by discipline. A
// fresh Passed record counts toward the first Reflexology evaluation.
func MatchesEvaluationCategory(rec model.TrainingRecord, category model.Status) bool {
	if category == "" {
		return true
	}
	if rec.Status == category {
		return true
	}
	return rec.Status == model.StatusPassed && category == model.EvaluationStatus(model.DisciplineReflexology)
}

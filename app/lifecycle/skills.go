package lifecycle

import (
	"sort"

	"github.com/endayshebocah/tckokuo/app/model"
)

// Skills scans a trainee's full non-deleted history and reports which
// disciplines they have acquired. A Passed record implies Reflexology; an
// evaluation record counts once its result is Passed.
func Skills(history []model.TrainingRecord) []model.Discipline {
	acquired := make(map[model.Discipline]bool)
	for _, rec := range history {
		if rec.Status == model.StatusPassed {
			acquired[model.DisciplineReflexology] = true
			continue
		}
		if rec.Status.IsEvaluation() && rec.EvaluationResult == model.ResultPassed {
			if d, ok := rec.Status.Discipline(); ok {
				acquired[d] = true
			}
		}
	}
	var out []model.Discipline
	for _, d := range model.Disciplines() {
		if acquired[d] {
			out = append(out, d)
		}
	}
	return out
}

// StaffMember pairs a trainee with their acquired skills for the summary.
type StaffMember struct {
	Name   string             `json:"name"`
	Branch string             `json:"branch,omitempty"`
	Skills []model.Discipline `json:"skills"`
}

// SkillsSummary buckets graduated staff by skill combination. Buckets are
// mutually exclusive and deliberately partial: only all-three masters and the
// two single-discipline specialist groups are called out, everyone appears in
// the per-branch roster.
type SkillsSummary struct {
	Masters         []string                 `json:"masters"`
	ReflexologyOnly []string                 `json:"reflexologyOnly"`
	AthleticOnly    []string                 `json:"athleticOnly"`
	ByBranch        map[string][]StaffMember `json:"byBranch"`
}

const unassignedBranch = "Unassigned"

// graduated keeps latest records past the training and checking stages and
// not terminated.
func graduated(latest []model.TrainingRecord) []model.TrainingRecord {
	var out []model.TrainingRecord
	for _, rec := range latest {
		if rec.Status.IsTraining() || rec.Status.IsCheckStage() {
			continue
		}
		if rec.Status == model.StatusResigned || rec.Status == model.StatusReplacedParticipant {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// BuildSkillsSummary classifies all graduated staff from the active record
// set.
func BuildSkillsSummary(active, latest []model.TrainingRecord) SkillsSummary {
	summary := SkillsSummary{ByBranch: make(map[string][]StaffMember)}

	for _, rec := range graduated(latest) {
		skills := Skills(HistoryFor(rec.Name, active))
		has := make(map[model.Discipline]bool, len(skills))
		for _, d := range skills {
			has[d] = true
		}

		switch {
		case has[model.DisciplineReflexology] && has[model.DisciplineAthletic] && has[model.DisciplineSeitai]:
			summary.Masters = append(summary.Masters, rec.Name)
		case has[model.DisciplineReflexology] && !has[model.DisciplineAthletic] && !has[model.DisciplineSeitai]:
			summary.ReflexologyOnly = append(summary.ReflexologyOnly, rec.Name)
		case !has[model.DisciplineReflexology] && has[model.DisciplineAthletic] && !has[model.DisciplineSeitai]:
			summary.AthleticOnly = append(summary.AthleticOnly, rec.Name)
		}

		branch := rec.Branch()
		if branch == "" {
			branch = unassignedBranch
		}
		summary.ByBranch[branch] = append(summary.ByBranch[branch], StaffMember{
			Name:   rec.Name,
			Branch: branch,
			Skills: skills,
		})
	}

	sort.Strings(summary.Masters)
	sort.Strings(summary.ReflexologyOnly)
	sort.Strings(summary.AthleticOnly)
	for _, staff := range summary.ByBranch {
		sort.Slice(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })
	}
	return summary
}

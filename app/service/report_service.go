package service

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/endayshebocah/tckokuo/app/lifecycle"
	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type ReportService struct {
	records repo.RecordRepository
}

func NewReportService(records repo.RecordRepository) *ReportService {
	return &ReportService{records: records}
}

func (s *ReportService) loadAll(c *fiber.Ctx) ([]model.TrainingRecord, error) {
	return s.records.FindAll(c.Context())
}

// /api/v1/reports/trash
func (s *ReportService) Trash(c *fiber.Ctx) error {
	all, err := s.loadAll(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}
	return c.JSON(model.SuccessResponse[[]RecordView]{
		Success: true,
		Data:    toViews(lifecycle.Deleted(all)),
	})
}

// ScheduleEntry is one due trainee on the evaluation schedule.
type ScheduleEntry struct {
	RecordView
	NextEvaluation model.Status `json:"nextEvaluation"`
	LastEventDate  string       `json:"lastEventDate"`
	DueDate        string       `json:"dueDate"`
}

// /api/v1/reports/evaluation-schedule
func (s *ReportService) EvaluationSchedule(c *fiber.Ctx) error {
	all, err := s.loadAll(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}

	latest := lifecycle.LatestPerTrainee(lifecycle.Active(all))
	due := lifecycle.DueForEvaluation(latest, time.Now())

	if category := c.Query("category"); category != "" {
		var filtered []model.TrainingRecord
		for _, rec := range due {
			if lifecycle.MatchesEvaluationCategory(rec, model.Status(category)) {
				filtered = append(filtered, rec)
			}
		}
		due = filtered
	}

	grouped := make(map[string][]ScheduleEntry)
	for _, rec := range due {
		branch := rec.Branch()
		if branch == "" {
			branch = "Unassigned"
		}
		dueDate, _ := lifecycle.DueDate(rec)
		reference := rec.PassedDate
		if reference == "" {
			reference = rec.EventDate
		}
		grouped[branch] = append(grouped[branch], ScheduleEntry{
			RecordView:     RecordView{TrainingRecord: rec, DisplayStatus: lifecycle.ResolveDisplayStatus(rec)},
			NextEvaluation: lifecycle.NextEvaluationLabel(rec),
			LastEventDate:  lifecycle.FormatDate(reference),
			DueDate:        dueDate.Format("2006-01-02"),
		})
	}
	for _, entries := range grouped {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}

	return c.JSON(model.SuccessResponse[map[string][]ScheduleEntry]{Success: true, Data: grouped})
}

// /api/v1/reports/skills-summary
func (s *ReportService) SkillsSummary(c *fiber.Ctx) error {
	all, err := s.loadAll(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}
	active := lifecycle.Active(all)
	summary := lifecycle.BuildSkillsSummary(active, lifecycle.LatestPerTrainee(active))
	return c.JSON(model.SuccessResponse[lifecycle.SkillsSummary]{Success: true, Data: summary})
}

// FollowUpGroup groups pipeline events in a period by branch and status.
type FollowUpGroup struct {
	Branch   string                  `json:"branch"`
	Statuses map[string][]RecordView `json:"statuses"`
}

// /api/v1/reports/follow-up
func (s *ReportService) FollowUp(c *fiber.Ctx) error {
	var req model.DateRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}
	start, end, err := parseRange(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	all, err := s.loadAll(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}

	byBranch := make(map[string]map[string][]RecordView)
	for _, rec := range lifecycle.Active(all) {
		eventDate, ok := lifecycle.ParseDate(rec.EventDate)
		if !ok || eventDate.Before(start) || eventDate.After(end) {
			continue
		}
		branch := rec.Branch()
		if branch == "" {
			branch = rec.TrainedFrom
		}
		if branch == "" {
			branch = "Unassigned"
		}
		if byBranch[branch] == nil {
			byBranch[branch] = make(map[string][]RecordView)
		}
		display := lifecycle.ResolveDisplayStatus(rec)
		byBranch[branch][display] = append(byBranch[branch][display],
			RecordView{TrainingRecord: rec, DisplayStatus: display})
	}

	groups := make([]FollowUpGroup, 0, len(byBranch))
	for branch, statuses := range byBranch {
		groups = append(groups, FollowUpGroup{Branch: branch, Statuses: statuses})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Branch < groups[j].Branch })

	return c.JSON(model.SuccessResponse[[]FollowUpGroup]{Success: true, Data: groups})
}

// TrainerPerformance is one trainer's activity in a period, with the records
// behind the counts for drill-down.
type TrainerPerformance struct {
	Trainer      string       `json:"trainer"`
	Total        int          `json:"total"`
	Passed       int          `json:"passed"`
	InTraining   int          `json:"inTraining"`
	InChecking   int          `json:"inChecking"`
	InEvaluation int          `json:"inEvaluation"`
	Records      []RecordView `json:"records"`
}

// /api/v1/reports/trainer-performance
func (s *ReportService) TrainerPerformance(c *fiber.Ctx) error {
	var req model.DateRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}
	start, end, err := parseRange(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	records, err := s.records.FindByCreatedRange(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}

	byTrainer := make(map[string]*TrainerPerformance)
	for _, rec := range lifecycle.Active(records) {
		if rec.Trainer == "" {
			continue
		}
		perf := byTrainer[rec.Trainer]
		if perf == nil {
			perf = &TrainerPerformance{Trainer: rec.Trainer}
			byTrainer[rec.Trainer] = perf
		}
		perf.Total++
		switch {
		case rec.Status == model.StatusPassed:
			perf.Passed++
		case rec.Status.IsTraining():
			perf.InTraining++
		case rec.Status.IsCheckStage():
			perf.InChecking++
		case rec.Status.IsEvaluation():
			perf.InEvaluation++
		}
		perf.Records = append(perf.Records,
			RecordView{TrainingRecord: rec, DisplayStatus: lifecycle.ResolveDisplayStatus(rec)})
	}

	out := make([]TrainerPerformance, 0, len(byTrainer))
	for _, perf := range byTrainer {
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trainer < out[j].Trainer })

	return c.JSON(model.SuccessResponse[[]TrainerPerformance]{Success: true, Data: out})
}

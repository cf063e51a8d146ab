package service

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/endayshebocah/tckokuo/app/lifecycle"
	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type RecordService struct {
	records       repo.RecordRepository
	complaints    repo.ComplaintRepository
	notifications repo.NotificationRepository
}

func NewRecordService(records repo.RecordRepository, complaints repo.ComplaintRepository, notifications repo.NotificationRepository) *RecordService {
	return &RecordService{records: records, complaints: complaints, notifications: notifications}
}

// RecordView decorates a stored record with its resolved display status.
type RecordView struct {
	model.TrainingRecord
	DisplayStatus string `json:"displayStatus"`
}

func toViews(records []model.TrainingRecord) []RecordView {
	views := make([]RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, RecordView{TrainingRecord: rec, DisplayStatus: lifecycle.ResolveDisplayStatus(rec)})
	}
	return views
}

// RecordDetail is the full per-trainee drill-down behind the detail screen.
type RecordDetail struct {
	Record            RecordView              `json:"record"`
	History           []RecordView            `json:"history"`
	MergedHistory     []lifecycle.HistoryEntry `json:"mergedHistory"`
	Timeline          []model.Status          `json:"timeline"`
	AssessmentHistory []RecordView            `json:"assessmentHistory"`
	Skills            []model.Discipline      `json:"skills"`
	WorkDuration      *WorkDurationView       `json:"workDuration,omitempty"`
}

type WorkDurationView struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func currentUser(c *fiber.Ctx) string {
	name, _ := c.Locals("username").(string)
	return name
}

// /api/v1/records
func (s *RecordService) List(c *fiber.Ctx) error {
	all, err := s.records.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}

	view := lifecycle.View(c.Query("view", string(lifecycle.ViewParticipant)))
	active := lifecycle.Active(all)
	latest := lifecycle.LatestPerTrainee(active)

	var list []model.TrainingRecord
	switch view {
	case lifecycle.ViewParticipant:
		list = lifecycle.ResolvePortraits(active, latest)
	case lifecycle.ViewBranch, lifecycle.ViewSchedule:
		list = latest
	default:
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Unknown view",
		})
	}

	if search := c.Query("search"); search != "" {
		list = lifecycle.FilterByName(list, search)
	}
	if location := c.Query("location"); location != "" {
		list = lifecycle.FilterByLocation(list, view, location)
	}
	if category := c.Query("category"); category != "" {
		var filtered []model.TrainingRecord
		for _, rec := range list {
			if lifecycle.MatchesStatusCategory(rec, lifecycle.StatusCategory(category)) {
				filtered = append(filtered, rec)
			}
		}
		list = filtered
	}

	return c.JSON(model.SuccessResponse[[]RecordView]{Success: true, Data: toViews(list)})
}

// LocationFilters lists the values the list screens can filter on.
type LocationFilters struct {
	Branches          []string `json:"branches"`
	TrainingLocations []string `json:"trainingLocations"`
}

// /api/v1/records/locations
func (s *RecordService) Locations(c *fiber.Ctx) error {
	all, err := s.records.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}
	branches, trainingLocations := lifecycle.LocationOptions(lifecycle.Active(all))
	return c.JSON(model.SuccessResponse[LocationFilters]{
		Success: true,
		Data:    LocationFilters{Branches: branches, TrainingLocations: trainingLocations},
	})
}

// /api/v1/records/:id
func (s *RecordService) Detail(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid record id",
		})
	}

	rec, err := s.records.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Record not found",
		})
	}

	history, err := s.records.FindByName(c.Context(), rec.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load history",
		})
	}
	complaints, err := s.complaints.FindByTrainee(c.Context(), rec.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load complaints",
		})
	}

	detail := RecordDetail{
		Record:            RecordView{TrainingRecord: *rec, DisplayStatus: lifecycle.ResolveDisplayStatus(*rec)},
		History:           toViews(lifecycle.HistoryFor(rec.Name, history)),
		MergedHistory:     lifecycle.MergedHistory(history, complaints),
		Timeline:          lifecycle.TimelineSteps(history),
		AssessmentHistory: toViews(lifecycle.AssessmentHistory(history)),
		Skills:            lifecycle.Skills(history),
	}
	if years, months, days, ok := lifecycle.WorkDuration(history, time.Now()); ok {
		detail.WorkDuration = &WorkDurationView{Years: years, Months: months, Days: days}
	}

	return c.JSON(model.SuccessResponse[RecordDetail]{Success: true, Data: detail})
}

// resolveStatus turns the request status into a stored tag. The bare
// CheckStage marker resolves to Passed when the check went through, or to the
// trainee's next stage number otherwise.
func (s *RecordService) resolveStatus(c *fiber.Ctx, req model.CreateRecordRequest) (model.Status, error) {
	if req.Status != model.CheckStageAuto {
		return model.ParseStatus(req.Status)
	}

	if model.Result(req.CheckResult) == model.ResultPassed {
		return model.StatusPassed, nil
	}

	all, err := s.records.FindAll(c.Context())
	if err != nil {
		return "", err
	}
	return lifecycle.NextCheckStage(req.Name, lifecycle.Active(all)), nil
}

// /api/v1/records
func (s *RecordService) Create(c *fiber.Ctx) error {
	var req model.CreateRecordRequest
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
	if missing := req.RequiredFieldErrors(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Missing required fields for this status",
			Fields:  missing,
		})
	}

	var evalResult, checkResult model.Result
	var err error
	if req.EvaluationResult != "" {
		if evalResult, err = model.ParseResult(req.EvaluationResult); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
	}
	if req.CheckResult != "" {
		if checkResult, err = model.ParseResult(req.CheckResult); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
	}

	status, err := s.resolveStatus(c, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	rec := model.TrainingRecord{
		Name:             req.Name,
		Status:           status,
		EvaluationResult: evalResult,
		CheckResult:      checkResult,
		EntryDate:        req.EntryDate,
		EventDate:        req.EventDate,
		PassedDate:       req.PassedDate,
		ResignDate:       req.ResignDate,
		OriginCity:       req.OriginCity,
		TrainedFrom:      req.TrainedFrom,
		PromotedToBranch: req.PromotedToBranch,
		EvaluationBranch: req.EvaluationBranch,
		Trainer:          req.Trainer,
		ApprovedBy:       req.ApprovedBy,
		Reference:        req.Reference,
		Photo:            req.Photo,
		Assessment:       req.Assessment,
		CreatedBy:        currentUser(c),
	}
	if err := s.records.Insert(c.Context(), &rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save record",
		})
	}

	// Best effort: the record write already succeeded, a lost notification
	// is only logged.
	notif := model.ActivityNotification{
		Message:   fmt.Sprintf("%s recorded %s for %s", rec.CreatedBy, lifecycle.ResolveDisplayStatus(rec), rec.Name),
		Type:      model.NotificationTypeActivity,
		CreatedBy: rec.CreatedBy,
		RecordID:  rec.ID.Hex(),
	}
	if err := s.notifications.Insert(c.Context(), &notif); err != nil {
		log.Println("Failed to write activity notification:", err)
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[RecordView]{
		Success: true,
		Message: "Record saved",
		Data:    RecordView{TrainingRecord: rec, DisplayStatus: lifecycle.ResolveDisplayStatus(rec)},
	})
}

func setIf(set bson.M, key string, val *string) {
	if val != nil {
		set[key] = *val
	}
}

// /api/v1/records/:id
func (s *RecordService) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid record id",
		})
	}

	var req model.UpdateRecordRequest
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

	set := bson.M{"lastUpdatedBy": currentUser(c)}
	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		set["status"] = status
	}
	if req.EvaluationResult != nil {
		result, err := model.ParseResult(*req.EvaluationResult)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		set["evaluationResult"] = result
	}
	if req.CheckResult != nil {
		result, err := model.ParseResult(*req.CheckResult)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		set["checkResult"] = result
	}
	setIf(set, "entryDate", req.EntryDate)
	setIf(set, "eventDate", req.EventDate)
	setIf(set, "passedDate", req.PassedDate)
	setIf(set, "resignDate", req.ResignDate)
	setIf(set, "originCity", req.OriginCity)
	setIf(set, "trainedFrom", req.TrainedFrom)
	setIf(set, "promotedToBranch", req.PromotedToBranch)
	setIf(set, "evaluationBranch", req.EvaluationBranch)
	setIf(set, "trainer", req.Trainer)
	setIf(set, "approvedBy", req.ApprovedBy)
	setIf(set, "reference", req.Reference)
	setIf(set, "photo", req.Photo)
	if req.Assessment != nil {
		set["assessment"] = req.Assessment
	}

	if err := s.records.Patch(c.Context(), id, set); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update record",
		})
	}

	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Record updated"})
}

// /api/v1/records/:id
func (s *RecordService) SoftDelete(c *fiber.Ctx) error {
	return s.setDeleted(c, true, "Record moved to trash")
}

// /api/v1/records/:id/restore
func (s *RecordService) Restore(c *fiber.Ctx) error {
	return s.setDeleted(c, false, "Record restored")
}

func (s *RecordService) setDeleted(c *fiber.Ctx, deleted bool, message string) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid record id",
		})
	}
	if err := s.records.SetDeleted(c.Context(), id, deleted, currentUser(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update record",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: message})
}

// /api/v1/records/:id/permanent
func (s *RecordService) DeletePermanent(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid record id",
		})
	}
	if err := s.records.DeletePermanent(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete record",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Record deleted permanently"})
}

// /api/v1/records/bulk/search
func (s *RecordService) BulkSearch(c *fiber.Ctx) error {
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
	return c.JSON(model.SuccessResponse[[]RecordView]{Success: true, Data: toViews(records)})
}

// /api/v1/records/bulk/delete
func (s *RecordService) BulkDelete(c *fiber.Ctx) error {
	var req model.BulkDeleteRequest
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

	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: "Invalid record id: " + raw,
			})
		}
		ids = append(ids, id)
	}

	deleted, err := s.records.BulkDelete(c.Context(), ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete records",
		})
	}
	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted %d records", deleted),
	})
}

// /api/v1/records/merge
func (s *RecordService) MergeField(c *fiber.Ctx) error {
	var req model.MergeFieldRequest
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

	modified, err := s.records.MergeFieldValue(c.Context(), req.Field, req.IncorrectValue, req.CorrectValue)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to merge values",
		})
	}
	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: fmt.Sprintf("Updated %d records", modified),
	})
}

// /api/v1/records/:id/photo
func (s *RecordService) UploadPhoto(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid record id",
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Photo file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to read photo",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to read photo",
		})
	}

	photo, err := helper.CompressPhoto(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Unsupported image format",
		})
	}

	set := bson.M{"photo": photo, "lastUpdatedBy": currentUser(c)}
	if err := s.records.Patch(c.Context(), id, set); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save photo",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Photo saved"})
}

// parseRange turns an inclusive YYYY-MM-DD range into time bounds covering
// the whole end day.
func parseRange(req model.DateRangeRequest) (time.Time, time.Time, error) {
	start, ok := lifecycle.ParseDate(req.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", req.StartDate)
	}
	end, ok := lifecycle.ParseDate(req.EndDate)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", req.EndDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date is before start date")
	}
	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

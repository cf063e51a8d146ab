package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/endayshebocah/tckokuo/app/lifecycle"
	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type AttendanceService struct {
	attendance repo.AttendanceRepository
	records    repo.RecordRepository
}

func NewAttendanceService(attendance repo.AttendanceRepository, records repo.RecordRepository) *AttendanceService {
	return &AttendanceService{attendance: attendance, records: records}
}

// /api/v1/attendance
func (s *AttendanceService) Save(c *fiber.Ctx) error {
	var req model.SaveAttendanceRequest
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

	now := time.Now()
	recordedBy := currentUser(c)
	entries := make([]model.AttendanceEntry, 0, len(req.Marks))
	for _, mark := range req.Marks {
		status, err := model.ParseAttendanceStatus(mark.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		entries = append(entries, model.AttendanceEntry{
			ParticipantID:    mark.ParticipantID,
			ParticipantName:  mark.ParticipantName,
			Location:         req.Location,
			AttendanceStatus: status,
			Notes:            mark.Notes,
			Date:             now,
			RecordedBy:       recordedBy,
		})
	}

	if err := s.attendance.InsertMany(c.Context(), entries); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save attendance",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Attendance saved",
	})
}

// /api/v1/attendance/participants
func (s *AttendanceService) Participants(c *fiber.Ctx) error {
	all, err := s.records.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}

	latest := lifecycle.LatestPerTrainee(lifecycle.Active(all))
	eligible := lifecycle.AttendanceEligible(latest)
	if location := c.Query("location"); location != "" {
		eligible = lifecycle.FilterByLocation(eligible, lifecycle.ViewParticipant, location)
	}
	return c.JSON(model.SuccessResponse[[]RecordView]{Success: true, Data: toViews(eligible)})
}

// /api/v1/attendance/participant/:id
func (s *AttendanceService) History(c *fiber.Ctx) error {
	entries, err := s.attendance.FindByParticipant(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load attendance",
		})
	}
	return c.JSON(model.SuccessResponse[[]model.AttendanceEntry]{Success: true, Data: entries})
}

// /api/v1/attendance/report
func (s *AttendanceService) Report(c *fiber.Ctx) error {
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

	location := c.Query("location")
	entries, err := s.attendance.FindByDateRange(c.Context(), start, end, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load attendance",
		})
	}

	rows := make([]model.AttendanceReportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.AttendanceReportRow{
			ParticipantName: e.ParticipantName,
			Status:          string(e.AttendanceStatus),
			Date:            e.Date.Format("2006-01-02"),
			Location:        e.Location,
			Notes:           e.Notes,
			RecordedBy:      e.RecordedBy,
		})
	}

	// Status changes in the same window show up as rows too, so the recap
	// reads as one chronology per participant.
	records, err := s.records.FindByCreatedRange(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}
	for _, rec := range lifecycle.Active(records) {
		if location != "" && rec.TrainedFrom != location && rec.Branch() != location {
			continue
		}
		rows = append(rows, model.AttendanceReportRow{
			ParticipantName: rec.Name,
			Status:          lifecycle.ResolveDisplayStatus(rec),
			Date:            rec.CreatedAt.Format("2006-01-02"),
			Location:        rec.TrainedFrom,
			Notes:           "Status change",
			RecordedBy:      rec.CreatedBy,
		})
	}

	return c.JSON(model.SuccessResponse[[]model.AttendanceReportRow]{Success: true, Data: rows})
}

package service

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/helper"
)

type ComplaintService struct {
	repo repo.ComplaintRepository
}

func NewComplaintService(repo repo.ComplaintRepository) *ComplaintService {
	return &ComplaintService{repo: repo}
}

// /api/v1/complaints
func (s *ComplaintService) List(c *fiber.Ctx) error {
	complaints, err := s.repo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load complaints",
		})
	}
	return c.JSON(model.SuccessResponse[[]model.Complaint]{Success: true, Data: complaints})
}

// /api/v1/complaints
func (s *ComplaintService) Create(c *fiber.Ctx) error {
	var req model.CreateComplaintRequest
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

	status := model.ComplaintNew
	if req.Status != "" {
		parsed, err := model.ParseComplaintStatus(req.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		status = parsed
	}

	complaint := model.Complaint{
		TraineeName:       req.TraineeName,
		Branch:            req.Branch,
		ComplaintDate:     req.ComplaintDate,
		Details:           req.Details,
		ReportedBy:        req.ReportedBy,
		Status:            status,
		ResolutionDetails: req.ResolutionDetails,
		ResolvedDate:      req.ResolvedDate,
	}
	if complaint.ReportedBy == "" {
		complaint.ReportedBy = currentUser(c)
	}

	if err := s.repo.Insert(c.Context(), &complaint); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save complaint",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.Complaint]{
		Success: true,
		Message: "Complaint saved",
		Data:    complaint,
	})
}

// /api/v1/complaints/:id
func (s *ComplaintService) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid complaint id",
		})
	}

	var req model.UpdateComplaintRequest
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

	set := bson.M{}
	if req.Status != nil {
		status, err := model.ParseComplaintStatus(*req.Status)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		set["status"] = status
	}
	setIf(set, "branch", req.Branch)
	setIf(set, "complaintDate", req.ComplaintDate)
	setIf(set, "details", req.Details)
	setIf(set, "reportedBy", req.ReportedBy)
	setIf(set, "resolutionDetails", req.ResolutionDetails)
	setIf(set, "resolvedDate", req.ResolvedDate)

	if err := s.repo.Patch(c.Context(), id, set); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update complaint",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Complaint updated"})
}

// /api/v1/complaints/:id
func (s *ComplaintService) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid complaint id",
		})
	}
	if err := s.repo.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete complaint",
		})
	}
	return c.JSON(model.SuccessMessageResponse{Success: true, Message: "Complaint deleted"})
}
